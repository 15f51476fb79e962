package send

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const scriptTemplate = `tell application "Messages"
	activate
	set targetService to 1st service whose service type = %s
	set targetBuddy to buddy "%s" of targetService
	send "%s" to targetBuddy
end tell`

// scriptRunner executes one AppleScript source string.
type scriptRunner func(ctx context.Context, script string) error

// MessagesSender sends texts by handing a generated AppleScript to
// osascript.
type MessagesSender struct {
	run scriptRunner
}

func NewMessagesSender() *MessagesSender {
	return &MessagesSender{run: runOsascript}
}

// Send builds the script for one message and runs it. The number must
// already be normalized; the message body is escaped before embedding.
func (s *MessagesSender) Send(ctx context.Context, text, number, service string) error {
	script := buildScript(text, number, service)
	return s.run(ctx, script)
}

func buildScript(text, number, service string) string {
	return fmt.Sprintf(scriptTemplate, service, number, escapeScriptString(text))
}

// escapeScriptString makes text safe inside an AppleScript double-quoted
// string literal.
func escapeScriptString(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, `"`, `\"`)
	text = strings.ReplaceAll(text, "\n", `\n`)
	return text
}

func runOsascript(ctx context.Context, script string) error {
	cmd := exec.CommandContext(ctx, "osascript", "-e", script)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("AppleScript execution failed: %s", msg)
		}
		return fmt.Errorf("failed to execute AppleScript: %w", err)
	}

	return nil
}
