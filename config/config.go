package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DefaultService is the Messages service type used when none is configured.
const DefaultService = "iMessage"

// AppConfig holds the resolved settings for one run.
type AppConfig struct {
	RecipientsPath string // Path to the .csv recipients file
	MessagePath    string // Path to the .txt message file
	Service        string // Messages service type, e.g. iMessage or SMS
	Placeholder    string // Token replaced by recipient names; empty disables names
	Verbose        bool
}

// Defaults carries environment-provided fallbacks for CLI flags.
type Defaults struct {
	Service     string
	Placeholder string
}

// FromEnv loads flag defaults from settings.env and the environment.
// A missing settings.env is fine; system environment variables still apply.
func FromEnv() Defaults {
	_ = godotenv.Load("settings.env")

	d := Defaults{
		Service:     os.Getenv("BULKTEXT_SERVICE"),
		Placeholder: os.Getenv("BULKTEXT_PLACEHOLDER"),
	}
	if d.Service == "" {
		d.Service = DefaultService
	}
	return d
}

// ValidateFilePath checks that path names an existing regular file whose
// extension matches ext (without the dot, case-sensitive).
func ValidateFilePath(path, ext string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path %s does not exist", path)
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s exists but is not a regular file", path)
	}

	if filepath.Ext(path) != "."+ext {
		return fmt.Errorf("file %s does not end with .%s", path, ext)
	}

	return nil
}
