package message

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTemplate(t *testing.T, body, placeholder string) *Template {
	t.Helper()
	path := filepath.Join(t.TempDir(), "message.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	tmpl, err := Load(path, placeholder)
	require.NoError(t, err)
	return tmpl
}

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		placeholder string
		recipient   string
		want        string
	}{
		{
			name:        "SingleOccurrence",
			body:        "Hi {name}!",
			placeholder: "{name}",
			recipient:   "Ann",
			want:        "Hi Ann!",
		},
		{
			name:        "EveryOccurrenceReplaced",
			body:        "{name}, this one is for you, {name}.",
			placeholder: "{name}",
			recipient:   "Bob",
			want:        "Bob, this one is for you, Bob.",
		},
		{
			name:        "NoPlaceholderConfigured",
			body:        "Hi {name}!",
			placeholder: "",
			recipient:   "Ann",
			want:        "Hi {name}!",
		},
		{
			name:        "RecipientWithoutName",
			body:        "Hi {name}!",
			placeholder: "{name}",
			recipient:   "",
			want:        "Hi {name}!",
		},
		{
			name:        "PlaceholderAbsentFromBody",
			body:        "Hello there.",
			placeholder: "{name}",
			recipient:   "Ann",
			want:        "Hello there.",
		},
		{
			name:        "MultilineBodyKeptVerbatim",
			body:        "Hi {name},\n\nsee you soon.\n",
			placeholder: "{name}",
			recipient:   "Ann",
			want:        "Hi Ann,\n\nsee you soon.\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tmpl := loadTemplate(t, tc.body, tc.placeholder)
			assert.Equal(t, tc.want, tmpl.Render(tc.recipient))
		})
	}
}

func TestRenderDoesNotMutateTemplate(t *testing.T) {
	tmpl := loadTemplate(t, "Hi {name}!", "{name}")

	assert.Equal(t, "Hi Ann!", tmpl.Render("Ann"))
	assert.Equal(t, "Hi Bob!", tmpl.Render("Bob"))
	assert.Equal(t, "Hi {name}!", tmpl.Render(""))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), "{name}")
	require.Error(t, err)
}
