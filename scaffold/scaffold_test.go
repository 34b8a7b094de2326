package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/docsite/site"
)

func TestWriteProducesLoadableSite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-docs")

	created, err := Write(dir, NewData(dir))
	require.NoError(t, err)
	assert.Contains(t, created, filepath.Join(dir, "site.yaml"))
	assert.Contains(t, created, filepath.Join(dir, ".env.example"))
	assert.Contains(t, created, filepath.Join(dir, "static", "img", "logo.svg"))

	cfg, err := site.Load(filepath.Join(dir, "site.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "My Docs", cfg.Title)
	assert.Equal(t, "/", cfg.BaseURL)
	require.Len(t, cfg.PinnedUsers(), 1)
	assert.Len(t, cfg.Splash.Buttons, 2)

	logo, err := os.ReadFile(filepath.Join(dir, "static", "img", "logo.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(logo), "<title>My Docs</title>")
}

func TestWriteRefusesExistingDirectory(t *testing.T) {
	dir := t.TempDir()

	_, err := Write(dir, NewData(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestToTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"my-docs", "My Docs"},
		{"mydocs", "Mydocs"},
		{"a--b", "A  B"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToTitle(tt.in), tt.in)
	}
}
