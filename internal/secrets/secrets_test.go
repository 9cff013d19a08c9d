// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  Secrets
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ContactEmailKey, "  curator@example.org \n")
				writeFile(t, dir, "other-key", "abc")
				return dir
			},
			want: Secrets{
				ContactEmailKey: "curator@example.org",
				"other-key":     "abc",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing")
			},
			want: Secrets{},
		},
		{
			name: "skips empty files, dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ContactEmailKey, "a@b.c")
				writeFile(t, dir, "blank", "  \n\t")
				writeFile(t, dir, ".hidden", "secret")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				return dir
			},
			want: Secrets{ContactEmailKey: "a@b.c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(tt.setup(t), zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_UnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	dir := t.TempDir()
	writeFile(t, dir, ContactEmailKey, "a@b.c")
	bad := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(bad, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(bad, 0o644) })

	var buf bytes.Buffer
	got, err := Load(dir, zerolog.New(&buf))
	require.NoError(t, err)
	assert.Equal(t, Secrets{ContactEmailKey: "a@b.c"}, got)
	assert.Contains(t, buf.String(), `"secret":"bad-key"`)
}

func TestContactEmail(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   string
		wantOK bool
	}{
		{"address", "curator@example.org", "curator@example.org", true},
		{"missing", "", "", false},
		{"no at sign", "curator", "", false},
		{"empty local part", "@example.org", "", false},
		{"empty domain", "curator@", "", false},
		{"two lines", "a@b.c\nX-Injected: 1", "", false},
		{"header syntax", "a@b.c)", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Secrets{ContactEmailKey: tt.value}.ContactEmail()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserAgent(t *testing.T) {
	assert.Equal(t, "dictionary-uniprot/0.1", Secrets(nil).UserAgent("dictionary-uniprot/0.1"))
	assert.Equal(t, "dictionary-uniprot/0.1", Secrets{ContactEmailKey: "nope"}.UserAgent("dictionary-uniprot/0.1"))
	assert.Equal(t, "dictionary-uniprot/0.1 (mailto:a@b.c)",
		Secrets{ContactEmailKey: "a@b.c"}.UserAgent("dictionary-uniprot/0.1"))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"a", ContactEmailKey}, Secrets{ContactEmailKey: "x", "a": "y"}.Keys())
	assert.Empty(t, Secrets{}.Keys())
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
