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
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, KeySenderPassword, "  app-password  \n")
				writeFile(t, dir, KeySenderEmail, "reports@example.com\n")
				return dir
			},
			want: map[string]string{
				KeySenderPassword: "app-password",
				KeySenderEmail:    "reports@example.com",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files, dotfiles and subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, KeySenderPassword, "pw")
				writeFile(t, dir, "empty", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden", "secret")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{KeySenderPassword: "pw"},
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

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read files without permission bits")
	}
	dir := t.TempDir()
	writeFile(t, dir, KeySenderEmail, "reports@example.com")

	badPath := filepath.Join(dir, KeySenderPassword)
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	var logs bytes.Buffer
	got, err := Load(dir, zerolog.New(&logs))
	require.NoError(t, err)
	assert.Equal(t, "reports@example.com", got[KeySenderEmail])
	assert.NotContains(t, got, KeySenderPassword)
	assert.Contains(t, logs.String(), "could not read secret")
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	writeFile(t, dir, ".env", "MEETING_REPORT_TEST_SERVER=smtp.example.com\nMEETING_REPORT_TEST_KEEP=from-file\n")

	t.Setenv("MEETING_REPORT_TEST_KEEP", "from-env")
	t.Setenv("MEETING_REPORT_TEST_SERVER", "")
	os.Unsetenv("MEETING_REPORT_TEST_SERVER")

	require.NoError(t, LoadEnvFile(path))
	t.Cleanup(func() { os.Unsetenv("MEETING_REPORT_TEST_SERVER") })

	assert.Equal(t, "smtp.example.com", os.Getenv("MEETING_REPORT_TEST_SERVER"))
	assert.Equal(t, "from-env", os.Getenv("MEETING_REPORT_TEST_KEEP"))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
