package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		// An explicitly named file that does not exist is an error;
		// defaults only apply to the search-path case.
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("search path miss falls back to defaults", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "", cfg.Host)
		assert.Equal(t, 7071, cfg.Port)
		assert.True(t, cfg.TLSVerify)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("values from config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "zimadm.yaml")
		require.NoError(t, os.WriteFile(path, []byte(
			"host: mail.example.com\n"+
				"port: 8443\n"+
				"user: admin\n"+
				"tls_verify: false\n"+
				"timeout: 45s\n"), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "mail.example.com", cfg.Host)
		assert.Equal(t, 8443, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.False(t, cfg.TLSVerify)
		assert.Equal(t, 45*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		t.Cleanup(func() { _ = os.Chdir(wd) })

		t.Setenv("ZIMADM_HOST", "env.example.com")
		t.Setenv("ZIMADM_PORT", "9999")
		t.Setenv("ZIMADM_TLS_VERIFY", "false")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "env.example.com", cfg.Host)
		assert.Equal(t, 9999, cfg.Port)
		assert.False(t, cfg.TLSVerify)
	})

	t.Run("malformed config file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "zimadm.yaml")
		require.NoError(t, os.WriteFile(path, []byte("host: [unclosed\n"), 0o600))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
