package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Discord.Token)
	assert.False(t, cfg.Discord.SkipCommandRegistration)
	assert.Equal(t, 3*time.Second, cfg.Discord.AckDeadline)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "./gamenight.db", cfg.Database.DSN)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_YAMLWithEnvOverride(t *testing.T) {
	path := writeYAML(t, `
discord:
  token: "from-file"
  app_id: "1234"
  dev_guild_id: "5678"
  skip_command_registration: true
  ack_deadline: "2s"
database:
  driver: "postgres"
  dsn: "postgres://u:p@localhost:5432/gamenight?sslmode=disable"
log:
  level: "debug"
  format: "json"
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("DISCORD_TOKEN", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Discord.Token)
	assert.Equal(t, "1234", cfg.Discord.AppID)
	assert.Equal(t, "5678", cfg.Discord.DevGuildID)
	assert.True(t, cfg.Discord.SkipCommandRegistration)
	assert.Equal(t, 2*time.Second, cfg.Discord.AckDeadline)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "Should require a token",
			env:  map[string]string{"DISCORD_TOKEN": ""},
		},
		{
			name: "Should reject an unknown driver",
			env:  map[string]string{"DISCORD_TOKEN": "token", "DATABASE_DRIVER": "mysql"},
		},
		{
			name: "Should reject an unknown log level",
			env:  map[string]string{"DISCORD_TOKEN": "token", "LOG_LEVEL": "verbose"},
		},
		{
			name: "Should reject an unknown log format",
			env:  map[string]string{"DISCORD_TOKEN": "token", "LOG_FORMAT": "xml"},
		},
		{
			name: "Should fail on a missing config file",
			env:  map[string]string{"DISCORD_TOKEN": "token", "CONFIG_PATH": "/nonexistent/config.yaml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CONFIG_PATH", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestValidate_AckDeadline(t *testing.T) {
	cfg := Config{
		Discord:  DiscordConfig{Token: "token"},
		Database: DatabaseConfig{Driver: "sqlite3", DSN: ":memory:"},
		Log:      LogConfig{Level: "info", Format: "console"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Discord.AckDeadline = time.Second
	assert.NoError(t, cfg.Validate())
}
