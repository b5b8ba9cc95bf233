package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config is the root bot configuration.
type Config struct {
	Discord  DiscordConfig  `yaml:"discord"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// DiscordConfig holds the bot credentials and interaction settings.
type DiscordConfig struct {
	Token       string        `yaml:"token"        env:"DISCORD_TOKEN"        env-required:"true"`
	AppID       string        `yaml:"app_id"       env:"DISCORD_APP_ID"`
	DevGuildID  string        `yaml:"dev_guild_id" env:"DISCORD_DEV_GUILD_ID"`
	AckDeadline time.Duration `yaml:"ack_deadline" env:"ACK_DEADLINE"         env-default:"3s"`

	// No env-default on booleans: cleanenv applies it over a false read
	// from the file.
	SkipCommandRegistration bool `yaml:"skip_command_registration" env:"SKIP_COMMAND_REGISTRATION"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver" env:"DATABASE_DRIVER" env-default:"sqlite3"`
	DSN    string `yaml:"dsn"    env:"DATABASE_DSN"    env-default:"./gamenight.db"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
}

var (
	drivers    = []string{"sqlite3", "postgres"}
	levels     = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
	logFormats = []string{"console", "json"}
)

// Load reads a .env file when present, then the YAML file named by
// CONFIG_PATH or, without it, the environment. Environment variables
// override the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return fmt.Errorf("discord.token must not be empty")
	}
	if !slices.Contains(drivers, c.Database.Driver) {
		return fmt.Errorf("database.driver must be one of %v (got %q)", drivers, c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn must not be empty")
	}
	if !slices.Contains(levels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", levels, c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}
	if c.Discord.AckDeadline <= 0 {
		return fmt.Errorf("discord.ack_deadline must be > 0 (got %v)", c.Discord.AckDeadline)
	}
	return nil
}
