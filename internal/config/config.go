package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env      string `env:"ENV" env-required:"true"`
	Discord  DiscordConfig
	HTTP     HTTPConfig
	Postgres PostgresConfig
}

type DiscordConfig struct {
	Token string `env:"DISCORD_TOKEN" env-required:"true"`
	// OwnerID is the only principal allowed to manage tasks.
	OwnerID string `env:"OWNER_ID" env-required:"true"`
	// GuildID scopes slash command registration to a single guild.
	// Leave empty to register commands globally.
	GuildID        string        `env:"DISCORD_GUILD_ID"`
	RequestTimeout time.Duration `env:"DISCORD_REQUEST_TIMEOUT" env-default:"10s"`
	// PromptTTL bounds how long an unanswered modal prompt is remembered.
	PromptTTL time.Duration `env:"DISCORD_PROMPT_TTL" env-default:"15m"`
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" env-required:"true"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME" env-required:"true"`
	Password       string        `env:"POSTGRES_PASSWORD" env-required:"true"`
	Database       string        `env:"POSTGRES_DATABASE" env-required:"true"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
}
