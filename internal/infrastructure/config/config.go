package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full configuration surface, loaded once at startup and
// passed explicitly to the components that need it. Defaults are for local
// development only; JWT_SECRET and the database credentials must be
// overridden in any real deployment.
type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, default=your_jwt_secret"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	Postgres PostgresConfig
}

type PostgresConfig struct {
	Host     string `env:"DB_HOST,     default=localhost"`
	Port     string `env:"DB_PORT,     default=5432"`
	User     string `env:"DB_USER,     default=your_db_user"`
	Password string `env:"DB_PASSWORD, default=your_db_password"`
	Database string `env:"DB_NAME,     default=geoyouthfootball"`
	SSLMode  string `env:"DB_SSLMODE,  default=disable"`
}

// DSN renders the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
