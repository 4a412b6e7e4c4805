package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost         string `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string `env:"DB_PORT" envDefault:"5432"`
	DBUser         string `env:"DB_USER" envDefault:"postgres"`
	DBPassword     string `env:"DB_PASSWORD"`
	DBName         string `env:"DB_NAME" envDefault:"dispatch"`
	DBSslMode      string `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`

	// LockTimeout bounds how long a claim waits for a job row locked by another request.
	LockTimeout time.Duration `env:"LOCK_TIMEOUT" envDefault:"2s"`

	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"2s"`

	// Fees are in minor currency units.
	BaseFee     int64 `env:"BASE_FEE" envDefault:"300"`
	PerKmBonus  int64 `env:"PER_KM_BONUS" envDefault:"50"`
	OnTimeBonus int64 `env:"ON_TIME_BONUS" envDefault:"100"`

	PoolMonitorSchedule string        `env:"POOL_MONITOR_SCHEDULE" envDefault:"*/30 * * * * *"`
	StaleAfter          time.Duration `env:"STALE_AFTER" envDefault:"10m"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []error
	if c.PerKmBonus < 0 || c.OnTimeBonus < 0 {
		problems = append(problems, errors.New("fees must not be negative"))
	}
	// Every delivery must earn something, whatever its distance.
	if c.BaseFee < 1 {
		problems = append(problems, errors.New("BASE_FEE must be positive"))
	}
	if c.LockTimeout < 0 {
		problems = append(problems, errors.New("LOCK_TIMEOUT must not be negative"))
	}
	if c.DBMaxOpenConns < 1 {
		problems = append(problems, errors.New("DB_MAX_OPEN_CONNS must be at least 1"))
	}
	return errors.Join(problems...)
}

// DSN is the PostgreSQL connection string in key=value form.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
