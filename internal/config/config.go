package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`
	LogLevel      string `env:"LOG_LEVEL"`

	// RelayToken общий секрет AI relay для ручной записи вердикта. Пустой - роут записи не поднимается.
	RelayToken string `env:"RELAY_TOKEN"`

	VerifierAddress string        `env:"VERIFIER_ADDRESS"`
	VerifierTimeout time.Duration `env:"VERIFIER_TIMEOUT"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`

	SweepInterval          time.Duration `env:"SWEEP_INTERVAL"`
	VerificationStaleAfter time.Duration `env:"VERIFICATION_STALE_AFTER"`
	StreamTimeout          time.Duration `env:"STREAM_TIMEOUT"`
}

// LoadConfig собирает конфиг из переменных окружения (в т.ч. из необязательного .env) и флагов.
// Переменные окружения приоритетнее флагов.
func LoadConfig(args []string) (*Config, error) {
	if dotenvErr := godotenv.Load(); dotenvErr != nil && !errors.Is(dotenvErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", dotenvErr.Error())
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(&flagsConfig, args); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config, args []string) error {
	fset := flag.NewFlagSet("auction", flag.ContinueOnError)

	fset.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fset.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fset.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fset.StringVar(&flagConfig.JWTSecret, "j", "", "JWT secret")
	fset.StringVar(&flagConfig.LogLevel, "l", "", "Log level")
	fset.StringVar(&flagConfig.RelayToken, "rt", "", "AI relay shared token, status write route is disabled when empty")
	fset.StringVar(&flagConfig.VerifierAddress, "v", "http://localhost:8000", "AI verifier base address")
	fset.DurationVar(&flagConfig.VerifierTimeout, "vt", 45*time.Second, "AI verifier request timeout")
	fset.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address, in-process bus is used when empty")
	fset.DurationVar(&flagConfig.SweepInterval, "si", time.Minute, "Stale verification sweep interval")
	fset.DurationVar(&flagConfig.VerificationStaleAfter, "sa", 10*time.Minute, "Processing status lifetime")
	fset.DurationVar(&flagConfig.StreamTimeout, "st", 2*time.Minute, "Status stream lifetime")

	return fset.Parse(args)
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:    defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir: defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		JWTSecret:     defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret),
		LogLevel:      defaultIfBlank(envConfig.LogLevel, flagsConfig.LogLevel),
		RelayToken:    defaultIfBlank(envConfig.RelayToken, flagsConfig.RelayToken),

		VerifierAddress: defaultIfBlank(envConfig.VerifierAddress, flagsConfig.VerifierAddress),
		VerifierTimeout: defaultIfBlank(envConfig.VerifierTimeout, flagsConfig.VerifierTimeout),

		RedisAddr:     defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr),
		RedisPassword: envConfig.RedisPassword,
		RedisDB:       envConfig.RedisDB,

		SweepInterval:          defaultIfBlank(envConfig.SweepInterval, flagsConfig.SweepInterval),
		VerificationStaleAfter: defaultIfBlank(envConfig.VerificationStaleAfter, flagsConfig.VerificationStaleAfter),
		StreamTimeout:          defaultIfBlank(envConfig.StreamTimeout, flagsConfig.StreamTimeout),
	}
}

func defaultIfBlank[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}
