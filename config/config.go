package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Capability CapabilityConfig `mapstructure:"capability"`
	Custodian  CustodianConfig  `mapstructure:"custodian"`
	Fraud      FraudConfig      `mapstructure:"fraud"`
	Oracle     OracleConfig     `mapstructure:"oracle"`
	Anchor     AnchorConfig     `mapstructure:"anchor"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// CapabilityConfig configures verification of upstream-issued capability
// tokens. The secret is shared with the issuing identity service.
type CapabilityConfig struct {
	Secret string        `mapstructure:"secret"`
	Issuer string        `mapstructure:"issuer"`
	Expiry time.Duration `mapstructure:"expiry"` // used only by Issue (tooling)
}

// CustodianConfig configures key custody. OperatorSecret is held by the
// operator, never by callers; KDFSalt is a hex-encoded argon2 salt.
type CustodianConfig struct {
	OperatorSecret string `mapstructure:"operator_secret"`
	KDFSalt        string `mapstructure:"kdf_salt"`
}

// FraudConfig holds sentinel thresholds.
type FraudConfig struct {
	RapidWindow       time.Duration `mapstructure:"rapid_window"`
	RapidFlagCount    int64         `mapstructure:"rapid_flag_count"`
	RapidBlockCount   int64         `mapstructure:"rapid_block_count"`
	StdDevFactor      float64       `mapstructure:"stddev_factor"`
	StatsSample       int           `mapstructure:"stats_sample"`
	StatsMinSamples   int64         `mapstructure:"stats_min_samples"`
	EvaluationTimeout time.Duration `mapstructure:"evaluation_timeout"`
	DailyLimitWindow  time.Duration `mapstructure:"daily_limit_window"`
}

type OracleConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	// ReferenceExponent is the number of decimal places of the reference
	// currency's minor unit (2 for cent-based currencies).
	ReferenceExponent int32 `mapstructure:"reference_exponent"`
}

type AnchorConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SCL_ (ScrollCoin Ledger).
// Nested keys use underscore: SCL_DATABASE_HOST, SCL_CAPABILITY_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "scrollcoin_ledger")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("capability.secret", "")
	v.SetDefault("capability.issuer", "scrollcoin-ledger")
	v.SetDefault("capability.expiry", "24h")
	v.SetDefault("custodian.operator_secret", "")
	v.SetDefault("custodian.kdf_salt", "")
	v.SetDefault("fraud.rapid_window", "60s")
	v.SetDefault("fraud.rapid_flag_count", 5)
	v.SetDefault("fraud.rapid_block_count", 15)
	v.SetDefault("fraud.stddev_factor", 3.0)
	v.SetDefault("fraud.stats_sample", 200)
	v.SetDefault("fraud.stats_min_samples", 5)
	v.SetDefault("fraud.evaluation_timeout", "2s")
	v.SetDefault("fraud.daily_limit_window", "24h")
	v.SetDefault("oracle.cache_ttl", "30s")
	v.SetDefault("oracle.reference_exponent", 2)
	v.SetDefault("anchor.enabled", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: SCL_DATABASE_HOST -> database.host
	v.SetEnvPrefix("SCL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
