package config

import (
	"fmt"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Environment variables that take precedence over yaml values.
const (
	EnvPgHost     = "SPARK_PG_HOST"
	EnvPgPort     = "SPARK_PG_PORT"
	EnvPgUser     = "SPARK_PG_USER"
	EnvPgPassword = "SPARK_PG_PASSWORD"
	EnvPgDbname   = "SPARK_PG_DBNAME"
	EnvJwtSecret  = "SPARK_JWT_SECRET"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Addr           string        `yaml:"addr" validate:"required"`
	Pg             Pg            `yaml:"pg" validate:"required"`
	Log            Log           `yaml:"log"`
	JwtTTL         time.Duration `yaml:"jwt_ttl" validate:"required"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	HTTPS          bool          `yaml:"https"`
	Realtime       Realtime      `yaml:"realtime"`
	StatsSchedule  string        `yaml:"stats_schedule" validate:"required"`
	PingSchedule   string        `yaml:"ping_schedule" validate:"required"`
}

type Pg struct {
	Host    string `yaml:"host" validate:"required"`
	Port    int    `yaml:"port" validate:"required,min=1,max=65535"`
	User    string `yaml:"user" validate:"required"`
	Dbname  string `yaml:"dbname" validate:"required"`
	SSLMode string `yaml:"sslmode"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format" validate:"omitempty,oneof=json text auto"`
}

type Realtime struct {
	Channel              string        `yaml:"channel" validate:"required"`
	MinReconnectInterval time.Duration `yaml:"min_reconnect_interval"`
	MaxReconnectInterval time.Duration `yaml:"max_reconnect_interval"`
	SubscriberBuffer     int           `yaml:"subscriber_buffer"`
}

type Private struct {
	PgPassword string `yaml:"pg_password"`
	JwtSecret  string `yaml:"jwt_secret" validate:"required,min=16"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtSecret
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

// PgDSN returns a lib/pq connection string.
func (c *Config) PgDSN() string {
	pg := c.Public.Pg
	sslmode := pg.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		pg.Host, pg.Port, pg.User, c.Private.PgPassword, pg.Dbname, sslmode)
}

func (r Realtime) withDefaults() Realtime {
	if r.MinReconnectInterval == 0 {
		r.MinReconnectInterval = 10 * time.Second
	}
	if r.MaxReconnectInterval == 0 {
		r.MaxReconnectInterval = time.Minute
	}
	if r.SubscriberBuffer == 0 {
		r.SubscriberBuffer = 16
	}
	return r
}

func mustLoadPath(configPath string, output any) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file " + configPath + ": " + err.Error())
	}
}

// applyEnv overrides store and token settings from the environment.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvPgHost); ok {
		cfg.Public.Pg.Host = v
	}
	if v, ok := os.LookupEnv(EnvPgPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPgPort, err)
		}
		cfg.Public.Pg.Port = port
	}
	if v, ok := os.LookupEnv(EnvPgUser); ok {
		cfg.Public.Pg.User = v
	}
	if v, ok := os.LookupEnv(EnvPgPassword); ok {
		cfg.Private.PgPassword = v
	}
	if v, ok := os.LookupEnv(EnvPgDbname); ok {
		cfg.Public.Pg.Dbname = v
	}
	if v, ok := os.LookupEnv(EnvJwtSecret); ok {
		cfg.Private.JwtSecret = v
	}
	return nil
}

// Load reads public.yaml and private.yaml from configFolder, then a .env file
// next to them (if any) and SPARK_* environment variables.
func Load(configFolder string) (*Config, error) {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	privatePath := path.Join(configFolder, "private.yaml")
	if _, err := os.Stat(privatePath); err == nil {
		mustLoadPath(privatePath, &private)
	}

	// A missing .env is normal in production.
	_ = godotenv.Load(path.Join(configFolder, ".env"))

	cfg := &Config{Public: public, Private: private}
	cfg.Public.Realtime = cfg.Public.Realtime.withDefaults()
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	v := validator.New()
	if err := v.Struct(cfg.Public); err != nil {
		return nil, fmt.Errorf("public config: %w", err)
	}
	if err := v.Struct(cfg.Private); err != nil {
		return nil, fmt.Errorf("private config: %w", err)
	}
	return cfg, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err)
	}
	return cfg
}
