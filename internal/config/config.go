// Package config arma la configuración por capas: defaults, archivo YAML opcional,
// variables legacy (PORT, DB_DSN) y por último VITAMINS_*.
package config

import (
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
)

// EnvPrefix agrupa las variables propias; "__" separa niveles (VITAMINS_STORAGE__DRIVER).
const EnvPrefix = "VITAMINS_"

type Config struct {
	App     AppConfig     `koanf:"app"`
	HTTP    HTTPConfig    `koanf:"http"`
	Storage StorageConfig `koanf:"storage"`
	Auth    AuthConfig    `koanf:"auth"`
	Log     LogConfig     `koanf:"log"`
}

type AppConfig struct {
	Name string `koanf:"name"`
}

type HTTPConfig struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type StorageConfig struct {
	Driver       string `koanf:"driver"`
	DSN          string `koanf:"dsn"`
	Path         string `koanf:"path"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
}

type AuthConfig struct {
	// JWTSecret vacío => solo se acepta X-User-ID.
	JWTSecret string `koanf:"jwt_secret"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

func defaults() map[string]any {
	return map[string]any{
		"app.name":              "vitamin-tracker",
		"http.addr":             ":8080",
		"http.read_timeout":     "5s",
		"http.write_timeout":    "10s",
		"http.shutdown_timeout": "10s",
		"storage.driver":        "memory",
		"storage.path":          "vitamins.db",
		"log.level":             "info",
		"log.format":            "text",
	}
}

// Load lee .env (si existe) y arma la configuración. path vacío => sin archivo.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "config: load .env")
	}

	konf := koanf.New(".")
	if err := konf.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "config: defaults")
	}

	if path = strings.TrimSpace(path); path != "" {
		if err := konf.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "config: read %s", path)
		}
	}

	if err := konf.Load(confmap.Provider(legacyEnv(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "config: legacy env")
	}

	if err := konf.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "config: env")
	}

	var cfg Config
	if err := konf.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey: VITAMINS_STORAGE__MAX_OPEN_CONNS => storage.max_open_conns.
// Variables vacías se ignoran para no pisar defaults.
func envKey(key, value string) (string, any) {
	if strings.TrimSpace(value) == "" {
		return "", nil
	}
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return strings.ReplaceAll(key, "__", "."), value
}

// legacyEnv mantiene PORT y DB_DSN del despliegue anterior.
func legacyEnv() map[string]any {
	out := map[string]any{}
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		out["http.addr"] = ":" + v
	}
	if v := strings.TrimSpace(os.Getenv("DB_DSN")); v != "" {
		out["storage.driver"] = "postgres"
		out["storage.dsn"] = v
	}
	return out
}

func (c *Config) Validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Driver == "" {
		c.Storage.Driver = "memory"
	}

	switch c.Storage.Driver {
	case "memory":
	case "sqlite", "bolt":
		if strings.TrimSpace(c.Storage.Path) == "" {
			return errors.Errorf("config: storage.path required for driver %s", c.Storage.Driver)
		}
	case "postgres":
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return errors.New("config: storage.dsn required for driver postgres")
		}
	default:
		return errors.Errorf("config: unknown storage.driver %q", c.Storage.Driver)
	}

	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("config: http.addr required")
	}
	return nil
}
