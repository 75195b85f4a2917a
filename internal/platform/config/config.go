package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"pet-intake/internal/platform/logger"
)

// EnvConfigFile apunta a un YAML opcional. Las variables de entorno pisan al archivo.
const EnvConfigFile = "PETINTAKE_CONFIG"

type Config struct {
	Port  string
	DBDSN string

	Log       LogConfig
	Directory DirectoryConfig
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

type DirectoryConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// clave en el YAML -> variable de entorno
var envBindings = []struct {
	key string
	env string
}{
	{"port", "PORT"},
	{"db.dsn", "DB_DSN"},
	{"log.level", "LOG_LEVEL"},
	{"log.format", "LOG_FORMAT"},
	{"log.app", "APP_NAME"},
	{"directory.base_url", "DIRECTORY_BASE_URL"},
	{"directory.api_key", "DIRECTORY_API_KEY"},
	{"directory.timeout", "DIRECTORY_TIMEOUT"},
}

// Load lee defaults, luego el archivo (path explícito o PETINTAKE_CONFIG) y por
// último el entorno. Un path vacío sin PETINTAKE_CONFIG no es error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.app", "pet-intake")
	v.SetDefault("directory.timeout", "10s")

	for _, b := range envBindings {
		if err := v.BindEnv(b.key, b.env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", b.env, err)
		}
	}

	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfigFile))
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	timeout, err := parseTimeout(v.GetString("directory.timeout"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:  strings.TrimPrefix(strings.TrimSpace(v.GetString("port")), ":"),
		DBDSN: strings.TrimSpace(v.GetString("db.dsn")),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			App:    v.GetString("log.app"),
		},
		Directory: DirectoryConfig{
			BaseURL: strings.TrimSpace(v.GetString("directory.base_url")),
			APIKey:  strings.TrimSpace(v.GetString("directory.api_key")),
			Timeout: timeout,
		},
	}, nil
}

// Addr para http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) LoggerOptions() logger.Options {
	return logger.Options{
		Level:  logger.ParseLevel(c.Log.Level),
		Format: logger.ParseFormat(c.Log.Format),
		App:    c.Log.App,
	}
}

var ErrInvalidTimeout = errors.New("invalid directory timeout")

// parseTimeout acepta duraciones de Go ("5s") o segundos enteros ("5").
func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	if d, err := time.ParseDuration(raw); err == nil {
		if d < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, raw)
		}
		return d, nil
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, raw)
	}
	return time.Duration(secs) * time.Second, nil
}
