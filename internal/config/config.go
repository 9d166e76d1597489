package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable, e.g. NBHD_API_KEY.
const EnvPrefix = "NBHD"

// Config holds the CLI configuration loaded from flags, environment and .env.
type Config struct {
	AppName        string        `mapstructure:"app_name"`
	LogLevel       string        `mapstructure:"log_level"`
	APIKey         string        `mapstructure:"api_key"`
	SharedSecret   string        `mapstructure:"shared_secret"`
	Endpoint       string        `mapstructure:"endpoint"`
	Raw            bool          `mapstructure:"raw"`
	Output         string        `mapstructure:"output"`
	TimeoutSeconds int64         `mapstructure:"timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
}

// flagKeys maps CLI flag names onto config keys.
var flagKeys = map[string]string{
	"api-key":       "api_key",
	"shared-secret": "shared_secret",
	"endpoint":      "endpoint",
	"raw":           "raw",
	"output":        "output",
	"log-level":     "log_level",
	"timeout":       "timeout_seconds",
}

// Load reads configuration from configs/.env, the environment and, when
// given, the command line flags. Flags win over the environment.
func Load(flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	v.SetDefault("app_name", "nbhd")
	v.SetDefault("log_level", "info")
	v.SetDefault("api_key", "")
	v.SetDefault("shared_secret", "")
	v.SetDefault("endpoint", "")
	v.SetDefault("raw", false)
	v.SetDefault("output", "json")
	v.SetDefault("timeout_seconds", 15)

	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api_key is required (set %s_API_KEY or --api-key)", EnvPrefix)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid timeout_seconds (must be positive seconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	switch cfg.Output {
	case "json", "yaml":
	default:
		return nil, fmt.Errorf("unsupported output %q (expected json or yaml)", cfg.Output)
	}

	return &cfg, nil
}
