package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Addr string
	}
	UI struct {
		// Latency is the artificial delay applied to every TUI action to
		// simulate a network round trip. It always resolves; there is no
		// timeout and no cancellation.
		Latency time.Duration
	}
	Log struct {
		Level string
		// File receives log output when set. The TUI never logs to the
		// terminal, so with an empty File it discards logs entirely.
		File string
	}
}

// Load reads configuration from environment variables and optional config
// files. explicitFile, when non-empty, names a config file that must exist;
// otherwise an optional config.* in the working directory is picked up.
func Load(explicitFile string) (Config, error) {
	// Values already present in the environment win over .env entries.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FRUITSTAND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("ui.latency", "100ms")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		_ = v.ReadInConfig() // optional file
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
