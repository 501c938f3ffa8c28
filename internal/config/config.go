// Package config loads WordScramble settings from defaults, an optional TOML file,
// .env files and WORDSCRAMBLE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. WORDSCRAMBLE_WORDS_PATH.
const EnvPrefix = "WORDSCRAMBLE"

// Config holds all configuration for WordScramble.
type Config struct {
	Game       GameConfig       `mapstructure:"game"`
	Words      WordsConfig      `mapstructure:"words"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	UI         UIConfig         `mapstructure:"ui"`
	Log        LogConfig        `mapstructure:"log"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

// GameConfig holds rules settings.
type GameConfig struct {
	Seed     int64  `mapstructure:"seed"`
	Language string `mapstructure:"language"`
}

// WordsConfig points at the root word list. Empty means the embedded list.
type WordsConfig struct {
	Path string `mapstructure:"path"`
}

// DictionaryConfig points at the realness word list. Empty means the embedded English list.
type DictionaryConfig struct {
	Path string `mapstructure:"path"`
}

// HTTPConfig holds settings for the serve command.
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// UIConfig holds terminal colors as hex strings.
type UIConfig struct {
	TitleColor string `mapstructure:"title_color"`
	AlertColor string `mapstructure:"alert_color"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// TelemetryConfig holds OTLP export settings.
type TelemetryConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
	Dataset  string `mapstructure:"dataset"`
}

// LoadDotEnv loads .env files into the process environment.
// Missing files are not an error; env vars may be set directly.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// New returns a viper instance with defaults and environment bindings installed.
// Callers may bind command-line flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("config", "")
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.language", "en")
	v.SetDefault("words.path", "")
	v.SetDefault("dictionary.path", "")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("ui.title_color", "#FFD700")
	v.SetDefault("ui.alert_color", "#8B0000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "wordscramble.log")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.endpoint", "https://api.honeycomb.io")
	v.SetDefault("telemetry.api_key", "")
	v.SetDefault("telemetry.dataset", "wordscramble")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Honeycomb credentials are commonly exported without our prefix
	_ = v.BindEnv("telemetry.api_key", EnvPrefix+"_TELEMETRY_API_KEY", "HONEYCOMB_API_KEY")
	_ = v.BindEnv("telemetry.dataset", EnvPrefix+"_TELEMETRY_DATASET", "HONEYCOMB_DATASET")

	return v
}

// Load reads the optional config file and unmarshals everything into a Config.
//
// An explicit file (the "config" key, set by --config or WORDSCRAMBLE_CONFIG) must exist.
// Otherwise wordscramble.toml is looked up in . and $HOME/.config/wordscramble.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigType("toml")

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("wordscramble")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "wordscramble"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
