package app

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"cryptouri/internal/cryptouri"
	"cryptouri/internal/encoding"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "CRYPTOURI"

// Format selects the CryptoURI style commands print.
type Format string

const (
	FormatURI        Format = "uri"
	FormatDasherized Format = "dasherized"

	// FormatAuto keeps the style of the input.
	FormatAuto Format = "auto"
)

// Output selects how decoded objects are described.
type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
)

// Config holds the CLI options.
type Config struct {
	// ConfigFile is an optional YAML, TOML or JSON file.
	ConfigFile string `mapstructure:"config"`

	Format Format `mapstructure:"format"`
	Output Output `mapstructure:"output"`

	// Reveal allows secret key material to be printed.
	Reveal bool `mapstructure:"reveal"`

	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers the default for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("config", "")
	v.SetDefault("format", string(FormatAuto))
	v.SetDefault("output", string(OutputText))
	v.SetDefault("reveal", false)
	v.SetDefault("verbose", false)
}

// LoadConfig resolves the configuration from v. Flags must already be bound.
func LoadConfig(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Format = Format(strings.ToLower(string(cfg.Format)))
	cfg.Output = Output(strings.ToLower(string(cfg.Output)))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports an unknown format or output.
func (c Config) Validate() error {
	switch c.Format {
	case FormatURI, FormatDasherized, FormatAuto:
	default:
		return fmt.Errorf("unknown format %q (want uri, dasherized or auto)", c.Format)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output %q (want text or json)", c.Output)
	}
	return nil
}

// OutputProfile returns the profile to print in. With FormatAuto it follows
// input, falling back to URI style.
func (c Config) OutputProfile(input string) *encoding.Profile {
	switch c.Format {
	case FormatURI:
		return encoding.URI
	case FormatDasherized:
		return encoding.Dasherized
	}
	if p, err := cryptouri.DetectProfile(input); err == nil {
		return p
	}
	return encoding.URI
}

// Parse decodes s in whichever style it is written.
func (c Config) Parse(s string) (*cryptouri.URI, error) {
	return cryptouri.ParseAny(strings.TrimSpace(s))
}
