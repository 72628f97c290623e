package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	Spec       string `koanf:"spec"`
	BaseURL    string `koanf:"base-url"`
	Product    string `koanf:"product"`
	Output     string `koanf:"output"`
	SampleSize int    `koanf:"sample-size"`
}

// BindCommonFlags binds the flags shared by every command.
func BindCommonFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP("config", "c", "", "Config file path (default: opsdeck.yaml)")
	flags.StringP("output", "o", "", "Output format: json or yaml (default: json)")
	flags.Int("sample-size", 0, "Items sampled during field detection")
}

// Load layers configuration sources: config file, then OPSDECK_*
// environment variables, then flags.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile, _ = cmd.PersistentFlags().GetString("config")
	}
	if configFile == "" {
		if _, err := os.Stat("opsdeck.yaml"); err == nil {
			configFile = "opsdeck.yaml"
		}
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("OPSDECK_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "OPSDECK_"))
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ReplaceAll(s, "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	flagsMap := buildFlagsMap(cmd)
	if len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Output == "" {
		cfg.Output = "json"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)

	getString := func(name string) string {
		if v, err := cmd.Flags().GetString(name); err == nil && v != "" {
			return v
		}
		if v, err := cmd.PersistentFlags().GetString(name); err == nil && v != "" {
			return v
		}
		return ""
	}

	getInt := func(name string) int {
		if v, err := cmd.Flags().GetInt(name); err == nil && v != 0 {
			return v
		}
		if v, err := cmd.PersistentFlags().GetInt(name); err == nil && v != 0 {
			return v
		}
		return 0
	}

	if v := getString("spec"); v != "" {
		m["spec"] = v
	}
	if v := getString("base-url"); v != "" {
		m["base-url"] = v
	}
	if v := getString("product"); v != "" {
		m["product"] = v
	}
	if v := getString("output"); v != "" {
		m["output"] = v
	}
	if v := getInt("sample-size"); v != 0 {
		m["sample-size"] = v
	}

	return m
}

func (c *Config) Validate() error {
	validOutputs := map[string]bool{"": true, "json": true, "yaml": true}
	if !validOutputs[c.Output] {
		return fmt.Errorf("invalid output format: %s (valid: json, yaml)", c.Output)
	}
	if c.SampleSize < 0 {
		return fmt.Errorf("sample size must not be negative")
	}
	return nil
}
