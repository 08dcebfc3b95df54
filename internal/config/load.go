package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// SetDefaults registers Defaults() on v so keys missing from the config file
// still resolve.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("language", d.Language)
	v.SetDefault("target", d.Target)
	v.SetDefault("html.prefix", d.HTML.Prefix)
	v.SetDefault("html.suffix", d.HTML.Suffix)
	v.SetDefault("html.class_prefix", d.HTML.ClassPrefix)
	v.SetDefault("theme.mode", d.Theme.Mode)
	v.SetDefault("regex.syntax", d.Regex.Syntax)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
}

// Decode unmarshals v into a Config and validates it.
func Decode(v *viper.Viper) (Config, error) {
	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
