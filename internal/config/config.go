// Package config loads the zimadm CLI configuration from file, environment
// and defaults. Flag handling stays in the CLI; flags override whatever is
// loaded here.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/zimadm/zimadm/pkg/admin"
)

// Config holds connection settings for the admin service.
type Config struct {
	Host      string        `mapstructure:"host"`
	Port      int           `mapstructure:"port"`
	User      string        `mapstructure:"user"`
	Password  string        `mapstructure:"password"`
	TLSVerify bool          `mapstructure:"tls_verify"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// Load reads configuration. When cfgFile is empty, .zimadm.yaml is searched
// in the working directory and $HOME/.config/zimadm; a missing file is fine
// and yields the defaults. Environment variables use the ZIMADM_ prefix
// (e.g. ZIMADM_HOST, ZIMADM_TLS_VERIFY).
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".zimadm")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/zimadm")
	}

	v.SetEnvPrefix("ZIMADM")
	v.AutomaticEnv()

	// Defaults double as the key registry AutomaticEnv matches against.
	v.SetDefault("host", "")
	v.SetDefault("port", admin.DefaultPort)
	v.SetDefault("user", "")
	v.SetDefault("password", "")
	v.SetDefault("tls_verify", true)
	v.SetDefault("timeout", "30s")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
