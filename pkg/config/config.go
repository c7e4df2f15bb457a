package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config carries every runtime setting. Sources in increasing precedence:
// defaults, config file (fintrack.yaml or --config), FINTRACK_* environment
// variables, command-line flags.
type Config struct {
	DataFile    string       `mapstructure:"data_file"`
	Currency    string       `mapstructure:"currency"`
	UseCustomID bool         `mapstructure:"use_custom_id"`
	Server      ServerConfig `mapstructure:"server"`
	YNAB        YNABConfig   `mapstructure:"ynab"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type YNABConfig struct {
	BudgetID  string `mapstructure:"budget_id"`
	AccountID string `mapstructure:"account_id"`
	TokenEnv  string `mapstructure:"token_env"`
}

// Build loads the configuration. An explicit cfgFile must exist; the default
// fintrack.yaml is optional. Flags are bound by name; --file and --addr map
// onto data_file and server.addr.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Make .env values visible to the environment lookup below.
	_ = gotenv.Load()

	v := viper.New()
	v.SetDefault("data_file", "data.txt")
	v.SetDefault("currency", "RUB")
	v.SetDefault("use_custom_id", true)
	v.SetDefault("server.addr", ":3000")
	v.SetDefault("ynab.budget_id", "")
	v.SetDefault("ynab.account_id", "")
	v.SetDefault("ynab.token_env", "YNAB_TOKEN")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("fintrack")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FINTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
		if f := flags.Lookup("file"); f != nil {
			if err := v.BindPFlag("data_file", f); err != nil {
				return nil, err
			}
		}
		if f := flags.Lookup("addr"); f != nil {
			if err := v.BindPFlag("server.addr", f); err != nil {
				return nil, err
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Token resolves the YNAB access token from the configured environment
// variable.
func (c *Config) Token() (string, error) {
	name := c.YNAB.TokenEnv
	if name == "" {
		name = "YNAB_TOKEN"
	}
	token := os.Getenv(name)
	if token == "" {
		return "", fmt.Errorf("environment variable %s is not set", name)
	}
	return token, nil
}
