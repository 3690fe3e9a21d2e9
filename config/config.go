// Package config loads CLI settings from ~/.alph/config.yaml, ALPH_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/chinmay1088/alph/api"
)

// Keys, shared by the config file, env (ALPH_NODE_URL, ...) and flags.
const (
	KeyNetwork  = "network"
	KeyNodeURL  = "node_url"
	KeyTimeout  = "timeout"
	KeyPriceURL = "price_url"

	EnvPrefix      = "ALPH"
	DirName        = ".alph"
	configFileName = "config.yaml"
)

// Config is the resolved CLI configuration
type Config struct {
	Network  string        `mapstructure:"network"`
	NodeURL  string        `mapstructure:"node_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	PriceURL string        `mapstructure:"price_url"`

	// Home holds the vault, session and config file
	Home string `mapstructure:"-"`
}

// DefaultHome returns ~/.alph
func DefaultHome() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, DirName), nil
}

// FilePath returns the config file location inside home
func FilePath(home string) string {
	return filepath.Join(home, configFileName)
}

// New returns a viper instance with defaults and env binding for home
func New(home string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(FilePath(home))
	v.SetConfigType("yaml")

	v.SetDefault(KeyNetwork, api.NetworkTestnet)
	v.SetDefault(KeyNodeURL, "")
	v.SetDefault(KeyTimeout, api.DefaultTimeout)
	v.SetDefault(KeyPriceURL, api.DefaultPriceURL)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds flags named after keys with dashes (node-url -> node_url).
// Flags absent from the set are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyNetwork, KeyNodeURL, KeyTimeout, KeyPriceURL} {
		flag := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
		}
	}
	return nil
}

// Load reads the config file, if any, and resolves the final Config.
func Load(v *viper.Viper, home string) (*Config, error) {
	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Home = home

	cfg.Network = strings.ToLower(strings.TrimSpace(cfg.Network))
	if err := ValidateNetwork(cfg.Network); err != nil {
		return nil, err
	}
	if cfg.NodeURL == "" {
		cfg.NodeURL = api.NodeURLForNetwork(cfg.Network)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}

	return &cfg, nil
}

// SaveNetwork persists the network choice to the config file in home
func SaveNetwork(home, network string) error {
	if err := ValidateNetwork(network); err != nil {
		return err
	}

	if err := os.MkdirAll(home, 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// a plain instance so env and flags do not leak into the file
	v := viper.New()
	v.SetConfigFile(FilePath(home))
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	v.Set(KeyNetwork, network)
	// the node URL follows the network unless the user pinned a custom one
	if nodeURL := v.GetString(KeyNodeURL); nodeURL == api.MainnetNodeURL || nodeURL == api.TestnetNodeURL {
		v.Set(KeyNodeURL, api.NodeURLForNetwork(network))
	}

	if err := v.WriteConfigAs(FilePath(home)); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ValidateNetwork accepts mainnet or testnet
func ValidateNetwork(network string) error {
	if network != api.NetworkMainnet && network != api.NetworkTestnet {
		return fmt.Errorf("invalid network: %s. Use 'mainnet' or 'testnet'", network)
	}
	return nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}
