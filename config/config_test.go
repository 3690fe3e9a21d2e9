package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/chinmay1088/alph/api"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(New(home), home)
	require.NoError(t, err)
	require.Equal(t, api.NetworkTestnet, cfg.Network)
	require.Equal(t, api.TestnetNodeURL, cfg.NodeURL)
	require.Equal(t, api.DefaultTimeout, cfg.Timeout)
	require.Equal(t, api.DefaultPriceURL, cfg.PriceURL)
	require.Equal(t, home, cfg.Home)
}

func TestLoad_File(t *testing.T) {
	home := t.TempDir()
	fileContents := "network: mainnet\ntimeout: 5s\n"
	require.NoError(t, os.WriteFile(FilePath(home), []byte(fileContents), 0600))

	cfg, err := Load(New(home), home)
	require.NoError(t, err)
	require.Equal(t, api.NetworkMainnet, cfg.Network)
	require.Equal(t, api.MainnetNodeURL, cfg.NodeURL)
	require.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(FilePath(home), []byte("network: mainnet\n"), 0600))
	t.Setenv("ALPH_NODE_URL", "http://127.0.0.1:22973")

	cfg, err := Load(New(home), home)
	require.NoError(t, err)
	require.Equal(t, api.NetworkMainnet, cfg.Network)
	require.Equal(t, "http://127.0.0.1:22973", cfg.NodeURL)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ALPH_NETWORK", "mainnet")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("network", "", "")
	flags.Duration("timeout", 0, "")
	require.NoError(t, flags.Parse([]string{"--network", "testnet", "--timeout", "2s"}))

	v := New(home)
	require.NoError(t, BindFlags(v, flags))

	cfg, err := Load(v, home)
	require.NoError(t, err)
	require.Equal(t, api.NetworkTestnet, cfg.Network)
	require.Equal(t, 2*time.Second, cfg.Timeout)
}

func TestLoad_InvalidNetwork(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ALPH_NETWORK", "devnet")

	_, err := Load(New(home), home)
	require.ErrorContains(t, err, "invalid network")
}

func TestSaveNetwork(t *testing.T) {
	home := t.TempDir()

	require.NoError(t, SaveNetwork(home, api.NetworkMainnet))
	cfg, err := Load(New(home), home)
	require.NoError(t, err)
	require.Equal(t, api.NetworkMainnet, cfg.Network)

	require.NoError(t, SaveNetwork(home, api.NetworkTestnet))
	cfg, err = Load(New(home), home)
	require.NoError(t, err)
	require.Equal(t, api.NetworkTestnet, cfg.Network)

	require.Error(t, SaveNetwork(home, "devnet"))
}

func TestSaveNetwork_KeepsCustomNodeURL(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.WriteFile(FilePath(home), []byte("node_url: http://localhost:22973\n"), 0600))

	require.NoError(t, SaveNetwork(home, api.NetworkMainnet))

	cfg, err := Load(New(home), home)
	require.NoError(t, err)
	require.Equal(t, api.NetworkMainnet, cfg.Network)
	require.Equal(t, "http://localhost:22973", cfg.NodeURL)
}
