// Package config loads the server's configuration: an optional YAML file
// overlaid with command-line flags.
//
// Grounded on packetd's confengine (confengine/config.go): a thin wrapper
// around go-ucfg that unpacks into a plain struct, with the YAML file as
// the base layer.
package config

import (
	"github.com/elastic/go-ucfg"
	"github.com/elastic/go-ucfg/yaml"

	"github.com/sblundy/static2/logging"
)

// TLS holds the certificate and private key paths for TLS. Both must be
// set to enable TLS; either empty disables it.
type TLS struct {
	CertPath string `config:"certPath"`
	KeyPath  string `config:"keyPath"`
}

// Enabled reports whether both halves of the TLS identity are configured.
func (t TLS) Enabled() bool {
	return t.CertPath != "" && t.KeyPath != ""
}

// Config is the server's complete, immutable-for-process-lifetime
// configuration.
type Config struct {
	Root    string         `config:"root"`
	Address string         `config:"address"`
	Port    int            `config:"port"`
	Workers int            `config:"workers"`
	TLS     TLS            `config:"tls"`
	Logging logging.Options `config:"logging"`
	Metrics MetricsOptions  `config:"metrics"`
}

// MetricsOptions configures the Prometheus exposition endpoint.
type MetricsOptions struct {
	Enabled bool   `config:"enabled"`
	Address string `config:"address"`
}

// Default returns a Config usable without any file or flags: serve the
// current directory on 0.0.0.0:8080 with 4 workers, logging to stdout,
// metrics disabled.
func Default() Config {
	return Config{
		Root:    ".",
		Address: "0.0.0.0",
		Port:    8080,
		Workers: 4,
		Logging: logging.DefaultOptions(),
		Metrics: MetricsOptions{Enabled: false, Address: "0.0.0.0:9090"},
	}
}

// Load reads path (if non-empty) as a YAML config file and unpacks it
// over Default(). An empty path returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	parsed, err := yaml.NewConfigWithFile(path, ucfg.PathSep("."))
	if err != nil {
		return Config{}, err
	}
	if err := parsed.Unpack(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
