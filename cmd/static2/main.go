// Command static2 serves a filesystem root over HTTP/1.1.
//
// Grounded on the original main/start_server (main.rs, lib.rs): resolve
// options, verify the root exists, bind a listener, and serve. The CLI
// surface itself is reworked onto cobra, in the idiom of the example
// pack's agent entrypoint (cmd/agent.go).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sblundy/static2/config"
	"github.com/sblundy/static2/content/fsstore"
	"github.com/sblundy/static2/httpserver"
	"github.com/sblundy/static2/internal/sigs"
	"github.com/sblundy/static2/logging"
	"github.com/sblundy/static2/metrics"
	"github.com/sblundy/static2/workerpool"
)

var (
	configPath string
	root       string
	address    string
	port       int
)

var rootCmd = &cobra.Command{
	Use:   "static2 [root]",
	Short: "Serve a directory of static files over HTTP/1.1",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) == 1 {
			cfg.Root = args[0]
		}
		if cmd.Flags().Changed("address") {
			cfg.Address = address
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = port
		}
		return run(cfg)
	},
	Example: "  static2 --address 0.0.0.0 --port 8080 /var/www",
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file path (optional)")
	rootCmd.Flags().StringVarP(&address, "address", "a", "", "bind address")
	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "bind port")
}

func run(cfg config.Config) error {
	log := logging.New(cfg.Logging)
	defer log.Sync()

	if _, err := os.Stat(cfg.Root); err != nil {
		return fmt.Errorf("root path does not exist: %s", cfg.Root)
	}

	source := fsstore.New(cfg.Root)

	pool := workerpool.New(cfg.Workers, workerpool.WithMetrics(
		func() { metrics.WorkerJobsInFlight.Inc() },
		func() { metrics.WorkerJobsInFlight.Dec() },
	))
	defer pool.Close()

	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	ln, err := httpserver.NewListener(addr)
	if err != nil {
		return fmt.Errorf("error on bind: %w", err)
	}
	log.Infof("binding to: %s", ln.Addr())
	log.Infof("root=%s", cfg.Root)

	acceptor := &httpserver.Acceptor{
		Pool:   pool,
		Source: source,
		Log:    log,
	}
	if cfg.TLS.Enabled() {
		tlsConfig, err := loadTLSConfig(cfg.TLS)
		if err != nil {
			return fmt.Errorf("error loading cert: %w", err)
		}
		acceptor.TLSConfig = tlsConfig
	}

	if cfg.Metrics.Enabled {
		go func() {
			if err := metrics.ListenAndServe(cfg.Metrics.Address); err != nil {
				log.Errorf("metrics server stopped: %v", err)
			}
		}()
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- acceptor.Serve(ln) }()

	select {
	case <-sigs.Terminate():
		log.Infof("shutting down")
		ln.Close()
		return nil
	case err := <-serveErr:
		return err
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
