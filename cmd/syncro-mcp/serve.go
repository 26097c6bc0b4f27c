package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wyre-technology/syncro-mcp/internal/adapters/redis"
	"github.com/wyre-technology/syncro-mcp/internal/config"
	"github.com/wyre-technology/syncro-mcp/internal/logging"
	mcpAdapter "github.com/wyre-technology/syncro-mcp/pkg/adapters/mcp"
	"github.com/wyre-technology/syncro-mcp/pkg/ports"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Starts the Syncro MCP server.

Supported transports:
- stdio (default): Standard input/output. Ideal for local agent integration.
- http: Streamable HTTP. Ideal for remote agents and multi-tenant deployments.

Auth modes:
- env (default): one process-wide SYNCRO_API_KEY / SYNCRO_SUBDOMAIN pair.
- header: every HTTP request carries X-Syncro-Api-Key (and optionally
  X-Syncro-Subdomain), so concurrent sessions can belong to different tenants.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("Error loading configuration: %v", err)
		}

		if cmd.Flags().Changed("transport") {
			cfg.Transport, _ = cmd.Flags().GetString("transport")
		}
		if cmd.Flags().Changed("auth-mode") {
			cfg.AuthMode, _ = cmd.Flags().GetString("auth-mode")
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr, _ = cmd.Flags().GetString("addr")
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}

		// Logs go to stderr so stdout stays clean for JSON-RPC.
		log.SetOutput(os.Stderr)
		logger := logging.New(logging.ParseLevel(cfg.LogLevel))

		var opts []mcpAdapter.Option
		if cfg.SessionStore == config.SessionStoreRedis {
			var store ports.SessionStore = redis.New(
				cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
				redis.WithTTL(cfg.SessionTimeout),
			)
			opts = append(opts, mcpAdapter.WithSessionStore(store))
			logger.Info("using redis session store", "addr", cfg.RedisAddr)
		}

		srv := mcpAdapter.NewServer(cfg, logger, opts...)
		defer srv.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		switch cfg.Transport {
		case config.TransportStdio:
			if err := srv.ServeStdio(ctx); err != nil && ctx.Err() == nil {
				logger.Error("MCP server execution failed", "error", err)
				os.Exit(1)
			}
		case config.TransportHTTP:
			if err := srv.ServeHTTP(ctx, cfg.Addr); err != nil && err != http.ErrServerClosed {
				logger.Error("MCP server execution failed", "error", err)
				os.Exit(1)
			}
		}
		logger.Info("MCP server stopped gracefully")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("transport", "", "Transport to use: 'stdio' or 'http'")
	serveCmd.Flags().String("auth-mode", "", "Auth mode: 'env' or 'header'")
	serveCmd.Flags().String("addr", "", "Bind address for the http transport (e.g. :8080)")
}
