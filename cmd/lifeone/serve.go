package main

import (
	"crypto/tls"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/lifeone/internal/certs"
	"github.com/Veraticus/lifeone/internal/config"
	"github.com/Veraticus/lifeone/internal/server"
	"github.com/Veraticus/lifeone/internal/service"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve POST /api/process, POST /api/clarify, GET /api/health and
GET /api/history until interrupted.`,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "listen address (default :8000)")
	cmd.Flags().Bool("tls", false, "serve HTTPS with a self-signed localhost certificate")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("server.tls", cmd.Flags().Lookup("tls"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	serverCfg := config.LoadServerConfig()

	rt, err := newRuntime(ctx, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	var history service.HistoryStore
	if rt.history != nil {
		history = rt.history
	}

	var cert *tls.Certificate
	if serverCfg.TLS {
		c, err := certs.NewStore(serverCfg.CertDir).Certificate()
		if err != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}
		cert = &c
	}

	srv := server.New(server.Options{
		Processor:      rt.engine,
		History:        history,
		Logger:         slog.Default(),
		Certificate:    cert,
		Provider:       rt.provider,
		AllowedOrigins: serverCfg.AllowedOrigins,
	})

	slog.Info("Starting lifeone API",
		"addr", serverCfg.Addr,
		"model", rt.engine.ModelName(),
		"provider", rt.provider,
		"history", history != nil,
		"tls", cert != nil)

	if err := srv.ListenAndServe(ctx, serverCfg.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
