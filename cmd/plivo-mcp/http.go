package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"plivo-mcp/internal/audit"
	"plivo-mcp/internal/auth"
	"plivo-mcp/internal/httpapi"
)

func NewHTTPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "http",
		Short: "Serve the tools over an authenticated HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHTTP(cmd.Context(), a)
		},
	}
}

func runHTTP(ctx context.Context, a *app) error {
	if err := a.cfg.ValidateHTTP(); err != nil {
		return err
	}
	log := a.log

	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	authManager, err := auth.NewManager(a.cfg.Auth)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	g, err := newGateway(a, registry)
	if err != nil {
		return err
	}

	r := httpapi.NewRouter(httpapi.RouterOptions{
		Logger:   log,
		Gateway:  g,
		Auth:     authManager,
		Registry: registry,
		Audit:    audit.NewService(audit.NewLogRepo(log)),
	})

	// Provider round trips are bounded by PLIVO_HTTP_TIMEOUT, not here.
	srv := &http.Server{
		Addr:              a.cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := context.WithCancel(ctx)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", a.cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			serveErr <- err
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}

	select {
	case err := <-serveErr:
		return err
	default:
		return nil
	}
}
