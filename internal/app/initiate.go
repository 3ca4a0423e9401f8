package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkguid"
)

func defaults() map[string]any {
	return map[string]any{
		"tz":                          "UTC",
		"app.name":                    "Tradewind",
		"app.env":                     "Production",
		"server.address.http":         ":8080",
		"server.cors.allowed_origins": []string{"*"},
		"trace.identifier":            pkguid.StrategyUUID,
		"trace.activity.enabled":      false,
		"modules.home.enabled":        true,
	}
}

func (a *App) initConfig() {
	boot, err := pkgconfig.LoadBootstrap()
	if err != nil {
		slog.Error("failed to read bootstrap env", "error", err)
		os.Exit(1)
	}

	cfg, err := pkgconfig.NewViper(boot.ConfigPath, defaults())
	if err != nil {
		slog.Error("failed to init config", "path", boot.ConfigPath, "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	a.config = cfg
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(10)

	gen, err := pkguid.NewStringID(a.config.GetString("trace.identifier"))
	if err != nil {
		slog.Error("failed to init trace identifier generator", "error", err)
		os.Exit(1)
	}
	a.traceID = gen
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(
		a.traceID,
		pkgrouter.WithRootActivity(a.config.GetBool("trace.activity.enabled")),
	)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("server.cors.allowed_origins"),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{pkgrouter.HeaderCorrelationID},
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("server.address.http"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
