package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/tradewind/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkglog"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkguid"
)

const serviceName = "tradewind"

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	traceID   pkguid.StringID
	goroutine *pkgroutine.Manager

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging(serviceName)

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
