package home

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shandysiswandi/tradewind/internal/home/inbound"
	"github.com/shandysiswandi/tradewind/internal/home/view"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/tradewind/internal/pkg/pkgrouter"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
	Logger *slog.Logger
	Now    func() time.Time
}

func New(dep Dependency) error {
	if dep.Now == nil {
		dep.Now = time.Now
	}
	if dep.Logger == nil {
		dep.Logger = slog.Default()
	}

	views, err := view.Load(view.Site{
		Name:        dep.Config.GetString("app.name"),
		Environment: dep.Config.GetString("app.env"),
		Year:        dep.Now().Year(),
	})
	if err != nil {
		return fmt.Errorf("load views: %w", err)
	}

	end := inbound.NewHTTPEndpoint(dep.Logger.With("component", "home"))
	inbound.RegisterHTTPEndpoint(dep.Router, views, view.Static(), end)

	return nil
}
