package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/tradewind/internal/home"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.home.enabled") {
		err := home.New(home.Dependency{
			Config: a.config,
			Router: a.router,
			Logger: slog.Default(),
		})
		if err != nil {
			slog.Error("failed to init module home", "error", err)
			os.Exit(1)
		}
	}
}
