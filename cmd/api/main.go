package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/nmaclean/liftbase/internal/config"
	"github.com/nmaclean/liftbase/internal/database"
	exerciseStore "github.com/nmaclean/liftbase/internal/exercise/store"
	liftbaseHttp "github.com/nmaclean/liftbase/internal/http"
	importHandler "github.com/nmaclean/liftbase/internal/http/importnames"
	matchHandler "github.com/nmaclean/liftbase/internal/http/match"
	"github.com/nmaclean/liftbase/internal/importer"
	"github.com/nmaclean/liftbase/internal/matcher"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		engine    = matcher.NewEngine(exerciseStore.New(db), cfg.MatcherConfig())
		importSvc = importer.NewService()
	)

	var (
		matchH  = matchHandler.NewHandler(engine)
		importH = importHandler.NewHandler(importSvc, engine)
	)

	router := liftbaseHttp.New(matchH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
