package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/nmaclean/liftbase/cmd/tui/internal/view"
	"github.com/nmaclean/liftbase/internal/config"
	"github.com/nmaclean/liftbase/internal/database"
	exerciseStore "github.com/nmaclean/liftbase/internal/exercise/store"
	"github.com/nmaclean/liftbase/internal/matcher"
)

type model struct {
	engine      *matcher.Engine
	requesterID uuid.UUID

	currentView View

	matchView   view.MatchModel
	missingView view.MissingModel
}

type View int

const (
	ViewMenu    View = 0
	ViewMatch   View = 1
	ViewMissing View = 2
)

func initialModel() model {
	_ = godotenv.Load()

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

	engine := matcher.NewEngine(exerciseStore.New(db), cfg.MatcherConfig())
	requesterID := uuid.New()

	return model{
		engine:      engine,
		requesterID: requesterID,
		currentView: ViewMenu,
		matchView:   view.NewMatchModel(engine),
		missingView: view.NewMissingModel(engine, requesterID),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewMatch
				m.matchView = view.NewMatchModel(m.engine)

				return m, m.matchView.Init()
			case "2":
				m.currentView = ViewMissing
				m.missingView = view.NewMissingModel(m.engine, m.requesterID)

				return m, m.missingView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewMatch:
		var newModel tea.Model
		newModel, cmd = m.matchView.Update(msg)
		m.matchView = newModel.(view.MatchModel)
	case ViewMissing:
		var newModel tea.Model
		newModel, cmd = m.missingView.Update(msg)
		m.missingView = newModel.(view.MissingModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Liftbase TUI\n\n" +
				"1. Match Console\n" +
				"2. Create Missing Exercise\n\n" +
				"q. Quit",
		)
	case ViewMatch:
		return m.matchView.View()
	case ViewMissing:
		return m.missingView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
