package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/nmaclean/liftbase/internal/matcher"
)

type missingState int

const (
	missingStateForm missingState = iota
	missingStateCreating
	missingStateResult
)

// MissingModel resolves a name against the catalog and files a pending
// catalog entry when nothing close enough exists.
type MissingModel struct {
	CommonModel
	engine      *matcher.Engine
	requesterID uuid.UUID

	state missingState
	err   error

	form   *huh.Form
	name   string
	locale string

	spinner spinner.Model
	created uuid.UUID
}

func NewMissingModel(engine *matcher.Engine, requesterID uuid.UUID) MissingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := MissingModel{
		engine:      engine,
		requesterID: requesterID,
		state:       missingStateForm,
		locale:      "en",
		spinner:     s,
	}
	m.form = m.buildForm()

	return m
}

func (m MissingModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m MissingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case missingStateForm:
		return m.updateForm(msg)
	case missingStateCreating:
		return m.updateCreating(msg)
	case missingStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m MissingModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = missingStateCreating
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.createCmd(m.form.GetString("name"), m.form.GetString("locale")))
}

func (m MissingModel) updateCreating(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(createResultMsg); ok {
		m.state = missingStateResult
		m.created = result.id
		m.err = result.err

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m MissingModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m *MissingModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Exercise Name").
				Description("Matched against the catalog first; created as pending if unknown").
				Placeholder("Nordic Hamstring Curl").
				Value(&m.name),
			huh.NewSelect[string]().
				Key("locale").
				Title("Locale").
				Options(
					huh.NewOption("English", "en"),
					huh.NewOption("Italiano", "it"),
				).
				Value(&m.locale),
		),
	).WithWidth(50).WithShowHelp(false)
}

type createResultMsg struct {
	id  uuid.UUID
	err error
}

const createTimeout = 30 * time.Second

func (m MissingModel) createCmd(name, locale string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), createTimeout)
		defer cancel()

		id, err := m.engine.CreateMissing(ctx, name, locale, m.requesterID)

		return createResultMsg{id: id, err: err}
	}
}

func (m MissingModel) View() string {
	switch m.state {
	case missingStateForm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case missingStateCreating:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Resolving against the catalog...", m.spinner.View()),
		)

	case missingStateResult:
		return m.viewResult()
	}

	return ""
}

func (m MissingModel) viewResult() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			errorStyle.Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	header := matchedStyle.Render("Done!")

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			fmt.Sprintf("Exercise ID: %s", m.created),
			dimStyle.Render("Existing exercises are reused; new ones are created as pending."),
		),
	)
}
