package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nmaclean/liftbase/internal/exercise"
	"github.com/nmaclean/liftbase/internal/matcher"
)

const matchTimeout = 30 * time.Second

var (
	matchedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	unmatchedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MatchModel is an interactive console to try the matcher against the live
// catalog: type a name, see how it resolves.
type MatchModel struct {
	CommonModel
	engine *matcher.Engine

	nameInput textinput.Model
	locale    string

	result  *exercise.MatchResult
	err     error
	loading bool
}

func NewMatchModel(engine *matcher.Engine) MatchModel {
	ti := textinput.New()
	ti.Placeholder = "Exercise name"
	ti.Width = 50
	ti.Focus()

	return MatchModel{
		engine:    engine,
		nameInput: ti,
		locale:    "en",
	}
}

func (m MatchModel) Init() tea.Cmd {
	return textinput.Blink
}

type matchResultMsg struct {
	result *exercise.MatchResult
	err    error
}

func (m MatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, Back

		case tea.KeyTab:
			if m.locale == "en" {
				m.locale = "it"
			} else {
				m.locale = "en"
			}

			return m, nil

		case tea.KeyEnter:
			name := m.nameInput.Value()
			if name == "" {
				return m, nil
			}

			m.loading = true
			m.err = nil

			return m, m.matchCmd(name, m.locale)
		}

	case matchResultMsg:
		m.loading = false
		m.result = msg.result
		m.err = msg.err

		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)

	return m, cmd
}

func (m MatchModel) matchCmd(name, locale string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), matchTimeout)
		defer cancel()

		result, err := m.engine.Match(ctx, name, locale, 0)

		return matchResultMsg{result: result, err: err}
	}
}

func (m MatchModel) View() string {
	header := fmt.Sprintf("Match Console  [locale: %s]", m.locale)
	help := dimStyle.Render("Enter: match | Tab: switch locale | Esc: back")

	body := ""

	switch {
	case m.loading:
		body = "Matching..."
	case m.err != nil:
		body = errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	case m.result != nil:
		body = renderResult(m.result)
	}

	return lipgloss.NewStyle().Padding(1).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			m.nameInput.View(),
			"",
			body,
			"",
			help,
		),
	)
}

func renderResult(res *exercise.MatchResult) string {
	var lines []string

	if res.Found {
		lines = append(lines,
			matchedStyle.Render(fmt.Sprintf("Matched: %s (%s)", res.MatchedName, res.MatchedSlug)),
			fmt.Sprintf("Method: %s   Confidence: %.2f", res.Method, res.Confidence),
		)
	} else {
		lines = append(lines,
			unmatchedStyle.Render(fmt.Sprintf("No match for %q", res.OriginalName)),
			fmt.Sprintf("Best confidence: %.2f", res.Confidence),
		)
	}

	if len(res.Suggestions) > 0 {
		lines = append(lines, "", "Suggestions:")

		for _, s := range res.Suggestions {
			lines = append(lines, fmt.Sprintf("  %.2f  %s (%s)", s.Confidence, s.Name, s.Slug))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
