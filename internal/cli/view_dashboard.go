package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maniksharma/vitalog/internal/cli/formatter"
	"github.com/maniksharma/vitalog/internal/domain"
	"github.com/maniksharma/vitalog/internal/service"
)

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg signals that dashboard data has been loaded. Load
// itself never fails; per-leg errors live inside the Dashboard.
type dashboardLoadedMsg struct {
	dash *service.Dashboard
}

// ── model ────────────────────────────────────────────────────────────────────

// tabKinds is the panel cycling order for the tab key.
var tabKinds = []domain.LogKind{
	domain.LogGlucose, domain.LogBP, domain.LogFood, domain.LogActivity,
}

// dashboardModel is the interactive dashboard: one focused panel plus the
// hydration, medication and care plan strips. Tab cycles panels, r
// reloads, q quits.
type dashboardModel struct {
	app  *App
	days int

	dash    *service.Dashboard
	loading bool
	spin    spinner.Model
	focus   int // index into tabKinds
	width   int
	height  int
}

func newDashboardModel(app *App, days int) *dashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorHeader)

	return &dashboardModel{
		app:     app,
		days:    days,
		loading: true,
		spin:    sp,
		width:   formatter.TermWidth(),
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.loadData(), m.spin.Tick)
}

func (m *dashboardModel) loadData() tea.Cmd {
	app := m.app
	days := m.days
	return func() tea.Msg {
		return dashboardLoadedMsg{dash: app.Dashboard.Load(context.Background(), days)}
	}
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dashboardLoadedMsg:
		m.dash = msg.dash
		m.loading = false
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, tea.Batch(m.loadData(), m.spin.Tick)
		case "tab", "right", "l":
			m.focus = (m.focus + 1) % len(tabKinds)
			return m, nil
		case "shift+tab", "left", "h":
			m.focus = (m.focus - 1 + len(tabKinds)) % len(tabKinds)
			return m, nil
		}
	}
	return m, nil
}

func (m *dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spin.View() + formatter.Dim(" loading") + "\n")
		return b.String()
	}

	kind := tabKinds[m.focus]
	if panel, ok := m.dash.Panels[kind]; ok {
		b.WriteString(formatter.FormatPanel(panel, m.width))
		b.WriteString("\n")
	}

	b.WriteString(formatter.FormatWater(m.dash.Water, m.dash.WaterErr))
	b.WriteString("\n")
	b.WriteString(formatter.FormatAdherence(m.dash.Meds, m.dash.MedsErr))
	b.WriteString("\n\n")

	if m.dash.PlanErr == nil && m.dash.Plan != nil && len(m.dash.Plan.Tasks) > 0 {
		b.WriteString(m.renderNextTask())
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.renderHelp())
	return b.String()
}

// renderTabs renders the panel selector strip.
func (m *dashboardModel) renderTabs() string {
	parts := make([]string, 0, len(tabKinds))
	for i, kind := range tabKinds {
		label := string(kind)
		if i == m.focus {
			parts = append(parts, formatter.StyleHeader.Render("["+label+"]"))
		} else {
			parts = append(parts, formatter.Dim(" "+label+" "))
		}
	}
	title := formatter.StyleBold.Render("vitalog")
	when := ""
	if m.dash != nil {
		when = formatter.Dim(fmt.Sprintf("last %d days · %s",
			m.dash.WindowDays, m.dash.GeneratedAt.Format("15:04")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", strings.Join(parts, " "), "  ", when)
}

// renderNextTask shows the first pending care plan task as a nudge.
func (m *dashboardModel) renderNextTask() string {
	t := m.dash.Plan.Tasks[0]
	return fmt.Sprintf("%s %s %s",
		formatter.StyleBlue.Render("Next:"),
		formatter.Bold(t.Task),
		formatter.Dim("at "+t.Time))
}

func (m *dashboardModel) renderHelp() string {
	return formatter.Dim("tab panel · r refresh · q quit")
}
