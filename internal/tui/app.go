package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/eia-go/internal/engine"
	"github.com/dm/eia-go/internal/format"
	"github.com/dm/eia-go/internal/model"
)

// BuildRows converts a ranked report into display-ready rows, computing the
// percentage and cost columns once up front.
func BuildRows(r *model.Report, clusterCost float64) []model.GroupRow {
	rows := make([]model.GroupRow, 0, len(r.Groups))
	for _, g := range r.Groups {
		rows = append(rows, model.GroupRow{
			LogName:       g.LogName,
			ImpactScore:   g.ImpactScore,
			ImpactPercent: engine.ImpactPercent(g.ImpactScore, r.TotalImpact, r.Mode),
			StorageGB:     g.Metrics.TotalStorageGB,
			TotalShards:   g.Metrics.TotalShards,
			TotalSegments: g.Metrics.TotalSegments,
			DocCount:      g.Metrics.DocCount,
			IndexCount:    g.IndexCount,
			MonthlyCost:   engine.EstimatedCost(g.ImpactScore, r.TotalImpact, clusterCost, r.Mode),
		})
	}
	return rows
}

// App is the root Bubble Tea model for the report browser. It renders one
// finished analysis run; there is no polling or refetching.
type App struct {
	report *model.Report
	table  groupTable

	width, height int
	showHelp      bool
}

// NewApp creates an App over a completed report.
func NewApp(r *model.Report, clusterCost float64) *App {
	return &App{
		report: r,
		table:  newGroupTable(BuildRows(r, clusterCost), r.Mode == model.ScoreModeNormalized),
	}
}

// Init implements tea.Model.
func (app *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model — the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height
		return app, nil

	case tea.KeyMsg:
		// While the filter input is active every key belongs to the table.
		if app.table.searching {
			var cmd tea.Cmd
			app.table, cmd = app.table.Update(msg)
			return app, cmd
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
			return app, nil
		}
		var cmd tea.Cmd
		app.table, cmd = app.table.Update(msg)
		return app, cmd
	}

	return app, nil
}

// View implements tea.Model.
func (app *App) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		app.renderHeader(),
		app.table.render(app.width),
		app.renderFooter(),
	)
}

func (app *App) renderHeader() string {
	impact := fmt.Sprintf("%.2f", app.report.TotalImpact)
	if app.report.Mode == model.ScoreModeNormalized {
		impact = fmt.Sprintf("%.4f", app.report.TotalImpact)
	}
	text := fmt.Sprintf("eia — index impact report  mode: %s  groups: %d  total impact: %s  unmatched: %d",
		app.report.Mode, len(app.report.Groups), impact, len(app.report.Unmatched))
	if c := app.report.Capacity; c != nil {
		text += fmt.Sprintf("  capacity: %s disk, %s heap",
			format.FormatGB(c.DiskTotalGB()), format.FormatMB(c.HeapMaxMB()))
	}

	width := app.width
	if width <= 0 {
		width = 80
	}
	return StyleHeader.Width(width).Render(text)
}

func (app *App) renderFooter() string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	text := "? for help"
	if app.showHelp {
		text = helpText
	}
	return StyleDim.Width(width).Render(text)
}

// Run starts the interactive browser over a completed report and blocks
// until the user quits.
func Run(r *model.Report, clusterCost float64) error {
	p := tea.NewProgram(NewApp(r, clusterCost), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive browser: %w", err)
	}
	return nil
}
