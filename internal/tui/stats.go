package tui

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/selimc/focusly/internal/tracker"
)

type statsModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	chart barchart.Model
}

func newStatsModel(tr *tracker.Tracker) statsModel {
	return statsModel{
		tracker: tr,
		chart:   barchart.New(60, 10),
	}
}

func (s *statsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

// Stats are derived on render; the model holds no data of its own.
func (s statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	return s, nil
}

// buildChart plots habit check-ins per day over the last week.
func (s *statsModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if s.height > 30 {
		chartHeight = 14
	}

	s.chart = barchart.New(chartWidth, chartHeight)

	habits := s.tracker.Habits()
	now := time.Now()

	var bars []barchart.BarData
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dateStr := day.Format("2006-01-02")

		var count float64
		for j := range habits {
			if habits[j].CheckedIn(dateStr) {
				count++
			}
		}

		style := lipgloss.NewStyle().Foreground(colorSecondary)
		if count == 0 {
			style = lipgloss.NewStyle().Foreground(colorSubtle)
		}
		bars = append(bars, barchart.BarData{
			Label: day.Format("Mon 02"),
			Values: []barchart.BarValue{
				{Name: "check-ins", Value: count, Style: style},
			},
		})
	}

	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s statsModel) view() string {
	w := s.width - 4

	s.buildChart()

	title := titleStyle.Render("Stats")
	subtitle := mutedStyle.Render("Habit check-ins, last 7 days")

	tiles := s.renderTiles(w)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title, "", tiles, "", subtitle, s.chart.View(),
		),
	)
}

func (s statsModel) renderTiles(w int) string {
	timer := s.tracker.Timer()
	tasks := s.tracker.Tasks()

	var tasksDone int
	for _, task := range tasks {
		if task.Completed {
			tasksDone++
		}
	}

	var goalsDone int
	goals := s.tracker.Goals()
	for i := range goals {
		if done, total := goals[i].Progress(); total > 0 && done == total {
			goalsDone++
		}
	}

	tileWidth := (w / 4) - 2
	if tileWidth < 14 {
		tileWidth = 14
	}

	tile := func(label, value string, style lipgloss.Style) string {
		return panelStyle.Width(tileWidth).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				style.Bold(true).Render(value),
				mutedStyle.Render(label),
			),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		tile("focus sessions", fmt.Sprintf("%d", timer.CompletedPomodoros), accentStyle),
		tile("time focused", formatHours(timer.TotalFocusTime), secondaryStyle),
		tile("tasks done", fmt.Sprintf("%d/%d", tasksDone, len(tasks)), successStyle),
		tile("goals achieved", fmt.Sprintf("%d/%d", goalsDone, len(goals)), highlightStyle),
	)
}
