package ui

import (
	"github.com/pterm/pterm"
)

const barChartChar = "▇"

// Bar is a single labelled value in a chart.
type Bar struct {
	Label string
	Value int
}

// BarChart renders a horizontal bar chart with the value printed next to
// each bar.
func BarChart(data []Bar) (string, error) {
	bars := make(pterm.Bars, 0, len(data))

	for _, v := range data {
		bars = append(bars, pterm.Bar{
			Label: v.Label,
			Value: v.Value,
		})
	}

	return pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
}
