// Package charts renders interactive score charts as self-contained
// HTML using go-echarts.
package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

// Config holds chart rendering options.
type Config struct {
	Title    string
	Subtitle string
	Width    string
	Height   string
	Theme    string
	Smooth   bool
	Colors   []string
}

// DefaultConfig returns the default chart configuration.
func DefaultConfig() Config {
	return Config{
		Title:    "Score Trend",
		Subtitle: "Score relative to par per round",
		Width:    "900px",
		Height:   "500px",
		Theme:    "light",
		Smooth:   true,
		Colors:   []string{"#5470C6", "#91CC75"},
	}
}

// RenderScoreTrend writes an interactive line chart of score-to-par
// over time for the given rounds, oldest first. Plotting relative to
// par keeps 9-hole and 18-hole rounds on one comparable scale.
func RenderScoreTrend(w io.Writer, rounds []*models.Round, config Config) error {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithColorsOpts(opts.Colors{
			config.Colors[0],
		}),
	)

	xLabels := make([]string, len(rounds))
	yData := make([]opts.LineData, len(rounds))
	for i, round := range rounds {
		label := round.Date.Format("2006-01-02")
		if round.RoundType == models.RoundType9 {
			label += " (9)"
		}
		xLabels[i] = label
		yData[i] = opts.LineData{Value: round.ScoreToPar()}
	}

	line.SetXAxis(xLabels).
		AddSeries("Score to Par", yData).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth: opts.Bool(config.Smooth),
			}),
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
