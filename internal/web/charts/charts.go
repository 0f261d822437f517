package charts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/courtside/draftboard/internal/services/roster"
)

// ChartConfig holds shared chart presentation settings
type ChartConfig struct {
	Width      string
	Height     string
	Theme      string
	ShowLegend bool
	Colors     []string
}

// DefaultChartConfig returns default chart configuration
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:      "900px",
		Height:     "500px",
		Theme:      "light",
		ShowLegend: true,
		Colors:     []string{"#5470C6", "#91CC75", "#FAC858", "#EE6666", "#73C0DE"},
	}
}

// RenderPositionCharts writes an HTML page with a pie chart of position
// counts and a bar chart of mean fantasy score by position
func RenderPositionCharts(w io.Writer, stats []roster.PositionStats, config ChartConfig) error {
	if len(stats) == 0 {
		return fmt.Errorf("no position data to chart")
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Players by position",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(config.ShowLegend),
		}),
	)

	pieData := make([]opts.PieData, len(stats))
	for i, ps := range stats {
		pieData[i] = opts.PieData{Name: string(ps.Position), Value: ps.Count}
	}
	pie.AddSeries("Positions", pieData).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{b}: {c}",
			}),
		)

	if err := pie.Render(w); err != nil {
		return fmt.Errorf("failed to render pie chart: %w", err)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Mean FPPG by position",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithColorsOpts(opts.Colors{
			config.Colors[0],
		}),
	)

	xLabels := make([]string, len(stats))
	barData := make([]opts.BarData, len(stats))
	for i, ps := range stats {
		xLabels[i] = string(ps.Position)
		barData[i] = opts.BarData{Value: ps.MeanScore}
	}
	bar.SetXAxis(xLabels).
		AddSeries("Mean FPPG", barData).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render bar chart: %w", err)
	}

	return nil
}

// RenderScoreDistribution writes an HTML page with a box plot of fantasy
// scores by position
func RenderScoreDistribution(w io.Writer, stats []roster.PositionStats, config ChartConfig) error {
	if len(stats) == 0 {
		return fmt.Errorf("no position data to chart")
	}

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "FPPG distribution by position",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)

	xLabels := make([]string, len(stats))
	boxData := make([]opts.BoxPlotData, len(stats))
	for i, ps := range stats {
		xLabels[i] = string(ps.Position)
		// Box plot values are [min, Q1, median, Q3, max]
		boxData[i] = opts.BoxPlotData{
			Value: []float64{ps.Min, ps.Q1, ps.Median, ps.Q3, ps.Max},
		}
	}
	box.SetXAxis(xLabels).AddSeries("FPPG", boxData)

	if err := box.Render(w); err != nil {
		return fmt.Errorf("failed to render box plot: %w", err)
	}

	return nil
}
