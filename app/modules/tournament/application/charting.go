package tournamentservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

// LeaderboardChart renders the leaderboard as a PNG bar chart of completion
// durations, fastest on the left.
func (s *TournamentService) LeaderboardChart(ctx context.Context) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "tournament.LeaderboardChart")
	defer span.End()

	entries, err := s.Leaderboard(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return renderNoDataPlaceholder()
	}

	bars := make([]chart.Value, 0, len(entries))
	for _, e := range entries {
		bars = append(bars, chart.Value{
			Label: e.WinnerName,
			Value: e.DurationSeconds,
		})
	}

	graph := chart.BarChart{
		Title:    "Fastest tournament completions (seconds)",
		Width:    100 + 60*len(bars),
		Height:   400,
		BarWidth: 40,
		Bars:     bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render leaderboard chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder() ([]byte, error) {
	const msg = "No completed tournaments yet"

	graph := chart.Chart{
		Width:  400,
		Height: 200,
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render placeholder chart: %w", err)
	}
	return buffer.Bytes(), nil
}
