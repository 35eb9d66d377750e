package tournamentservice

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Leaderboard"

// ExportLeaderboard renders the leaderboard as an xlsx workbook with one
// row per completed tournament.
func (s *TournamentService) ExportLeaderboard(ctx context.Context) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "tournament.ExportLeaderboard")
	defer span.End()

	entries, err := s.Leaderboard(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("failed to name export sheet: %w", err)
	}

	headers := []string{"Rank", "Tournament", "Winner", "Duration (s)", "Completed At"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, entry := range entries {
		row := i + 2
		values := []interface{}{
			i + 1,
			entry.TournamentName,
			entry.WinnerName,
			entry.DurationSeconds,
			entry.CompletedAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize leaderboard export: %w", err)
	}
	return buffer.Bytes(), nil
}
