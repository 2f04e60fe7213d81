package service

import (
	"fmt"

	"github.com/fadilmartias/rozgar/internal/model"
	"github.com/fadilmartias/rozgar/internal/scoring"
	"github.com/xuri/excelize/v2"
)

const passedSheet = "Passed Candidates"

// PassedCandidatesWorkbook renders passing results as an xlsx file. testTitles
// maps test ids to titles for the Test column.
func PassedCandidatesWorkbook(results []model.TestResult, testTitles map[string]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", passedSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Candidate", "Job ID", "Test", "Score", "Total", "Percent", "Time Taken (s)", "Submitted At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(passedSheet, cell, h); err != nil {
			return nil, err
		}
	}

	for r, res := range results {
		row := []any{
			res.UserID,
			res.JobID,
			testTitles[res.TestID.String()],
			res.Score,
			res.Total,
			fmt.Sprintf("%.0f%%", scoring.Percent(res.Score, res.Total)),
			res.TimeTaken,
			res.CreatedAt.Format("2006-01-02 15:04"),
		}
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(passedSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(passedSheet, "A", "A", 32); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
