package service

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"hrdashboard/internal/model"
)

const exportSheet = "Sheet1"

var (
	// FullExportColumns is the header of the unfiltered export.
	FullExportColumns = []string{"id", "job_id", "job_title", "applicant_name", "email", "phone", "resume_url", "created_at"}
	// JobExportColumns is the header of the per job export.
	JobExportColumns = []string{"applicant_name", "email", "phone"}
)

func exportValue(app model.Application, column string) interface{} {
	switch column {
	case "id":
		return app.ID
	case "job_id":
		return app.JobID
	case "job_title":
		return app.JobTitle()
	case "applicant_name":
		return app.ApplicantName
	case "email":
		return app.Email
	case "phone":
		return app.Phone
	case "resume_url":
		if app.ResumeURL == nil {
			return ""
		}
		return *app.ResumeURL
	case "created_at":
		return app.CreatedAt.UTC().Format(time.RFC3339)
	default:
		return ""
	}
}

// buildWorkbook writes one header row then one row per application.
func buildWorkbook(columns []string, apps []model.Application) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, app := range apps {
		row := make([]interface{}, len(columns))
		for j, col := range columns {
			row[j] = exportValue(app, col)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
