// controllers/report.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"workshop-backend/config"
	"workshop-backend/models"
	"workshop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// Sheet colors: blue for jobs, green for radiators, gray for combined.
const (
	jobHeaderColor      = "4A90E2"
	radiatorHeaderColor = "50C878"
	combinedHeaderColor = "6C757D"
	jobRowColor         = "E3F2FD"
	radiatorRowColor    = "E8F5E9"
)

// DownloadReport generates the xlsx workshop report with Summary, Combined,
// Jobs and Radiators sheets and streams it as an attachment. Pure read and
// format over the current record store snapshot.
func DownloadReport(c *gin.Context) {
	var jobs []models.Job
	if err := config.DB.Order("created_at DESC").Find(&jobs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve jobs")
		return
	}
	var radiators []models.Radiator
	if err := config.DB.Order("created_at DESC").Find(&radiators).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve parts orders")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "Summary")
	f.NewSheet("Combined")
	f.NewSheet("Jobs")
	f.NewSheet("Radiators")

	if err := writeSummarySheet(f, jobs, radiators); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}
	if err := writeCombinedSheet(f, jobs, radiators); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}
	if err := writeJobsSheet(f, jobs); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}
	if err := writeRadiatorsSheet(f, radiators); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to build report")
		return
	}

	filename := "workshop_report_" + time.Now().Format("20060102_150405") + ".xlsx"
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to write report")
	}
}

func countByStatus[T any](records []T, status models.JobStatus, get func(T) models.JobStatus) int {
	n := 0
	for _, r := range records {
		if get(r) == status {
			n++
		}
	}
	return n
}

func writeSummarySheet(f *excelize.File, jobs []models.Job, radiators []models.Radiator) error {
	sheet := "Summary"

	jobStatus := func(j models.Job) models.JobStatus { return j.Status }
	radStatus := func(r models.Radiator) models.JobStatus { return r.Status }
	completedJobs := countByStatus(jobs, models.JobStatusCompleted, jobStatus)
	completedRadiators := countByStatus(radiators, models.JobStatusCompleted, radStatus)

	rows := [][]interface{}{
		{"MAGNUM RADIATORS - COMPREHENSIVE REPORT"},
		{"Generated on: " + time.Now().Format("2006-01-02 15:04:05")},
		{},
		{"JOBS STATISTICS"},
		{"Total Jobs", len(jobs)},
		{"Pending Jobs", countByStatus(jobs, models.JobStatusPending, jobStatus)},
		{"In Progress Jobs", countByStatus(jobs, models.JobStatusInProgress, jobStatus)},
		{"Completed Jobs", completedJobs},
		{},
		{"RADIATORS STATISTICS"},
		{"Total Radiators", len(radiators)},
		{"Pending Radiators", countByStatus(radiators, models.JobStatusPending, radStatus)},
		{"In Progress Radiators", countByStatus(radiators, models.JobStatusInProgress, radStatus)},
		{"Completed Radiators", completedRadiators},
		{},
		{"OVERALL STATISTICS"},
		{"Total Records", len(jobs) + len(radiators)},
		{"Total Completed", completedJobs + completedRadiators},
	}
	for i, row := range rows {
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return err
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return err
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return err
	}
	f.SetCellStyle(sheet, "A1", "A1", titleStyle)
	for _, cell := range []string{"A4", "A10", "A16"} {
		f.SetCellStyle(sheet, cell, cell, sectionStyle)
	}
	return f.SetColWidth(sheet, "A", "B", 28)
}

func headerStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

func rowStyle(f *excelize.File, color string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
	})
}

func fmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func fmtDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func fmtTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func strPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func writeCombinedSheet(f *excelize.File, jobs []models.Job, radiators []models.Radiator) error {
	sheet := "Combined"
	headers := []interface{}{
		"Type", "Customer Name", "Contact Number", "Vehicle Registration", "Vehicle Make",
		"Vehicle Model", "Part Type", "Radiator Name", "Work Type", "Status",
		"Date Received", "Date Completed", "Invoice Number", "Notes", "Created At", "Updated At",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	header, err := headerStyle(f, combinedHeaderColor)
	if err != nil {
		return err
	}
	f.SetCellStyle(sheet, "A1", "P1", header)

	jobFill, err := rowStyle(f, jobRowColor)
	if err != nil {
		return err
	}
	radiatorFill, err := rowStyle(f, radiatorRowColor)
	if err != nil {
		return err
	}

	row := 2
	for _, job := range jobs {
		values := []interface{}{
			"Job", job.CustomerName, job.ContactNumber, job.VehicleRegistration,
			job.VehicleMake, job.VehicleModel, "", "", job.WorkType.Display(),
			string(job.Status), fmtDate(job.DateReceived), fmtDatePtr(job.DateCompleted),
			strPtr(job.InvoiceNumber), job.Notes, fmtTimestamp(job.CreatedAt), fmtTimestamp(job.UpdatedAt),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("P%d", row), jobFill)
		row++
	}
	for _, radiator := range radiators {
		values := []interface{}{
			"Radiator", radiator.CustomerName, radiator.ContactNumber, "", "", "",
			string(radiator.PartType), radiator.Name, "", string(radiator.Status),
			fmtDate(radiator.DateReceived), fmtDatePtr(radiator.DateCompleted),
			strPtr(radiator.InvoiceNumber), radiator.Notes,
			fmtTimestamp(radiator.CreatedAt), fmtTimestamp(radiator.UpdatedAt),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return err
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("P%d", row), radiatorFill)
		row++
	}

	return f.SetColWidth(sheet, "A", "P", 18)
}

func writeJobsSheet(f *excelize.File, jobs []models.Job) error {
	sheet := "Jobs"
	headers := []interface{}{
		"Customer Name", "Contact Number", "Vehicle Registration", "Vehicle Make",
		"Vehicle Model", "Work Type", "Status", "Date Received", "Date Completed",
		"Invoice Number", "Notes", "Created At", "Updated At",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	header, err := headerStyle(f, jobHeaderColor)
	if err != nil {
		return err
	}
	f.SetCellStyle(sheet, "A1", "M1", header)

	for i, job := range jobs {
		values := []interface{}{
			job.CustomerName, job.ContactNumber, job.VehicleRegistration,
			job.VehicleMake, job.VehicleModel, job.WorkType.Display(), string(job.Status),
			fmtDate(job.DateReceived), fmtDatePtr(job.DateCompleted),
			strPtr(job.InvoiceNumber), job.Notes, fmtTimestamp(job.CreatedAt), fmtTimestamp(job.UpdatedAt),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "M", 18)
}

func writeRadiatorsSheet(f *excelize.File, radiators []models.Radiator) error {
	sheet := "Radiators"
	headers := []interface{}{
		"Radiator Name", "Part Type", "Customer Name", "Contact Number", "Status",
		"Date Received", "Date Completed", "Invoice Number", "Notes", "Created At", "Updated At",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	header, err := headerStyle(f, radiatorHeaderColor)
	if err != nil {
		return err
	}
	f.SetCellStyle(sheet, "A1", "K1", header)

	for i, radiator := range radiators {
		values := []interface{}{
			radiator.Name, string(radiator.PartType), radiator.CustomerName,
			radiator.ContactNumber, string(radiator.Status),
			fmtDate(radiator.DateReceived), fmtDatePtr(radiator.DateCompleted),
			strPtr(radiator.InvoiceNumber), radiator.Notes,
			fmtTimestamp(radiator.CreatedAt), fmtTimestamp(radiator.UpdatedAt),
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &values); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheet, "A", "K", 18)
}
