package models

import "time"

const (
	ReportTypeExam = "exam"
	ReportTypeUser = "user"

	ReportStatusPending = "pending"
)

// ReportReasons are the accepted values of Report.Reason.
var ReportReasons = []string{"wrong_content", "spam", "copyright", "other"}

type Report struct {
	ID         string    `json:"id"`
	ReporterID string    `json:"reporter_id"`
	ReportType string    `json:"report_type"`
	ReportedID string    `json:"reported_id"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
