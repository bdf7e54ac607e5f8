package models

import "time"

const (
	ReportTypeExam = "exam"
	ReportTypeUser = "user"
)

const (
	ReasonWrongContent = "wrong_content"
	ReasonSpam         = "spam"
	ReasonCopyright    = "copyright"
	ReasonOther        = "other"
)

type Report struct {
	ID         string    `json:"id"`
	ReporterID string    `json:"reporter_id"`
	ReportType string    `json:"report_type"`
	ReportedID string    `json:"reported_id"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type NewReport struct {
	ReportType string `json:"report_type"`
	ReportedID string `json:"reported_id"`
	Reason     string `json:"reason"`
}
