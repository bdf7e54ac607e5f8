package services

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/dmitrijs2005/examhub/internal/dbx"
	"github.com/dmitrijs2005/examhub/internal/server/models"
	"github.com/dmitrijs2005/examhub/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// DefaultHideThreshold is the number of pending reports that hides an exam.
const DefaultHideThreshold = 3

type ReportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	threshold   int
}

// NewReportService uses DefaultHideThreshold when threshold is not positive.
func NewReportService(db *sql.DB, m repomanager.RepositoryManager, threshold int) *ReportService {
	if threshold <= 0 {
		threshold = DefaultHideThreshold
	}
	return &ReportService{db: db, repomanager: m, threshold: threshold}
}

// Create files a pending report. Exams collecting threshold pending reports
// are hidden in the same transaction.
func (s *ReportService) Create(ctx context.Context, reporterID, reportType, reportedID, reason string) (*models.Report, error) {
	reportedID = strings.TrimSpace(reportedID)
	switch {
	case reportType == "":
		return nil, common.Required("report_type")
	case reportType != models.ReportTypeExam && reportType != models.ReportTypeUser:
		return nil, common.Invalid("report_type", "must be exam or user")
	case reportedID == "":
		return nil, common.Required("reported_id")
	case !isID(reportedID):
		return nil, common.Invalid("reported_id", "must be a UUID")
	case reason == "":
		return nil, common.Required("reason")
	case !slices.Contains(models.ReportReasons, reason):
		return nil, common.Invalid("reason", "must be one of "+strings.Join(models.ReportReasons, ", "))
	}

	var report *models.Report
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		reports := s.repomanager.Reports(tx)
		var err error
		report, err = reports.Create(ctx, &models.Report{
			ID:         uuid.NewString(),
			ReporterID: reporterID,
			ReportType: reportType,
			ReportedID: reportedID,
			Reason:     reason,
			Status:     models.ReportStatusPending,
		})
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		if reportType != models.ReportTypeExam {
			return nil
		}

		n, err := reports.CountPending(ctx, reportType, reportedID)
		if err != nil {
			return err
		}
		if n >= s.threshold {
			if err := s.repomanager.Exams(tx).Hide(ctx, reportedID); err != nil {
				return fmt.Errorf("hide exam: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
