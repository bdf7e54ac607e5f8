package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type reportBody struct {
	ReportType string `json:"report_type"`
	ReportedID string `json:"reported_id"`
	Reason     string `json:"reason"`
}

func (h *handler) createReport(c *gin.Context) {
	var body reportBody
	if !bindJSON(c, &body) {
		return
	}

	report, err := h.reports.Create(c.Request.Context(), userFrom(c).ID, body.ReportType, body.ReportedID, body.Reason)
	if err != nil {
		h.fail(c, err)
		return
	}
	reportsFiled.WithLabelValues(report.ReportType).Inc()
	c.JSON(http.StatusOK, gin.H{"report": report, "success": true})
}

