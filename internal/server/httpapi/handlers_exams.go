package httpapi

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/examhub/internal/common"
	"github.com/dmitrijs2005/examhub/internal/server/models"
	"github.com/dmitrijs2005/examhub/internal/server/services"
	"github.com/gin-gonic/gin"
)

type examBody struct {
	ID           string   `json:"id"`
	UniversityID string   `json:"university_id"`
	CourseID     string   `json:"course_id"`
	Year         int      `json:"year"`
	ExamType     string   `json:"exam_type"`
	TeacherName  string   `json:"teacher_name"`
	Title        string   `json:"title"`
	Files        []string `json:"files"`
}

func examFilter(c *gin.Context) (models.ExamFilter, error) {
	f := models.ExamFilter{
		UniversityID: c.Query("university_id"),
		CourseID:     c.Query("course_id"),
		UserID:       c.Query("user_id"),
		Search:       c.Query("search"),
	}
	if y := c.Query("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return f, common.Invalid("year", "must be a number")
		}
		f.Year = year
	}
	return f, nil
}

func (h *handler) listExams(c *gin.Context) {
	f, err := examFilter(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	list, err := h.exams.List(c.Request.Context(), userFrom(c).ID, c.Query("feed_type"), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exams": orEmpty(list)})
}

func (h *handler) getExam(c *gin.Context) {
	exam, err := h.exams.Get(c.Request.Context(), userFrom(c).ID, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exam": exam})
}

func (h *handler) createExam(c *gin.Context) {
	var body examBody
	if !bindJSON(c, &body) {
		return
	}

	exam, err := h.exams.Create(c.Request.Context(), userFrom(c).ID, services.ExamInput(body))
	if err != nil {
		h.fail(c, err)
		return
	}
	examsCreated.Inc()
	c.JSON(http.StatusOK, gin.H{"exam": exam, "success": true})
}

func (h *handler) like(c *gin.Context) {
	already, err := h.exams.Like(c.Request.Context(), userFrom(c).ID, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if already {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Already liked"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handler) unlike(c *gin.Context) {
	if err := h.exams.Unlike(c.Request.Context(), userFrom(c).ID, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
