package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type nameBody struct {
	Name string `json:"name"`
}

func (h *handler) listUniversities(c *gin.Context) {
	list, err := h.catalog.Universities(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"universities": orEmpty(list)})
}

func (h *handler) createUniversity(c *gin.Context) {
	var body nameBody
	if !bindJSON(c, &body) {
		return
	}
	u, err := h.catalog.AddUniversity(c.Request.Context(), body.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"university": u, "success": true})
}

func (h *handler) listCourses(c *gin.Context) {
	list, err := h.catalog.Courses(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": orEmpty(list)})
}

func (h *handler) createCourse(c *gin.Context) {
	var body nameBody
	if !bindJSON(c, &body) {
		return
	}
	course, err := h.catalog.AddCourse(c.Request.Context(), body.Name)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course, "success": true})
}
