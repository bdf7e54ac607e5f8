package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/examhub/internal/server/services"
	"github.com/gin-gonic/gin"
)

type uploadURLBody struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Path        string `json:"path"`
}

func (h *handler) uploadURL(c *gin.Context) {
	var body uploadURLBody
	if !bindJSON(c, &body) {
		return
	}

	up, err := h.uploads.URL(c.Request.Context(), userFrom(c).ID, services.UploadRequest(body))
	if err != nil {
		h.fail(c, err)
		return
	}
	uploadURLsIssued.Inc()
	c.JSON(http.StatusOK, gin.H{"signed_url": up.URL, "path": up.Key, "token": up.Token})
}

func (h *handler) confirmUpload(c *gin.Context) {
	var body struct {
		Path string `json:"path"`
	}
	if !bindJSON(c, &body) {
		return
	}

	url, err := h.uploads.Confirm(userFrom(c).ID, body.Path)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
