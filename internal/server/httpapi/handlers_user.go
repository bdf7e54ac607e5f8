package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/examhub/internal/server/models"
	"github.com/gin-gonic/gin"
)

func (h *handler) verify(c *gin.Context) {
	user, err := h.users.Verify(c.Request.Context(), telegramUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "success": true})
}

func (h *handler) ownProfile(c *gin.Context) {
	me := userFrom(c)
	p, err := h.users.Profile(c.Request.Context(), me.ID, me.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": p})
}

func (h *handler) userProfile(c *gin.Context) {
	p, err := h.users.Profile(c.Request.Context(), c.Param("id"), userFrom(c).ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": p})
}

func (h *handler) updateProfile(c *gin.Context) {
	var upd models.ProfileUpdate
	if !bindJSON(c, &upd) {
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userFrom(c).ID, upd)
	if err != nil {
		h.fail(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "success": true})
}

func (h *handler) follow(c *gin.Context) {
	already, err := h.users.Follow(c.Request.Context(), userFrom(c).ID, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if already {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Already following"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handler) unfollow(c *gin.Context) {
	if err := h.users.Unfollow(c.Request.Context(), userFrom(c).ID, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// bindJSON decodes the body into dst. An empty body leaves dst zero.
func bindJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWith(c, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
