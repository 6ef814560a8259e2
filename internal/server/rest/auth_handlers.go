package rest

import (
	"net/http"

	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/dmitrijs2005/jobmatch/internal/models"
	"github.com/gin-gonic/gin"
)

type authHandler struct {
	users UserService
	log   logging.Logger
}

func (h *authHandler) register(c *gin.Context) {
	var req models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.users.Register(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *authHandler) login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.users.Login(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *authHandler) resumeLogin(c *gin.Context) {
	var req models.ResumeLoginRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.users.ResumeLogin(c.Request.Context(), &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// logout succeeds even without a valid token; there is nothing to revoke then.
func (h *authHandler) logout(c *gin.Context) {
	if claims, ok := claimsFrom(c); ok {
		if err := h.users.Logout(c.Request.Context(), claims); err != nil {
			writeError(c, h.log, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *authHandler) me(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	u, err := h.users.Me(c.Request.Context(), caller.ID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *authHandler) profile(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	p, err := h.users.Profile(c.Request.Context(), caller.ID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *authHandler) updateProfile(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req models.ProfileUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	p, err := h.users.UpdateProfile(c.Request.Context(), caller.ID, &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
