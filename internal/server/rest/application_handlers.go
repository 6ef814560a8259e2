package rest

import (
	"net/http"

	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/dmitrijs2005/jobmatch/internal/models"
	"github.com/gin-gonic/gin"
)

type applicationHandler struct {
	apps ApplicationService
	log  logging.Logger
}

func (h *applicationHandler) list(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	apps, err := h.apps.List(c.Request.Context(), caller)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *applicationHandler) create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req models.ApplicationCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	app, err := h.apps.Create(c.Request.Context(), caller, &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *applicationHandler) get(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	app, err := h.apps.Get(c.Request.Context(), caller, id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *applicationHandler) update(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.ApplicationUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	app, err := h.apps.Update(c.Request.Context(), caller, id, &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
