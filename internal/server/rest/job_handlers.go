package rest

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/dmitrijs2005/jobmatch/internal/models"
	"github.com/gin-gonic/gin"
)

type jobHandler struct {
	jobs JobService
	log  logging.Logger
}

// pathID parses the :id segment, answering 400 when it is not a positive integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, msgInvalidID)
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return n
}

func (h *jobHandler) list(c *gin.Context) {
	filters := &models.JobSearchFilters{
		Keyword:         c.Query("keyword"),
		Location:        c.Query("location"),
		Company:         c.Query("company"),
		JobType:         c.Query("jobType"),
		ExperienceLevel: c.Query("experienceLevel"),
		Page:            queryInt(c, "page"),
		Size:            queryInt(c, "size"),
	}
	h.respondPage(c, filters)
}

func (h *jobHandler) search(c *gin.Context) {
	var filters models.JobSearchFilters
	if !bindJSON(c, &filters) {
		return
	}
	h.respondPage(c, &filters)
}

func (h *jobHandler) respondPage(c *gin.Context, filters *models.JobSearchFilters) {
	page, err := h.jobs.List(c.Request.Context(), filters)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *jobHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	job, err := h.jobs.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *jobHandler) create(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req models.JobCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.jobs.Create(c.Request.Context(), caller.Email, &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *jobHandler) update(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req models.JobUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.jobs.Update(c.Request.Context(), id, caller.Email, &req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *jobHandler) delete(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.jobs.Delete(c.Request.Context(), id, caller.Email); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
