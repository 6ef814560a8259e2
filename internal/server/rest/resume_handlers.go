package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/jobmatch/internal/logging"
	"github.com/gin-gonic/gin"
)

// ResumeFileField is the multipart field carrying the uploaded file.
const ResumeFileField = "file"

// multipartSlack covers boundaries and part headers on top of the file.
const multipartSlack = 64 << 10

type resumeHandler struct {
	resumes ResumeService
	maxSize int64
	log     logging.Logger
}

func (h *resumeHandler) upload(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxSize+multipartSlack)

	fh, err := c.FormFile(ResumeFileField)
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			respondError(c, http.StatusRequestEntityTooLarge, msgTooLarge)
			return
		}
		respondError(c, http.StatusBadRequest, "Missing file")
		return
	}
	if fh.Size > h.maxSize {
		respondError(c, http.StatusRequestEntityTooLarge, msgTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxSize+1))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	resp, err := h.resumes.Upload(c.Request.Context(), caller.ID, fh.Filename, data)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *resumeHandler) list(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	list, err := h.resumes.List(c.Request.Context(), caller.ID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *resumeHandler) get(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	r, err := h.resumes.Get(c.Request.Context(), caller.ID, id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *resumeHandler) delete(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.resumes.Delete(c.Request.Context(), caller.ID, id); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
