package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nextgencars/backend/internal/application"
	"github.com/nextgencars/backend/pkg/errcode"
	"github.com/nextgencars/backend/pkg/response"
)

type AttachmentHandler struct {
	svc *application.AttachmentService
}

func NewAttachmentHandler(svc *application.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

func (h *AttachmentHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, application.ErrStorageDisabled) {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: err.Error(), Code: errcode.Internal})
		return
	}
	response.Fail(c, err)
}

// ListAttachments godoc
// @Summary List files of a work order
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Work order ID"
// @Success 200 {array} attachment.Attachment
// @Failure 404 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse "Storage not configured"
// @Router /work-orders/{id}/attachments [get]
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	items, err := h.svc.List(c.Request.Context(), claims(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// UploadAttachment godoc
// @Summary Attach a file to a work order
// @Tags attachments
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Work order ID"
// @Param file formData file true "File (max 20 MiB)"
// @Success 201 {object} attachment.Attachment
// @Failure 400 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse "Storage not configured"
// @Router /work-orders/{id}/attachments [post]
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if !h.svc.Enabled() {
		h.fail(c, application.ErrStorageDisabled)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, application.MaxAttachmentSize+1<<20)
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required and must not exceed 20 MiB")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.BadRequest(c, "unreadable file")
		return
	}
	defer f.Close()

	a, err := h.svc.Upload(c.Request.Context(), claims(c), id, application.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// DeleteAttachment godoc
// @Summary Remove a file from a work order
// @Tags attachments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Work order ID"
// @Param attachmentId path int true "Attachment ID"
// @Success 200 {object} response.DeletedResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /work-orders/{id}/attachments/{attachmentId} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	attID, ok := idParam(c, "attachmentId")
	if !ok {
		return
	}
	deleted, err := h.svc.Delete(c.Request.Context(), claims(c), id, attID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.DeletedResponse{Deleted: deleted})
}
