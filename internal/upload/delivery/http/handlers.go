package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/upload"
	"smart-todo/pkg/response"
)

// UploadImage godoc
// @Summary     Upload a todo image
// @Tags        Uploads
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "Image file"
// @Success     201 {object} uploadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     413 {object} response.Resp "File too large"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/uploads/images [POST]
func (h *handler) UploadImage(c *gin.Context) {
	h.upload(c, upload.KindImage)
}

// UploadVoiceNote godoc
// @Summary     Upload a recorded voice note
// @Description Stores the audio blob as voice_note.webm under the caller's prefix.
// @Tags        Uploads
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "Audio recording"
// @Success     201 {object} uploadResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     413 {object} response.Resp "File too large"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/uploads/voice-notes [POST]
func (h *handler) UploadVoiceNote(c *gin.Context) {
	h.upload(c, upload.KindVoiceNote)
}

func (h *handler) upload(c *gin.Context, kind upload.Kind) {
	ctx := c.Request.Context()

	sc, input, f, err := h.processUploadRequest(c, kind)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	o, err := h.uc.Upload(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "upload.http.upload.uc.Upload: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newUploadResp(o))
}

// Remove godoc
// @Summary     Delete an uploaded object
// @Tags        Uploads
// @Produce     json
// @Security    BearerAuth
// @Param       kind path string true "images or voice-notes"
// @Param       key  path string true "Object key returned by the upload"
// @Success     200 {object} removeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/uploads/{kind}/{key} [DELETE]
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processRemoveRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Remove(ctx, sc, input); err != nil {
		h.l.Errorf(ctx, "upload.http.Remove.uc.Remove: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, removeResp{Deleted: true})
}
