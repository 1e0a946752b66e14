package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
)

// Sync godoc
// @Summary     Sync a todo with Google Calendar
// @Description Applies create, update or delete to the todo's calendar event. Requires X-Provider-Token or server credentials.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       X-Provider-Token header string  false "Google OAuth access token"
// @Param       body             body   syncReq true  "Todo and action"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.Resp "Invalid action"
// @Failure     403 {object} response.Resp "Google Calendar access not available"
// @Failure     404 {object} response.Resp "Todo not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Sync(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Sync: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSyncResp(output))
}

// ListEvents godoc
// @Summary     List calendar events
// @Description Lists events on the configured calendar. Defaults to the next 30 days.
// @Tags        Calendar
// @Produce     json
// @Security    BearerAuth
// @Param       from query string false "Start (YYYY-MM-DD or RFC3339)"
// @Param       to   query string false "End (YYYY-MM-DD or RFC3339)"
// @Success     200 {object} listEventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Google Calendar access not available"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListEventsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.uc.ListEvents(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListEventsResp(events))
}
