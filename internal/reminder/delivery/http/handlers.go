package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
)

// List godoc
// @Summary     List scheduled notifications
// @Description Returns the caller's notifications still held in the de-duplication cache.
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/notifications [GET]
func (h *handler) List(c *gin.Context) {
	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newListResp(h.uc.ScheduledNotifications(sc)))
}

// Clear godoc
// @Summary     Clear notifications
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} clearResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/notifications [DELETE]
func (h *handler) Clear(c *gin.Context) {
	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, clearResp{Cleared: h.uc.ClearNotifications(sc)})
}

// TriggerDaily godoc
// @Summary     Send today's digest now
// @Description Emits the caller's daily digest immediately, even if it was already sent today.
// @Tags        Notifications
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} triggerResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "No todos due today"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notifications/daily [POST]
func (h *handler) TriggerDaily(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	n, err := h.uc.TriggerDailyDigest(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.TriggerDailyDigest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, triggerResp{Notification: newNotificationResp(n)})
}

// Stream godoc
// @Summary     Stream notifications
// @Description Server-Sent Events stream of the caller's notifications (event "notification"), with periodic "ping" heartbeats.
// @Tags        Notifications
// @Produce     text/event-stream
// @Security    BearerAuth
// @Success     200 {string} string "SSE stream"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/notifications/stream [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	events, unsubscribe := h.uc.Subscribe(sc)
	defer unsubscribe()

	c.SSEvent("connected", gin.H{"user_id": sc.UserID})
	c.Writer.Flush()
	h.l.Debugf(ctx, "notifications.Stream: user %s connected", sc.UserID)

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			h.l.Debugf(ctx, "notifications.Stream: user %s disconnected", sc.UserID)
			return
		case n, ok := <-events:
			if !ok {
				return
			}
			c.SSEvent("notification", newNotificationResp(n))
			c.Writer.Flush()
		case <-heartbeat.C:
			c.SSEvent("ping", gin.H{"timestamp": time.Now().Unix()})
			c.Writer.Flush()
		}
	}
}
