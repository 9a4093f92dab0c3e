// Package sse writes landing snapshots to a client as Server-Sent Events.
package sse

import (
	"net/http"
	"time"

	resdto "offer-landing/internal/handler/dto/response"
	"offer-landing/internal/usecase/landing"

	"github.com/gin-gonic/gin"
)

const (
	EventSnapshot = "snapshot"
	EventClose    = "close"

	// ContentType is what gin's SSE renderer writes on every event.
	ContentType = "text/event-stream;charset=utf-8"
)

// Stream sends one snapshot event per value received on ch until the client
// goes away or ch is closed, which ends the stream with a close event.
// keepAlive > 0 adds a ping event on that period so proxies keep the
// connection open.
func Stream(c *gin.Context, ch <-chan landing.Snapshot, keepAlive time.Duration) {
	h := c.Writer.Header()
	h.Set("Content-Type", ContentType)
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	var ping <-chan time.Time
	if keepAlive > 0 {
		t := time.NewTicker(keepAlive)
		defer t.Stop()
		ping = t.C
	}

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ping:
			c.SSEvent("ping", "")
			c.Writer.Flush()
		case snap, ok := <-ch:
			if !ok {
				c.SSEvent(EventClose, "")
				c.Writer.Flush()
				return
			}
			c.SSEvent(EventSnapshot, resdto.FromSnapshot(snap))
			c.Writer.Flush()
		}
	}
}
