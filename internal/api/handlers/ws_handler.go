package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/nextgencars/backend/internal/application"
	"github.com/nextgencars/backend/internal/config"
	"github.com/nextgencars/backend/internal/domain/user"
	"github.com/nextgencars/backend/internal/events"
	"github.com/nextgencars/backend/pkg/response"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range config.CORSOrigins {
			if o == "*" || o == origin {
				return true
			}
		}
		zap.L().Debug("websocket origin rejected", zap.String("origin", origin))
		return false
	},
}

// Subscriber is the source of live work-order events.
type Subscriber interface {
	Subscribe() (<-chan events.Event, func())
}

type WSHandler struct {
	hub Subscriber
}

func NewWSHandler(hub Subscriber) *WSHandler {
	return &WSHandler{hub: hub}
}

// WatchWorkOrders godoc
// @Summary Stream work-order changes over a websocket
// @Tags work-orders
// @Security BearerAuth
// @Success 101 {object} events.Event
// @Failure 401 {object} response.ErrorResponse
// @Router /ws/work-orders [get]
func (h *WSHandler) WatchWorkOrders(c *gin.Context) {
	caller := claims(c)
	if _, err := application.RequireRole(caller, user.ReadRoles); err != nil {
		response.Fail(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	stream, unsubscribe := h.hub.Subscribe()
	done := make(chan struct{})

	go func() {
		defer func() { _ = conn.Close() }()
		defer unsubscribe()

		pingTicker := time.NewTicker(pingPeriod)
		defer pingTicker.Stop()

		for {
			select {
			case ev, ok := <-stream:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if !ok {
					_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
					return
				}
				if err := conn.WriteJSON(ev); err != nil {
					return
				}
			case <-pingTicker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	conn.SetReadLimit(4 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Client messages are ignored; the loop only detects disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zap.L().Debug("websocket closed", zap.Uint("user_id", caller.UserID), zap.Error(err))
			}
			break
		}
	}
	close(done)
}
