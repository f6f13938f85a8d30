package handlers

import (
	"log"
	"net/http"

	"placement-prep-backend/internal/practice"
	"placement-prep-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub     *ws.Hub
	manager *practice.Manager
}

func NewWSHandler(hub *ws.Hub, manager *practice.Manager) *WSHandler {
	return &WSHandler{hub: hub, manager: manager}
}

// HandleWebSocket streams state snapshots for one practice session. The
// current state is sent immediately on connect so late subscribers do not
// miss the submitting to result edge.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	sessionID := c.Param("id")

	controller, err := h.manager.Get(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: upgrade failed: %v", err)
		return
	}

	h.hub.AddConnection(sessionID, conn)
	h.hub.Broadcast(sessionID, ws.WSMessage{Type: "state", Data: controller.View()})

	// Reads are only for detecting the client going away.
	go func() {
		defer h.hub.RemoveConnection(sessionID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
