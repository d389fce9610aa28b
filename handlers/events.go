package handlers

import (
	"log"
	"net/http"

	"smarthome-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// EventFeedHandler serves the live security-event feed. Subscribers connect
// over websocket and receive each newly stored security event as JSON.
type EventFeedHandler struct {
	mgr *ws.Manager
}

func NewEventFeedHandler(mgr *ws.Manager) *EventFeedHandler {
	return &EventFeedHandler{mgr: mgr}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleEventFeedWS upgrades to websocket and keeps the subscription open
// until the client disconnects.
// GET /ws
func (h *EventFeedHandler) HandleEventFeedWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	id := uuid.New().String()
	h.mgr.Register(id, conn)
	log.Printf("event feed subscriber connected: %s", id)

	// Ensure cleanup on exit
	defer func() {
		h.mgr.Unregister(id)
		log.Printf("event feed subscriber disconnected: %s", id)
	}()

	// The feed is one-way; the read loop only detects the client going away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("subscriber %s closed connection", id)
			}
			return
		}
	}
}

// GetSubscribers GET /ws/subscribers
func (h *EventFeedHandler) GetSubscribers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"subscribers": h.mgr.List(), "count": h.mgr.Count()})
}
