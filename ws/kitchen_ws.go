package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/RubensDuarte2025/Julius-rmd/entity"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// KitchenHub fans ticket events out to connected kitchen dashboards. Clients
// still poll GET /kitchen/tickets for the authoritative queue; this feed just
// tells them when to refresh.
type KitchenHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan TicketEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

type TicketEvent struct {
	Event         string    `json:"event"` // "queued" | "status_changed"
	TicketID      uint      `json:"ticketId"`
	SourceType    string    `json:"sourceType"`
	SourceID      uint      `json:"sourceId"`
	CustomerLabel string    `json:"customerLabel"`
	Status        string    `json:"status"`
	EnteredAt     time.Time `json:"enteredAt"`
}

func NewKitchenHub() *KitchenHub {
	return &KitchenHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan TicketEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *KitchenHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// TicketQueued implements services.TicketNotifier.
func (h *KitchenHub) TicketQueued(t *entity.KitchenTicket) {
	h.publish("queued", t)
}

// TicketStatusChanged implements services.TicketNotifier.
func (h *KitchenHub) TicketStatusChanged(t *entity.KitchenTicket) {
	h.publish("status_changed", t)
}

func (h *KitchenHub) publish(event string, t *entity.KitchenTicket) {
	ev := TicketEvent{
		Event:         event,
		TicketID:      t.ID,
		SourceType:    t.SourceType,
		SourceID:      t.SourceID,
		CustomerLabel: t.CustomerLabel,
		Status:        t.Status,
		EnteredAt:     t.EnteredAt,
	}
	select {
	case h.broadcast <- ev:
	default:
		// a stalled hub must not block a payment or item transaction
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/kitchen
func (h *KitchenHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- conn

	// drain reads so close frames are processed; the board is write-only
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.unregister <- conn
				return
			}
		}
	}()
}
