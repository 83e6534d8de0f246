// Package ws difunde los cambios del tablero a los navegadores conectados
// para que varios usuarios vean el mismo estado sin recargar.
package ws

import (
	"encoding/json"

	"github.com/gofiber/contrib/websocket"

	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

// Tipos de evento difundidos por el hub.
const (
	EventTaskCreated   = "task_created"
	EventTaskUpdated   = "task_updated"
	EventTaskMoved     = "task_moved"
	EventTaskDeleted   = "task_deleted"
	EventColumnCreated = "column_created"
	EventColumnUpdated = "column_updated"
	EventColumnDeleted = "column_deleted"
)

// Event es el mensaje JSON que reciben los clientes.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Hub mantiene el conjunto de conexiones activas y les difunde eventos.
// Todo el estado se toca solo desde la goroutine de Run.
type Hub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	log        *logger.Logger
}

// NewHub construye el hub. Arrancar Run en una goroutine propia.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 16),
		log:        log,
	}
}

// Run procesa registros, bajas y difusiones hasta que el proceso termina.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true
		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				_ = conn.Close()
			}
		case msg := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					delete(h.clients, conn)
					_ = conn.Close()
				}
			}
		}
	}
}

// Broadcast serializa el evento y lo envía a todos los clientes conectados.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	msg, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		h.log.Error().Err(err).Str("event", eventType).Msg("No se pudo serializar el evento")
		return
	}
	h.broadcast <- msg
}

// Handler devuelve el handler websocket de Fiber: registra la conexión y la
// mantiene abierta leyendo (y descartando) mensajes hasta que el cliente cierra.
func (h *Hub) Handler() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		h.register <- conn
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
