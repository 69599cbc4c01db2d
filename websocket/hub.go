package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

type Client struct {
	UserID string
	Conn   *websocket.Conn
}

// ProgressEvent reports fractional upload progress for one lesson's media.
type ProgressEvent struct {
	UserID   string  `json:"-"`
	ModuleID string  `json:"module_id"`
	LessonID string  `json:"lesson_id"`
	FileName string  `json:"file_name"`
	Percent  float64 `json:"percent"`
	Done     bool    `json:"done"`
	Error    string  `json:"error,omitempty"`
}

var clients = make(map[string]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Progress = make(chan ProgressEvent, 64)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Progress client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Progress client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Progress:
			clientsMu.RLock()
			conn, ok := clients[event.UserID]
			clientsMu.RUnlock()
			if !ok {
				continue
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("Error sending progress to client %s: %v", event.UserID, err)
				conn.Close()
				clientsMu.Lock()
				delete(clients, event.UserID)
				clientsMu.Unlock()
			}
		}
	}
}

// SendProgress publishes an event without blocking the uploader when no
// client is listening.
func SendProgress(event ProgressEvent) {
	select {
	case Progress <- event:
	default:
	}
}
