// Package web provides the server-sent-event stream of reservation outcomes
package web

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/sse"

	"github.com/IngridGit24/MeetingPlanner/internal/service"
)

// SSEClient represents a connected client receiving server-sent events
type SSEClient struct {
	id             string
	responseWriter http.ResponseWriter
	flusher        http.Flusher
	disconnected   chan struct{}
	lastActive     time.Time
}

// SSEManager fans reservation events out to connected clients
type SSEManager struct {
	clients      map[string]*SSEClient
	clientsMutex sync.RWMutex
	shutdown     chan struct{}
	shutdownOnce sync.Once
}

// NewSSEManager creates a new server-sent events manager
func NewSSEManager() *SSEManager {
	manager := &SSEManager{
		clients:  make(map[string]*SSEClient),
		shutdown: make(chan struct{}),
	}

	// Sweep clients that stopped reading without a clean disconnect
	go manager.cleanupStaleClients()

	return manager
}

// Shutdown closes all client connections and stops the cleanup loop
func (sm *SSEManager) Shutdown() {
	sm.shutdownOnce.Do(func() {
		close(sm.shutdown)

		sm.clientsMutex.Lock()
		defer sm.clientsMutex.Unlock()
		for id, client := range sm.clients {
			close(client.disconnected)
			delete(sm.clients, id)
		}
	})
}

// cleanupStaleClients periodically removes clients that haven't been active
func (sm *SSEManager) cleanupStaleClients() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-sm.shutdown:
			return
		case <-ticker.C:
			threshold := time.Now().Add(-2 * time.Minute)

			sm.clientsMutex.Lock()
			for id, client := range sm.clients {
				if client.lastActive.Before(threshold) {
					close(client.disconnected)
					delete(sm.clients, id)
					log.Printf("Removed stale SSE client: %s", id)
				}
			}
			sm.clientsMutex.Unlock()
		}
	}
}

// ServeHTTP implements the http.Handler interface for SSE connections
func (sm *SSEManager) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Required headers for SSE; X-Accel-Buffering disables proxy buffering
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache, no-transform")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	clientID := fmt.Sprintf("%d", time.Now().UnixNano())
	log.Printf("SSE client connected: %s from %s", clientID, r.RemoteAddr)

	client := &SSEClient{
		id:             clientID,
		responseWriter: w,
		flusher:        flusher,
		disconnected:   make(chan struct{}),
		lastActive:     time.Now(),
	}

	sm.clientsMutex.Lock()
	sm.clients[clientID] = client
	sm.clientsMutex.Unlock()

	defer func() {
		sm.clientsMutex.Lock()
		delete(sm.clients, clientID)
		sm.clientsMutex.Unlock()
		log.Printf("SSE client disconnected: %s", clientID)
	}()

	// Retry directive and an initial event so the client knows it is attached
	fmt.Fprintf(w, "retry: 5000\n")
	sse.Encode(w, sse.Event{
		Event: "connected",
		Data:  map[string]string{"id": clientID},
	})
	flusher.Flush()

	heartbeat := time.NewTicker(15 * time.Second)
	defer heartbeat.Stop()

	done := r.Context().Done()

	for {
		select {
		case <-done:
			return
		case <-client.disconnected:
			return
		case <-heartbeat.C:
			// A comment line is the lightest keep-alive the protocol allows
			if _, err := fmt.Fprintf(w, ": heartbeat %s\n\n", time.Now().Format(time.RFC3339)); err != nil {
				log.Printf("Error sending heartbeat to client %s: %v", clientID, err)
				return
			}
			flusher.Flush()

			sm.clientsMutex.Lock()
			client.lastActive = time.Now()
			sm.clientsMutex.Unlock()
		}
	}
}

// NotifyReservation sends a reservation outcome to all connected clients.
// It satisfies service.ReservationUpdateCallback via RegisterUpdateCallback.
func (sm *SSEManager) NotifyReservation(event service.ReservationEvent) {
	eventID := fmt.Sprintf("%d", time.Now().UnixNano())

	sm.clientsMutex.RLock()
	clients := make([]*SSEClient, 0, len(sm.clients))
	for _, client := range sm.clients {
		clients = append(clients, client)
	}
	sm.clientsMutex.RUnlock()

	log.Printf("Publishing reservation event for room %s to %d clients", event.RoomID, len(clients))

	var dead []string
	for _, client := range clients {
		select {
		case <-client.disconnected:
			continue
		default:
		}

		err := sse.Encode(client.responseWriter, sse.Event{
			Id:    eventID,
			Event: "reservation",
			Data:  event,
		})
		if err != nil {
			log.Printf("Error sending SSE event to client %s: %v", client.id, err)
			dead = append(dead, client.id)
			continue
		}

		client.flusher.Flush()

		sm.clientsMutex.Lock()
		client.lastActive = time.Now()
		sm.clientsMutex.Unlock()
	}

	if len(dead) > 0 {
		sm.clientsMutex.Lock()
		for _, id := range dead {
			if client, exists := sm.clients[id]; exists {
				close(client.disconnected)
				delete(sm.clients, id)
			}
		}
		sm.clientsMutex.Unlock()
	}
}
