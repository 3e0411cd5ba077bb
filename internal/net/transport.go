package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"LocalMeasure/internal/store"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

const peerBuffer = 16

// Message is one event on the record feed.
type Message struct {
	Type    string         `json:"type"`
	Record  *store.Record  `json:"record,omitempty"`
	ID      string         `json:"id,omitempty"`
	Records []store.Record `json:"records,omitempty"`
}

const (
	TypeSnapshot = "snapshot"
	TypeSaved    = "saved"
	TypeDeleted  = "deleted"
	TypeCleared  = "cleared"
)

// Lister supplies the record log for snapshots.
type Lister interface {
	List() []store.Record
}

// Peer is a connected feed viewer.
type Peer struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub mirrors the record log to websocket viewers on the local network.
// It is read-only: viewers cannot change records.
type Hub struct {
	source   Lister
	peers    map[string]*Peer
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

func NewHub(source Lister) *Hub {
	return &Hub{
		source: source,
		peers:  make(map[string]*Peer),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Router serves GET /records and the /ws stream.
func (h *Hub) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/records", h.serveRecords).Methods(http.MethodGet)
	r.HandleFunc("/ws", h.serveWS)
	return r
}

// Count returns the number of connected viewers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

func (h *Hub) RecordSaved(r store.Record) {
	h.Broadcast(Message{Type: TypeSaved, Record: &r})
}

func (h *Hub) RecordDeleted(id string) {
	h.Broadcast(Message{Type: TypeDeleted, ID: id})
}

func (h *Hub) RecordsCleared() {
	h.Broadcast(Message{Type: TypeCleared})
}

// Broadcast queues msg for every viewer. Viewers whose queue is full are
// disconnected.
func (h *Hub) Broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[FEED] Error encoding %s message: %v", msg.Type, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for addr, p := range h.peers {
		select {
		case p.send <- data:
		default:
			log.Printf("[FEED] Dropping slow viewer %s", addr)
			h.removeLocked(addr)
		}
	}
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for addr := range h.peers {
		h.removeLocked(addr)
	}
}

func (h *Hub) serveRecords(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.source.List()); err != nil {
		log.Printf("[FEED] Error writing records: %v", err)
	}
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[FEED] Upgrade failed: %v", err)
		return
	}
	addr := conn.RemoteAddr().String()
	p := &Peer{conn: conn, send: make(chan []byte, peerBuffer)}

	// The snapshot and registration share the lock so no broadcast falls
	// between them.
	h.mu.Lock()
	snapshot, err := json.Marshal(Message{Type: TypeSnapshot, Records: h.source.List()})
	if err != nil {
		h.mu.Unlock()
		log.Printf("[FEED] Error encoding snapshot: %v", err)
		conn.Close()
		return
	}
	p.send <- snapshot
	h.peers[addr] = p
	h.mu.Unlock()
	log.Printf("[FEED] Viewer connected from %s", addr)

	go h.writeLoop(p)
	h.readLoop(addr, p)
}

func (h *Hub) writeLoop(p *Peer) {
	defer p.conn.Close()
	for data := range p.send {
		p.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("[FEED] Error sending to %s: %v", p.conn.RemoteAddr(), err)
			return
		}
	}
	p.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readLoop discards input; it exists to notice when the viewer goes away.
func (h *Hub) readLoop(addr string, p *Peer) {
	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			h.mu.Lock()
			if h.peers[addr] == p {
				h.removeLocked(addr)
			}
			h.mu.Unlock()
			log.Printf("[FEED] Viewer %s disconnected: %v", addr, err)
			return
		}
	}
}

func (h *Hub) removeLocked(addr string) {
	if p, ok := h.peers[addr]; ok {
		delete(h.peers, addr)
		close(p.send)
	}
}

// Serve runs the feed on port until ctx is cancelled.
func Serve(ctx context.Context, port int, h *Hub) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("[FEED] Listening on port %d", port)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("record feed: %w", err)
	case <-ctx.Done():
		h.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
