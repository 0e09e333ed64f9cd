package handlers

import (
	"io"
	"sync"
	"time"

	"momentos/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

// Hub fans store changes out to every connected page.
type Hub struct {
	mu sync.RWMutex
	// connID -> subscriber
	subs map[string]*subscriber
	// per-frame write deadline; zero means none
	writeTimeout time.Duration
}

// subscriber serializes writes to one connection; websocket conns are not safe
// for concurrent writers.
type subscriber struct {
	mu sync.Mutex
	w  utils.JSONWriter
}

// deadliner is the part of *websocket.Conn the hub needs to bound a write.
type deadliner interface {
	SetWriteDeadline(t time.Time) error
}

// NewHub returns an empty hub. Every frame gets writeTimeout to reach its page;
// a page that misses it is dropped.
func NewHub(writeTimeout time.Duration) *Hub {
	return &Hub{
		subs:         make(map[string]*subscriber),
		writeTimeout: writeTimeout,
	}
}

// Register adds a connection and writes greeting() to it before any broadcast
// can reach it, so the first frame a page sees is never older than later ones.
func (h *Hub) Register(connID string, w utils.JSONWriter, greeting func() interface{}) error {
	s := &subscriber{w: w}
	s.mu.Lock()
	defer s.mu.Unlock()

	h.mu.Lock()
	h.subs[connID] = s
	h.mu.Unlock()

	if greeting == nil {
		return nil
	}
	return h.write(s, greeting())
}

func (h *Hub) Unregister(connID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, connID)
}

// Broadcast sends message to every connected page.
// A page whose write fails or times out is unregistered and its connection closed,
// which also ends its read loop.
func (h *Hub) Broadcast(message interface{}) {
	h.mu.RLock()
	ids := make([]string, 0, len(h.subs))
	targets := make([]*subscriber, 0, len(h.subs))
	for id, s := range h.subs {
		ids = append(ids, id)
		targets = append(targets, s)
	}
	h.mu.RUnlock()

	for i, s := range targets {
		s.mu.Lock()
		err := h.write(s, message)
		s.mu.Unlock()
		if err != nil {
			utils.LogError(err, "Broadcast")
			h.drop(ids[i], s)
		}
	}
}

// Count returns the number of connected pages
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) write(s *subscriber, message interface{}) error {
	if d, ok := s.w.(deadliner); ok && h.writeTimeout > 0 {
		if err := d.SetWriteDeadline(time.Now().Add(h.writeTimeout)); err != nil {
			return err
		}
	}
	return utils.SendJSON(s.w, message)
}

func (h *Hub) drop(connID string, s *subscriber) {
	h.mu.Lock()
	// the id may already belong to a newer registration
	if h.subs[connID] == s {
		delete(h.subs, connID)
	}
	h.mu.Unlock()

	if c, ok := s.w.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Debugw("close after failed write", "conn_id", connID, "error", err)
		}
	}
}
