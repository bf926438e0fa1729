// Package chat is a best-effort message relay between signed-in users.
// Presence is an ephemeral cache (in-process map mirrored to Redis with a
// TTL), never a source of truth; messages are persisted before fan-out but
// delivery itself is best-effort emit with no acknowledgements.
package chat

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"sync"
	"time"

	"hostel-backend/models"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

const (
	presenceTTL   = 60 * time.Second
	sendBuffer    = 32
	writeDeadline = 10 * time.Second
	pongWait      = 90 * time.Second
)

// Envelope is the wire format in both directions.
type Envelope struct {
	From    uint      `json:"from"`
	To      uint      `json:"to"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sentAt"`
}

type client struct {
	userID uint
	conn   *websocket.Conn

	mu     sync.Mutex // guards send against close
	closed bool
	send   chan Envelope
}

// enqueue queues env for the write pump. Returns false if the client is
// gone or its buffer is full (message dropped, best-effort semantics).
func (c *client) enqueue(env Envelope) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- env:
		return true
	default:
		return false
	}
}

func (c *client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// Hub keeps the user-id -> connection map and fans messages out.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]*client

	db  *gorm.DB
	rdb *redis.Client // optional
}

func NewHub(db *gorm.DB, rdb *redis.Client) *Hub {
	return &Hub{
		clients: make(map[uint]*client),
		db:      db,
		rdb:     rdb,
	}
}

// Register takes ownership of conn for the given user and starts the read
// and write pumps. A second connection for the same user replaces the first.
func (h *Hub) Register(userID uint, conn *websocket.Conn) {
	c := &client{userID: userID, conn: conn, send: make(chan Envelope, sendBuffer)}

	if old := h.add(c); old != nil {
		old.conn.Close()
	}
	h.markOnline(userID)

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) add(c *client) *client {
	h.mu.Lock()
	defer h.mu.Unlock()
	old := h.clients[c.userID]
	h.clients[c.userID] = c
	return old
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	if h.clients[c.userID] == c {
		delete(h.clients, c.userID)
	}
	h.mu.Unlock()
	h.markOffline(c.userID)
}

// Deliver hands env to the recipient's connection if one exists. Returns
// whether the message was queued; a full send buffer drops the message.
func (h *Hub) Deliver(to uint, env Envelope) bool {
	h.mu.RLock()
	c, ok := h.clients[to]
	h.mu.RUnlock()
	if !ok {
		return false
	}
	return c.enqueue(env)
}

// IsOnline checks local presence first, then the Redis mirror (for peers
// connected to another instance).
func (h *Hub) IsOnline(userID uint) bool {
	h.mu.RLock()
	_, ok := h.clients[userID]
	h.mu.RUnlock()
	if ok {
		return true
	}
	if h.rdb == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	n, err := h.rdb.Exists(ctx, presenceKey(userID)).Result()
	return err == nil && n > 0
}

// History returns the last limit messages between two users, oldest first.
func (h *Hub) History(a, b uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var msgs []models.ChatMessage
	err := h.db.
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)", a, b, b, a).
		Order("id DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	// reverse to chronological
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		c.closeSend()
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		h.markOnline(c.userID)
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil || env.To == 0 || env.Content == "" {
			continue
		}
		env.From = c.userID
		env.SentAt = time.Now().UTC()

		msg := models.ChatMessage{
			SenderID:    env.From,
			RecipientID: env.To,
			Content:     env.Content,
		}
		if err := h.db.Create(&msg).Error; err != nil {
			log.Printf("warning: failed to persist chat message: %v", err)
		}

		h.Deliver(env.To, env)
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(presenceTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case env, ok := <-c.send:
			if !ok {
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteJSON(env); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
			h.markOnline(c.userID)
		}
	}
}

func presenceKey(userID uint) string {
	return "chat:online:" + strconv.FormatUint(uint64(userID), 10)
}

func (h *Hub) markOnline(userID uint) {
	if h.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.rdb.Set(ctx, presenceKey(userID), "1", presenceTTL).Err(); err != nil {
		log.Printf("warning: presence refresh failed for user %d: %v", userID, err)
	}
}

func (h *Hub) markOffline(userID uint) {
	if h.rdb == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = h.rdb.Del(ctx, presenceKey(userID)).Err()
}
