package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(userID uint) *client {
	return &client{userID: userID, send: make(chan Envelope, sendBuffer)}
}

func TestDeliverToOfflineUser(t *testing.T) {
	h := NewHub(nil, nil)

	assert.False(t, h.Deliver(99, Envelope{From: 1, To: 99, Content: "hi"}))
}

func TestDeliverQueuesForConnectedClient(t *testing.T) {
	h := NewHub(nil, nil)
	c := newTestClient(2)
	h.add(c)

	env := Envelope{From: 1, To: 2, Content: "hello", SentAt: time.Now().UTC()}
	require.True(t, h.Deliver(2, env))

	got := <-c.send
	assert.Equal(t, env, got)
}

func TestDeliverDropsWhenBufferFull(t *testing.T) {
	h := NewHub(nil, nil)
	c := newTestClient(2)
	h.add(c)

	for i := 0; i < sendBuffer; i++ {
		require.True(t, c.enqueue(Envelope{To: 2, Content: "fill"}))
	}
	assert.False(t, h.Deliver(2, Envelope{To: 2, Content: "overflow"}))
}

func TestEnqueueAfterCloseIsSafe(t *testing.T) {
	c := newTestClient(3)
	c.closeSend()

	assert.False(t, c.enqueue(Envelope{To: 3, Content: "late"}))
	// double close must not panic
	c.closeSend()
}

func TestSecondConnectionReplacesFirst(t *testing.T) {
	h := NewHub(nil, nil)
	first := newTestClient(5)
	second := newTestClient(5)

	assert.Nil(t, h.add(first))
	old := h.add(second)
	require.Same(t, first, old)

	require.True(t, h.Deliver(5, Envelope{To: 5, Content: "ping"}))
	assert.Len(t, second.send, 1)
	assert.Empty(t, first.send)
}

func TestRemoveOnlyDropsOwnEntry(t *testing.T) {
	h := NewHub(nil, nil)
	first := newTestClient(5)
	second := newTestClient(5)
	h.add(first)
	h.add(second)

	// the stale client disconnecting must not evict its replacement
	h.remove(first)
	assert.True(t, h.IsOnline(5))

	h.remove(second)
	assert.False(t, h.IsOnline(5))
}
