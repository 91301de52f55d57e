package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerAcquire(t *testing.T) {
	t.Parallel()

	t.Run("empty id starts a fresh session", func(t *testing.T) {
		m := NewManager()
		id, store := m.Acquire("")
		require.NotEmpty(t, id)
		require.NotNil(t, store)
		assert.Equal(t, 1, m.SessionCount())
	})

	t.Run("same id returns the same store", func(t *testing.T) {
		m := NewManager()
		id, store := m.Acquire("")
		store.AddItem(newProduct("Mango Tree Seedling", 450), 2)

		sameID, same := m.Acquire(id)
		assert.Equal(t, id, sameID)
		assert.Equal(t, 1, same.LineCount())
	})

	t.Run("unknown id is honored for the new session", func(t *testing.T) {
		m := NewManager()
		id, _ := m.Acquire("visitor-abc")
		assert.Equal(t, "visitor-abc", id)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		m := NewManager()
		_, a := m.Acquire("a")
		_, b := m.Acquire("b")
		a.AddItem(newProduct("Mango Tree Seedling", 450), 1)
		assert.Zero(t, b.LineCount())
	})
}

func TestManagerDrop(t *testing.T) {
	t.Parallel()

	m := NewManager()
	id, store := m.Acquire("")
	store.AddItem(newProduct("Mango Tree Seedling", 450), 1)

	m.Drop(id)

	_, fresh := m.Acquire(id)
	assert.Zero(t, fresh.LineCount())
}

func TestManagerEvictsIdleSessions(t *testing.T) {
	t.Parallel()

	now := time.Now()
	m := NewManager()
	m.now = func() time.Time { return now }

	id, store := m.Acquire("")
	store.AddItem(newProduct("Mango Tree Seedling", 450), 3)

	// beyond the TTL the session is swept on the next acquire
	m.now = func() time.Time { return now.Add(defaultSessionTTL + time.Minute) }
	_, fresh := m.Acquire(id)
	assert.Zero(t, fresh.LineCount())
}
