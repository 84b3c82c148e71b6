package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// タイマーを手で動かせるボード
func newManualBoard(ttl time.Duration) (*ToastBoard, *[]func()) {
	pending := []func(){}
	b := NewToastBoard(ttl)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b.now = func() time.Time {
		clock = clock.Add(time.Millisecond)
		return clock
	}
	b.after = func(d time.Duration, f func()) { pending = append(pending, f) }
	return b, &pending
}

func TestToastBoard_ShowAndAutoDismiss(t *testing.T) {
	b, pending := newManualBoard(time.Second)

	toast := b.Show("v1", "Mug", "mug.png")
	assert.Equal(t, AddedMessage, toast.Message)
	assert.Equal(t, time.Second, toast.ExpiresAt.Sub(toast.ShownAt))

	active := b.Active("v1")
	require.Len(t, active, 1)
	assert.Equal(t, "Mug", active[0].Title)
	assert.Empty(t, b.Active("v2"))

	require.Len(t, *pending, 1)
	(*pending)[0]()
	assert.Empty(t, b.Active("v1"))

	// 2回目のタイマー発火や手動削除後の発火でも落ちない
	(*pending)[0]()
}

func TestToastBoard_OrderAndDismiss(t *testing.T) {
	b, _ := newManualBoard(time.Second)

	first := b.Show("v1", "Mug", "")
	b.Show("v1", "Tea", "")

	active := b.Active("v1")
	require.Len(t, active, 2)
	assert.Equal(t, "Mug", active[0].Title)
	assert.Equal(t, "Tea", active[1].Title)

	b.Dismiss("v1", first.ID)
	b.Dismiss("v1", first.ID)
	b.Dismiss("nobody", "x")
	require.Len(t, b.Active("v1"), 1)
}

func TestToastBoard_DefaultTTL(t *testing.T) {
	b := NewToastBoard(0)
	assert.Equal(t, DefaultTTL, b.ttl)
}

func TestToastBoard_RealTimer(t *testing.T) {
	b := NewToastBoard(20 * time.Millisecond)
	b.For("v1").NotifyAdded("Mug", "mug.png")
	require.Len(t, b.Active("v1"), 1)

	assert.Eventually(t, func() bool { return len(b.Active("v1")) == 0 }, time.Second, 5*time.Millisecond)
}
