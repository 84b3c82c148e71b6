package notify

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	AddedMessage = "Added to Cart"
	DefaultTTL   = 4 * time.Second
)

// 「カートに追加しました」の一時通知
type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Title     string    `json:"title"`
	ImageRef  string    `json:"image_ref"`
	ShownAt   time.Time `json:"shown_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// 表示中の通知を持つ。一定時間で勝手に消える。
// カートの状態には触らない。
type ToastBoard struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	after  func(d time.Duration, f func())
	toasts map[string]map[string]Toast // owner → id → toast
}

func NewToastBoard(ttl time.Duration) *ToastBoard {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ToastBoard{
		ttl: ttl,
		now: time.Now,
		after: func(d time.Duration, f func()) {
			time.AfterFunc(d, f)
		},
		toasts: map[string]map[string]Toast{},
	}
}

// 表示して、ttl後に消す（取り消しはしない）
func (b *ToastBoard) Show(owner string, title string, imageRef string) Toast {
	now := b.now()
	t := Toast{
		ID:        uuid.NewString(),
		Message:   AddedMessage,
		Title:     title,
		ImageRef:  imageRef,
		ShownAt:   now,
		ExpiresAt: now.Add(b.ttl),
	}

	b.mu.Lock()
	if b.toasts[owner] == nil {
		b.toasts[owner] = map[string]Toast{}
	}
	b.toasts[owner][t.ID] = t
	b.mu.Unlock()

	b.after(b.ttl, func() { b.Dismiss(owner, t.ID) })
	return t
}

// 既に消えていても何もしない
func (b *ToastBoard) Dismiss(owner string, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	m, ok := b.toasts[owner]
	if !ok {
		return
	}
	delete(m, id)
	if len(m) == 0 {
		delete(b.toasts, owner)
	}
}

// 表示中の通知（古い順）
func (b *ToastBoard) Active(owner string) []Toast {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Toast, 0, len(b.toasts[owner]))
	for _, t := range b.toasts[owner] {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ShownAt.Before(out[j].ShownAt) })
	return out
}

// 1人分の通知口
type OwnerNotifier struct {
	board *ToastBoard
	owner string
}

func (b *ToastBoard) For(owner string) *OwnerNotifier {
	return &OwnerNotifier{board: b, owner: owner}
}

func (n *OwnerNotifier) NotifyAdded(title string, imageRef string) {
	n.board.Show(n.owner, title, imageRef)
}
