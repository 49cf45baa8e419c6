package state

import (
	"sync"
	"time"
)

// BannerKind defines the type for transient feedback banners
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
)

// DefaultBannerDismiss is how long a banner stays up before auto-dismissing.
const DefaultBannerDismiss = 4500 * time.Millisecond

// Banner is one transient user-facing notification.
type Banner struct {
	Kind    BannerKind
	Message string
}

// Notifier holds the single visible banner for a screen. Showing a new banner
// replaces the current one and cancels its pending dismiss timer, so a banner
// never dismisses a successor it doesn't own.
type Notifier struct {
	mu       sync.Mutex
	current  *Banner
	timer    *time.Timer
	dismiss  time.Duration
	onChange func(*Banner)
}

// NewNotifier creates a Notifier. A non-positive dismiss duration selects the
// default. onChange, when non-nil, is invoked with the new banner (or nil on
// dismiss) so a front end can re-render.
func NewNotifier(dismiss time.Duration, onChange func(*Banner)) *Notifier {
	if dismiss <= 0 {
		dismiss = DefaultBannerDismiss
	}
	return &Notifier{dismiss: dismiss, onChange: onChange}
}

// Show displays a banner, replacing any current one and restarting the
// auto-dismiss countdown.
func (n *Notifier) Show(kind BannerKind, message string) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	banner := &Banner{Kind: kind, Message: message}
	n.current = banner
	n.timer = time.AfterFunc(n.dismiss, func() {
		n.clearIf(banner)
	})
	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		onChange(banner)
	}
}

// Dismiss removes the current banner immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		onChange(nil)
	}
}

// Current returns the visible banner, or nil.
func (n *Notifier) Current() *Banner {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// clearIf dismisses only if the given banner is still the visible one; a
// replacement banner owns its own timer.
func (n *Notifier) clearIf(banner *Banner) {
	n.mu.Lock()
	if n.current != banner {
		n.mu.Unlock()
		return
	}
	n.current = nil
	n.timer = nil
	onChange := n.onChange
	n.mu.Unlock()

	if onChange != nil {
		onChange(nil)
	}
}
