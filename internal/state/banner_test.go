package state

import (
	"sync"
	"testing"
	"time"
)

func TestBannerAutoDismiss(t *testing.T) {
	n := NewNotifier(50*time.Millisecond, nil)
	n.Show(BannerSuccess, "hecho")

	if b := n.Current(); b == nil || b.Message != "hecho" {
		t.Fatalf("current = %+v", b)
	}

	deadline := time.After(2 * time.Second)
	for n.Current() != nil {
		select {
		case <-deadline:
			t.Fatal("banner never auto-dismissed")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
}

func TestBannerReplaceCancelsPriorTimer(t *testing.T) {
	n := NewNotifier(100*time.Millisecond, nil)
	n.Show(BannerError, "primero")
	time.Sleep(60 * time.Millisecond)
	n.Show(BannerSuccess, "segundo")

	// Past the first banner's would-be dismissal: the replacement must
	// still be visible because a banner cannot dismiss its successor.
	time.Sleep(60 * time.Millisecond)
	b := n.Current()
	if b == nil || b.Message != "segundo" {
		t.Fatalf("current after first timer window = %+v, want the replacement", b)
	}

	deadline := time.After(2 * time.Second)
	for n.Current() != nil {
		select {
		case <-deadline:
			t.Fatal("replacement banner never auto-dismissed")
		default:
			time.Sleep(5 * time.Millisecond)
		}
	}
}

func TestBannerManualDismiss(t *testing.T) {
	n := NewNotifier(time.Hour, nil)
	n.Show(BannerSuccess, "visible")
	n.Dismiss()
	if n.Current() != nil {
		t.Error("banner still visible after Dismiss")
	}
}

func TestBannerOnChangeNotifications(t *testing.T) {
	var mu sync.Mutex
	var events []string
	n := NewNotifier(time.Hour, func(b *Banner) {
		mu.Lock()
		defer mu.Unlock()
		if b == nil {
			events = append(events, "clear")
			return
		}
		events = append(events, b.Message)
	})

	n.Show(BannerSuccess, "uno")
	n.Show(BannerError, "dos")
	n.Dismiss()

	mu.Lock()
	defer mu.Unlock()
	want := []string{"uno", "dos", "clear"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
}
