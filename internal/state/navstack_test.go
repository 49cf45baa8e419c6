package state

import "testing"

func TestNavStackPushPop(t *testing.T) {
	s := NewNavStack("home", nil)
	s.Push("schedule", map[string]string{"actividad": "1"})

	if s.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", s.Depth())
	}
	if cur := s.Current(); cur.Screen != "schedule" || cur.Params["actividad"] != "1" {
		t.Errorf("current = %+v", cur)
	}

	back := s.Pop()
	if back.Screen != "home" || s.Depth() != 1 {
		t.Errorf("after pop: %+v depth %d", back, s.Depth())
	}
}

func TestNavStackRootNeverPops(t *testing.T) {
	s := NewNavStack("home", nil)
	for i := 0; i < 3; i++ {
		if got := s.Pop(); got.Screen != "home" {
			t.Fatalf("pop %d returned %q", i, got.Screen)
		}
	}
	if s.Depth() != 1 {
		t.Errorf("depth = %d, want 1", s.Depth())
	}
}

func TestNavStackReplaceKeepsDepth(t *testing.T) {
	s := NewNavStack("home", nil)
	s.Push("login", nil)
	s.Replace("schedule", nil)

	if s.Depth() != 2 {
		t.Errorf("depth = %d, want 2", s.Depth())
	}
	if s.Current().Screen != "schedule" {
		t.Errorf("current = %q", s.Current().Screen)
	}
}

func TestNavStackMergeParams(t *testing.T) {
	s := NewNavStack("reservations", map[string]string{"filtro": "todas"})
	s.MergeParams(map[string]string{"filtro": "proximas", "orden": "fecha"})

	cur := s.Current()
	if cur.Params["filtro"] != "proximas" || cur.Params["orden"] != "fecha" {
		t.Errorf("params = %v", cur.Params)
	}
}

func TestNavStackClonesParams(t *testing.T) {
	params := map[string]string{"filtro": "todas"}
	s := NewNavStack("reservations", params)
	params["filtro"] = "mutated"

	if s.Current().Params["filtro"] != "todas" {
		t.Error("stack shares caller's params map")
	}
}
