package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestReservationDecodeFlatListShape(t *testing.T) {
	body := []byte(`{
		"id": 11,
		"estado": "confirmada",
		"actividad_nombre": "Yoga",
		"fecha_sesion": "2025-06-20",
		"hora_inicio": "07:00",
		"entrenador_nombre": "Laura Pérez",
		"espacio_nombre": "Sala A",
		"sede_nombre": "Sede Centro",
		"fecha_reserva": "2025-06-15"
	}`)

	var r Reservation
	if err := json.Unmarshal(body, &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.ID != 11 || r.Status != ReservationStatusConfirmed {
		t.Errorf("id/status = %d/%s", r.ID, r.Status)
	}
	if r.Activity != "Yoga" || r.Trainer != "Laura Pérez" || r.Space != "Sala A" || r.Site != "Sede Centro" {
		t.Errorf("names = %q %q %q %q", r.Activity, r.Trainer, r.Space, r.Site)
	}
}

func TestReservationDecodeNestedSessionObject(t *testing.T) {
	body := []byte(`{
		"id": 12,
		"estado": "confirmada",
		"sesion_clase": {
			"id": 40,
			"fecha": "2025-06-21",
			"hora_inicio": "18:00",
			"actividad": {"id": 2, "nombre": "Spinning"},
			"entrenador": {"id": 1, "nombre": "Diego Ramos"},
			"espacio": {"id": 2, "nombre": "Sala B"},
			"sede": {"id": 1, "nombre": "Sede Centro"}
		},
		"fecha_reserva": "2025-06-15"
	}`)

	var r Reservation
	if err := json.Unmarshal(body, &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.SessionID != 40 {
		t.Errorf("SessionID = %d, want 40", r.SessionID)
	}
	if r.Activity != "Spinning" || r.SessionDate != "2025-06-21" {
		t.Errorf("activity/date = %q/%q", r.Activity, r.SessionDate)
	}
	if r.StartTime == nil || *r.StartTime != "18:00" {
		t.Errorf("StartTime = %v", r.StartTime)
	}
	if r.Trainer != "Diego Ramos" || r.Space != "Sala B" {
		t.Errorf("trainer/space = %q/%q", r.Trainer, r.Space)
	}
}

func TestReservationDecodeBareSessionID(t *testing.T) {
	body := []byte(`{"id": 13, "estado": "pendiente", "sesion_clase": 55, "fecha_reserva": "2025-06-15"}`)
	var r Reservation
	if err := json.Unmarshal(body, &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.SessionID != 55 {
		t.Errorf("SessionID = %d, want 55", r.SessionID)
	}
}

func TestReservationDecodeObjectValuedNames(t *testing.T) {
	// Some endpoints serialize the bare name fields as objects.
	body := []byte(`{
		"id": 14,
		"estado": "confirmada",
		"actividad": {"id": 3, "nombre": "CrossFit"},
		"entrenador": {"nombre": "Laura Pérez"},
		"fecha_sesion": "2025-06-22",
		"fecha_reserva": "2025-06-15"
	}`)
	var r Reservation
	if err := json.Unmarshal(body, &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.Activity != "CrossFit" || r.Trainer != "Laura Pérez" {
		t.Errorf("activity/trainer = %q/%q", r.Activity, r.Trainer)
	}
}

func TestReservationDecodeUnknownNameShape(t *testing.T) {
	body := []byte(`{"id": 15, "estado": "confirmada", "actividad": 42, "fecha_reserva": "2025-06-15"}`)
	var r Reservation
	if err := json.Unmarshal(body, &r); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if r.Activity != "" {
		t.Errorf("Activity = %q, want empty for unknown shape", r.Activity)
	}
}

func TestReservationEventTime(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	start := "07:00"

	withTime := Reservation{SessionDate: "2025-06-20", StartTime: &start}
	if got := withTime.EventTime(now); !got.Equal(time.Date(2025, 6, 20, 7, 0, 0, 0, time.Local)) {
		t.Errorf("EventTime = %v", got)
	}

	dateOnly := Reservation{SessionDate: "2025-06-20"}
	if got := dateOnly.EventTime(now); !got.Equal(time.Date(2025, 6, 20, 0, 0, 0, 0, time.Local)) {
		t.Errorf("EventTime date-only = %v", got)
	}

	noSessionDate := Reservation{CreatedAt: "2025-06-10"}
	if got := noSessionDate.EventTime(now); !got.Equal(time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)) {
		t.Errorf("EventTime fallback to created = %v", got)
	}

	empty := Reservation{}
	if got := empty.EventTime(now); !got.Equal(now) {
		t.Errorf("EventTime empty = %v, want now", got)
	}
}

func TestSessionBookable(t *testing.T) {
	open := Session{Available: 3, CanReserve: true}
	if !open.Bookable() {
		t.Error("open session should be bookable")
	}
	full := Session{Available: 0, CanReserve: true}
	if full.Bookable() {
		t.Error("zero availability must not be bookable")
	}
	blocked := Session{Available: 5, CanReserve: false}
	if blocked.Bookable() {
		t.Error("puede_reservar=false must not be bookable")
	}
}
