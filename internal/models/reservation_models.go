package models

import (
	"encoding/json"
	"time"
)

// ReservationStatus defines the type for reservation lifecycle statuses
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pendiente"
	ReservationStatusConfirmed ReservationStatus = "confirmada"
	ReservationStatusCancelled ReservationStatus = "cancelada"
	ReservationStatusAttended  ReservationStatus = "asistio"
	ReservationStatusNoShow    ReservationStatus = "no_asistio"
)

// IsValidReservationStatus checks if the provided status string is a valid ReservationStatus.
func IsValidReservationStatus(status string) bool {
	switch ReservationStatus(status) {
	case ReservationStatusPending,
		ReservationStatusConfirmed,
		ReservationStatusCancelled,
		ReservationStatusAttended,
		ReservationStatusNoShow:
		return true
	default:
		return false
	}
}

// Reservation is a client's claim on one session. Display fields are
// denormalized out of the varying nested payload shapes at decode time;
// statuses only ever come from the backend.
type Reservation struct {
	ID                 int64             `json:"id"`
	SessionID          int64             `json:"sesion_clase"`
	Status             ReservationStatus `json:"estado"`
	Activity           string            `json:"actividad"`
	SessionDate        string            `json:"fecha_sesion"` // "2006-01-02"
	StartTime          *string           `json:"hora_inicio,omitempty"`
	EndTime            *string           `json:"hora_fin,omitempty"`
	Trainer            string            `json:"entrenador,omitempty"`
	Space              string            `json:"espacio,omitempty"`
	Site               string            `json:"sede,omitempty"`
	Notes              *string           `json:"observaciones,omitempty"`
	CancellationReason *string           `json:"motivo_cancelacion,omitempty"`
	CreatedAt          string            `json:"fecha_reserva"`
	CancelledAt        *string           `json:"fecha_cancelacion,omitempty"`
}

// EventTime returns the reservation's comparable instant following the same
// rule everywhere: session date plus start time, session date at midnight when
// the time is absent, and the reservation's own creation date when the session
// date is missing.
func (r *Reservation) EventTime(now time.Time) time.Time {
	base := r.SessionDate
	if base == "" {
		base = r.CreatedAt
	}
	return CombineDateTime(base, r.StartTime, now)
}

// nameRef accepts either a bare string or an object with a "nombre" field,
// which is how the backend serializes trainer/space/site depending on the
// endpoint.
type nameRef string

func (n *nameRef) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*n = nameRef(plain)
		return nil
	}
	var obj struct {
		Name string `json:"nombre"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		*n = nameRef(obj.Name)
		return nil
	}
	// Unknown shape decodes to empty rather than failing the whole list.
	*n = ""
	return nil
}

// firstName returns the first non-empty of the candidate name fields.
func firstName(names ...nameRef) string {
	for _, n := range names {
		if n != "" {
			return string(n)
		}
	}
	return ""
}

// reservationWire is the union of the flat and nested reservation payload
// shapes the backend produces.
type reservationWire struct {
	ID     int64             `json:"id"`
	Status ReservationStatus `json:"estado"`

	// Flat shape. The *_nombre variants appear on the list endpoint, the bare
	// names on the detail/creation payloads; either may be a string or an
	// object with a "nombre" field.
	SessionID    int64   `json:"sesion_clase_id"`
	Activity     nameRef `json:"actividad"`
	ActivityName nameRef `json:"actividad_nombre"`
	SessionDate  string  `json:"fecha_sesion"`
	StartTime    *string `json:"hora_inicio"`
	EndTime      *string `json:"hora_fin"`
	Trainer      nameRef `json:"entrenador"`
	TrainerName  nameRef `json:"entrenador_nombre"`
	Space        nameRef `json:"espacio"`
	SpaceName    nameRef `json:"espacio_nombre"`
	Site         nameRef `json:"sede"`
	SiteName     nameRef `json:"sede_nombre"`

	// Nested shape: sesion_clase as either a bare id or a full session object.
	Session json.RawMessage `json:"sesion_clase"`

	Notes              *string `json:"observaciones"`
	CancellationReason *string `json:"motivo_cancelacion"`
	CreatedAt          string  `json:"fecha_reserva"`
	CancelledAt        *string `json:"fecha_cancelacion"`
}

// UnmarshalJSON resolves the varying backend reservation shapes into the flat
// Reservation model. This is the single shape-tolerance boundary for the
// entity; callers never see the raw payload variants.
func (r *Reservation) UnmarshalJSON(data []byte) error {
	var w reservationWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*r = Reservation{
		ID:                 w.ID,
		SessionID:          w.SessionID,
		Status:             w.Status,
		Activity:           firstName(w.ActivityName, w.Activity),
		SessionDate:        w.SessionDate,
		StartTime:          w.StartTime,
		EndTime:            w.EndTime,
		Trainer:            firstName(w.TrainerName, w.Trainer),
		Space:              firstName(w.SpaceName, w.Space),
		Site:               firstName(w.SiteName, w.Site),
		Notes:              w.Notes,
		CancellationReason: w.CancellationReason,
		CreatedAt:          w.CreatedAt,
		CancelledAt:        w.CancelledAt,
	}

	if len(w.Session) == 0 {
		return nil
	}

	var sessionID int64
	if err := json.Unmarshal(w.Session, &sessionID); err == nil {
		if r.SessionID == 0 {
			r.SessionID = sessionID
		}
		return nil
	}

	var s Session
	if err := json.Unmarshal(w.Session, &s); err != nil {
		// Unknown nested shape; keep the flat fields we already have.
		return nil
	}
	if r.SessionID == 0 {
		r.SessionID = s.ID
	}
	if r.Activity == "" {
		r.Activity = s.Activity.Name
	}
	if r.SessionDate == "" {
		r.SessionDate = s.Date
	}
	if r.StartTime == nil {
		r.StartTime = s.StartTime
	}
	if r.EndTime == nil {
		r.EndTime = s.EndTime
	}
	if r.Trainer == "" {
		r.Trainer = s.Trainer.Name
	}
	if r.Space == "" {
		r.Space = s.Space.Name
	}
	if r.Site == "" {
		r.Site = s.Site.Name
	}
	return nil
}
