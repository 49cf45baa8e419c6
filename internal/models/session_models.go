package models

import "time"

// SessionStatus defines the type for scheduled-session statuses
type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "programada"
	SessionStatusFull      SessionStatus = "llena"
	SessionStatusCancelled SessionStatus = "cancelada"
	SessionStatusFinished  SessionStatus = "finalizada"
)

// SessionCategory tags a session for client-side filtering only.
type SessionCategory string

const (
	SessionCategoryPremium SessionCategory = "premium"
	SessionCategoryBasic   SessionCategory = "basico"
)

// ActivityRef is the activity summary nested in a session payload.
type ActivityRef struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion,omitempty"`
	Color       *string `json:"color,omitempty"`
	Duration    *string `json:"duracion,omitempty"`
}

// TrainerRef is the trainer summary nested in a session payload.
type TrainerRef struct {
	ID        int64   `json:"id"`
	Name      string  `json:"nombre"`
	Specialty *string `json:"especialidad,omitempty"`
}

// SpaceRef is the room/space summary nested in a session payload.
type SpaceRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	Capacity *int   `json:"capacidad,omitempty"`
}

// SiteRef is the gym-site summary nested in a session payload.
type SiteRef struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

// Session represents a single bookable occurrence of an activity.
// Dates and times stay as wire strings; EventTime builds the comparable instant.
type Session struct {
	ID         int64           `json:"id"`
	Date       string          `json:"fecha"` // calendar date, "2006-01-02"
	Status     SessionStatus   `json:"estado"`
	Activity   ActivityRef     `json:"actividad"`
	Trainer    TrainerRef      `json:"entrenador"`
	Space      SpaceRef        `json:"espacio"`
	Site       SiteRef         `json:"sede"`
	StartTime  *string         `json:"hora_inicio,omitempty"` // "15:04" or "15:04:05"
	EndTime    *string         `json:"hora_fin,omitempty"`
	Capacity   int             `json:"cupo_total"`
	Available  int             `json:"lugares_disponibles"`
	CanReserve bool            `json:"puede_reservar"`
	Category   SessionCategory `json:"categoria"`
}

// Bookable reports whether the session can be booked from this client:
// slots remain and the backend has not blocked it by policy. The backend stays
// authoritative; this only gates the request locally.
func (s *Session) Bookable() bool {
	return s.Available > 0 && s.CanReserve
}

// EventTime returns the session's comparable instant: the calendar date
// combined with the start time when present, or the date at midnight.
// An unparseable date yields now, matching how the app degrades.
func (s *Session) EventTime(now time.Time) time.Time {
	return CombineDateTime(s.Date, s.StartTime, now)
}

// SessionFilter narrows the available-sessions query. Nil fields mean
// "no constraint on this dimension".
type SessionFilter struct {
	ActivityID *int64
	DateFrom   *string // "2006-01-02"
	DateTo     *string
}
