package models

// NextSessionSummary is the compact "next session" block nested in an
// available-activity payload.
type NextSessionSummary struct {
	ID        int64   `json:"id"`
	Date      string  `json:"fecha"`
	StartTime *string `json:"hora_inicio,omitempty"`
	EndTime   *string `json:"hora_fin,omitempty"`
	Available int     `json:"lugares_disponibles"`
	Status    string  `json:"estado"`
	Trainer   *string `json:"entrenador,omitempty"`
	Space     *string `json:"espacio,omitempty"`
}

// Activity is a catalog entry for a bookable activity type. Read-only from the
// client's perspective.
type Activity struct {
	ID                int64               `json:"id"`
	Name              string              `json:"nombre"`
	Description       *string             `json:"descripcion,omitempty"`
	Color             string              `json:"color_hex"`
	DurationMinutes   *int                `json:"duracion_minutos,omitempty"`
	AvailableSessions int                 `json:"sesiones_disponibles"`
	NextSession       *NextSessionSummary `json:"proxima_sesion,omitempty"`
}
