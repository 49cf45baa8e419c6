package models

// CleaningTaskStatus defines the type for cleaning-task statuses
type CleaningTaskStatus string

const (
	CleaningTaskStatusPending    CleaningTaskStatus = "pendiente"
	CleaningTaskStatusInProgress CleaningTaskStatus = "en_progreso"
	CleaningTaskStatusCompleted  CleaningTaskStatus = "completada"
)

// CleaningTaskPriority defines the type for cleaning-task priorities
type CleaningTaskPriority string

const (
	CleaningPriorityHigh   CleaningTaskPriority = "alta"
	CleaningPriorityMedium CleaningTaskPriority = "media"
	CleaningPriorityLow    CleaningTaskPriority = "baja"
)

// CleaningTask is a cleaning assignment for a staff member on a given date.
type CleaningTask struct {
	ID              int64                `json:"id"`
	TaskName        string               `json:"tarea_nombre"`
	Space           string               `json:"espacio_nombre"`
	Site            string               `json:"sede_nombre"`
	Date            string               `json:"fecha"`
	StartTime       string               `json:"hora_inicio"`
	EndTime         *string              `json:"hora_fin,omitempty"`
	Status          CleaningTaskStatus   `json:"estado"`
	DurationMinutes int                  `json:"tarea_duracion"`
	Priority        CleaningTaskPriority `json:"tarea_prioridad"`
	Notes           string               `json:"notas"`
	AssignedTo      string               `json:"personal_nombre"`
	CompletionNotes *string              `json:"observaciones_completado,omitempty"`
	CompletedAt     *string              `json:"fecha_completada,omitempty"`
}

// CleaningStaff describes the authenticated cleaning employee and their
// assigned spaces.
type CleaningStaff struct {
	EmployeeID     int64      `json:"empleado_id"`
	Name           string     `json:"empleado_nombre"`
	Email          string     `json:"email"`
	Phone          string     `json:"telefono"`
	Shift          string     `json:"turno"`
	SiteID         int64      `json:"sede_id"`
	SiteName       string     `json:"sede_nombre"`
	AssignedSpaces []SpaceRef `json:"espacios_asignados"`
	PendingTasks   int        `json:"tareas_pendientes_count"`
}
