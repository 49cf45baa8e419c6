package models

// ActiveMembershipSummary is the compact membership block nested in a profile.
type ActiveMembershipSummary struct {
	PlanName      string `json:"nombre_plan"`
	EndDate       string `json:"fecha_fin"`
	DaysRemaining int    `json:"dias_restantes"`
}

// Profile is the authenticated client's profile. Emergency-contact data comes
// back as flat fields from the backend.
type Profile struct {
	ID               int64   `json:"id"`
	FirstName        string  `json:"nombre"`
	LastNamePaternal string  `json:"apellido_paterno"`
	LastNameMaternal string  `json:"apellido_materno"`
	BirthDate        *string `json:"fecha_nacimiento,omitempty"`
	Gender           *string `json:"sexo,omitempty"`
	Address          *string `json:"direccion,omitempty"`
	Phone            string  `json:"telefono"`
	Email            string  `json:"email"`
	SiteID           int64   `json:"sede"`
	SiteName         string  `json:"sede_nombre"`
	FitnessGoal      *string `json:"objetivo_fitness,omitempty"`
	ExperienceLevel  string  `json:"nivel_experiencia"`
	Status           string  `json:"estado"`
	RegisteredAt     string  `json:"fecha_registro"`

	EmergencyContactName  *string `json:"nombre_contacto,omitempty"`
	EmergencyContactPhone *string `json:"telefono_contacto,omitempty"`
	EmergencyContactBond  *string `json:"parentesco,omitempty"`

	ActiveMembership *ActiveMembershipSummary `json:"membresia_activa,omitempty"`
}

// ProfileUpdate carries the editable subset of Profile for PATCH requests.
// Nil fields are omitted and left untouched server-side.
type ProfileUpdate struct {
	FirstName             *string `json:"nombre,omitempty"`
	LastNamePaternal      *string `json:"apellido_paterno,omitempty"`
	LastNameMaternal      *string `json:"apellido_materno,omitempty"`
	BirthDate             *string `json:"fecha_nacimiento,omitempty"`
	Gender                *string `json:"sexo,omitempty"`
	Address               *string `json:"direccion,omitempty"`
	Phone                 *string `json:"telefono,omitempty"`
	Email                 *string `json:"email,omitempty"`
	FitnessGoal           *string `json:"objetivo_fitness,omitempty"`
	ExperienceLevel       *string `json:"nivel_experiencia,omitempty"`
	EmergencyContactName  *string `json:"nombre_contacto,omitempty"`
	EmergencyContactPhone *string `json:"telefono_contacto,omitempty"`
	EmergencyContactBond  *string `json:"parentesco,omitempty"`
}
