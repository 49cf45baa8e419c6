package models

// AuthUser is the user summary returned by the token endpoint.
type AuthUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"nombre"`
}

// TokenPair is the response of POST token/.
type TokenPair struct {
	Access  string    `json:"access"`
	Refresh string    `json:"refresh"`
	User    *AuthUser `json:"user,omitempty"`
}

// RegisterRequest is the payload for POST registro/cliente/.
type RegisterRequest struct {
	Email            string  `json:"email"`
	Password         string  `json:"password"`
	FirstName        string  `json:"nombre"`
	LastNamePaternal string  `json:"apellido_paterno"`
	LastNameMaternal *string `json:"apellido_materno,omitempty"`
	Phone            string  `json:"telefono"`
	BirthDate        *string `json:"fecha_nacimiento,omitempty"`
	Gender           *string `json:"genero,omitempty"`
	FitnessGoal      *string `json:"objetivo_fitness,omitempty"`
	ExperienceLevel  *string `json:"nivel_experiencia,omitempty"`
}
