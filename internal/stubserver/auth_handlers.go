package stubserver

import (
	"errors"
	"net/http"

	"gymapp/internal/models"
	"gymapp/pkg/utils"

	"github.com/gin-gonic/gin"
)

// tokenRequest is the body of POST token/.
type tokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// refreshRequest is the body of POST token/refresh/.
type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// registerRequest mirrors the client's RegisterRequest with binding rules.
type registerRequest struct {
	Email            string  `json:"email" binding:"required,email"`
	Password         string  `json:"password" binding:"required,min=8"`
	FirstName        string  `json:"nombre" binding:"required"`
	LastNamePaternal string  `json:"apellido_paterno" binding:"required"`
	LastNameMaternal *string `json:"apellido_materno"`
	Phone            string  `json:"telefono" binding:"required"`
	BirthDate        *string `json:"fecha_nacimiento"`
	Gender           *string `json:"genero"`
	FitnessGoal      *string `json:"objetivo_fitness"`
	ExperienceLevel  *string `json:"nivel_experiencia"`
}

// issueTokens handles POST token/: credentials in, access/refresh pair out.
func (s *Server) issueTokens(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload", err.Error()))
		return
	}

	account, err := s.store.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Correo o contraseña incorrectos.", ""))
		return
	}

	access, err := utils.GenerateAccessToken(s.secret, account.ID, account.Email, account.Role)
	if err != nil {
		utils.LogError(err, "issueTokens: failed to sign access token")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to issue tokens.", ""))
		return
	}
	refresh, err := utils.GenerateRefreshToken(s.secret, account.ID)
	if err != nil {
		utils.LogError(err, "issueTokens: failed to sign refresh token")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to issue tokens.", ""))
		return
	}

	c.JSON(http.StatusOK, models.TokenPair{
		Access:  access,
		Refresh: refresh,
		User:    &models.AuthUser{ID: account.ID, Email: account.Email, Name: account.Name},
	})
}

// refreshToken handles POST token/refresh/: a valid refresh token yields a
// new access token.
func (s *Server) refreshToken(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload", err.Error()))
		return
	}

	claims, err := utils.ValidateToken(s.secret, req.Refresh)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired refresh token.", ""))
		return
	}

	account, err := s.store.AccountByID(claims.ClientID)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Unknown account.", ""))
		return
	}

	access, err := utils.GenerateAccessToken(s.secret, account.ID, account.Email, account.Role)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to issue token.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"access": access})
}

// registerClient handles POST registro/cliente/.
func (s *Server) registerClient(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload", err.Error()))
		return
	}
	if !utils.IsValidPhone(req.Phone) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Teléfono inválido.", "telefono"))
		return
	}

	account, err := s.store.Register(models.RegisterRequest{
		Email:            req.Email,
		Password:         req.Password,
		FirstName:        req.FirstName,
		LastNamePaternal: req.LastNamePaternal,
		LastNameMaternal: req.LastNameMaternal,
		Phone:            req.Phone,
		BirthDate:        req.BirthDate,
		Gender:           req.Gender,
		FitnessGoal:      req.FitnessGoal,
		ExperienceLevel:  req.ExperienceLevel,
	})
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "El correo ya está registrado.", ""))
			return
		}
		utils.LogError(err, "registerClient: store.Register failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to register client.", ""))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mensaje": "Registro exitoso.",
		"data":    models.AuthUser{ID: account.ID, Email: account.Email, Name: account.Name},
	})
}

// currentRole pulls the authenticated role set by authMiddleware.
func currentRole(c *gin.Context) string {
	role, _ := c.Get("role")
	value, _ := role.(string)
	return value
}
