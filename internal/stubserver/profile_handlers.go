package stubserver

import (
	"errors"
	"net/http"

	"gymapp/internal/models"
	"gymapp/pkg/utils"

	"github.com/gin-gonic/gin"
)

// getProfile handles GET clientes/mi_perfil/.
func (s *Server) getProfile(c *gin.Context) {
	account, err := s.store.AccountByID(clientID(c))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "La cuenta no existe.", ""))
		return
	}
	c.JSON(http.StatusOK, account.Profile)
}

// updateProfile handles PATCH clientes/actualizar_perfil/.
func (s *Server) updateProfile(c *gin.Context) {
	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload", err.Error()))
		return
	}
	if update.Email != nil && !utils.IsValidEmail(*update.Email) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Correo inválido.", "email"))
		return
	}
	if update.Phone != nil && !utils.IsValidPhone(*update.Phone) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Teléfono inválido.", "telefono"))
		return
	}

	profile, err := s.store.UpdateProfile(clientID(c), update)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "La cuenta no existe.", ""))
			return
		}
		utils.LogError(err, "updateProfile: store.UpdateProfile failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update profile.", ""))
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Perfil actualizado exitosamente.", "data": profile})
}
