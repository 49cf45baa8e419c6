package stubserver

import (
	"errors"
	"net/http"
	"time"

	"gymapp/internal/models"
	"gymapp/pkg/utils"

	"github.com/gin-gonic/gin"
)

// completeTaskRequest is the body of POST limpieza/asignaciones/:id/marcar_completada/.
type completeTaskRequest struct {
	Notes *string `json:"observaciones_completado"`
}

// requireCleaningRole rejects callers that are not cleaning staff.
func requireCleaningRole(c *gin.Context) bool {
	if currentRole(c) != "limpieza" {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "Acceso restringido al personal de limpieza.", ""))
		return false
	}
	return true
}

// cleaningMe handles GET limpieza/personal/me/.
func (s *Server) cleaningMe(c *gin.Context) {
	if !requireCleaningRole(c) {
		return
	}
	staff, err := s.store.CleaningStaffFor(clientID(c))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "La cuenta no existe.", ""))
		return
	}
	c.JSON(http.StatusOK, staff)
}

// cleaningTasks handles GET limpieza/asignaciones/ with an optional fecha
// query param (defaults to today).
func (s *Server) cleaningTasks(c *gin.Context) {
	if !requireCleaningRole(c) {
		return
	}
	date := c.Query("fecha")
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}
	s.respondList(c, s.store.TasksFor(clientID(c), date))
}

// startTask handles POST limpieza/asignaciones/:id/marcar_en_progreso/.
func (s *Server) startTask(c *gin.Context) {
	s.markTask(c, models.CleaningTaskStatusInProgress, nil)
}

// completeTask handles POST limpieza/asignaciones/:id/marcar_completada/.
func (s *Server) completeTask(c *gin.Context) {
	var req completeTaskRequest
	_ = c.ShouldBindJSON(&req)
	s.markTask(c, models.CleaningTaskStatusCompleted, req.Notes)
}

func (s *Server) markTask(c *gin.Context, status models.CleaningTaskStatus, notes *string) {
	if !requireCleaningRole(c) {
		return
	}
	taskID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid task id.", err.Error()))
		return
	}

	task, err := s.store.MarkTask(clientID(c), taskID, status, notes)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "La asignación no existe.", ""))
			return
		}
		utils.LogError(err, "markTask: store.MarkTask failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update task.", ""))
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Asignación actualizada.", "data": task})
}
