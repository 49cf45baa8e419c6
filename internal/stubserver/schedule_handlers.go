package stubserver

import (
	"errors"
	"net/http"

	"gymapp/internal/models"
	"gymapp/pkg/utils"

	"github.com/gin-gonic/gin"
)

// reserveRequest is the body of POST horarios/reservas-clases/.
type reserveRequest struct {
	SessionID    int64   `json:"sesion_clase" binding:"required"`
	Observations *string `json:"observaciones"`
}

// cancelRequest is the body of POST horarios/reservas-clases/:id/cancelar/.
type cancelRequest struct {
	Reason *string `json:"motivo"`
}

// listSessions handles GET horarios/sesiones/disponibles/ with the optional
// tipo_actividad / fecha_desde / fecha_hasta query params.
func (s *Server) listSessions(c *gin.Context) {
	var activityID *int64
	if raw := c.Query("tipo_actividad"); raw != "" {
		id, err := utils.StrToInt64(raw)
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid tipo_actividad format.", err.Error()))
			return
		}
		activityID = &id
	}

	sessions := s.store.ListSessions(activityID, c.Query("fecha_desde"), c.Query("fecha_hasta"))
	s.respondList(c, sessions)
}

// listActivities handles GET horarios/actividades/disponibles/.
func (s *Server) listActivities(c *gin.Context) {
	s.respondList(c, s.store.ListActivities())
}

// createReservation handles POST horarios/reservas-clases/.
func (s *Server) createReservation(c *gin.Context) {
	var req reserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload", err.Error()))
		return
	}

	reservation, err := s.store.Reserve(clientID(c), req.SessionID, req.Observations, c.GetHeader("X-Idempotency-Key"))
	if err != nil {
		switch {
		case errors.Is(err, ErrSessionNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "La sesión no existe.", ""))
		case errors.Is(err, ErrSessionFull):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "No hay lugares disponibles para esta sesión.", ""))
		case errors.Is(err, ErrAlreadyReserved):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Ya tienes una reserva para esta sesión.", ""))
		default:
			utils.LogError(err, "createReservation: store.Reserve failed")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create reservation.", ""))
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Reserva creada exitosamente.", "data": reservation})
}

// myReservations handles GET horarios/reservas-clases/mis_reservas/.
func (s *Server) myReservations(c *gin.Context) {
	s.respondList(c, s.store.MyReservations(clientID(c)))
}

// cancelReservation handles POST horarios/reservas-clases/:id/cancelar/.
func (s *Server) cancelReservation(c *gin.Context) {
	reservationID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid reservation id.", err.Error()))
		return
	}

	// Reason is optional; tolerate an empty body.
	var req cancelRequest
	_ = c.ShouldBindJSON(&req)

	reservation, err := s.store.CancelReservation(clientID(c), reservationID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "La reserva no existe.", ""))
		case errors.Is(err, ErrNotCancelable):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "La reserva ya no puede cancelarse.", ""))
		default:
			utils.LogError(err, "cancelReservation: store.CancelReservation failed")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to cancel reservation.", ""))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Reserva cancelada exitosamente.", "estado": string(reservation.Status)})
}

// respondList writes a list either bare or wrapped in a results envelope,
// depending on server configuration. Both shapes are legal for the real
// backend, so the stub can exercise either client path.
func (s *Server) respondList(c *gin.Context, list interface{}) {
	if s.envelope {
		c.JSON(http.StatusOK, gin.H{"count": listLen(list), "results": list})
		return
	}
	c.JSON(http.StatusOK, list)
}

func listLen(list interface{}) int {
	switch v := list.(type) {
	case []models.Session:
		return len(v)
	case []models.Activity:
		return len(v)
	case []models.Reservation:
		return len(v)
	case []models.MembershipPlan:
		return len(v)
	case []models.MembershipSubscription:
		return len(v)
	case []models.CleaningTask:
		return len(v)
	default:
		return 0
	}
}
