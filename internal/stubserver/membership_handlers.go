package stubserver

import (
	"errors"
	"net/http"

	"gymapp/pkg/utils"

	"github.com/gin-gonic/gin"
)

// subscribeRequest is the body of POST suscripciones/.
type subscribeRequest struct {
	PlanID        int64  `json:"membresia" binding:"required"`
	PaymentMethod string `json:"metodo_pago" binding:"required,payment_method"`
	Notes         string `json:"notas"`
}

// paymentRequest is the body of POST suscripciones/procesar_pago/.
type paymentRequest struct {
	PlanID        int64   `json:"membresia" binding:"required"`
	PaymentMethod string  `json:"metodo_pago" binding:"required,payment_method"`
	CardNumber    *string `json:"numero_tarjeta"`
	CardHolder    *string `json:"titular"`
}

// listPlans handles GET membresias/activas/.
func (s *Server) listPlans(c *gin.Context) {
	s.respondList(c, s.store.Plans())
}

// listSubscriptions handles GET suscripciones/.
func (s *Server) listSubscriptions(c *gin.Context) {
	s.respondList(c, s.store.Subscriptions(clientID(c)))
}

// createSubscription handles POST suscripciones/.
func (s *Server) createSubscription(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload", err.Error()))
		return
	}
	sub, err := s.store.Subscribe(clientID(c), req.PlanID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "El plan no existe.", ""))
			return
		}
		utils.LogError(err, "createSubscription: store.Subscribe failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create subscription.", ""))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"mensaje": "Suscripción creada exitosamente.", "data": sub})
}

// cancelSubscription handles POST suscripciones/:id/cancelar/.
func (s *Server) cancelSubscription(c *gin.Context) {
	subscriptionID, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid subscription id.", err.Error()))
		return
	}

	if err := s.store.CancelSubscription(clientID(c), subscriptionID); err != nil {
		if errors.Is(err, ErrSubNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "La suscripción no existe.", ""))
			return
		}
		utils.LogError(err, "cancelSubscription: store.CancelSubscription failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to cancel subscription.", ""))
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Suscripción cancelada exitosamente."})
}

// processPayment handles POST suscripciones/procesar_pago/. Payment is
// simulated: a valid plan and payment method always succeed and produce an
// active subscription.
func (s *Server) processPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload", err.Error()))
		return
	}
	sub, err := s.store.Subscribe(clientID(c), req.PlanID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "El plan no existe.", ""))
			return
		}
		utils.LogError(err, "processPayment: store.Subscribe failed")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to process payment.", ""))
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Pago procesado exitosamente.", "data": sub})
}
