package models

// SubscriptionStatus defines the type for membership subscription statuses
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "activa"
	SubscriptionStatusExpired   SubscriptionStatus = "vencida"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelada"
)

// MembershipPlan is a purchasable membership catalog entry.
type MembershipPlan struct {
	ID           int64    `json:"id"`
	Name         string   `json:"nombre_plan"`
	Type         string   `json:"tipo"` // e.g. mensual, anual
	Price        float64  `json:"precio"`
	Active       bool     `json:"activo"`
	DurationDays *int     `json:"duracion_dias,omitempty"`
	Description  *string  `json:"descripcion,omitempty"`
	Benefits     []string `json:"beneficios_list,omitempty"`
}

// MembershipSubscription links the authenticated client to a plan. The
// days-remaining figure is server-computed; the client never derives it.
type MembershipSubscription struct {
	ID            int64              `json:"id"`
	Plan          MembershipPlan     `json:"membresia"`
	StartDate     string             `json:"fecha_inicio"`
	EndDate       string             `json:"fecha_fin"`
	Status        SubscriptionStatus `json:"estado"`
	DaysRemaining int                `json:"dias_restantes"`
}

// Active reports whether the subscription is currently usable.
func (s *MembershipSubscription) Active() bool {
	return s.Status == SubscriptionStatusActive
}

// PaymentMethod enumerates the accepted (simulated) payment methods.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "efectivo"
	PaymentMethodCard     PaymentMethod = "tarjeta"
	PaymentMethodTransfer PaymentMethod = "transferencia"
)

// IsValidPaymentMethod checks if the provided method string is a valid PaymentMethod.
func IsValidPaymentMethod(method string) bool {
	switch PaymentMethod(method) {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	default:
		return false
	}
}
