package stubserver

import (
	"net/http"

	"gymapp/internal/models"
	"gymapp/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// payment_method validates the metodo_pago enum at binding time.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
			return models.IsValidPaymentMethod(fl.Field().String())
		})
	}
}

// Server is a local stand-in for the gym backend. It serves the same routes
// and wire shapes the mobile client talks to, backed by an in-memory store,
// so the app can be developed and tested without the real service.
type Server struct {
	store    *Store
	secret   []byte
	envelope bool
}

// Options configures a Server.
type Options struct {
	// Secret signs access and refresh tokens. Required.
	Secret []byte
	// Envelope wraps list responses in {count, results} instead of returning
	// bare arrays. The real backend has been observed doing both.
	Envelope bool
	// Seed populates the store with demo accounts, sessions, plans and
	// cleaning assignments.
	Seed bool
}

// NewServer builds a Server with a fresh store.
func NewServer(opts Options) *Server {
	store := NewStore()
	if opts.Seed {
		store.seed()
	}
	return &Server{store: store, secret: opts.Secret, envelope: opts.Envelope}
}

// Store exposes the backing store, mainly for test setup.
func (s *Server) Store() *Store {
	return s.store
}

// Engine assembles the gin engine with all API routes mounted under /api.
// Extra middleware (CORS and the like) must be passed here so it runs before
// route registration.
func (s *Server) Engine(middleware ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(utils.GinLogger())
	engine.Use(middleware...)

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := engine.Group("/api")

	// Public authentication routes.
	api.POST("/token/", s.issueTokens)
	api.POST("/token/refresh/", s.refreshToken)
	api.POST("/registro/cliente/", s.registerClient)

	// Everything else requires a bearer token.
	authenticated := api.Group("")
	authenticated.Use(authMiddleware(s.secret))
	{
		horarios := authenticated.Group("/horarios")
		horarios.GET("/sesiones/disponibles/", s.listSessions)
		horarios.GET("/actividades/disponibles/", s.listActivities)
		horarios.POST("/reservas-clases/", s.createReservation)
		horarios.GET("/reservas-clases/mis_reservas/", s.myReservations)
		horarios.POST("/reservas-clases/:id/cancelar/", s.cancelReservation)

		authenticated.GET("/membresias/activas/", s.listPlans)

		suscripciones := authenticated.Group("/suscripciones")
		suscripciones.GET("/", s.listSubscriptions)
		suscripciones.POST("/", s.createSubscription)
		suscripciones.POST("/procesar_pago/", s.processPayment)
		suscripciones.POST("/:id/cancelar/", s.cancelSubscription)

		clientes := authenticated.Group("/clientes")
		clientes.GET("/mi_perfil/", s.getProfile)
		clientes.PATCH("/actualizar_perfil/", s.updateProfile)

		limpieza := authenticated.Group("/limpieza")
		limpieza.GET("/personal/me/", s.cleaningMe)
		limpieza.GET("/asignaciones/", s.cleaningTasks)
		limpieza.POST("/asignaciones/:id/marcar_en_progreso/", s.startTask)
		limpieza.POST("/asignaciones/:id/marcar_completada/", s.completeTask)
	}

	return engine
}
