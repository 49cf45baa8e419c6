package stubserver

import (
	"time"

	"gymapp/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// Demo credentials for local development.
const (
	DemoClientEmail    = "demo@gym.mx"
	DemoClientPassword = "demo1234"
	DemoStaffEmail     = "limpieza@gym.mx"
	DemoStaffPassword  = "limpieza1234"
)

// seed populates the store with a recognizable local dataset: two accounts,
// a handful of sessions spread over the coming days (including one already
// full), and a small plan catalog.
func (s *Store) seed() {
	s.seedAccounts()
	s.seedSessions()
	s.seedPlans()
	s.seedCleaning()
}

func (s *Store) seedAccounts() {
	clientHash, _ := bcrypt.GenerateFromPassword([]byte(DemoClientPassword), bcrypt.DefaultCost)
	staffHash, _ := bcrypt.GenerateFromPassword([]byte(DemoStaffPassword), bcrypt.DefaultCost)

	client := &Account{
		ID:           s.id(),
		Email:        DemoClientEmail,
		Name:         "Ana",
		Role:         "cliente",
		PasswordHash: clientHash,
		Profile: models.Profile{
			FirstName:        "Ana",
			LastNamePaternal: "García",
			Phone:            "5512345678",
			Email:            DemoClientEmail,
			SiteID:           1,
			SiteName:         "Sede Centro",
			ExperienceLevel:  "intermedio",
			Status:           "activo",
			RegisteredAt:     time.Now().AddDate(0, -3, 0).Format(models.DateLayout),
		},
	}
	client.Profile.ID = client.ID
	s.accounts[client.Email] = client

	staff := &Account{
		ID:           s.id(),
		Email:        DemoStaffEmail,
		Name:         "Marco",
		Role:         "limpieza",
		PasswordHash: staffHash,
		Profile: models.Profile{
			FirstName:        "Marco",
			LastNamePaternal: "Luna",
			Phone:            "5587654321",
			Email:            DemoStaffEmail,
			SiteID:           1,
			SiteName:         "Sede Centro",
			ExperienceLevel:  "n/a",
			Status:           "activo",
			RegisteredAt:     time.Now().AddDate(-1, 0, 0).Format(models.DateLayout),
		},
	}
	staff.Profile.ID = staff.ID
	s.accounts[staff.Email] = staff
}

func (s *Store) seedSessions() {
	yoga := models.ActivityRef{ID: 1, Name: "Yoga", Color: strPtr("#8B5CF6")}
	spinning := models.ActivityRef{ID: 2, Name: "Spinning", Color: strPtr("#F59E0B")}
	crossfit := models.ActivityRef{ID: 3, Name: "CrossFit", Color: strPtr("#EF4444")}

	site := models.SiteRef{ID: 1, Name: "Sede Centro"}
	salaA := models.SpaceRef{ID: 1, Name: "Sala A"}
	salaB := models.SpaceRef{ID: 2, Name: "Sala B"}
	laura := models.TrainerRef{ID: 1, Name: "Laura Pérez"}
	diego := models.TrainerRef{ID: 2, Name: "Diego Ramos"}

	type sessionSeed struct {
		activity  models.ActivityRef
		trainer   models.TrainerRef
		space     models.SpaceRef
		daysAhead int
		start     string
		end       string
		capacity  int
		available int
		category  models.SessionCategory
	}
	seeds := []sessionSeed{
		{yoga, laura, salaA, 1, "07:00", "08:00", 15, 8, models.SessionCategoryBasic},
		{yoga, laura, salaA, 2, "07:00", "08:00", 15, 15, models.SessionCategoryBasic},
		{spinning, diego, salaB, 1, "18:00", "19:00", 20, 3, models.SessionCategoryBasic},
		{spinning, diego, salaB, 3, "18:00", "19:00", 20, 0, models.SessionCategoryBasic}, // already full
		{crossfit, diego, salaA, 2, "19:30", "20:30", 12, 5, models.SessionCategoryPremium},
		{crossfit, diego, salaA, 4, "19:30", "20:30", 12, 12, models.SessionCategoryPremium},
	}

	for _, sp := range seeds {
		session := &models.Session{
			ID:         s.id(),
			Date:       time.Now().AddDate(0, 0, sp.daysAhead).Format(models.DateLayout),
			Status:     models.SessionStatusScheduled,
			Activity:   sp.activity,
			Trainer:    sp.trainer,
			Space:      sp.space,
			Site:       site,
			StartTime:  strPtr(sp.start),
			EndTime:    strPtr(sp.end),
			Capacity:   sp.capacity,
			Available:  sp.available,
			CanReserve: sp.available > 0,
			Category:   sp.category,
		}
		if sp.available == 0 {
			session.Status = models.SessionStatusFull
		}
		s.sessions[session.ID] = session
	}
}

func (s *Store) seedPlans() {
	basic := 30
	annual := 365
	s.plans = []models.MembershipPlan{
		{
			ID:           s.id(),
			Name:         "Básica",
			Type:         "mensual",
			Price:        499,
			Active:       true,
			DurationDays: &basic,
			Benefits:     []string{"Acceso a sala de pesas", "Clases básicas"},
		},
		{
			ID:           s.id(),
			Name:         "Premium Anual",
			Type:         "anual",
			Price:        4999,
			Active:       true,
			DurationDays: &annual,
			Benefits:     []string{"Acceso total", "Clases premium", "Invitado mensual"},
		},
	}
}

func (s *Store) seedCleaning() {
	var staffID int64
	for _, account := range s.accounts {
		if account.Role == "limpieza" {
			staffID = account.ID
		}
	}
	if staffID == 0 {
		return
	}

	today := time.Now().Format(models.DateLayout)
	templates := []models.CleaningTask{
		{TaskName: "Limpieza de vestidores", Space: "Vestidores", StartTime: "08:00", DurationMinutes: 45, Priority: models.CleaningPriorityHigh},
		{TaskName: "Desinfección Sala A", Space: "Sala A", StartTime: "10:00", DurationMinutes: 30, Priority: models.CleaningPriorityMedium},
		{TaskName: "Revisión de regaderas", Space: "Regaderas", StartTime: "13:00", DurationMinutes: 20, Priority: models.CleaningPriorityLow},
	}
	for _, template := range templates {
		task := template
		task.ID = s.id()
		task.Site = "Sede Centro"
		task.Date = today
		task.Status = models.CleaningTaskStatusPending
		task.AssignedTo = "Marco Luna"
		s.tasks[task.ID] = &task
		s.taskOwner[task.ID] = staffID
	}
}

func strPtr(v string) *string {
	return &v
}
