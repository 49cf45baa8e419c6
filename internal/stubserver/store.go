package stubserver

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gymapp/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// --- Store Errors ---
var (
	ErrEmailExists         = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountNotFound     = errors.New("account not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionFull         = errors.New("no slots available")
	ErrAlreadyReserved     = errors.New("client already has a reservation for this session")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrNotCancelable       = errors.New("reservation is not cancelable")
	ErrPlanNotFound        = errors.New("membership plan not found")
	ErrSubNotFound         = errors.New("subscription not found")
	ErrTaskNotFound        = errors.New("cleaning task not found")
)

// Account is a registered user of the stub backend.
type Account struct {
	ID           int64
	Email        string
	Name         string
	Role         string // "cliente" or "limpieza"
	PasswordHash []byte
	Profile      models.Profile
}

// Store is the stub backend's in-memory state. It enforces the same
// invariants the real backend owns (capacity never goes negative, statuses
// only move along the lifecycle) so client tests exercise realistic
// behavior without any external dependency.
type Store struct {
	mu     sync.Mutex
	nextID int64

	accounts      map[string]*Account // keyed by email
	sessions      map[int64]*models.Session
	reservations  map[int64]*models.Reservation
	resOwner      map[int64]int64 // reservation id -> account id
	plans         []models.MembershipPlan
	subscriptions map[int64]*models.MembershipSubscription
	subOwner      map[int64]int64
	tasks         map[int64]*models.CleaningTask
	taskOwner     map[int64]int64
	idempotency   map[string]int64 // idempotency key -> reservation id
}

// NewStore creates an empty Store. Call seed (via Options.Seed) for the demo
// dataset.
func NewStore() *Store {
	return &Store{
		accounts:      make(map[string]*Account),
		sessions:      make(map[int64]*models.Session),
		reservations:  make(map[int64]*models.Reservation),
		resOwner:      make(map[int64]int64),
		subscriptions: make(map[int64]*models.MembershipSubscription),
		subOwner:      make(map[int64]int64),
		tasks:         make(map[int64]*models.CleaningTask),
		taskOwner:     make(map[int64]int64),
		idempotency:   make(map[string]int64),
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// --- Accounts ---

// Register creates a client account. Passwords are stored bcrypt-hashed.
func (s *Store) Register(req models.RegisterRequest) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(req.Email)
	if _, exists := s.accounts[email]; exists {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &Account{
		ID:           s.id(),
		Email:        email,
		Name:         req.FirstName,
		Role:         "cliente",
		PasswordHash: hash,
		Profile: models.Profile{
			FirstName:        req.FirstName,
			LastNamePaternal: req.LastNamePaternal,
			Phone:            req.Phone,
			Email:            email,
			SiteID:           1,
			SiteName:         "Sede Centro",
			ExperienceLevel:  "principiante",
			Status:           "activo",
			RegisteredAt:     time.Now().Format(models.DateLayout),
		},
	}
	if req.LastNameMaternal != nil {
		account.Profile.LastNameMaternal = *req.LastNameMaternal
	}
	if req.ExperienceLevel != nil {
		account.Profile.ExperienceLevel = *req.ExperienceLevel
	}
	account.Profile.BirthDate = req.BirthDate
	account.Profile.Gender = req.Gender
	account.Profile.FitnessGoal = req.FitnessGoal
	account.Profile.ID = account.ID
	s.accounts[email] = account
	return account, nil
}

// Authenticate checks credentials and returns the matching account.
func (s *Store) Authenticate(email, password string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[strings.ToLower(email)]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// AccountByID returns the account with the given id.
func (s *Store) AccountByID(id int64) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrAccountNotFound
}

// --- Sessions and reservations ---

// ListSessions returns sessions matching the filter, ascending by date then
// start time.
func (s *Store) ListSessions(activityID *int64, dateFrom, dateTo string) []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		if activityID != nil && session.Activity.ID != *activityID {
			continue
		}
		if dateFrom != "" && session.Date < dateFrom {
			continue
		}
		if dateTo != "" && session.Date > dateTo {
			continue
		}
		out = append(out, *session)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return deref(out[i].StartTime) < deref(out[j].StartTime)
	})
	return out
}

// ListActivities aggregates the session table into the activity catalog.
func (s *Store) ListActivities() []models.Activity {
	sessions := s.ListSessions(nil, "", "")

	s.mu.Lock()
	defer s.mu.Unlock()

	byActivity := make(map[int64]*models.Activity)
	order := []int64{}
	for i := range sessions {
		session := &sessions[i]
		activity, seen := byActivity[session.Activity.ID]
		if !seen {
			color := "#4F46E5"
			if session.Activity.Color != nil {
				color = *session.Activity.Color
			}
			activity = &models.Activity{
				ID:          session.Activity.ID,
				Name:        session.Activity.Name,
				Description: session.Activity.Description,
				Color:       color,
			}
			byActivity[session.Activity.ID] = activity
			order = append(order, session.Activity.ID)
		}
		if session.Available > 0 {
			activity.AvailableSessions++
			if activity.NextSession == nil {
				activity.NextSession = &models.NextSessionSummary{
					ID:        session.ID,
					Date:      session.Date,
					StartTime: session.StartTime,
					EndTime:   session.EndTime,
					Available: session.Available,
					Status:    string(session.Status),
					Trainer:   &session.Trainer.Name,
					Space:     &session.Space.Name,
				}
			}
		}
	}

	out := make([]models.Activity, 0, len(order))
	for _, id := range order {
		out = append(out, *byActivity[id])
	}
	return out
}

// Reserve books a slot for the account, decrementing capacity. Repeated calls
// with the same idempotency key return the original reservation instead of
// double-booking.
func (s *Store) Reserve(accountID, sessionID int64, observations *string, idempotencyKey string) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idempotencyKey != "" {
		if resID, ok := s.idempotency[idempotencyKey]; ok {
			return s.reservations[resID], nil
		}
	}

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.Available <= 0 {
		return nil, ErrSessionFull
	}
	for resID, owner := range s.resOwner {
		res := s.reservations[resID]
		if owner == accountID && res.SessionID == sessionID && res.Status == models.ReservationStatusConfirmed {
			return nil, ErrAlreadyReserved
		}
	}

	session.Available--
	if session.Available == 0 {
		session.CanReserve = false
		session.Status = models.SessionStatusFull
	}

	reservation := &models.Reservation{
		ID:          s.id(),
		SessionID:   sessionID,
		Status:      models.ReservationStatusConfirmed,
		Activity:    session.Activity.Name,
		SessionDate: session.Date,
		StartTime:   session.StartTime,
		EndTime:     session.EndTime,
		Trainer:     session.Trainer.Name,
		Space:       session.Space.Name,
		Site:        session.Site.Name,
		Notes:       observations,
		CreatedAt:   time.Now().Format(models.DateLayout),
	}
	s.reservations[reservation.ID] = reservation
	s.resOwner[reservation.ID] = accountID
	if idempotencyKey != "" {
		s.idempotency[idempotencyKey] = reservation.ID
	}
	return reservation, nil
}

// MyReservations returns the account's reservations ascending by session date.
func (s *Store) MyReservations(accountID int64) []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.Reservation{}
	for resID, owner := range s.resOwner {
		if owner == accountID {
			out = append(out, *s.reservations[resID])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SessionDate != out[j].SessionDate {
			return out[i].SessionDate < out[j].SessionDate
		}
		return deref(out[i].StartTime) < deref(out[j].StartTime)
	})
	return out
}

// CancelReservation cancels the account's confirmed reservation and releases
// its slot.
func (s *Store) CancelReservation(accountID, reservationID int64, reason *string) (*models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.reservations[reservationID]
	if !ok || s.resOwner[reservationID] != accountID {
		return nil, ErrReservationNotFound
	}
	if reservation.Status != models.ReservationStatusConfirmed {
		return nil, ErrNotCancelable
	}

	reservation.Status = models.ReservationStatusCancelled
	reservation.CancellationReason = reason
	cancelledAt := time.Now().Format(models.DateLayout)
	reservation.CancelledAt = &cancelledAt

	if session, ok := s.sessions[reservation.SessionID]; ok {
		session.Available++
		session.CanReserve = true
		if session.Status == models.SessionStatusFull {
			session.Status = models.SessionStatusScheduled
		}
	}
	return reservation, nil
}

// --- Memberships ---

// Plans returns the active plan catalog.
func (s *Store) Plans() []models.MembershipPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MembershipPlan, len(s.plans))
	copy(out, s.plans)
	return out
}

// Subscriptions returns the account's subscriptions.
func (s *Store) Subscriptions(accountID int64) []models.MembershipSubscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.MembershipSubscription{}
	for subID, owner := range s.subOwner {
		if owner == accountID {
			out = append(out, *s.subscriptions[subID])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Subscribe creates an active subscription for the plan.
func (s *Store) Subscribe(accountID, planID int64) (*models.MembershipSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var plan *models.MembershipPlan
	for i := range s.plans {
		if s.plans[i].ID == planID {
			plan = &s.plans[i]
			break
		}
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	days := 30
	if plan.DurationDays != nil {
		days = *plan.DurationDays
	}
	now := time.Now()
	sub := &models.MembershipSubscription{
		ID:            s.id(),
		Plan:          *plan,
		StartDate:     now.Format(models.DateLayout),
		EndDate:       now.AddDate(0, 0, days).Format(models.DateLayout),
		Status:        models.SubscriptionStatusActive,
		DaysRemaining: days,
	}
	s.subscriptions[sub.ID] = sub
	s.subOwner[sub.ID] = accountID
	return sub, nil
}

// CancelSubscription cancels the account's subscription.
func (s *Store) CancelSubscription(accountID, subscriptionID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subscriptions[subscriptionID]
	if !ok || s.subOwner[subscriptionID] != accountID {
		return ErrSubNotFound
	}
	sub.Status = models.SubscriptionStatusCancelled
	sub.DaysRemaining = 0
	return nil
}

// --- Profiles ---

// UpdateProfile applies a partial update to the account's profile.
func (s *Store) UpdateProfile(accountID int64, update models.ProfileUpdate) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.ID != accountID {
			continue
		}
		p := &account.Profile
		applyString(&p.FirstName, update.FirstName)
		applyString(&p.LastNamePaternal, update.LastNamePaternal)
		applyString(&p.LastNameMaternal, update.LastNameMaternal)
		applyString(&p.Phone, update.Phone)
		applyString(&p.Email, update.Email)
		applyString(&p.ExperienceLevel, update.ExperienceLevel)
		if update.BirthDate != nil {
			p.BirthDate = update.BirthDate
		}
		if update.Gender != nil {
			p.Gender = update.Gender
		}
		if update.Address != nil {
			p.Address = update.Address
		}
		if update.FitnessGoal != nil {
			p.FitnessGoal = update.FitnessGoal
		}
		if update.EmergencyContactName != nil {
			p.EmergencyContactName = update.EmergencyContactName
		}
		if update.EmergencyContactPhone != nil {
			p.EmergencyContactPhone = update.EmergencyContactPhone
		}
		if update.EmergencyContactBond != nil {
			p.EmergencyContactBond = update.EmergencyContactBond
		}
		snapshot := *p
		return &snapshot, nil
	}
	return nil, ErrAccountNotFound
}

// --- Cleaning ---

// CleaningStaffFor returns the cleaning-staff record for the account, if the
// account has the limpieza role.
func (s *Store) CleaningStaffFor(accountID int64) (*models.CleaningStaff, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if account.ID == accountID && account.Role == "limpieza" {
			pending := 0
			for taskID, owner := range s.taskOwner {
				if owner == accountID && s.tasks[taskID].Status == models.CleaningTaskStatusPending {
					pending++
				}
			}
			return &models.CleaningStaff{
				EmployeeID:   account.ID,
				Name:         account.Name,
				Email:        account.Email,
				Phone:        account.Profile.Phone,
				Shift:        "matutino",
				SiteID:       account.Profile.SiteID,
				SiteName:     account.Profile.SiteName,
				PendingTasks: pending,
			}, nil
		}
	}
	return nil, ErrAccountNotFound
}

// TasksFor returns the account's cleaning assignments for a date.
func (s *Store) TasksFor(accountID int64, date string) []models.CleaningTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.CleaningTask{}
	for taskID, owner := range s.taskOwner {
		task := s.tasks[taskID]
		if owner == accountID && (date == "" || task.Date == date) {
			out = append(out, *task)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

// MarkTask transitions a cleaning task to the given status.
func (s *Store) MarkTask(accountID, taskID int64, status models.CleaningTaskStatus, notes *string) (*models.CleaningTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok || s.taskOwner[taskID] != accountID {
		return nil, ErrTaskNotFound
	}
	task.Status = status
	if status == models.CleaningTaskStatusCompleted {
		completedAt := time.Now().Format(time.RFC3339)
		task.CompletedAt = &completedAt
		task.CompletionNotes = notes
	}
	snapshot := *task
	return &snapshot, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
