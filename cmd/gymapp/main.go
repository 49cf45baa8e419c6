package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gymapp/internal/api"
	"gymapp/internal/auth"
	"gymapp/internal/config"
	"gymapp/internal/models"
	"gymapp/internal/services"
	"gymapp/internal/state"
	"gymapp/pkg/utils"
)

// app bundles everything the terminal front end needs.
type app struct {
	reader       *bufio.Reader
	authService  *auth.Service
	booking      services.BookingCoordinator
	cancellation services.CancellationCoordinator
	schedule     services.ScheduleService
	memberships  services.MembershipService
	profile      services.ProfileService
	cleaning     services.CleaningService
	nav          *state.NavStack
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	utils.InitLogger(cfg.LogLevel)

	store, err := auth.OpenStore(cfg.StoragePath)
	if err != nil {
		log.Fatalf("Failed to open local storage: %v", err)
	}
	defer store.Close()

	client := api.NewClient(cfg.APIBaseURL, cfg.APITimeout, store)
	notifier := state.NewNotifier(state.DefaultBannerDismiss, printBanner)
	schedule := services.NewScheduleService(client)

	a := &app{
		reader:       bufio.NewReader(os.Stdin),
		authService:  auth.NewService(client, store),
		booking:      services.NewBookingCoordinator(schedule, notifier),
		cancellation: services.NewCancellationCoordinator(schedule, notifier, nil),
		schedule:     schedule,
		memberships:  services.NewMembershipService(client),
		profile:      services.NewProfileService(client),
		cleaning:     services.NewCleaningService(client),
		nav:          state.NewNavStack("home", nil),
	}
	a.run()
}

// printBanner renders banner transitions on the terminal.
func printBanner(b *state.Banner) {
	if b == nil {
		return
	}
	prefix := "OK"
	if b.Kind == state.BannerError {
		prefix = "ERROR"
	}
	fmt.Printf("\n[%s] %s\n", prefix, b.Message)
}

func (a *app) run() {
	fmt.Println("Gym client. Type the number of an option, or q to quit.")
	for {
		fmt.Println()
		fmt.Println("1) Login        2) Register      3) Logout")
		fmt.Println("4) Sessions     5) Book session  6) My reservations")
		fmt.Println("7) Cancel reservation")
		fmt.Println("8) Membership plans  9) My subscriptions  10) Subscribe")
		fmt.Println("11) My profile  12) Update profile")
		fmt.Println("13) Cleaning tasks   14) Start task  15) Complete task")
		choice := a.prompt("> ")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		switch choice {
		case "q", "quit", "exit":
			cancel()
			return
		case "1":
			a.login(ctx)
		case "2":
			a.register(ctx)
		case "3":
			a.logout()
		case "4":
			a.listSessions(ctx)
		case "5":
			a.bookSession(ctx)
		case "6":
			a.myReservations(ctx)
		case "7":
			a.cancelReservation(ctx)
		case "8":
			a.listPlans(ctx)
		case "9":
			a.mySubscriptions(ctx)
		case "10":
			a.subscribe(ctx)
		case "11":
			a.showProfile(ctx)
		case "12":
			a.updateProfile(ctx)
		case "13":
			a.cleaningTasks(ctx)
		case "14":
			a.markTask(ctx, true)
		case "15":
			a.markTask(ctx, false)
		default:
			fmt.Println("Unknown option.")
		}
		cancel()
	}
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	line, _ := a.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *app) login(ctx context.Context) {
	email := a.prompt("Email: ")
	password := a.prompt("Password: ")
	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		fmt.Println("Login failed:", api.ErrorMessage(err, "No se pudo iniciar sesión."))
		return
	}
	name := email
	if user != nil && user.Name != "" {
		name = user.Name
	}
	fmt.Printf("Welcome, %s.\n", name)
	a.nav.Replace("schedule", nil)
}

func (a *app) register(ctx context.Context) {
	req := models.RegisterRequest{
		Email:            a.prompt("Email: "),
		Password:         a.prompt("Password (min 8): "),
		FirstName:        a.prompt("First name: "),
		LastNamePaternal: a.prompt("Last name: "),
		Phone:            a.prompt("Phone: "),
	}
	if err := a.authService.Register(ctx, req); err != nil {
		fmt.Println("Registration failed:", api.ErrorMessage(err, "No se pudo completar el registro."))
		return
	}
	fmt.Println("Registered. You can log in now.")
}

func (a *app) logout() {
	if err := a.authService.Logout(); err != nil {
		fmt.Println("Logout failed:", err)
		return
	}
	a.nav.Replace("home", nil)
	fmt.Println("Logged out.")
}

func (a *app) listSessions(ctx context.Context) {
	filter := models.SessionFilter{}
	if raw := a.prompt("Activity id (empty for all): "); raw != "" {
		if id, err := utils.StrToInt64(raw); err == nil {
			filter.ActivityID = &id
		}
	}
	if err := a.booking.Refresh(ctx, filter); err != nil {
		fmt.Println("Could not load sessions:", api.ErrorMessage(err, "Error al cargar las sesiones."))
		return
	}
	sessions := a.booking.Sessions()
	if len(sessions) == 0 {
		fmt.Println("No sessions available.")
		return
	}
	for _, s := range sessions {
		start := ""
		if s.StartTime != nil {
			start = " " + *s.StartTime
		}
		fmt.Printf("#%d %s%s %s (%d/%d free)", s.ID, s.Date, start, s.Activity.Name, s.Available, s.Capacity)
		if !s.Bookable() {
			fmt.Print("  [full]")
		}
		fmt.Println()
	}
	a.nav.Replace("schedule", nil)
}

func (a *app) bookSession(ctx context.Context) {
	id, err := utils.StrToInt64(a.prompt("Session id: "))
	if err != nil {
		fmt.Println("Invalid id.")
		return
	}
	observations := a.prompt("Observations (optional): ")
	// Success and failure are both reported through banners.
	_, _ = a.booking.Book(ctx, id, observations)
}

func (a *app) myReservations(ctx context.Context) {
	if err := a.cancellation.Refresh(ctx); err != nil {
		fmt.Println("Could not load reservations:", api.ErrorMessage(err, "Error al cargar tus reservas."))
		return
	}
	filter := services.ReservationFilter(a.prompt("Filter (proximas/historial/canceladas/todas): "))
	view := services.DeriveView(a.cancellation.Reservations(), filter, time.Now())
	if len(view) == 0 {
		fmt.Println("Nothing here.")
		return
	}
	now := time.Now()
	for _, r := range view {
		fmt.Printf("#%d %s %s [%s]", r.ID, r.Activity, r.EventTime(now).Format("2006-01-02 15:04"), r.Status)
		if services.IsCancelable(&r, now) {
			fmt.Print("  (cancelable)")
		}
		fmt.Println()
	}
	a.nav.Replace("reservations", map[string]string{"filtro": string(filter)})
}

func (a *app) cancelReservation(ctx context.Context) {
	id, err := utils.StrToInt64(a.prompt("Reservation id: "))
	if err != nil {
		fmt.Println("Invalid id.")
		return
	}
	reason := a.prompt("Reason (optional): ")
	_ = a.cancellation.Cancel(ctx, id, reason)
}

func (a *app) listPlans(ctx context.Context) {
	plans, err := a.memberships.FetchActivePlans(ctx)
	if err != nil {
		fmt.Println("Could not load plans:", api.ErrorMessage(err, "Error al cargar las membresías."))
		return
	}
	for _, p := range plans {
		fmt.Printf("#%d %s (%s) $%.2f\n", p.ID, p.Name, p.Type, p.Price)
	}
}

func (a *app) mySubscriptions(ctx context.Context) {
	subs, err := a.memberships.FetchMySubscriptions(ctx)
	if err != nil {
		fmt.Println("Could not load subscriptions:", api.ErrorMessage(err, "Error al cargar tus suscripciones."))
		return
	}
	if len(subs) == 0 {
		fmt.Println("No subscriptions.")
		return
	}
	for _, s := range subs {
		fmt.Printf("#%d %s %s..%s [%s] %d days left\n", s.ID, s.Plan.Name, s.StartDate, s.EndDate, s.Status, s.DaysRemaining)
	}
}

func (a *app) subscribe(ctx context.Context) {
	planID, err := utils.StrToInt64(a.prompt("Plan id: "))
	if err != nil {
		fmt.Println("Invalid id.")
		return
	}
	method := models.PaymentMethod(a.prompt("Payment method (efectivo/tarjeta/transferencia): "))
	sub, err := a.memberships.Subscribe(ctx, services.SubscribeRequest{PlanID: planID, PaymentMethod: method})
	if err != nil {
		fmt.Println("Subscription failed:", api.ErrorMessage(err, "No se pudo crear la suscripción."))
		return
	}
	fmt.Printf("Subscribed to %s until %s.\n", sub.Plan.Name, sub.EndDate)
}

func (a *app) showProfile(ctx context.Context) {
	p, err := a.profile.FetchMyProfile(ctx)
	if err != nil {
		fmt.Println("Could not load profile:", api.ErrorMessage(err, "Error al cargar tu perfil."))
		return
	}
	fmt.Printf("%s %s <%s> tel %s, %s\n", p.FirstName, p.LastNamePaternal, p.Email, p.Phone, p.SiteName)
}

func (a *app) updateProfile(ctx context.Context) {
	update := models.ProfileUpdate{
		Phone:       utils.NewNullString(a.prompt("New phone (empty to keep): ")),
		FitnessGoal: utils.NewNullString(a.prompt("New fitness goal (empty to keep): ")),
	}
	p, err := a.profile.UpdateProfile(ctx, update)
	if err != nil {
		fmt.Println("Update failed:", api.ErrorMessage(err, "No se pudo actualizar el perfil."))
		return
	}
	fmt.Printf("Profile updated: %s, tel %s.\n", p.FirstName, p.Phone)
}

func (a *app) cleaningTasks(ctx context.Context) {
	date := a.prompt("Date YYYY-MM-DD (empty for today): ")
	tasks, err := a.cleaning.FetchTasks(ctx, date)
	if err != nil {
		fmt.Println("Could not load tasks:", api.ErrorMessage(err, "Error al cargar las asignaciones."))
		return
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks for that day.")
		return
	}
	for _, t := range tasks {
		fmt.Printf("#%d %s (%s, %s, %dmin) [%s]\n", t.ID, t.TaskName, t.Space, t.StartTime, t.DurationMinutes, t.Status)
	}
}

func (a *app) markTask(ctx context.Context, start bool) {
	id, err := utils.StrToInt64(a.prompt("Task id: "))
	if err != nil {
		fmt.Println("Invalid id.")
		return
	}
	var task *models.CleaningTask
	if start {
		task, err = a.cleaning.StartTask(ctx, id)
	} else {
		notes := a.prompt("Completion notes (optional): ")
		task, err = a.cleaning.CompleteTask(ctx, id, notes)
	}
	if err != nil {
		fmt.Println("Update failed:", api.ErrorMessage(err, "No se pudo actualizar la asignación."))
		return
	}
	fmt.Printf("Task #%d is now %s.\n", task.ID, task.Status)
}
