package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"gymapp/internal/api"
	"gymapp/internal/models"

	"github.com/rs/zerolog/log"
)

// --- Custom Service Errors for Cleaning ---
var (
	ErrFetchCleaningStaff = errors.New("failed to fetch cleaning staff info")
	ErrFetchCleaningTasks = errors.New("failed to fetch cleaning tasks")
	ErrStartTask          = errors.New("failed to start cleaning task")
	ErrCompleteTask       = errors.New("failed to complete cleaning task")
)

// --- Cleaning DTOs ---

// CompleteTaskRequest is the body of POST limpieza/asignaciones/{id}/marcar_completada/.
type CompleteTaskRequest struct {
	Notes *string `json:"observaciones_completado,omitempty"`
}

// --- CleaningService Interface ---

// CleaningService is the task-tracking surface for cleaning staff. Task state
// transitions come from the backend; after a mutation callers refetch the day's
// list rather than patching it.
type CleaningService interface {
	FetchCurrentStaff(ctx context.Context) (*models.CleaningStaff, error)
	FetchTasks(ctx context.Context, date string) ([]models.CleaningTask, error)
	StartTask(ctx context.Context, taskID int64) (*models.CleaningTask, error)
	CompleteTask(ctx context.Context, taskID int64, notes string) (*models.CleaningTask, error)
}

// --- cleaningService Implementation ---
type cleaningService struct {
	client *api.Client
}

// NewCleaningService creates a new instance of CleaningService.
func NewCleaningService(client *api.Client) CleaningService {
	return &cleaningService{client: client}
}

// FetchCurrentStaff returns the authenticated cleaning employee. A 404 means
// the signed-in user is a regular client, which callers treat as "not
// cleaning staff" rather than a failure.
func (s *cleaningService) FetchCurrentStaff(ctx context.Context) (*models.CleaningStaff, error) {
	body, err := s.client.Get(ctx, "limpieza/personal/me/", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchCleaningStaff, err)
	}

	staff, _, err := models.DecodeEntity[models.CleaningStaff](body)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrFetchCleaningStaff, err)
	}
	return staff, nil
}

// FetchTasks returns the employee's assignments for a date ("2006-01-02");
// empty means today.
func (s *cleaningService) FetchTasks(ctx context.Context, date string) ([]models.CleaningTask, error) {
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}
	query := url.Values{}
	query.Set("fecha", date)

	body, err := s.client.Get(ctx, "limpieza/asignaciones/", query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchCleaningTasks, err)
	}
	return models.DecodeList[models.CleaningTask](body), nil
}

// StartTask marks an assignment as in progress.
func (s *cleaningService) StartTask(ctx context.Context, taskID int64) (*models.CleaningTask, error) {
	path := fmt.Sprintf("limpieza/asignaciones/%d/marcar_en_progreso/", taskID)
	body, err := s.client.Post(ctx, path, struct{}{})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartTask, err)
	}

	task, _, err := models.DecodeEntity[models.CleaningTask](body)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrStartTask, err)
	}
	return task, nil
}

// CompleteTask marks an assignment as completed with optional notes.
func (s *cleaningService) CompleteTask(ctx context.Context, taskID int64, notes string) (*models.CleaningTask, error) {
	path := fmt.Sprintf("limpieza/asignaciones/%d/marcar_completada/", taskID)
	req := CompleteTaskRequest{}
	if notes != "" {
		req.Notes = &notes
	}

	body, err := s.client.Post(ctx, path, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompleteTask, err)
	}

	task, _, err := models.DecodeEntity[models.CleaningTask](body)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrCompleteTask, err)
	}
	log.Info().Int64("task_id", taskID).Msg("Cleaning task completed")
	return task, nil
}
