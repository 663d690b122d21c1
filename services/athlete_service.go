package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/workout-api/feed"
	"github.com/Dosada05/workout-api/models"
	"github.com/Dosada05/workout-api/pagination"
	"github.com/Dosada05/workout-api/repositories"
	"github.com/Dosada05/workout-api/storage"
)

type AthleteService interface {
	RegisterAthlete(ctx context.Context, input CreateAthleteInput) (*models.Athlete, error)
	ListAthletes(ctx context.Context, filter models.AthleteFilter, params pagination.Params) (*pagination.Page[models.AthleteView], error)
	ExportAthletes(ctx context.Context, filter models.AthleteFilter) (*storage.UploadResult, error)
}

// CreateAthleteInput carries the registration fields. Values are stored as
// given; empty strings are accepted.
type CreateAthleteInput struct {
	Name           string
	CPF            string
	TrainingCenter string
	Category       string
}

// Publisher receives registration events for live subscribers.
type Publisher interface {
	Publish(eventType string, payload interface{})
}

type athleteService struct {
	athleteRepo repositories.AthleteRepository
	uploader    storage.FileUploader
	publisher   Publisher
	now         func() time.Time
}

// NewAthleteService wires the athlete use cases. uploader and publisher may be
// nil, which disables exports and live events respectively.
func NewAthleteService(athleteRepo repositories.AthleteRepository, uploader storage.FileUploader, publisher Publisher) AthleteService {
	return &athleteService{
		athleteRepo: athleteRepo,
		uploader:    uploader,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *athleteService) RegisterAthlete(ctx context.Context, input CreateAthleteInput) (*models.Athlete, error) {
	athlete := &models.Athlete{
		Name:           input.Name,
		CPF:            input.CPF,
		TrainingCenter: input.TrainingCenter,
		Category:       input.Category,
	}

	if err := s.athleteRepo.Create(ctx, athlete); err != nil {
		if errors.Is(err, repositories.ErrAthleteCPFConflict) {
			return nil, &DuplicateIdentifierError{CPF: input.CPF}
		}
		return nil, fmt.Errorf("%w: %w", ErrAthleteCreationFailed, err)
	}

	if s.publisher != nil {
		s.publisher.Publish(feed.EventAthleteRegistered, athlete.View())
	}

	return athlete, nil
}

func (s *athleteService) ListAthletes(ctx context.Context, filter models.AthleteFilter, params pagination.Params) (*pagination.Page[models.AthleteView], error) {
	athletes, err := s.athleteRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAthleteListFailed, err)
	}

	page := pagination.Paginate(ProjectAthletes(athletes), params)
	return &page, nil
}

func (s *athleteService) ExportAthletes(ctx context.Context, filter models.AthleteFilter) (*storage.UploadResult, error) {
	if s.uploader == nil {
		return nil, ErrExportUnavailable
	}

	athletes, err := s.athleteRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAthleteListFailed, err)
	}

	body, err := json.Marshal(ProjectAthletes(athletes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}

	key := fmt.Sprintf("exports/atletas-%s.json", s.now().UTC().Format("20060102T150405.000Z"))
	result, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	return result, nil
}
