package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/Dosada05/workout-api/feed"
	"github.com/Dosada05/workout-api/models"
	"github.com/Dosada05/workout-api/pagination"
	"github.com/Dosada05/workout-api/repositories"
	"github.com/Dosada05/workout-api/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAthleteRepository struct {
	mock.Mock
}

func (m *MockAthleteRepository) Create(ctx context.Context, athlete *models.Athlete) error {
	args := m.Called(ctx, athlete)
	return args.Error(0)
}

func (m *MockAthleteRepository) FindAll(ctx context.Context, filter models.AthleteFilter) ([]models.Athlete, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Athlete), args.Error(1)
}

type MockUploader struct {
	mock.Mock
	body []byte
}

func (m *MockUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	m.body, _ = io.ReadAll(reader)
	args := m.Called(ctx, key, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResult), args.Error(1)
}

func (m *MockUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

type recordingPublisher struct {
	events []feed.Message
}

func (p *recordingPublisher) Publish(eventType string, payload interface{}) {
	p.events = append(p.events, feed.Message{Type: eventType, Payload: payload})
}

var sampleAthletes = []models.Athlete{
	{ID: 1, Name: "Maria Silva", CPF: "111.111.111-11", TrainingCenter: "CT Alpha", Category: "elite"},
	{ID: 2, Name: "John Doe", CPF: "222.222.222-22", TrainingCenter: "CT Beta", Category: "amador"},
	{ID: 3, Name: "Mariana Lima", CPF: "333.333.333-33", TrainingCenter: "CT Alpha", Category: "junior"},
}

func TestRegisterAthlete_Success(t *testing.T) {
	repo := new(MockAthleteRepository)
	publisher := &recordingPublisher{}
	svc := NewAthleteService(repo, nil, publisher)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(a *models.Athlete) bool {
		return a.Name == "Maria Silva" && a.CPF == "111.111.111-11" && a.TrainingCenter == "CT Alpha" && a.Category == "elite"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Athlete).ID = 1
	}).Return(nil)

	athlete, err := svc.RegisterAthlete(ctx, CreateAthleteInput{
		Name:           "Maria Silva",
		CPF:            "111.111.111-11",
		TrainingCenter: "CT Alpha",
		Category:       "elite",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), athlete.ID)
	assert.Equal(t, "111.111.111-11", athlete.CPF)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, feed.EventAthleteRegistered, publisher.events[0].Type)
	assert.Equal(t, models.AthleteView{Name: "Maria Silva", TrainingCenter: "CT Alpha", Category: "elite"}, publisher.events[0].Payload)

	repo.AssertExpectations(t)
}

func TestRegisterAthlete_AcceptsEmptyFields(t *testing.T) {
	repo := new(MockAthleteRepository)
	svc := NewAthleteService(repo, nil, nil)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*models.Athlete")).Return(nil)

	_, err := svc.RegisterAthlete(ctx, CreateAthleteInput{})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRegisterAthlete_DuplicateCPF(t *testing.T) {
	repo := new(MockAthleteRepository)
	publisher := &recordingPublisher{}
	svc := NewAthleteService(repo, nil, publisher)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*models.Athlete")).Return(repositories.ErrAthleteCPFConflict)

	athlete, err := svc.RegisterAthlete(ctx, CreateAthleteInput{Name: "Maria", CPF: "111.111.111-11"})
	require.Error(t, err)
	assert.Nil(t, athlete)
	assert.ErrorIs(t, err, ErrDuplicateIdentifier)

	var dupErr *DuplicateIdentifierError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "111.111.111-11", dupErr.CPF)
	assert.Equal(t, "Já existe um atleta cadastrado com o cpf: 111.111.111-11", err.Error())
	assert.Empty(t, publisher.events)
}

func TestRegisterAthlete_StorageFailure(t *testing.T) {
	repo := new(MockAthleteRepository)
	svc := NewAthleteService(repo, nil, nil)
	ctx := context.Background()
	dbErr := errors.New("disk I/O error")

	repo.On("Create", ctx, mock.AnythingOfType("*models.Athlete")).Return(dbErr)

	_, err := svc.RegisterAthlete(ctx, CreateAthleteInput{CPF: "1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAthleteCreationFailed)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrDuplicateIdentifier)
}

func TestListAthletes_ProjectsAndPaginates(t *testing.T) {
	repo := new(MockAthleteRepository)
	svc := NewAthleteService(repo, nil, nil)
	ctx := context.Background()
	filter := models.AthleteFilter{Name: "Mar"}

	repo.On("FindAll", ctx, filter).Return([]models.Athlete{sampleAthletes[0], sampleAthletes[2]}, nil)

	page, err := svc.ListAthletes(ctx, filter, pagination.Params{Page: 1, Size: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 2, page.Pages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, models.AthleteView{Name: "Maria Silva", TrainingCenter: "CT Alpha", Category: "elite"}, page.Items[0])

	repo.AssertExpectations(t)
}

func TestListAthletes_RepositoryError(t *testing.T) {
	repo := new(MockAthleteRepository)
	svc := NewAthleteService(repo, nil, nil)
	ctx := context.Background()

	repo.On("FindAll", ctx, models.AthleteFilter{}).Return(nil, errors.New("connection refused"))

	_, err := svc.ListAthletes(ctx, models.AthleteFilter{}, pagination.DefaultParams())
	assert.ErrorIs(t, err, ErrAthleteListFailed)
}

func TestExportAthletes_Unavailable(t *testing.T) {
	svc := NewAthleteService(new(MockAthleteRepository), nil, nil)

	_, err := svc.ExportAthletes(context.Background(), models.AthleteFilter{})
	assert.ErrorIs(t, err, ErrExportUnavailable)
}

func TestExportAthletes_UploadsProjectedViews(t *testing.T) {
	repo := new(MockAthleteRepository)
	uploader := new(MockUploader)
	svc := NewAthleteService(repo, uploader, nil).(*athleteService)
	svc.now = func() time.Time { return time.Date(2026, time.October, 17, 12, 30, 0, 0, time.UTC) }
	ctx := context.Background()

	key := "exports/atletas-20261017T123000.000Z.json"
	repo.On("FindAll", ctx, models.AthleteFilter{}).Return(sampleAthletes, nil)
	uploader.On("Upload", ctx, key, "application/json").
		Return(&storage.UploadResult{Key: key, Location: "https://cdn.example.com/" + key}, nil)

	result, err := svc.ExportAthletes(ctx, models.AthleteFilter{})
	require.NoError(t, err)
	assert.Equal(t, key, result.Key)

	var exported []map[string]string
	require.NoError(t, json.Unmarshal(uploader.body, &exported))
	require.Len(t, exported, 3)
	for _, row := range exported {
		assert.NotContains(t, row, "cpf")
		assert.NotContains(t, row, "id")
	}
	assert.Equal(t, "John Doe", exported[1]["nome"])

	uploader.AssertExpectations(t)
}

func TestExportAthletes_UploadFailure(t *testing.T) {
	repo := new(MockAthleteRepository)
	uploader := new(MockUploader)
	svc := NewAthleteService(repo, uploader, nil)
	ctx := context.Background()

	repo.On("FindAll", ctx, models.AthleteFilter{}).Return([]models.Athlete{}, nil)
	uploader.On("Upload", ctx, mock.AnythingOfType("string"), "application/json").Return(nil, errors.New("403"))

	_, err := svc.ExportAthletes(ctx, models.AthleteFilter{})
	assert.ErrorIs(t, err, ErrExportFailed)
}

func TestProjectAthletes(t *testing.T) {
	views := ProjectAthletes(sampleAthletes)
	require.Len(t, views, 3)
	assert.Equal(t, "Maria Silva", views[0].Name)
	assert.Equal(t, "John Doe", views[1].Name)
	assert.Equal(t, "Mariana Lima", views[2].Name)

	empty := ProjectAthletes(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
