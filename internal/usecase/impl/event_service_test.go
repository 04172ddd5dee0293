package impl

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"krisefikser/internal/domain/entity"
	domainerrors "krisefikser/internal/domain/errors"
	"krisefikser/internal/domain/repository"
	"krisefikser/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*entity.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{nextID: 1, byID: make(map[int64]*entity.Event)}
}

func (r *fakeEventRepo) FindAll(_ context.Context) ([]*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]*entity.Event, 0, len(r.byID))
	for _, event := range r.byID {
		cloned := *event
		events = append(events, &cloned)
	}

	return events, nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id int64) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	cloned := *event

	return &cloned, nil
}

func (r *fakeEventRepo) Create(_ context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event.ID = r.nextID
	r.nextID++
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	cloned := *event
	r.byID[event.ID] = &cloned

	return nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[event.ID]
	if !ok {
		return repository.ErrEventNotFound
	}
	event.CreatedAt = existing.CreatedAt
	event.UpdatedAt = time.Now()
	cloned := *event
	r.byID[event.ID] = &cloned

	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return repository.ErrEventNotFound
	}
	delete(r.byID, id)

	return nil
}

func newEventTestService() (usecase.EventUsecase, *fakeEventRepo) {
	repo := newFakeEventRepo()
	svc := NewEventService(EventServiceParams{
		EventRepo: repo,
		Logger:    slog.New(slog.DiscardHandler),
	})

	return svc, repo
}

func floodInput() usecase.EventInput {
	start := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	return usecase.EventInput{
		Title:       "Flood warning",
		Description: "River levels rising",
		Latitude:    63.4305,
		Longitude:   10.3951,
		Radius:      5000,
		Severity:    "HIGH",
		StartTime:   &start,
	}
}

func TestEventService_CreateAndGet(t *testing.T) {
	svc, _ := newEventTestService()
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, floodInput())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	fetched, err := svc.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flood warning", fetched.Title)
	assert.Equal(t, "HIGH", fetched.Severity)
	assert.InDelta(t, 63.4305, fetched.Latitude, 1e-9)
}

func TestEventService_GetMissing(t *testing.T) {
	svc, _ := newEventTestService()

	_, err := svc.GetEvent(context.Background(), 42)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestEventService_List(t *testing.T) {
	svc, _ := newEventTestService()
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, floodInput())
	require.NoError(t, err)
	input := floodInput()
	input.Title = "Wildfire"
	_, err = svc.CreateEvent(ctx, input)
	require.NoError(t, err)

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestEventService_Update(t *testing.T) {
	svc, _ := newEventTestService()
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, floodInput())
	require.NoError(t, err)

	input := floodInput()
	input.Severity = "CRITICAL"
	input.Radius = 10000

	updated, err := svc.UpdateEvent(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "CRITICAL", updated.Severity)
	assert.InDelta(t, 10000, updated.Radius, 1e-9)

	_, err = svc.UpdateEvent(ctx, 42, input)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestEventService_Delete(t *testing.T) {
	svc, _ := newEventTestService()
	ctx := context.Background()

	created, err := svc.CreateEvent(ctx, floodInput())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEvent(ctx, created.ID))

	_, err = svc.GetEvent(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteEvent(ctx, created.ID), domainerrors.ErrNotFound)
}
