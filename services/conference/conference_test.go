package conference

import (
	"context"
	"sync"
	"testing"
	"time"

	registrationRepo "confcentral/database/repository/registration"
	"confcentral/models"
	"confcentral/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu          sync.Mutex
	profiles    map[string]*models.Profile
	conferences map[string]*models.Conference
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		profiles:    make(map[string]*models.Profile),
		conferences: make(map[string]*models.Conference),
	}
}

type memoryTx struct {
	store  *memoryStore
	staged []func()
}

func (t *memoryTx) Profile(userID string) (*models.Profile, error) {
	p, ok := t.store.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (t *memoryTx) Conference(key string) (*models.Conference, error) {
	c, ok := t.store.conferences[key]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (t *memoryTx) Session(string) (*models.Session, error) { return nil, nil }

func (t *memoryTx) SaveProfile(p *models.Profile) error {
	saved := *p
	t.staged = append(t.staged, func() { t.store.profiles[saved.UserID] = &saved })
	return nil
}

func (t *memoryTx) SaveConference(c *models.Conference) error {
	saved := *c
	t.staged = append(t.staged, func() { t.store.conferences[saved.ID] = &saved })
	return nil
}

func (t *memoryTx) SaveSession(*models.Session) error { return nil }

func (m *memoryStore) RunAtomic(ctx context.Context, fn func(tx registrationRepo.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memoryTx{store: m}
	if err := fn(tx); err != nil {
		return err
	}
	for _, apply := range tx.staged {
		apply()
	}
	return nil
}

func (m *memoryStore) GetByID(userID string) (*models.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memoryStore) Upsert(p *models.Profile) error {
	cp := *p
	m.profiles[cp.UserID] = &cp
	return nil
}

type memoryConferenceRepo struct {
	store *memoryStore
}

func (r *memoryConferenceRepo) GetByID(id string) (*models.Conference, error) {
	c, ok := r.store.conferences[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memoryConferenceRepo) GetByKeys(keys []string) ([]models.Conference, error) {
	out := []models.Conference{}
	for _, k := range keys {
		if c, ok := r.store.conferences[k]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memoryConferenceRepo) GetByOrganizer(userID string) ([]models.Conference, error) {
	out := []models.Conference{}
	for _, c := range r.store.conferences {
		if c.OrganizerUserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memoryConferenceRepo) Query(*models.ConferenceQueryPlan) ([]models.Conference, error) {
	return nil, nil
}

func (r *memoryConferenceRepo) NearlySoldOut(int) ([]models.Conference, error) { return nil, nil }

type capturingNotifier struct {
	payloads []models.EmailPayload
}

func (n *capturingNotifier) EnqueueConfirmationEmail(ctx context.Context, payload models.EmailPayload) error {
	n.payloads = append(n.payloads, payload)
	return nil
}

func newTestService(store *memoryStore, notifier *capturingNotifier) *DefaultConferenceService {
	return &DefaultConferenceService{
		Repo:        &memoryConferenceRepo{store: store},
		ProfileRepo: store,
		Atomic:      store,
		Notifier:    notifier,
	}
}

func TestCreateConference(t *testing.T) {
	store := newMemoryStore()
	notifier := &capturingNotifier{}
	svc := newTestService(store, notifier)

	start := time.Date(2014, time.June, 10, 0, 0, 0, 0, time.UTC)
	c, err := svc.CreateConference(context.Background(), "user-1", "u1@example.com", &models.ConferenceForm{
		Name:         "GCP Live",
		City:         "San Francisco",
		StartDate:    &start,
		MaxAttendees: 100,
	})
	require.NoError(t, err)
	require.NotEmpty(t, c.ID)

	stored := store.conferences[c.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "user-1", stored.OrganizerUserID)
	assert.Equal(t, 6, stored.Month)
	assert.Equal(t, 100, stored.SeatsAvailable)

	// A profile is created lazily for the organizer.
	profile := store.profiles["user-1"]
	require.NotNil(t, profile)
	assert.Equal(t, "u1", profile.DisplayName)

	require.Len(t, notifier.payloads, 1)
	assert.Equal(t, models.EmailTypeNewConference, notifier.payloads[0].Type)
	assert.Equal(t, "u1@example.com", notifier.payloads[0].Email)
	assert.Contains(t, notifier.payloads[0].Info, "GCP Live")
}

func TestCreateConferenceValidationFailsBeforeWrite(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, &capturingNotifier{})

	_, err := svc.CreateConference(context.Background(), "user-1", "u1@example.com", &models.ConferenceForm{
		Name: "",
	})
	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
	assert.Empty(t, store.conferences)
	assert.Empty(t, store.profiles)
}

func TestGetConference(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, &capturingNotifier{})

	created, err := svc.CreateConference(context.Background(), "user-1", "u1@example.com", &models.ConferenceForm{
		Name:         "GCP Live",
		MaxAttendees: 100,
	})
	require.NoError(t, err)

	got, err := svc.GetConference(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetConference("missing")
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestGetConferencesCreated(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, &capturingNotifier{})

	_, err := svc.CreateConference(context.Background(), "user-1", "u1@example.com", &models.ConferenceForm{
		Name: "Mine", MaxAttendees: 10,
	})
	require.NoError(t, err)
	_, err = svc.CreateConference(context.Background(), "user-2", "u2@example.com", &models.ConferenceForm{
		Name: "Theirs", MaxAttendees: 10,
	})
	require.NoError(t, err)

	mine, err := svc.GetConferencesCreated("user-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Name)
}

func TestGetConferencesToAttendNoProfile(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, &capturingNotifier{})

	_, err := svc.GetConferencesToAttend("user-1")
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestQueryConferencesRejectsInvalidForm(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, &capturingNotifier{})

	_, err := svc.QueryConferences(&models.ConferenceQueryForm{Filters: []models.ConferenceFilter{
		{Field: models.ConferenceFieldMonth, Operator: models.OpGT, Value: "6"},
		{Field: models.ConferenceFieldSeatsAvailable, Operator: models.OpGT, Value: "0"},
	}})
	require.Error(t, err)
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}
