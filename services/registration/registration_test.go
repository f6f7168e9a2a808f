package registration

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

// memoryStore is an in-memory stand-in for the Mongo transaction machinery.
// RunAtomic serializes transactions under a mutex and commits staged writes
// only when fn succeeds, so capacity races resolve to exactly one winner.
type memoryStore struct {
	mu          sync.Mutex
	profiles    map[string]*models.Profile
	conferences map[string]*models.Conference
	sessions    map[string]*models.Session
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		profiles:    make(map[string]*models.Profile),
		conferences: make(map[string]*models.Conference),
		sessions:    make(map[string]*models.Session),
	}
}

func copyProfile(p *models.Profile) *models.Profile {
	c := *p
	c.ConferenceKeysToAttend = append([]string(nil), p.ConferenceKeysToAttend...)
	c.SessionKeysWishlist = append([]string(nil), p.SessionKeysWishlist...)
	return &c
}

func copyConference(c *models.Conference) *models.Conference {
	cp := *c
	cp.Topics = append([]string(nil), c.Topics...)
	return &cp
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
	return copyProfile(p), nil
}

func (t *memoryTx) Conference(key string) (*models.Conference, error) {
	c, ok := t.store.conferences[key]
	if !ok {
		return nil, nil
	}
	return copyConference(c), nil
}

func (t *memoryTx) Session(key string) (*models.Session, error) {
	s, ok := t.store.sessions[key]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (t *memoryTx) SaveProfile(p *models.Profile) error {
	saved := copyProfile(p)
	t.staged = append(t.staged, func() { t.store.profiles[saved.UserID] = saved })
	return nil
}

func (t *memoryTx) SaveConference(c *models.Conference) error {
	saved := copyConference(c)
	t.staged = append(t.staged, func() { t.store.conferences[saved.ID] = saved })
	return nil
}

func (t *memoryTx) SaveSession(s *models.Session) error {
	saved := *s
	t.staged = append(t.staged, func() { t.store.sessions[saved.ID] = &saved })
	return nil
}

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

// ProfileRepository and SessionRepository reads, backed by the same store.
func (m *memoryStore) GetByID(userID string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	return copyProfile(p), nil
}

func (m *memoryStore) Upsert(p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.UserID] = copyProfile(p)
	return nil
}

type memorySessionRepo struct {
	store *memoryStore
}

func (r *memorySessionRepo) GetByID(id string) (*models.Session, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s, ok := r.store.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memorySessionRepo) GetByKeys(keys []string) ([]models.Session, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := []models.Session{}
	for _, k := range keys {
		if s, ok := r.store.sessions[k]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memorySessionRepo) GetByConference(string) ([]models.Session, error) {
	return nil, nil
}

func (r *memorySessionRepo) GetByConferenceAndType(string, string) ([]models.Session, error) {
	return nil, nil
}

func (r *memorySessionRepo) GetByConferenceAndSpeaker(string, string) ([]models.Session, error) {
	return nil, nil
}

func (r *memorySessionRepo) GetBySpeaker(string) ([]models.Session, error) {
	return nil, nil
}

func (r *memorySessionRepo) Query(*models.SessionQueryPlan) ([]models.Session, error) {
	return nil, nil
}

func newTestService(store *memoryStore) *DefaultRegistrationService {
	return &DefaultRegistrationService{
		Atomic:      store,
		ProfileRepo: store,
		SessionRepo: &memorySessionRepo{store: store},
	}
}

func seedConference(t *testing.T, store *memoryStore, key string, maxAttendees int) {
	t.Helper()
	c, err := models.NewConference(key, "organizer-1", &models.ConferenceForm{
		Name:         "GCP Live",
		City:         "San Francisco",
		MaxAttendees: maxAttendees,
	})
	require.NoError(t, err)
	store.conferences[key] = c
}

func seedSession(t *testing.T, store *memoryStore, key, conferenceKey string) {
	t.Helper()
	s, err := models.NewSession(key, conferenceKey, &models.SessionForm{
		Name:     "Datastore under the hood",
		Speaker:  "Alex Martelli",
		Type:     "lecture",
		Date:     time.Date(2014, time.March, 25, 0, 0, 0, 0, time.UTC),
		Time:     "09:30",
		Duration: 60,
	})
	require.NoError(t, err)
	store.sessions[key] = s
}

func TestRegisterForConference(t *testing.T) {
	store := newMemoryStore()
	seedConference(t, store, "conf-1", 500)
	svc := newTestService(store)

	err := svc.RegisterForConference(context.Background(), "user-1", "u1@example.com", "conf-1")
	require.NoError(t, err)

	assert.Equal(t, 499, store.conferences["conf-1"].SeatsAvailable)
	profile := store.profiles["user-1"]
	require.NotNil(t, profile)
	assert.True(t, profile.IsRegisteredForConference("conf-1"))
	assert.Equal(t, "u1", profile.DisplayName)
}

func TestRegisterForConferenceTwice(t *testing.T) {
	store := newMemoryStore()
	seedConference(t, store, "conf-1", 500)
	svc := newTestService(store)

	require.NoError(t, svc.RegisterForConference(context.Background(), "user-1", "u1@example.com", "conf-1"))

	err := svc.RegisterForConference(context.Background(), "user-1", "u1@example.com", "conf-1")
	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))

	// The failed attempt must not burn a seat.
	assert.Equal(t, 499, store.conferences["conf-1"].SeatsAvailable)
	assert.Equal(t, []string{"conf-1"}, store.profiles["user-1"].ConferencesToAttend())
}

func TestRegisterForConferenceUnknownKey(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store)

	err := svc.RegisterForConference(context.Background(), "user-1", "u1@example.com", "missing")
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestRegisterForConferenceSoldOut(t *testing.T) {
	store := newMemoryStore()
	seedConference(t, store, "conf-1", 1)
	svc := newTestService(store)

	require.NoError(t, svc.RegisterForConference(context.Background(), "user-1", "u1@example.com", "conf-1"))

	err := svc.RegisterForConference(context.Background(), "user-2", "u2@example.com", "conf-1")
	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))

	assert.Equal(t, 0, store.conferences["conf-1"].SeatsAvailable)
	assert.Nil(t, store.profiles["user-2"])
}

func TestRegisterLastSeatExactlyOneWinner(t *testing.T) {
	store := newMemoryStore()
	seedConference(t, store, "conf-1", 1)
	svc := newTestService(store)

	const contenders = 8
	errs := make([]error, contenders)
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := string(rune('a' + i))
			errs[i] = svc.RegisterForConference(context.Background(), userID, userID+"@example.com", "conf-1")
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.Equal(t, utils.KindConflict, utils.KindOf(err))
		}
	}
	assert.Equal(t, 1, winners)
	assert.Equal(t, 0, store.conferences["conf-1"].SeatsAvailable)
}

func TestUnregisterFromConference(t *testing.T) {
	store := newMemoryStore()
	seedConference(t, store, "conf-1", 500)
	svc := newTestService(store)

	require.NoError(t, svc.RegisterForConference(context.Background(), "user-1", "u1@example.com", "conf-1"))
	require.NoError(t, svc.UnregisterFromConference(context.Background(), "user-1", "conf-1"))

	assert.Equal(t, 500, store.conferences["conf-1"].SeatsAvailable)
	assert.False(t, store.profiles["user-1"].IsRegisteredForConference("conf-1"))
}

func TestUnregisterWithoutRegistration(t *testing.T) {
	store := newMemoryStore()
	seedConference(t, store, "conf-1", 500)
	svc := newTestService(store)

	err := svc.UnregisterFromConference(context.Background(), "user-1", "conf-1")
	require.Error(t, err)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
	assert.Equal(t, 500, store.conferences["conf-1"].SeatsAvailable)
}

func TestAddSessionToWishlist(t *testing.T) {
	store := newMemoryStore()
	seedConference(t, store, "conf-1", 500)
	seedSession(t, store, "sess-1", "conf-1")
	svc := newTestService(store)

	require.NoError(t, svc.RegisterForConference(context.Background(), "user-1", "u1@example.com", "conf-1"))
	require.NoError(t, svc.AddSessionToWishlist(context.Background(), "user-1", "sess-1"))

	assert.True(t, store.profiles["user-1"].IsSessionInWishlist("sess-1"))
}

func TestAddSessionToWishlistRequiresRegistration(t *testing.T) {
	store := newMemoryStore()
	seedConference(t, store, "conf-1", 500)
	seedSession(t, store, "sess-1", "conf-1")
	svc := newTestService(store)

	err := svc.AddSessionToWishlist(context.Background(), "user-1", "sess-1")
	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestAddSessionToWishlistUnknownSession(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store)

	err := svc.AddSessionToWishlist(context.Background(), "user-1", "missing")
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestAddSessionToWishlistTwice(t *testing.T) {
	store := newMemoryStore()
	seedConference(t, store, "conf-1", 500)
	seedSession(t, store, "sess-1", "conf-1")
	svc := newTestService(store)

	require.NoError(t, svc.RegisterForConference(context.Background(), "user-1", "u1@example.com", "conf-1"))
	require.NoError(t, svc.AddSessionToWishlist(context.Background(), "user-1", "sess-1"))

	err := svc.AddSessionToWishlist(context.Background(), "user-1", "sess-1")
	require.Error(t, err)
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
	assert.Equal(t, []string{"sess-1"}, store.profiles["user-1"].SessionsInWishlist())
}

func TestRemoveSessionFromWishlist(t *testing.T) {
	store := newMemoryStore()
	seedConference(t, store, "conf-1", 500)
	seedSession(t, store, "sess-1", "conf-1")
	svc := newTestService(store)

	require.NoError(t, svc.RegisterForConference(context.Background(), "user-1", "u1@example.com", "conf-1"))
	require.NoError(t, svc.AddSessionToWishlist(context.Background(), "user-1", "sess-1"))
	require.NoError(t, svc.RemoveSessionFromWishlist(context.Background(), "user-1", "sess-1"))

	assert.False(t, store.profiles["user-1"].IsSessionInWishlist("sess-1"))

	err := svc.RemoveSessionFromWishlist(context.Background(), "user-1", "sess-1")
	require.Error(t, err)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
}

func TestGetWishlistSessions(t *testing.T) {
	store := newMemoryStore()
	seedConference(t, store, "conf-1", 500)
	seedSession(t, store, "sess-1", "conf-1")
	seedSession(t, store, "sess-2", "conf-1")
	svc := newTestService(store)

	require.NoError(t, svc.RegisterForConference(context.Background(), "user-1", "u1@example.com", "conf-1"))
	require.NoError(t, svc.AddSessionToWishlist(context.Background(), "user-1", "sess-2"))
	require.NoError(t, svc.AddSessionToWishlist(context.Background(), "user-1", "sess-1"))

	sessions, err := svc.GetWishlistSessions("user-1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "sess-2", sessions[0].ID)
	assert.Equal(t, "sess-1", sessions[1].ID)
}

func TestGetWishlistSessionsNoProfile(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store)

	_, err := svc.GetWishlistSessions("user-1")
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}
