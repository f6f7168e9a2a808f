package profile

import (
	"testing"

	"confcentral/models"
	"confcentral/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryProfileRepo struct {
	profiles map[string]*models.Profile
}

func newMemoryProfileRepo() *memoryProfileRepo {
	return &memoryProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *memoryProfileRepo) GetByID(userID string) (*models.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memoryProfileRepo) Upsert(p *models.Profile) error {
	cp := *p
	r.profiles[cp.UserID] = &cp
	return nil
}

func TestGetProfileNotFound(t *testing.T) {
	svc := &DefaultProfileService{Repo: newMemoryProfileRepo()}

	_, err := svc.GetProfile("user-1")
	require.Error(t, err)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestSaveProfileCreatesWithDefaults(t *testing.T) {
	repo := newMemoryProfileRepo()
	svc := &DefaultProfileService{Repo: repo}

	p, err := svc.SaveProfile("user-1", "lemoncake@example.com", nil)
	require.NoError(t, err)

	assert.Equal(t, "lemoncake", p.DisplayName)
	assert.Equal(t, models.TeeShirtNotSpecified, p.TeeShirt)
	assert.Equal(t, "lemoncake@example.com", p.MainEmail)

	got, err := svc.GetProfile("user-1")
	require.NoError(t, err)
	assert.Equal(t, "lemoncake", got.DisplayName)
}

func TestSaveProfileUpdatesExisting(t *testing.T) {
	repo := newMemoryProfileRepo()
	svc := &DefaultProfileService{Repo: repo}

	_, err := svc.SaveProfile("user-1", "lemoncake@example.com", &models.ProfileForm{
		DisplayName: "Lemon Cake",
		TeeShirt:    models.TeeShirtM,
	})
	require.NoError(t, err)

	// A partial form keeps the fields it leaves blank.
	p, err := svc.SaveProfile("user-1", "lemoncake@example.com", &models.ProfileForm{
		TeeShirt: models.TeeShirtXL,
	})
	require.NoError(t, err)
	assert.Equal(t, "Lemon Cake", p.DisplayName)
	assert.Equal(t, models.TeeShirtXL, p.TeeShirt)
}
