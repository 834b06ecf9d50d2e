package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillgate_backend/internal/models"
)

type fakeRefreshTokenRepo struct {
	deleteExpiredCalls int
}

func (f *fakeRefreshTokenRepo) Create(*models.RefreshToken) error { return nil }
func (f *fakeRefreshTokenRepo) FindByToken(string) (*models.RefreshToken, error) {
	return nil, nil
}
func (f *fakeRefreshTokenRepo) DeleteByToken(string) error { return nil }
func (f *fakeRefreshTokenRepo) DeleteByUser(string) error  { return nil }
func (f *fakeRefreshTokenRepo) DeleteExpired() error {
	f.deleteExpiredCalls++
	return nil
}

// TestTokenWorker_RemoveExpired - чистка дергает удаление истекших токенов
func TestTokenWorker_RemoveExpired(t *testing.T) {
	repo := &fakeRefreshTokenRepo{}
	worker := NewTokenWorker(repo)

	worker.removeExpired()
	worker.removeExpired()

	assert.Equal(t, 2, repo.deleteExpiredCalls)
}
