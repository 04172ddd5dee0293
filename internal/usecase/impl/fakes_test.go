package impl

import (
	"context"
	"maps"
	"sync"
	"time"

	"krisefikser/internal/domain/entity"
	"krisefikser/internal/domain/repository"
	"krisefikser/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// In-memory repository fakes. They guard state with mutexes so the
// concurrency tests exercise the same single-winner semantics the SQL
// implementations get from the database.

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.byEmail {
		if user.ID == id {
			cloned := *user

			return &cloned, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cloned := *user

	return &cloned, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return repository.ErrEmailTaken
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cloned := *user
	r.byEmail[user.Email] = &cloned

	return nil
}

func (r *fakeUserRepo) snapshot() map[string]*entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	return maps.Clone(r.byEmail)
}

func (r *fakeUserRepo) restore(state map[string]*entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byEmail = state
}

type fakeRoleRepo struct {
	roles map[entity.Role]bool
}

func newFakeRoleRepo(roles ...entity.Role) *fakeRoleRepo {
	known := make(map[entity.Role]bool, len(roles))
	for _, role := range roles {
		known[role] = true
	}

	return &fakeRoleRepo{roles: known}
}

func (r *fakeRoleRepo) FindByName(_ context.Context, name entity.Role) (entity.Role, error) {
	if !r.roles[name] {
		return "", repository.ErrRoleNotFound
	}

	return name, nil
}

type fakeRefreshTokenRepo struct {
	mu      sync.Mutex
	byToken map[string]*entity.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{byToken: make(map[string]*entity.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Save(_ context.Context, token *entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byToken[token.Token]; ok {
		return repository.ErrRefreshTokenExists
	}
	token.CreatedAt = time.Now()
	cloned := *token
	r.byToken[token.Token] = &cloned

	return nil
}

func (r *fakeRefreshTokenRepo) FindByToken(_ context.Context, token string) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byToken[token]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}
	cloned := *record

	return &cloned, nil
}

func (r *fakeRefreshTokenRepo) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byToken[token]; !ok {
		return repository.ErrRefreshTokenNotFound
	}
	delete(r.byToken, token)

	return nil
}

func (r *fakeRefreshTokenRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, record := range r.byToken {
		if record.UserID == userID {
			delete(r.byToken, key)
		}
	}

	return nil
}

func (r *fakeRefreshTokenRepo) DeleteExpired(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	var removed int64
	for key, record := range r.byToken {
		if record.ExpiresAt.Before(now) {
			delete(r.byToken, key)
			removed++
		}
	}

	return removed, nil
}

func (r *fakeRefreshTokenRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.byToken)
}

func (r *fakeRefreshTokenRepo) snapshot() map[string]*entity.RefreshToken {
	r.mu.Lock()
	defer r.mu.Unlock()

	return maps.Clone(r.byToken)
}

func (r *fakeRefreshTokenRepo) restore(state map[string]*entity.RefreshToken) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byToken = state
}

// fakeTxManager serializes transactions with a single lock and restores
// repository state when the callback fails, mimicking a rollback.
type fakeTxManager struct {
	mu               sync.Mutex
	userRepo         *fakeUserRepo
	roleRepo         *fakeRoleRepo
	refreshTokenRepo *fakeRefreshTokenRepo
}

func (tm *fakeTxManager) UserRepo() repository.UserRepository { return tm.userRepo }

func (tm *fakeTxManager) RoleRepo() repository.RoleRepository { return tm.roleRepo }

func (tm *fakeTxManager) RefreshTokenRepo() repository.RefreshTokenRepository {
	return tm.refreshTokenRepo
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	users := tm.userRepo.snapshot()
	tokens := tm.refreshTokenRepo.snapshot()

	if err := fn(tm); err != nil {
		tm.userRepo.restore(users)
		tm.refreshTokenRepo.restore(tokens)

		return err
	}

	return nil
}

// failingTokenService simulates an unusable signing key.
type failingTokenService struct{}

func (failingTokenService) GenerateTokens(string, []string) (string, string, error) {
	return "", "", errors.New("signing failed")
}

func (failingTokenService) ValidateToken(string) (*service.Claims, error) {
	return nil, errors.New("signing failed")
}

func (failingTokenService) GetRefreshTokenDuration() time.Duration {
	return time.Hour
}
