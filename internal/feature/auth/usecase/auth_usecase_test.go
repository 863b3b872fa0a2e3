package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"todo_backend/internal/feature/auth/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	// CreateFunc is called when the Create method is invoked.
	CreateFunc func(ctx context.Context, user *entity.User) error
	// FindByEmailFunc is called when the FindByEmail method is invoked.
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	// FindByIDFunc is called when the FindByID method is invoked.
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
}

// Create is the mock implementation of the Create method.
func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

// FindByEmail is the mock implementation of the FindByEmail method.
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default: no such user
	return nil, ErrUserNotFound
}

// FindByID is the mock implementation of the FindByID method.
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

// mockSessionRepository is a mock implementation of the SessionRepository interface.
type mockSessionRepository struct {
	CreateFunc        func(ctx context.Context, session *entity.Session) error
	FindByIDFunc      func(ctx context.Context, id string) (*entity.Session, error)
	DeleteFunc        func(ctx context.Context, id string) error
	DeleteExpiredFunc func(ctx context.Context) (int64, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *mockSessionRepository) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrSessionNotFound
}

func (m *mockSessionRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return 0, nil
}

func newTestUsecase(users *mockUserRepository, sessions *mockSessionRepository) *authUsecase {
	return NewAuthUsecase(users, sessions, NewPasswordVerifier(users), 24*time.Hour)
}

func TestAuthUsecase_Join(t *testing.T) {
	t.Run("successful join hashes the password", func(t *testing.T) {
		var created *entity.User
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = user
				return nil
			},
		}
		uc := newTestUsecase(mockRepo, &mockSessionRepository{})

		user, err := uc.Join(context.Background(), "a@x.com", "A", "nickA", "pw1234")

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "a@x.com", user.Email)
		assert.Equal(t, "A", user.Name)
		assert.Equal(t, "nickA", user.Nick)
		// Verify that the password is hashed
		assert.NotEqual(t, "pw1234", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("pw1234")),
			"invalid bcrypt hash")
		// Verify the configured cost factor
		cost, err := bcrypt.Cost([]byte(created.Password))
		require.NoError(t, err)
		assert.Equal(t, hashCost, cost, "unexpected bcrypt cost")
	})

	t.Run("duplicate email is rejected before hashing", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return &entity.User{ID: 1, Email: email}, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				t.Fatal("Create must not be called for a duplicate email")
				return nil
			},
		}
		uc := newTestUsecase(mockRepo, &mockSessionRepository{})

		_, err := uc.Join(context.Background(), "a@x.com", "A", "nickA", "pw1234")

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("duplicate nick surfaces the repository sentinel", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrUserAlreadyExists
			},
		}
		uc := newTestUsecase(mockRepo, &mockSessionRepository{})

		_, err := uc.Join(context.Background(), "b@x.com", "B", "takenNick", "pw1234")

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("repository lookup failure is wrapped", func(t *testing.T) {
		expectedErr := errors.New("database error")
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, expectedErr
			},
		}
		uc := newTestUsecase(mockRepo, &mockSessionRepository{})

		_, err := uc.Join(context.Background(), "a@x.com", "A", "nickA", "pw1234")

		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	// Hashed password for testing
	password := "pw1234"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:       1,
		Email:    "a@x.com",
		Nick:     "nickA",
		Name:     "A",
		Password: string(hashedPassword),
	}
	findTestUser := func(ctx context.Context, email string) (*entity.User, error) {
		if email == testUser.Email {
			return testUser, nil
		}
		return nil, ErrUserNotFound
	}

	t.Run("successful login establishes a session", func(t *testing.T) {
		var stored *entity.Session
		mockSessions := &mockSessionRepository{
			CreateFunc: func(ctx context.Context, session *entity.Session) error {
				stored = session
				return nil
			},
		}
		uc := newTestUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, mockSessions)

		token, err := uc.Login(context.Background(), "a@x.com", password)

		require.NoError(t, err)
		require.NotNil(t, stored, "session was not persisted")
		assert.Equal(t, token, stored.ID)
		assert.Equal(t, testUser.ID, stored.UserID)
		assert.Len(t, token, 64, "token should be 32 random bytes hex-encoded")
		assert.True(t, stored.ExpiresAt.After(time.Now()), "session must expire in the future")
	})

	t.Run("two logins never produce the same token", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, &mockSessionRepository{})

		token1, err := uc.Login(context.Background(), "a@x.com", password)
		require.NoError(t, err)
		token2, err := uc.Login(context.Background(), "a@x.com", password)
		require.NoError(t, err)

		assert.NotEqual(t, token1, token2)
	})

	t.Run("wrong password fails with generic error", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, &mockSessionRepository{})

		_, err := uc.Login(context.Background(), "a@x.com", "wrongpass")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email fails with the same error as wrong password", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, &mockSessionRepository{})

		_, wrongPassErr := uc.Login(context.Background(), "a@x.com", "wrongpass")
		_, unknownErr := uc.Login(context.Background(), "nobody@x.com", password)

		assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
		assert.Equal(t, wrongPassErr, unknownErr, "errors must be indistinguishable")
	})

	t.Run("session store failure fails the login", func(t *testing.T) {
		expectedErr := errors.New("store down")
		mockSessions := &mockSessionRepository{
			CreateFunc: func(ctx context.Context, session *entity.Session) error {
				return expectedErr
			},
		}
		uc := newTestUsecase(&mockUserRepository{FindByEmailFunc: findTestUser}, mockSessions)

		_, err := uc.Login(context.Background(), "a@x.com", password)

		assert.ErrorIs(t, err, expectedErr)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	t.Run("logout deletes the session", func(t *testing.T) {
		var deleted string
		mockSessions := &mockSessionRepository{
			DeleteFunc: func(ctx context.Context, id string) error {
				deleted = id
				return nil
			},
		}
		uc := newTestUsecase(&mockUserRepository{}, mockSessions)

		err := uc.Logout(context.Background(), "some-token")

		assert.NoError(t, err)
		assert.Equal(t, "some-token", deleted)
	})

	t.Run("logout of a missing session is idempotent", func(t *testing.T) {
		// The store's Delete treats a missing key as a no-op
		uc := newTestUsecase(&mockUserRepository{}, &mockSessionRepository{})

		assert.NoError(t, uc.Logout(context.Background(), "gone-token"))
		assert.NoError(t, uc.Logout(context.Background(), "gone-token"))
	})
}

func TestAuthUsecase_ResolveSession(t *testing.T) {
	t.Run("valid session resolves to its user", func(t *testing.T) {
		mockSessions := &mockSessionRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Session, error) {
				return &entity.Session{
					ID:        id,
					UserID:    42,
					CreatedAt: time.Now(),
					ExpiresAt: time.Now().Add(time.Hour),
				}, nil
			},
		}
		uc := newTestUsecase(&mockUserRepository{}, mockSessions)

		userID, err := uc.ResolveSession(context.Background(), "valid-token")

		assert.NoError(t, err)
		assert.Equal(t, uint(42), userID)
	})

	t.Run("empty token does not resolve", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{}, &mockSessionRepository{})

		_, err := uc.ResolveSession(context.Background(), "")

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("unknown token does not resolve", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepository{}, &mockSessionRepository{})

		_, err := uc.ResolveSession(context.Background(), "unknown")

		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("expired session does not resolve", func(t *testing.T) {
		mockSessions := &mockSessionRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*entity.Session, error) {
				return &entity.Session{
					ID:        id,
					UserID:    42,
					CreatedAt: time.Now().Add(-2 * time.Hour),
					ExpiresAt: time.Now().Add(-time.Hour),
				}, nil
			},
		}
		uc := newTestUsecase(&mockUserRepository{}, mockSessions)

		_, err := uc.ResolveSession(context.Background(), "stale-token")

		assert.ErrorIs(t, err, ErrSessionExpired)
	})
}
