package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskforge/taskforge-api/internal/api"
	apiMiddleware "github.com/taskforge/taskforge-api/internal/api/middleware"
	"github.com/taskforge/taskforge-api/internal/config"
	"github.com/taskforge/taskforge-api/internal/domain"
	"github.com/taskforge/taskforge-api/internal/service"
	"github.com/taskforge/taskforge-api/internal/service/auth"
	"github.com/taskforge/taskforge-api/internal/store"
)

// In-memory stores backing the handler tests. They mirror the ownership
// filtering of the real postgres stores.

type memoryUserStore struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[string]*domain.User)}
}

func (s *memoryUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Email]; exists {
		return store.ErrEmailExists
	}
	clone := *user
	s.users[user.Email] = &clone
	return nil
}

func (s *memoryUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *memoryUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

type memoryTaskStore struct {
	mu    sync.Mutex
	tasks []*domain.Task
}

func newMemoryTaskStore() *memoryTaskStore {
	return &memoryTaskStore{}
}

func (s *memoryTaskStore) Create(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *task
	s.tasks = append(s.tasks, &clone)
	return nil
}

func (s *memoryTaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owned := []*domain.Task{}
	for i := len(s.tasks) - 1; i >= 0; i-- {
		if s.tasks[i].UserID == userID {
			clone := *s.tasks[i]
			owned = append(owned, &clone)
		}
	}
	return owned, nil
}

func (s *memoryTaskStore) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, task := range s.tasks {
		if task.ID == id && task.UserID == userID {
			clone := *task
			return &clone, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

func (s *memoryTaskStore) Update(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.tasks {
		if existing.ID == task.ID && existing.UserID == task.UserID {
			clone := *task
			s.tasks[i] = &clone
			return nil
		}
	}
	return store.ErrTaskNotFound
}

func (s *memoryTaskStore) Delete(ctx context.Context, id, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, task := range s.tasks {
		if task.ID == id && task.UserID == userID {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrTaskNotFound
}

var (
	_ store.UserStore = (*memoryUserStore)(nil)
	_ store.TaskStore = (*memoryTaskStore)(nil)
)

// testEnv bundles a fully wired router over in-memory stores plus the
// services needed to mint fixtures directly.
type testEnv struct {
	router      http.Handler
	jwtService  auth.JWTService
	authService *auth.AuthService
	taskService *service.TaskService
}

const testJWTSecret = "test-secret-that-is-at-least-32-chars-long"

// newTestEnv builds the same route layout as the server binary, backed by
// in-memory stores.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.Default()
	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            testJWTSecret,
		TokenLifetimeMinutes: 60,
		BCryptCost:           bcrypt.MinCost,
	})
	require.NoError(t, err)

	authService := auth.NewAuthService(
		newMemoryUserStore(),
		auth.NewBcryptHasher(bcrypt.MinCost),
		jwtService,
		logger,
	)
	taskService := service.NewTaskService(newMemoryTaskStore(), logger)

	authHandler := api.NewAuthHandler(authService, logger)
	taskHandler := api.NewTaskHandler(taskService, logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(jwtService)

	r := chi.NewRouter()
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Route("/task", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Post("/", taskHandler.Create)
		r.Get("/", taskHandler.List)
		r.Get("/{id}", taskHandler.Get)
		r.Patch("/{id}", taskHandler.Update)
		r.Delete("/{id}", taskHandler.Delete)
	})

	return &testEnv{
		router:      r,
		jwtService:  jwtService,
		authService: authService,
		taskService: taskService,
	}
}

// do issues a request against the test router and returns the recorder.
// A non-empty token is sent as a bearer credential.
func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

// registerAndLogin creates a user through the service layer and returns its
// id plus a valid bearer token.
func (env *testEnv) registerAndLogin(t *testing.T, name, email, password string) (uuid.UUID, string) {
	t.Helper()

	ctx := context.Background()
	user, err := env.authService.Register(ctx, name, email, password)
	require.NoError(t, err)

	result, err := env.authService.Login(ctx, email, password)
	require.NoError(t, err)

	return user.ID, result.AccessToken
}

// decodeBody unmarshals a recorded JSON response body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
