package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"PassKeeper/internal/config"
	"PassKeeper/internal/desktop"
	"PassKeeper/internal/generator"
	"PassKeeper/internal/handlers"
	"PassKeeper/internal/model"
	"PassKeeper/internal/repo"
	"PassKeeper/internal/service"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Мок репозитория для сценариев со сбоем хранилища
type mockCredentialRepo struct{ mock.Mock }

func (m *mockCredentialRepo) Insert(ctx context.Context, in model.NewCredential) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCredentialRepo) ListAll(ctx context.Context) ([]model.Credential, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Credential); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCredentialRepo) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.CredentialRepository = (*mockCredentialRepo)(nil)

const testHost = "localhost:8081"

type testEnv struct {
	router  http.Handler
	desktop *desktop.Recorder
	cfg     *config.Config
}

func newRouter(t *testing.T, r repo.CredentialRepository) testEnv {
	t.Helper()
	cfg := &config.Config{BaseURL: testHost, PasswordLength: 12, PasswordCount: 10}
	logger := zap.NewNop().Sugar()
	d := &desktop.Recorder{}
	svc := service.NewCredentialService(r, logger)
	h := handlers.NewHandler(svc, generator.New(), d, logger, cfg)
	return testEnv{router: h.Router, desktop: d, cfg: cfg}
}

// newSQLiteRouter собирает роутер поверх настоящей базы во временном каталоге
func newSQLiteRouter(t *testing.T) testEnv {
	t.Helper()
	db, err := repo.InitDB(filepath.Join(t.TempDir(), "passwords.db"))
	require.NoError(t, err)
	require.NoError(t, repo.RunMigrations(db))
	t.Cleanup(func() { _ = repo.Close(db) })
	return newRouter(t, repo.NewCredentialRepository(db))
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return doWith(t, h, newRequest(t, method, path, body))
}

// newRequest собирает запрос так, как его шлёт страница: свой Host и JSON.
func newRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Host = testHost
	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func doWith(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
