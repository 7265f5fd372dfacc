package service

import (
	"context"
	"errors"
	"testing"

	"PassKeeper/internal/desktop"
	"PassKeeper/internal/model"
	"PassKeeper/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Мок CredentialRepository
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

func strPtr(s string) *string { return &s }

func newSvc() (*CredentialService, *mockCredentialRepo) {
	r := new(mockCredentialRepo)
	return NewCredentialService(r, zap.NewNop().Sugar()), r
}

func TestSave_Validation(t *testing.T) {
	svc, r := newSvc()
	ctx := context.Background()

	_, err := svc.Save(ctx, SaveInput{Name: "", Password: "pw"})
	assert.ErrorIs(t, err, ErrNameRequired)
	_, err = svc.Save(ctx, SaveInput{Name: "   ", Password: "pw"})
	assert.ErrorIs(t, err, ErrNameRequired)
	_, err = svc.Save(ctx, SaveInput{Name: "github"})
	assert.ErrorIs(t, err, ErrPasswordRequired)

	r.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSave_MapsOptionalFields(t *testing.T) {
	svc, r := newSvc()
	ctx := context.Background()

	want := model.NewCredential{
		Name:     "github",
		Password: "Tr0ub4dor&3",
		Login:    strPtr("alice"),
		Website:  strPtr("github.com"),
	}
	r.On("Insert", ctx, want).Return(int64(1), nil).Once()

	id, err := svc.Save(ctx, SaveInput{Name: "github", Password: "Tr0ub4dor&3", Login: "alice", Website: "github.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	r.AssertExpectations(t)
}

func TestSave_PropagatesStorageError(t *testing.T) {
	svc, r := newSvc()
	ctx := context.Background()
	se := &repo.StorageError{Op: "insert", Err: errors.New("database is locked")}
	r.On("Insert", ctx, mock.Anything).Return(int64(0), se).Once()

	_, err := svc.Save(ctx, SaveInput{Name: "n", Password: "p"})
	var got *repo.StorageError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "insert", got.Op)
}

func TestListAndDelete(t *testing.T) {
	svc, r := newSvc()
	ctx := context.Background()
	rows := []model.Credential{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	r.On("ListAll", ctx).Return(rows, nil).Once()
	r.On("DeleteByID", ctx, int64(2)).Return(nil).Once()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, list)
	require.NoError(t, svc.Delete(ctx, 2))
	r.AssertExpectations(t)
}

func TestDelete_Error(t *testing.T) {
	svc, r := newSvc()
	ctx := context.Background()
	boom := errors.New("boom")
	r.On("DeleteByID", ctx, int64(5)).Return(boom).Once()
	assert.ErrorIs(t, svc.Delete(ctx, 5), boom)
}

func TestFind(t *testing.T) {
	svc, r := newSvc()
	ctx := context.Background()
	r.On("ListAll", ctx).Return([]model.Credential{{ID: 3, Name: "c"}}, nil)

	c, err := svc.Find(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "c", c.Name)

	_, err = svc.Find(ctx, 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpen_WebsiteAndLogin(t *testing.T) {
	svc, r := newSvc()
	ctx := context.Background()
	r.On("ListAll", ctx).Return([]model.Credential{
		{ID: 1, Name: "github", Login: strPtr("alice"), Password: "Tr0ub4dor&3", Website: strPtr("github.com")},
		{ID: 2, Name: "plain", Password: "only"},
	}, nil)

	d := &desktop.Recorder{}
	res, err := svc.Open(ctx, 1, d)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com", res.OpenedURL)
	assert.Equal(t, "github", res.Credential.Name)
	res, err = svc.Open(ctx, 2, d)
	require.NoError(t, err)
	assert.Empty(t, res.OpenedURL)

	assert.Equal(t, []string{"https://github.com"}, d.Opened)
	assert.Equal(t, []string{"alice Tr0ub4dor&3", "only"}, d.Copied)
}

func TestOpen_BrowserFailureStillCopies(t *testing.T) {
	svc, r := newSvc()
	ctx := context.Background()
	r.On("ListAll", ctx).Return([]model.Credential{{ID: 1, Password: "pw", Website: strPtr("x.org")}}, nil)

	d := &desktop.Recorder{OpenErr: errors.New("no browser")}
	res, err := svc.Open(ctx, 1, d)
	require.NoError(t, err)
	assert.Empty(t, res.OpenedURL)
	assert.Equal(t, []string{"pw"}, d.Copied)
}

func TestOpen_ClipboardFailure(t *testing.T) {
	svc, r := newSvc()
	ctx := context.Background()
	r.On("ListAll", ctx).Return([]model.Credential{{ID: 1, Password: "pw"}}, nil)

	boom := errors.New("no display")
	_, err := svc.Open(ctx, 1, &desktop.Recorder{CopyErr: boom})
	assert.ErrorIs(t, err, boom)

	_, err = svc.Open(ctx, 9, &desktop.Recorder{})
	assert.ErrorIs(t, err, ErrNotFound)
}
