package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"PassKeeper/internal/desktop"
	"PassKeeper/internal/model"
	"PassKeeper/internal/repo"

	"go.uber.org/zap"
)

var (
	ErrNameRequired     = errors.New("please enter a password name")
	ErrPasswordRequired = errors.New("no password selected")
	ErrNotFound         = errors.New("password not found")
)

// SaveInput — то, что пользователь ввёл в форме сохранения.
// Пустые необязательные поля сохраняются как NULL.
type SaveInput struct {
	Name        string `json:"name"`
	Password    string `json:"password"`
	Login       string `json:"login"`
	Description string `json:"description"`
	Website     string `json:"website"`
}

// CredentialService владеет репозиторием и реализует действия оболочки над записями.
type CredentialService struct {
	repo   repo.CredentialRepository
	logger *zap.SugaredLogger
}

// NewCredentialService создаёт сервис поверх переданного репозитория.
func NewCredentialService(r repo.CredentialRepository, logger *zap.SugaredLogger) *CredentialService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &CredentialService{repo: r, logger: logger}
}

// Save validates the form and stores a new record.
func (s *CredentialService) Save(ctx context.Context, in SaveInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, ErrNameRequired
	}
	if in.Password == "" {
		return 0, ErrPasswordRequired
	}
	id, err := s.repo.Insert(ctx, model.NewCredential{
		Name:        in.Name,
		Password:    in.Password,
		Login:       optional(in.Login),
		Description: optional(in.Description),
		Website:     optional(in.Website),
	})
	if err != nil {
		s.logger.Errorw("save password failed", "name", in.Name, "error", err)
		return 0, err
	}
	s.logger.Infow("saved password", "id", id, "name", in.Name)
	return id, nil
}

// List returns every saved record.
func (s *CredentialService) List(ctx context.Context) ([]model.Credential, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Errorw("list passwords failed", "error", err)
		return nil, err
	}
	return list, nil
}

// Delete removes the record; a missing id is not an error.
func (s *CredentialService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Errorw("delete password failed", "id", id, "error", err)
		return err
	}
	s.logger.Infow("deleted password", "id", id)
	return nil
}

// Find looks a record up by id among ListAll results.
func (s *CredentialService) Find(ctx context.Context, id int64) (*model.Credential, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("%w: #%d", ErrNotFound, id)
}

// OpenResult — итог действия Open: запись и адрес, реально открытый в браузере
// (пусто, если сайта нет или браузер не запустился).
type OpenResult struct {
	Credential *model.Credential
	OpenedURL  string
}

// Open does what clicking a saved entry does: opens its website (if any)
// and copies "<login> <password>" or the bare password to the clipboard.
func (s *CredentialService) Open(ctx context.Context, id int64, d desktop.Desktop) (*OpenResult, error) {
	c, err := s.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	res := &OpenResult{Credential: c}
	if c.Website != nil {
		if u := desktop.BrowserURL(*c.Website); u != "" {
			if err := d.OpenURL(u); err != nil {
				// браузер не обязателен для копирования, продолжаем
				s.logger.Warnw("open website failed", "id", c.ID, "error", err)
			} else {
				res.OpenedURL = u
			}
		}
	}
	if err := d.CopyToClipboard(c.ClipboardText()); err != nil {
		return nil, err
	}
	s.logger.Infow("copied password to clipboard", "id", c.ID, "name", c.Name)
	return res, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
