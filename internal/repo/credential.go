package repo

import (
	"context"
	"time"

	"PassKeeper/internal/model"

	"gorm.io/gorm"
)

// CredentialRepository — порт доступа к таблице сохранённых паролей.
// Операции обновления нет: запись меняется только через удаление и повторное создание.
type CredentialRepository interface {
	// Insert сохраняет новую запись и возвращает присвоенный идентификатор.
	Insert(ctx context.Context, in model.NewCredential) (int64, error)
	// ListAll возвращает все записи по возрастанию id; пустой срез, если записей нет.
	ListAll(ctx context.Context) ([]model.Credential, error)
	// DeleteByID удаляет запись безвозвратно; отсутствующий id — не ошибка.
	DeleteByID(ctx context.Context, id int64) error
}

type credentialRepo struct {
	db  *gorm.DB
	now func() time.Time
}

// NewCredentialRepository создаёт реализацию репозитория поверх gorm.
func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepo{db: db, now: time.Now}
}

func (r *credentialRepo) Insert(ctx context.Context, in model.NewCredential) (int64, error) {
	rec := model.Credential{
		Name:        in.Name,
		Login:       in.Login,
		Password:    in.Password,
		Description: in.Description,
		Website:     in.Website,
		UsageCount:  0,
		CreatedAt:   r.now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return 0, storageErr("insert", err)
	}
	return rec.ID, nil
}

func (r *credentialRepo) ListAll(ctx context.Context) ([]model.Credential, error) {
	list := make([]model.Credential, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, storageErr("list", err)
	}
	return list, nil
}

func (r *credentialRepo) DeleteByID(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&model.Credential{}, id).Error; err != nil {
		return storageErr("delete", err)
	}
	return nil
}
