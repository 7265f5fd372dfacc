package bootstrap

import (
	"fmt"

	"PassKeeper/internal/config"
	"PassKeeper/internal/repo"
	"PassKeeper/internal/service"

	"go.uber.org/zap"
)

// OpenCredentialService открывает хранилище паролей, выполняет миграции и
// возвращает (service, cleanup, error). cleanup закрывает соединение с БД и
// должен вызываться по окончании работы; повторный вызов безопасен.
func OpenCredentialService(cfg *config.Config, logger *zap.SugaredLogger) (*service.CredentialService, func() error, error) {
	db, err := repo.InitDB(cfg.StoreDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("open password store: %w", err)
	}
	if err := repo.RunMigrations(db); err != nil {
		_ = repo.Close(db)
		return nil, nil, fmt.Errorf("migrate password store: %w", err)
	}
	svc := service.NewCredentialService(repo.NewCredentialRepository(db), logger)
	cleanup := func() error { return repo.Close(db) }
	return svc, cleanup, nil
}
