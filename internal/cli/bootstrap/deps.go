package bootstrap

import (
	"fmt"

	"SimpleMercari/internal/cli/api"
	"SimpleMercari/internal/config"
	"SimpleMercari/internal/logging"
	"SimpleMercari/internal/repo"
	"SimpleMercari/internal/service"

	"go.uber.org/zap"
)

// Deps — зависимости команд клиента.
type Deps struct {
	Logger   *zap.SugaredLogger
	Client   *api.Client
	Listings *service.ListingService
	// HistoryErr — почему история отправок недоступна (nil, если доступна).
	HistoryErr error
}

// Open собирает зависимости по конфигу и возвращает (deps, cleanup, error).
// Недоступная история не считается ошибкой: объявления отправляются и без неё.
// cleanup необходимо вызвать после окончания работы, чтобы закрыть БД и сбросить логгер.
func Open(cfg *config.Config) (*Deps, func() error, error) {
	logger, err := logging.New(cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	client := api.NewClient(cfg.APIURL, nil, logger)
	deps := &Deps{Logger: logger, Client: client}

	db, err := repo.InitDB(cfg.HistoryDSN)
	if err != nil {
		logger.Warnw("submission history disabled", "dsn", cfg.HistoryDSN, "error", err)
		deps.HistoryErr = err
		deps.Listings = service.NewListingService(client, nil, logger)
		cleanup := func() error {
			_ = logger.Sync()
			return nil
		}
		return deps, cleanup, nil
	}
	deps.Listings = service.NewListingService(client, repo.NewSubmissionRepository(db), logger)

	cleanup := func() error {
		_ = logger.Sync()
		return repo.Close(db)
	}
	return deps, cleanup, nil
}
