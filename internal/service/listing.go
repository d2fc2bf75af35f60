package service

import (
	"context"
	"errors"

	"SimpleMercari/internal/cli/api"
	"SimpleMercari/internal/model"
	"SimpleMercari/internal/repo"

	"go.uber.org/zap"
)

// ItemCreator — операция создания объявления на стороне API.
type ItemCreator interface {
	CreateItem(ctx context.Context, d model.Draft) (int, error)
}

// ListingService отправляет черновики в API и ведёт локальную историю отправок.
type ListingService struct {
	api     ItemCreator
	history repo.SubmissionRepository
	logger  *zap.SugaredLogger
}

// NewListingService конструктор. history может быть nil — тогда история не ведётся.
func NewListingService(c ItemCreator, history repo.SubmissionRepository, logger *zap.SugaredLogger) *ListingService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ListingService{api: c, history: history, logger: logger}
}

// Submit отправляет черновик и возвращает ошибку запроса как есть.
// Ошибка записи в историю только логируется.
func (s *ListingService) Submit(ctx context.Context, d model.Draft) error {
	status, err := s.api.CreateItem(ctx, d)

	sub := &model.Submission{
		Name:          d.Name,
		Category:      d.Category,
		ImageFileName: d.Image.FileName(),
		Status:        model.SubmissionOK,
		HTTPStatus:    status,
	}
	if err != nil {
		sub.Status = model.SubmissionFailed
		sub.Error = err.Error()
		var se *api.StatusError
		if errors.As(err, &se) {
			s.logger.Warnw("listing rejected", "name", d.Name, "status", se.Code, "error", err)
		} else {
			s.logger.Errorw("listing failed", "name", d.Name, "error", err)
		}
	} else {
		s.logger.Infow("listing created", "name", d.Name, "category", d.Category, "status", status)
	}

	if s.history != nil {
		// context.WithoutCancel: запись истории не должна обрываться вместе с запросом
		if herr := s.history.Record(context.WithoutCancel(ctx), sub); herr != nil {
			s.logger.Warnw("failed to record submission", "name", d.Name, "error", herr)
		}
	}
	return err
}

// History возвращает последние отправки; без хранилища — пустой список.
func (s *ListingService) History(ctx context.Context, limit int) ([]model.Submission, error) {
	if s.history == nil {
		return []model.Submission{}, nil
	}
	return s.history.ListRecent(ctx, limit)
}
