package repo

import (
	"context"

	"SimpleMercari/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionRepository — журнал отправленных объявлений.
type SubmissionRepository interface {
	// Record сохраняет запись; пустой ID заполняется UUID.
	Record(ctx context.Context, s *model.Submission) error

	// ListRecent возвращает последние записи, новые первыми. limit <= 0 — без ограничения.
	ListRecent(ctx context.Context, limit int) ([]model.Submission, error)
}

type submissionRepo struct {
	db *gorm.DB
}

// NewSubmissionRepository создаёт реализацию репозитория истории.
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepo{db: db}
}

func (r *submissionRepo) Record(ctx context.Context, s *model.Submission) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *submissionRepo) ListRecent(ctx context.Context, limit int) ([]model.Submission, error) {
	var res []model.Submission
	q := r.db.WithContext(ctx).Order("created_at DESC").Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&res).Error; err != nil {
		return nil, err
	}
	return res, nil
}
