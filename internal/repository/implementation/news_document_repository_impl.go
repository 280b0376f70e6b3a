package implementation

import (
	"context"

	"ticker-chat-be/internal/entity"
	"ticker-chat-be/internal/mapper"
	"ticker-chat-be/internal/model"
	"ticker-chat-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type NewsDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PassageMapper
}

func NewNewsDocumentRepository(db *gorm.DB) contract.NewsDocumentRepository {
	return &NewsDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewPassageMapper(),
	}
}

func (r *NewsDocumentRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]entity.Passage, error) {
	if limit <= 0 {
		limit = 10
	}
	var docs []*model.NewsDocument

	// pgvector cosine distance: embedding <=> vector, ascending = most similar
	err := r.db.WithContext(ctx).
		Order(gorm.Expr("embedding <=> ?", pgvector.NewVector(embedding))).
		Limit(limit).
		Find(&docs).Error

	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(docs), nil
}
