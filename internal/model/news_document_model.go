package model

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// NewsDocument maps the ticker_news table owned by the ingestion system.
// This service only ever reads from it.
type NewsDocument struct {
	DocumentId      uuid.UUID       `gorm:"column:document_id;type:uuid;primaryKey"`
	Embedding       pgvector.Vector `gorm:"column:embedding;type:vector(1536)"` // OpenAI ada-002 dimensions
	DocumentContent string          `gorm:"column:document_content;type:text"`
	Metadata        datatypes.JSON  `gorm:"column:metadata;type:jsonb"`
}

func (NewsDocument) TableName() string {
	return "ticker_news"
}
