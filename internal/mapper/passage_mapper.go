package mapper

import (
	"encoding/json"

	"ticker-chat-be/internal/entity"
	"ticker-chat-be/internal/model"
)

type PassageMapper struct{}

func NewPassageMapper() *PassageMapper {
	return &PassageMapper{}
}

// newsMetadata is the subset of the ticker_news metadata blob this service
// cares about. Unknown keys are ignored.
type newsMetadata struct {
	Source string `json:"source"`
	URL    string `json:"url"`
}

func (m *PassageMapper) ToEntity(doc *model.NewsDocument) *entity.Passage {
	if doc == nil {
		return nil
	}

	var meta newsMetadata
	if len(doc.Metadata) > 0 {
		// A malformed blob degrades to a passage without source labels
		// rather than failing the whole retrieval.
		_ = json.Unmarshal(doc.Metadata, &meta)
	}

	return &entity.Passage{
		Content:    doc.DocumentContent,
		SourceName: meta.Source,
		SourceURL:  meta.URL,
	}
}

func (m *PassageMapper) ToEntities(docs []*model.NewsDocument) []entity.Passage {
	passages := make([]entity.Passage, 0, len(docs))
	for _, doc := range docs {
		if p := m.ToEntity(doc); p != nil {
			passages = append(passages, *p)
		}
	}
	return passages
}
