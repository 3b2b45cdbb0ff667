package mapper

import (
	"github.com/tavor118/notes/internal/entity"
	"github.com/tavor118/notes/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

// ToEntity maps the note row only. Link sets (categories, labels,
// attachments, delegations) live in join tables and are attached by the
// repository.
func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	var title string
	if n.Title != nil {
		title = *n.Title
	}

	return &entity.Note{
		Id:        n.Id,
		Title:     title,
		Content:   n.Content,
		ColorId:   n.ColorId,
		OwnerId:   n.OwnerId,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	var title *string
	if n.Title != "" {
		t := n.Title
		title = &t
	}

	return &model.Note{
		Id:        n.Id,
		Title:     title,
		Content:   n.Content,
		ColorId:   n.ColorId,
		OwnerId:   n.OwnerId,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
