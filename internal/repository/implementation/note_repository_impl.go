package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tavor118/notes/internal/entity"
	"github.com/tavor118/notes/internal/mapper"
	"github.com/tavor118/notes/internal/model"
	"github.com/tavor118/notes/internal/repository/contract"
	"github.com/tavor118/notes/internal/repository/specification"
)

type NoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.NoteMapper
}

func NewNoteRepository(db *gorm.DB) contract.NoteRepository {
	return &NoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewNoteMapper(),
	}
}

func (r *NoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	loaded := r.mapper.ToEntity(m)
	loaded.CategoryIds = note.CategoryIds
	loaded.LabelIds = note.LabelIds
	loaded.AttachmentIds = note.AttachmentIds
	loaded.DelegatedIds = note.DelegatedIds
	*note = *loaded

	return r.replaceLinks(ctx, note)
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *entity.Note) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	return r.replaceLinks(ctx, note)
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	// Link rows first, then the note row. Linked categories, labels,
	// attachments and users are shared and stay.
	if err := db.Where("note_id = ?", id).Delete(&model.NoteCategory{}).Error; err != nil {
		return err
	}
	if err := db.Where("note_id = ?", id).Delete(&model.NoteLabel{}).Error; err != nil {
		return err
	}
	if err := db.Where("note_id = ?", id).Delete(&model.NoteAttachment{}).Error; err != nil {
		return err
	}
	if err := db.Where("note_id = ?", id).Delete(&model.NoteDelegation{}).Error; err != nil {
		return err
	}
	return db.Delete(&model.Note{}, id).Error
}

func (r *NoteRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	var m model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	note := r.mapper.ToEntity(&m)
	if err := r.loadLinks(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var models []*model.Note
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Order("notes.id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	notes := r.mapper.ToEntities(models)
	for _, note := range notes {
		if err := r.loadLinks(ctx, note); err != nil {
			return nil, err
		}
	}
	return notes, nil
}

func (r *NoteRepositoryImpl) loadLinks(ctx context.Context, note *entity.Note) error {
	db := r.db.WithContext(ctx)

	var err error
	note.CategoryIds, err = pluckLinks(db, &model.NoteCategory{}, "category_id", note.Id)
	if err != nil {
		return err
	}
	note.LabelIds, err = pluckLinks(db, &model.NoteLabel{}, "label_id", note.Id)
	if err != nil {
		return err
	}
	note.AttachmentIds, err = pluckLinks(db, &model.NoteAttachment{}, "attachment_id", note.Id)
	if err != nil {
		return err
	}
	note.DelegatedIds, err = pluckLinks(db, &model.NoteDelegation{}, "user_id", note.Id)
	return err
}

func pluckLinks(db *gorm.DB, linkModel interface{}, column string, noteId uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := db.Model(linkModel).
		Where("note_id = ?", noteId).
		Order(column + " ASC").
		Pluck(column, &ids).Error
	return ids, err
}

// replaceLinks makes the stored link sets equal to the entity's,
// inserting and deleting only the difference.
func (r *NoteRepositoryImpl) replaceLinks(ctx context.Context, note *entity.Note) error {
	db := r.db.WithContext(ctx)

	if err := syncLinkSet(db, &model.NoteCategory{}, "category_id", note.Id, note.CategoryIds,
		func(id uint) interface{} { return &model.NoteCategory{NoteId: note.Id, CategoryId: id} }); err != nil {
		return err
	}
	if err := syncLinkSet(db, &model.NoteLabel{}, "label_id", note.Id, note.LabelIds,
		func(id uint) interface{} { return &model.NoteLabel{NoteId: note.Id, LabelId: id} }); err != nil {
		return err
	}
	if err := syncLinkSet(db, &model.NoteAttachment{}, "attachment_id", note.Id, note.AttachmentIds,
		func(id uint) interface{} { return &model.NoteAttachment{NoteId: note.Id, AttachmentId: id} }); err != nil {
		return err
	}
	return syncLinkSet(db, &model.NoteDelegation{}, "user_id", note.Id, note.DelegatedIds,
		func(id uint) interface{} { return &model.NoteDelegation{NoteId: note.Id, UserId: id} })
}

func syncLinkSet(db *gorm.DB, linkModel interface{}, column string, noteId uint, desired []uint,
	newRow func(id uint) interface{}) error {

	current, err := pluckLinks(db, linkModel, column, noteId)
	if err != nil {
		return err
	}

	currentSet := make(map[uint]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}
	desiredSet := make(map[uint]bool, len(desired))
	for _, id := range desired {
		desiredSet[id] = true
	}

	removed := make([]uint, 0)
	for _, id := range current {
		if !desiredSet[id] {
			removed = append(removed, id)
		}
	}
	if len(removed) > 0 {
		if err := db.Where("note_id = ? AND "+column+" IN ?", noteId, removed).
			Delete(linkModel).Error; err != nil {
			return err
		}
	}

	for _, id := range desired {
		if currentSet[id] {
			continue
		}
		if err := db.Create(newRow(id)).Error; err != nil {
			return err
		}
		currentSet[id] = true
	}
	return nil
}
