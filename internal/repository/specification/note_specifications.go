package specification

import "gorm.io/gorm"

// VisibleTo selects notes the user owns plus notes delegated to him.
type VisibleTo struct {
	UserID uint
}

func (s VisibleTo) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"notes.owner_id = ? OR notes.id IN (SELECT note_id FROM note_delegations WHERE user_id = ?)",
		s.UserID, s.UserID,
	)
}
