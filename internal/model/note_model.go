package model

import "time"

type Note struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Title     *string   `gorm:"type:varchar(200)"`
	Content   string    `gorm:"type:text;not null"`
	ColorId   *uint     `gorm:"index"`
	OwnerId   uint      `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}

// Explicit join tables. The note side owns the link rows; the linked
// entities are shared and must survive note deletion.

type NoteCategory struct {
	NoteId     uint `gorm:"primaryKey;autoIncrement:false"`
	CategoryId uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (NoteCategory) TableName() string {
	return "note_categories"
}

type NoteLabel struct {
	NoteId  uint `gorm:"primaryKey;autoIncrement:false"`
	LabelId uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (NoteLabel) TableName() string {
	return "note_labels"
}

type NoteAttachment struct {
	NoteId       uint `gorm:"primaryKey;autoIncrement:false"`
	AttachmentId uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (NoteAttachment) TableName() string {
	return "note_attachments"
}

type NoteDelegation struct {
	NoteId uint `gorm:"primaryKey;autoIncrement:false"`
	UserId uint `gorm:"primaryKey;autoIncrement:false;index"`
}

func (NoteDelegation) TableName() string {
	return "note_delegations"
}
