package model

import "time"

type Attachment struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(200);not null;default:'No name'"`
	OwnerId     uint      `gorm:"not null;index"`
	FilePath    string    `gorm:"type:text;not null"`
	PreviewPath *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Attachment) TableName() string {
	return "attachments"
}
