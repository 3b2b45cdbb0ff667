package entity

import "time"

type Attachment struct {
	Id          uint
	Title       string
	OwnerId     uint
	FilePath    string
	PreviewPath *string
	CreatedAt   time.Time
}
