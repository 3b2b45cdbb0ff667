package model

import "time"

type Category struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(200);not null"`
	ParentId  *uint     `gorm:"index"`
	Parent    *Category `gorm:"foreignKey:ParentId;constraint:OnDelete:SET NULL"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Category) TableName() string {
	return "categories"
}

type Label struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(200);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Label) TableName() string {
	return "labels"
}

type Color struct {
	Id    uint   `gorm:"primaryKey;autoIncrement"`
	Color string `gorm:"type:varchar(7);not null"`
}

func (Color) TableName() string {
	return "colors"
}
