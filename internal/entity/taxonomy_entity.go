package entity

import "time"

type Category struct {
	Id        uint
	Title     string
	ParentId  *uint
	CreatedAt time.Time
}

type Label struct {
	Id        uint
	Title     string
	CreatedAt time.Time
}

// Color holds a single hex value in #RRGGBB form.
type Color struct {
	Id    uint
	Color string
}
