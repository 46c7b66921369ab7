package models

import "time"

// Document is the row backing the Postgres document store: one JSON body
// per (collection, id).
type Document struct {
	Collection string `gorm:"primaryKey;size:64"`
	ID         string `gorm:"primaryKey;size:64"`
	Body       string `gorm:"type:jsonb;not null"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
