package model

import "github.com/google/uuid"

const (
	// BookDescriptionMax caps descriptions, including imported ones.
	BookDescriptionMax = 200

	BookRatingMin = 0
	BookRatingMax = 100
)

type Book struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:100" json:"title"`
	Author      string    `gorm:"size:100" json:"author"`
	Description string    `gorm:"size:200" json:"description"`
	Rating      int       `json:"rating"`
}
