package models

import "gorm.io/gorm"

// Subject is a published course topic grouping an ordered set of lessons.
type Subject struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;not null"`
	ImageURL    string `json:"imageUrl" gorm:"default:''"`
}
