package models

import "gorm.io/gorm"

// Post types a discussion can be filed under.
const (
	PostTypeESP32   = "esp32"
	PostTypeSTM32   = "stm32"
	PostTypeLPC     = "lpc"
	PostTypeArduino = "arduino"
	PostTypeGeneral = "general"
)

// ValidPostType reports whether t is one of the known discussion post types.
func ValidPostType(t string) bool {
	switch t {
	case PostTypeESP32, PostTypeSTM32, PostTypeLPC, PostTypeArduino, PostTypeGeneral:
		return true
	}
	return false
}

type Discussion struct {
	gorm.Model
	Title    string `json:"title" gorm:"not null"`
	Content  string `json:"content" gorm:"type:text;not null"`
	AuthorID uint   `json:"authorId" gorm:"index;not null"`
	Author   User   `json:"-"`
	PostType string `json:"postType" gorm:"not null"`
}
