package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	GoogleID string `json:"googleId" gorm:"uniqueIndex;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Name     string `json:"name" gorm:"not null"`
	Picture  string `json:"picture" gorm:"default:''"`
}

// PublicProfile is the author projection exposed on discussions and answers.
type PublicProfile struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Public strips everything but the fields safe to show next to a post.
func (u User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Name: u.Name, Picture: u.Picture}
}
