package models

import (
	"time"

	"gorm.io/gorm"
)

type Answer struct {
	gorm.Model
	Content      string       `json:"content" gorm:"type:text;not null"`
	AuthorID     uint         `json:"authorId" gorm:"index;not null"`
	Author       User         `json:"-"`
	DiscussionID uint         `json:"discussion" gorm:"index;not null"`
	Likes        []AnswerLike `json:"-" gorm:"foreignKey:AnswerID"`
}

// AnswerLike records one user liking one answer. The composite unique index
// is what keeps a user's like single under concurrent requests. No soft
// delete here: an unlike must free the index slot for the next like.
type AnswerLike struct {
	ID        uint      `json:"-" gorm:"primarykey"`
	AnswerID  uint      `json:"answerId" gorm:"uniqueIndex:idx_answer_user;not null"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_answer_user;not null"`
	CreatedAt time.Time `json:"-"`
}

// LikeUserIDs flattens the like rows into the user-id set the API returns.
func (a Answer) LikeUserIDs() []uint {
	ids := make([]uint, 0, len(a.Likes))
	for _, l := range a.Likes {
		ids = append(ids, l.UserID)
	}
	return ids
}
