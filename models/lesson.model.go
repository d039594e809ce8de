package models

import (
	"eduapi/models/blocks"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lesson belongs to exactly one Subject and carries its body as an ordered
// sequence of typed content blocks, stored as a JSON column.
type Lesson struct {
	gorm.Model
	Title         string                              `json:"title" gorm:"not null"`
	SubjectID     uint                                `json:"subject" gorm:"index;not null"`
	ContentBlocks datatypes.JSONType[blocks.Sequence] `json:"contentBlocks"`
	Slug          string                              `json:"slug" gorm:"uniqueIndex;not null"`
}
