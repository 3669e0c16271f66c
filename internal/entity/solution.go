package entity

import "time"

// SolutionType owns an ordered set of steps. Deleting a type cascades to its
// steps through the foreign key; application code never deletes steps twice.
type SolutionType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Slug         string `gorm:"type:varchar(64);uniqueIndex;not null" json:"slug"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `gorm:"type:text;not null" json:"description"`
	VideoURL     string `gorm:"not null" json:"videoUrl"`
	CalendlyLink string `gorm:"not null" json:"calendlyLink"`

	Steps []SolutionStep `gorm:"constraint:OnDelete:CASCADE" json:"steps"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SolutionStep struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SolutionTypeID uint   `gorm:"not null;index" json:"solutionTypeId"`
	Title          string `gorm:"not null" json:"title"`
	Description    string `gorm:"type:text;not null" json:"description"`
	StepOrder      int    `gorm:"default:0" json:"stepOrder"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
