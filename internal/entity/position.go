package entity

import "time"

type Position struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Slug         string `gorm:"type:varchar(64);uniqueIndex;not null" json:"slug"`
	Title        string `gorm:"not null" json:"title"`
	Subtitle     string `gorm:"not null" json:"subtitle"`
	Description  string `gorm:"type:text;not null" json:"description"`
	CalendlyLink string `gorm:"not null" json:"calendlyLink"`

	DisplayOrder int  `gorm:"default:0;index" json:"displayOrder"`
	IsActive     bool `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
