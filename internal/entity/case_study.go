package entity

import "time"

type CaseStudy struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Category    string `gorm:"not null" json:"category"`
	Title       string `gorm:"not null" json:"title"`
	Slug        string `gorm:"type:varchar(64);uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text;not null" json:"description"`

	Result1 string `gorm:"not null" json:"result1"`
	Result2 string `gorm:"not null" json:"result2"`
	Result3 string `gorm:"not null" json:"result3"`

	DisplayOrder int  `gorm:"default:0;index" json:"displayOrder"`
	IsPublished  bool `gorm:"default:true" json:"isPublished"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
