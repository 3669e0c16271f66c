package entity

import "time"

// StatsContent is a singleton record.
type StatsContent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type StatItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Value  string `gorm:"not null" json:"value"`
	Suffix string `gorm:"not null" json:"suffix"`
	Label  string `gorm:"not null" json:"label"`
	Icon   string `gorm:"type:varchar(64);not null" json:"icon"`

	Order    int  `gorm:"column:display_order;default:0;index" json:"order"`
	IsActive bool `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
