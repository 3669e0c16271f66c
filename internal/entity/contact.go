package entity

import "time"

type ContactInfoType string

const (
	ContactInfoItem    ContactInfoType = "info"
	ContactInfoBenefit ContactInfoType = "benefit"
	ContactInfoStat    ContactInfoType = "stat"
)

// ContactContent is a singleton record.
type ContactContent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	MainTitle1      string `gorm:"not null" json:"mainTitle1"`
	MainTitle2      string `gorm:"not null" json:"mainTitle2"`
	MainDescription string `gorm:"type:text;not null" json:"mainDescription"`
	BenefitsTitle   string `gorm:"not null" json:"benefitsTitle"`
	ContactTitle    string `gorm:"not null" json:"contactTitle"`
	TrustBadge      string `gorm:"not null" json:"trustBadge"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ContactInfo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Type    ContactInfoType `gorm:"type:varchar(16);not null;index" json:"type"`
	Icon    string          `gorm:"type:varchar(64)" json:"icon"`
	Title   string          `gorm:"not null" json:"title"`
	Details string          `gorm:"type:text;not null" json:"details"`

	Order    int  `gorm:"column:display_order;default:0;index" json:"order"`
	IsActive bool `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
