package entity

import "time"

// Settings is a singleton record.
type Settings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SiteName            string `gorm:"not null" json:"siteName"`
	SiteDescription     string `gorm:"type:text;not null" json:"siteDescription"`
	DefaultCalendlyLink string `gorm:"not null" json:"defaultCalendlyLink"`
	Email               string `gorm:"not null" json:"email"`
	Phone               string `gorm:"not null" json:"phone"`
	Location            string `gorm:"not null" json:"location"`
	BusinessHours       string `gorm:"not null" json:"businessHours"`

	GoogleAnalyticsID string `json:"googleAnalyticsId"`
	FacebookPixelID   string `json:"facebookPixelId"`
	LogoPath          string `json:"logoPath"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
