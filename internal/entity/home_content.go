package entity

import "time"

// HomeContent is a singleton record: the table holds one logical row,
// accessed through HomeContentRepository.Get/Put.
type HomeContent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	HeroTitle1  string `gorm:"not null" json:"heroTitle1"`
	HeroTitle2  string `gorm:"not null" json:"heroTitle2"`
	TypedWords  string `gorm:"not null" json:"typedWords"`
	SubHeadline string `gorm:"not null" json:"subHeadline"`
	Description string `gorm:"type:text;not null" json:"description"`
	CTAText     string `gorm:"not null" json:"ctaText"`
	CTALink     string `gorm:"not null" json:"ctaLink"`

	BigStat    string `gorm:"not null" json:"bigStat"`
	StatsText1 string `gorm:"not null" json:"statsText1"`
	StatsText2 string `gorm:"not null" json:"statsText2"`
	StatsText3 string `gorm:"not null" json:"statsText3"`

	JourneyTitle1 string `gorm:"not null" json:"journeyTitle1"`
	JourneyTitle2 string `gorm:"not null" json:"journeyTitle2"`
	JourneyDesc   string `gorm:"type:text;not null" json:"journeyDesc"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
