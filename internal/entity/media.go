package entity

import "time"

type LogoImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Filename string `gorm:"not null" json:"filename"`
	Path     string `gorm:"uniqueIndex;not null" json:"path"`
	Alt      string `json:"alt"`

	Order    int  `gorm:"column:display_order;default:0;index" json:"order"`
	IsActive bool `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GeneralImage is a media-library upload. The database record is the source
// of truth; the backing file may lag behind after a failed cleanup.
type GeneralImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Filename      string `gorm:"not null" json:"filename"`
	Path          string `gorm:"not null" json:"path"`
	ThumbnailPath string `json:"thumbnailPath,omitempty"`
	Alt           string `json:"alt"`
	Size          int64  `json:"size"`
	MimeType      string `gorm:"type:varchar(64)" json:"mimeType"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
