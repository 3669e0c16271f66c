package entity

import (
	"time"

	"gorm.io/datatypes"
)

type AuditAction string

const (
	LoginSuccess AuditAction = "login_success"
	LoginFailed  AuditAction = "login_failed"
	Logout       AuditAction = "logout"
)

type AuditLog struct {
	ID uint `gorm:"primaryKey"`

	AdminID *uint  `gorm:"index"`
	Admin   *Admin `gorm:"constraint:OnDelete:SET NULL"`

	IPAddress *string     `gorm:"type:varchar(45)"`
	Action    AuditAction `gorm:"type:varchar(32);not null"`

	Metadata datatypes.JSON

	CreatedAt time.Time
}
