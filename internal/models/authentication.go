package models

import (
	"time"

	"gorm.io/gorm"
)

// Authentication is a refresh token that is currently allowed to mint access tokens
type Authentication struct {
	Token     string `gorm:"primaryKey;column:token;type:text"`
	CreatedAt int64  `gorm:"column:created_at;autoCreateTime:false;not null"`
}

// TableName specifies the table name for Authentication
func (Authentication) TableName() string {
	return "authentications"
}

// BeforeCreate hook for Authentication
func (a *Authentication) BeforeCreate(tx *gorm.DB) error {
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().Unix()
	}
	return nil
}
