package models

import (
	"time"

	"gorm.io/gorm"

	"auth-api/internal/utils"
)

// User represents a registered account that can authenticate with a username and password
type User struct {
	ID         string `gorm:"primaryKey;column:id;size:50" json:"id"`
	Username   string `gorm:"column:username;size:50;not null;unique;index:idx_users_username" json:"username"`
	Password   string `gorm:"column:password;not null" json:"-"`
	Fullname   string `gorm:"column:fullname;not null" json:"fullname"`
	CreatedAt  int64  `gorm:"column:created_at;autoCreateTime:false;not null" json:"createdAt"`
	ModifiedAt int64  `gorm:"column:modified_at;autoCreateTime:false;not null" json:"modifiedAt"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	if u.ID == "" {
		u.ID = utils.GenerateUserID()
	}
	if u.CreatedAt == 0 {
		u.CreatedAt = now
	}
	if u.ModifiedAt == 0 {
		u.ModifiedAt = now
	}
	return nil
}

// BeforeUpdate hook for User
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.ModifiedAt = time.Now().Unix()
	return nil
}
