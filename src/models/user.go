package models

import "time"

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"uniqueIndex" json:"username"`
	Password  string    `json:"-"`
	IsAdmin   bool      `gorm:"default:true" json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}
