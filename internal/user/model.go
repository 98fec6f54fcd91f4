package user

import "time"

type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	PassHash  string    `gorm:"size:255" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
