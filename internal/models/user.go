package models

import "time"

// User is a catalog account that has signed in at least once
type User struct {
	ID          string    `json:"user_id" gorm:"primaryKey;column:user_id"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
