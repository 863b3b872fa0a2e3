// Package entity defines the domain entities for the todo feature.
package entity

import "time"

// Todo represents a single to-do item owned by one user.
// The owning user is fixed at creation and never reassigned.
type Todo struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Content   string    `gorm:"size:80;not null"`
	IsChecked bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
