package models

import (
	"time"
)

// Setting is a key-value row holding admin-mutable configuration as JSON
type Setting struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Key   string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}

// TableName specifies the table name for Setting model
func (Setting) TableName() string {
	return "settings"
}
