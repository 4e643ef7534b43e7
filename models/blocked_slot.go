package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Block type constants
const (
	BlockTypeRecurring = "RECURRING"
	BlockTypeOneTime   = "ONE_TIME"
)

// BlockedSlot is an exclusion rule applied by the availability computation.
//
// RECURRING blocks repeat every week on DayOfWeek (1=Monday..7=Sunday).
// ONE_TIME blocks apply to exactly one calendar date. Exactly one of
// DayOfWeek/SpecificDate is set, matching BlockType. Inactive blocks are
// retained but ignored.
type BlockedSlot struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	BlockType    string     `gorm:"size:20;not null;index" json:"blockType"`
	DayOfWeek    *int       `gorm:"index" json:"dayOfWeek,omitempty"`
	SpecificDate *time.Time `gorm:"type:date;index" json:"specificDate,omitempty"`
	TimeSlot     string     `gorm:"size:5;not null" json:"timeSlot"`
	Reason       string     `gorm:"size:255" json:"reason,omitempty"`
	IsActive     bool       `gorm:"default:true" json:"isActive"`
}

// BeforeCreate hook to generate UUID
func (b *BlockedSlot) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for BlockedSlot model
func (BlockedSlot) TableName() string {
	return "blocked_slots"
}

// Validate checks the block's shape before it touches storage
func (b *BlockedSlot) Validate() error {
	if !IsValidTimeSlot(b.TimeSlot) {
		return fmt.Errorf("timeSlot must be in HH:MM format")
	}

	switch b.BlockType {
	case BlockTypeRecurring:
		if b.DayOfWeek == nil || b.SpecificDate != nil {
			return fmt.Errorf("recurring blocks require dayOfWeek and no specificDate")
		}
		if *b.DayOfWeek < 1 || *b.DayOfWeek > 7 {
			return fmt.Errorf("dayOfWeek must be between 1 (Monday) and 7 (Sunday)")
		}
	case BlockTypeOneTime:
		if b.SpecificDate == nil || b.DayOfWeek != nil {
			return fmt.Errorf("one-time blocks require specificDate and no dayOfWeek")
		}
	default:
		return fmt.Errorf("blockType must be %s or %s", BlockTypeRecurring, BlockTypeOneTime)
	}

	return nil
}

// AppliesTo reports whether this block excludes the given date and slot.
// Inactive blocks never apply.
func (b *BlockedSlot) AppliesTo(date time.Time, slot string) bool {
	if !b.IsActive || b.TimeSlot != slot {
		return false
	}
	switch b.BlockType {
	case BlockTypeRecurring:
		return b.DayOfWeek != nil && *b.DayOfWeek == ISOWeekday(date)
	case BlockTypeOneTime:
		return b.SpecificDate != nil && sameDate(*b.SpecificDate, date)
	}
	return false
}

// ISOWeekday returns the ISO 8601 weekday number (1=Monday..7=Sunday)
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
