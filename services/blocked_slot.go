package services

import (
	"time"

	"clinica_app_go/models"

	"gorm.io/gorm"
)

// ListBlockedSlots fetches every block, active or not, for the admin screens
func ListBlockedSlots(db *gorm.DB) ([]models.BlockedSlot, error) {
	var blocks []models.BlockedSlot
	err := db.Order("block_type, day_of_week, specific_date, time_slot").
		Find(&blocks).Error
	return blocks, err
}

// ListActiveBlockedSlots fetches active blocks, optionally filtered by type
// (RECURRING or ONE_TIME; empty string returns both)
func ListActiveBlockedSlots(db *gorm.DB, blockType string) ([]models.BlockedSlot, error) {
	var blocks []models.BlockedSlot
	query := db.Where("is_active = ?", true)
	if blockType != "" {
		query = query.Where("block_type = ?", blockType)
	}
	err := query.Order("block_type, day_of_week, specific_date, time_slot").
		Find(&blocks).Error
	return blocks, err
}

// GetBlockedSlotByID fetches a single block
func GetBlockedSlotByID(db *gorm.DB, id string) (*models.BlockedSlot, error) {
	var block models.BlockedSlot
	err := db.First(&block, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// CreateBlockedSlot validates and stores a new block, rejecting duplicates
// among active blocks of the same type for the same day/date and slot
func CreateBlockedSlot(db *gorm.DB, block *models.BlockedSlot) error {
	if err := block.Validate(); err != nil {
		return NewValidationError("%s", err.Error())
	}

	// Dates are stored as bare calendar dates so equality checks stay exact
	if block.SpecificDate != nil {
		normalized := CivilDate(*block.SpecificDate)
		block.SpecificDate = &normalized
	}

	duplicate, err := hasActiveDuplicate(db, block)
	if err != nil {
		return err
	}
	if duplicate {
		return ErrDuplicateBlock
	}

	return db.Create(block).Error
}

func hasActiveDuplicate(db *gorm.DB, block *models.BlockedSlot) (bool, error) {
	var count int64
	query := db.Model(&models.BlockedSlot{}).
		Where("block_type = ? AND time_slot = ? AND is_active = ?", block.BlockType, block.TimeSlot, true)

	switch block.BlockType {
	case models.BlockTypeRecurring:
		query = query.Where("day_of_week = ?", *block.DayOfWeek)
	case models.BlockTypeOneTime:
		query = query.Where("specific_date = ?", *block.SpecificDate)
	}

	err := query.Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ToggleBlockedSlot flips a block's active flag. Deactivated blocks are kept
// so they can be re-enabled later; the availability computation reads the flag
// fresh on every call, so the toggle takes effect immediately.
func ToggleBlockedSlot(db *gorm.DB, id string) (*models.BlockedSlot, error) {
	block, err := GetBlockedSlotByID(db, id)
	if err != nil {
		return nil, err
	}

	// Re-activating must not reintroduce a duplicate
	if !block.IsActive {
		probe := *block
		probe.IsActive = true
		duplicate, err := hasActiveDuplicate(db, &probe)
		if err != nil {
			return nil, err
		}
		if duplicate {
			return nil, ErrDuplicateBlock
		}
	}

	block.IsActive = !block.IsActive
	if err := db.Model(block).Update("is_active", block.IsActive).Error; err != nil {
		return nil, err
	}
	return block, nil
}

// DeleteBlockedSlot hard-removes a block
func DeleteBlockedSlot(db *gorm.DB, id string) error {
	result := db.Delete(&models.BlockedSlot{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// blockedTimesFor collects the excluded slot times for a date: active
// recurring blocks matching its weekday plus active one-time blocks matching
// the date itself
func blockedTimesFor(db *gorm.DB, date time.Time) (map[string]bool, error) {
	var blocks []models.BlockedSlot
	err := db.Where("is_active = ?", true).
		Where(
			db.Where("block_type = ? AND day_of_week = ?", models.BlockTypeRecurring, models.ISOWeekday(date)).
				Or("block_type = ? AND specific_date = ?", models.BlockTypeOneTime, CivilDate(date)),
		).
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}

	blocked := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		blocked[b.TimeSlot] = true
	}
	return blocked, nil
}
