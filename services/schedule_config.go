package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"clinica_app_go/models"

	"gorm.io/gorm"
)

// ScheduleConfigKey is the settings-table key the configuration lives under
const ScheduleConfigKey = "schedule_config"

// GetScheduleConfig loads the clinic's schedule configuration.
// A missing record is a deployment fault, not a per-request condition, and is
// reported as ErrScheduleConfigMissing.
func GetScheduleConfig(db *gorm.DB) (*models.ScheduleConfig, error) {
	var setting models.Setting
	err := db.First(&setting, "key = ?", ScheduleConfigKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrScheduleConfigMissing
	}
	if err != nil {
		return nil, err
	}

	var cfg models.ScheduleConfig
	if err := json.Unmarshal([]byte(setting.Value), &cfg); err != nil {
		return nil, fmt.Errorf("corrupt schedule configuration: %w", err)
	}
	return &cfg, nil
}

// SaveScheduleConfig validates and persists the configuration (upsert).
// Admin writes are low-frequency; last writer wins.
func SaveScheduleConfig(db *gorm.DB, cfg *models.ScheduleConfig) error {
	if err := cfg.Validate(); err != nil {
		return NewValidationError("%s", err.Error())
	}

	payload, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode schedule configuration: %w", err)
	}

	var setting models.Setting
	err = db.First(&setting, "key = ?", ScheduleConfigKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&models.Setting{Key: ScheduleConfigKey, Value: string(payload)}).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&setting).Update("value", string(payload)).Error
}

// EnsureScheduleConfig seeds the default configuration on first deployment.
// Business default: open Monday through Thursday, closed Friday and the
// weekend, hourly slots from 08:00 with the last one starting at 20:00.
func EnsureScheduleConfig(db *gorm.DB) error {
	_, err := GetScheduleConfig(db)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrScheduleConfigMissing) {
		return err
	}

	defaults := &models.ScheduleConfig{
		WorkingDays: models.WorkingDays{
			"monday":    {Enabled: true},
			"tuesday":   {Enabled: true},
			"wednesday": {Enabled: true},
			"thursday":  {Enabled: true},
			"friday":    {Enabled: false},
			"saturday":  {Enabled: false},
			"sunday":    {Enabled: false},
		},
		StartTime:                   "08:00",
		EndTime:                     "21:00",
		SessionDurationMinutes:      50,
		FirstSessionDurationMinutes: 60,
		AdvanceDays:                 60,
	}

	if err := SaveScheduleConfig(db, defaults); err != nil {
		return err
	}
	log.Println("Seeded default schedule configuration")
	return nil
}
