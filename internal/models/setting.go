package models

import "time"

// Setting is one key-value configuration row. Secret-bearing keys are
// redacted by the settings service before leaving the process.
type Setting struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HostAccount is a hosting provider account used for deploys.
type HostAccount struct {
	ID        string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Label     string    `json:"label"`
	Email     string    `json:"email"`
	APIKey    string    `gorm:"column:api_key" json:"apiKey"`
	CreatedAt time.Time `json:"createdAt"`
}
