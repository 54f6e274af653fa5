package models

import "time"

// Variant is one saved combination across the theme catalog axes. Variants
// are immutable after creation; the registry is the persisted collection of
// saved variants.
type Variant struct {
	ID         string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	ColorID    string    `gorm:"column:color_id" json:"colorId"`
	FontID     string    `gorm:"column:font_id" json:"fontId"`
	Layout     string    `json:"layout"`
	RadiusID   string    `gorm:"column:radius_id" json:"radiusId"`
	CopyID     string    `gorm:"column:copy_id" json:"copyId"`
	Sections   string    `json:"sections"`
	Compliance string    `json:"compliance"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}
