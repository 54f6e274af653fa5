package models

import "time"

// Deploy type values
const (
	DeployTypeNew      = "new"
	DeployTypeRedeploy = "redeploy"
)

// Deploy is an immutable record of one hosting deploy attempt. SiteID is a
// weak reference: a Deploy survives deletion of its Site.
type Deploy struct {
	ID         string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	SiteID     string    `gorm:"index;column:site_id" json:"siteId"`
	Brand      string    `json:"brand"`
	URL        string    `gorm:"column:url" json:"url"`
	Type       string    `json:"type"` // new, redeploy
	DeployedBy string    `json:"deployedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}
