package models

import "time"

// Ops entities track advertising-operations resources. They are related by
// plain string id fields with no referential integrity: a dangling reference
// is tolerated and left to consumers to render as unlinked.

// Domain is a registered landing page domain.
type Domain struct {
	ID            string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Domain        string    `json:"domain"`
	Registrar     string    `json:"registrar"`
	AccountID     string    `gorm:"column:account_id" json:"accountId"`
	ProfileID     string    `gorm:"column:profile_id" json:"profileId"`
	HostAccountID string    `gorm:"column:host_account_id" json:"hostAccountId"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Account is an advertising account.
type Account struct {
	ID           string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Label        string    `json:"label"`
	Email        string    `json:"email"`
	PaymentID    string    `gorm:"column:payment_id" json:"paymentId"`
	Budget       string    `json:"budget"`
	Status       string    `json:"status"`
	CardUUID     string    `gorm:"column:card_uuid" json:"cardUuid"`
	CardLast4    string    `gorm:"column:card_last4" json:"cardLast4"`
	CardStatus   string    `gorm:"column:card_status" json:"cardStatus"`
	ProfileID    string    `gorm:"column:profile_id" json:"profileId"`
	ProxyIP      string    `gorm:"column:proxy_ip" json:"proxyIp"`
	MonthlySpend float64   `json:"monthlySpend"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Profile is a browser profile, optionally mirroring a profile managed by
// the external browser-automation API (RemoteID links the two).
type Profile struct {
	ID             string     `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Name           string     `json:"name"`
	ProxyIP        string     `gorm:"column:proxy_ip" json:"proxyIp"`
	BrowserType    string     `json:"browserType"`
	OS             string     `gorm:"column:os" json:"os"`
	Status         string     `json:"status"`
	RemoteID       string     `gorm:"index;column:remote_id" json:"remoteId"`
	RemoteFolderID string     `gorm:"column:remote_folder_id" json:"remoteFolderId"`
	RemoteStatus   string     `gorm:"column:remote_status" json:"remoteStatus"` // running, stopped
	ProxyHost      string     `gorm:"column:proxy_host" json:"proxyHost"`
	ProxyPort      string     `gorm:"column:proxy_port" json:"proxyPort"`
	ProxyUser      string     `gorm:"column:proxy_user" json:"proxyUser"`
	ProxyPass      string     `gorm:"column:proxy_pass" json:"proxyPass"`
	ProxyType      string     `gorm:"column:proxy_type" json:"proxyType"`
	FingerprintOS  string     `gorm:"column:fingerprint_os" json:"fingerprintOs"`
	Parameters     JSON       `gorm:"type:json" json:"parameters,omitempty"`
	LastStartedAt  *time.Time `gorm:"column:last_started_at" json:"lastStartedAt,omitempty"`
	LastStoppedAt  *time.Time `gorm:"column:last_stopped_at" json:"lastStoppedAt,omitempty"`
	AccountID      string     `gorm:"column:account_id" json:"accountId"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// Payment is a payment method issued through the card-issuing API.
type Payment struct {
	ID             string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Label          string    `json:"label"`
	Type           string    `json:"type"`
	Last4          string    `gorm:"column:last4" json:"last4"`
	BankName       string    `json:"bankName"`
	Status         string    `json:"status"`
	IssuerCardUUID string    `gorm:"column:issuer_card_uuid" json:"issuerCardUuid"`
	IssuerBinUUID  string    `gorm:"column:issuer_bin_uuid" json:"issuerBinUuid"`
	CardLimit      float64   `json:"cardLimit"`
	CardExpiry     string    `json:"cardExpiry"`
	TotalSpend     float64   `json:"totalSpend"`
	CreatedAt      time.Time `json:"createdAt"`
}

// OpsLog is one audit entry. The log is capped to the most recent 200
// entries on read.
type OpsLog struct {
	ID        string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Msg       string    `json:"msg"`
	CreatedAt time.Time `json:"ts"`
}
