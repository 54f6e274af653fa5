package models

import "time"

// Site is a materialized landing page: a theme variant plus brand identity,
// loan offer parameters, copy overrides and tracking identifiers.
type Site struct {
	ID        string  `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Brand     string  `json:"brand"`
	Domain    string  `json:"domain"`
	Tagline   string  `json:"tagline"`
	Email     string  `json:"email"`
	LoanType  string  `json:"loanType"`
	AmountMin int     `json:"amountMin"`
	AmountMax int     `json:"amountMax"`
	AprMin    float64 `json:"aprMin"`
	AprMax    float64 `json:"aprMax"`

	ColorID    string `gorm:"column:color_id" json:"colorId"`
	FontID     string `gorm:"column:font_id" json:"fontId"`
	Layout     string `json:"layout"`
	RadiusID   string `gorm:"column:radius_id" json:"radiusId"`
	CopyID     string `gorm:"column:copy_id" json:"copyId"`
	Sections   string `json:"sections"`
	Compliance string `json:"compliance"`

	H1    string `json:"h1"`
	Badge string `json:"badge"`
	CTA   string `gorm:"column:cta" json:"cta"`
	Sub   string `json:"sub"`

	GtmID           string `gorm:"column:gtm_id" json:"gtmId"`
	Network         string `json:"network"`
	RedirectURL     string `gorm:"column:redirect_url" json:"redirectUrl"`
	ConversionID    string `gorm:"column:conversion_id" json:"conversionId"`
	ConversionLabel string `json:"conversionLabel"`

	Status    string    `json:"status"`
	Cost      float64   `json:"cost"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}
