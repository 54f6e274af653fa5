package theme

import (
	"fmt"

	"github.com/rxtech-lab/lp-factory/internal/models"
)

// ThemeDocument is the portable JSON document consumed by the external
// static-site builder. Serialization is lossless for every field the
// builder reads; color triples are formatted as "H S% L%" strings.
type ThemeDocument struct {
	VariantID string         `json:"variantId"`
	Domain    string         `json:"domain"`
	GtmID     string         `json:"gtmId"`
	Colors    ThemeColors    `json:"colors"`
	Radius    string         `json:"radius"`
	Font      ThemeFont      `json:"font"`
	Layout    ThemeLayout    `json:"layout"`
	Copy      ThemeCopy      `json:"copy"`
	Loan      ThemeLoan      `json:"loanProduct"`
	Tracking  ThemeTracking  `json:"tracking"`
}

// ThemeColors holds the nine semantic color slots plus the fixed chrome
// values the builder expects.
type ThemeColors struct {
	Primary             string `json:"primary"`
	Secondary           string `json:"secondary"`
	Accent              string `json:"accent"`
	Background          string `json:"background"`
	Foreground          string `json:"foreground"`
	Card                string `json:"card"`
	CardForeground      string `json:"card-foreground"`
	Muted               string `json:"muted"`
	MutedForeground     string `json:"muted-foreground"`
	Border              string `json:"border"`
	Input               string `json:"input"`
	Ring                string `json:"ring"`
	PrimaryForeground   string `json:"primary-foreground"`
	SecondaryForeground string `json:"secondary-foreground"`
	AccentForeground    string `json:"accent-foreground"`
}

type ThemeFont struct {
	ID           string `json:"id"`
	Family       string `json:"family"`
	GoogleImport string `json:"googleImport"`
}

type ThemeLayout struct {
	Hero string `json:"hero"` // form-right, form-below, form-overlap
}

type ThemeCopy struct {
	Brand           string `json:"brand"`
	Tagline         string `json:"tagline"`
	H1              string `json:"h1"`
	H1Span          string `json:"h1span"`
	Badge           string `json:"badge"`
	CTA             string `json:"cta"`
	Sub             string `json:"sub"`
	ComplianceEmail string `json:"complianceEmail"`
}

type ThemeLoan struct {
	Type      string  `json:"type"`
	AmountMin int     `json:"amountMin"`
	AmountMax int     `json:"amountMax"`
	AprMin    float64 `json:"aprMin"`
	AprMax    float64 `json:"aprMax"`
}

type ThemeTracking struct {
	GtmID           string `json:"gtmId"`
	Network         string `json:"network"`
	RedirectURL     string `json:"redirectUrl"`
	ConversionID    string `json:"conversionId"`
	ConversionLabel string `json:"conversionLabel"`
}

// HSLString formats an HSL triple the way the builder's CSS variables
// expect it.
func HSLString(c HSL) string {
	return fmt.Sprintf("%d %d%% %d%%", c[0], c[1], c[2])
}

// hero layout tokens by layout id.
func heroLayout(layout string) string {
	switch layout {
	case "hero-left":
		return "form-right"
	case "hero-center":
		return "form-below"
	default:
		return "form-overlap"
	}
}

// Serialize maps a Site into the theme document handed to the static-site
// builder. Pure function: catalog lookups only, no I/O. Unknown catalog ids
// resolve to the first catalog entry.
func Serialize(site *models.Site) ThemeDocument {
	c := ColorByID(site.ColorID)
	f := FontByID(site.FontID)
	r := RadiusByID(site.RadiusID)

	mutedL := c.Background[2] - 2
	if mutedL < 90 {
		mutedL = 90
	}

	return ThemeDocument{
		VariantID: site.ID,
		Domain:    site.Domain,
		GtmID:     site.GtmID,
		Colors: ThemeColors{
			Primary:             HSLString(c.Primary),
			Secondary:           HSLString(c.Secondary),
			Accent:              HSLString(c.Accent),
			Background:          HSLString(c.Background),
			Foreground:          HSLString(c.Foreground),
			Card:                "0 0% 100%",
			CardForeground:      HSLString(c.Foreground),
			Muted:               HSLString(HSL{c.Background[0], c.Background[1], mutedL}),
			MutedForeground:     "215 16% 47%",
			Border:              "214 32% 91%",
			Input:               "214 32% 91%",
			Ring:                HSLString(c.Primary),
			PrimaryForeground:   "0 0% 100%",
			SecondaryForeground: "0 0% 100%",
			AccentForeground:    "0 0% 100%",
		},
		Radius: r.Value,
		Font:   ThemeFont{ID: f.ID, Family: f.Family, GoogleImport: f.GoogleImport},
		Layout: ThemeLayout{Hero: heroLayout(site.Layout)},
		Copy: ThemeCopy{
			Brand:           site.Brand,
			Tagline:         site.Tagline,
			H1:              site.H1,
			Badge:           site.Badge,
			CTA:             site.CTA,
			Sub:             site.Sub,
			ComplianceEmail: site.Email,
		},
		Loan: ThemeLoan{
			Type:      site.LoanType,
			AmountMin: site.AmountMin,
			AmountMax: site.AmountMax,
			AprMin:    site.AprMin,
			AprMax:    site.AprMax,
		},
		Tracking: ThemeTracking{
			GtmID:           site.GtmID,
			Network:         site.Network,
			RedirectURL:     site.RedirectURL,
			ConversionID:    site.ConversionID,
			ConversionLabel: site.ConversionLabel,
		},
	}
}
