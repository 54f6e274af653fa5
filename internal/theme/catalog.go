package theme

// The theme catalog is static data: every selectable value for each axis of
// a landing page theme. Lookups by unknown id fall back to the first entry
// so a render never fails on a stale id.

// HSL is a hue/saturation/lightness triple. Saturation and lightness are
// percentages.
type HSL [3]int

// ColorPalette is one selectable color scheme.
type ColorPalette struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Primary    HSL    `json:"primary"`
	Secondary  HSL    `json:"secondary"`
	Accent     HSL    `json:"accent"`
	Background HSL    `json:"background"`
	Foreground HSL    `json:"foreground"`
}

// Font is one selectable Google font.
type Font struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	GoogleImport string `json:"googleImport"`
	Family       string `json:"family"`
}

// Layout is one hero/form arrangement.
type Layout struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Desc  string `json:"desc"`
}

// Radius is one corner-radius preset.
type Radius struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// CopySet is one pre-written brand voice.
type CopySet struct {
	ID     string `json:"id"`
	Brand  string `json:"brand"`
	H1     string `json:"h1"`
	H1Span string `json:"h1span"`
	Sub    string `json:"sub"`
	CTA    string `json:"cta"`
	Badge  string `json:"badge"`
}

// SectionOrder is one ordering of the page sections below the hero.
type SectionOrder struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Order []string `json:"order"`
}

// ComplianceVariant is one compliance-text wording.
type ComplianceVariant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Example string `json:"example"`
	APR     string `json:"apr"`
}

// LoanType is one supported loan product.
type LoanType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var Colors = []ColorPalette{
	{ID: "ocean", Name: "Ocean Trust", Primary: HSL{217, 91, 35}, Secondary: HSL{158, 64, 42}, Accent: HSL{15, 92, 62}, Background: HSL{210, 40, 98}, Foreground: HSL{222, 47, 11}},
	{ID: "forest", Name: "Forest Green", Primary: HSL{152, 68, 28}, Secondary: HSL{45, 93, 47}, Accent: HSL{350, 80, 55}, Background: HSL{140, 20, 97}, Foreground: HSL{150, 40, 10}},
	{ID: "midnight", Name: "Midnight Indigo", Primary: HSL{235, 70, 42}, Secondary: HSL{170, 60, 45}, Accent: HSL{25, 95, 58}, Background: HSL{230, 25, 97}, Foreground: HSL{235, 50, 12}},
	{ID: "ruby", Name: "Ruby Finance", Primary: HSL{350, 75, 38}, Secondary: HSL{200, 70, 45}, Accent: HSL{40, 90, 55}, Background: HSL{350, 15, 97}, Foreground: HSL{350, 40, 12}},
	{ID: "slate", Name: "Slate Modern", Primary: HSL{215, 25, 35}, Secondary: HSL{160, 50, 42}, Accent: HSL{15, 85, 55}, Background: HSL{210, 15, 97}, Foreground: HSL{215, 30, 12}},
	{ID: "coral", Name: "Coral Warm", Primary: HSL{12, 76, 42}, Secondary: HSL{185, 60, 40}, Accent: HSL{265, 65, 55}, Background: HSL{20, 30, 97}, Foreground: HSL{15, 40, 12}},
	{ID: "teal", Name: "Teal Pro", Primary: HSL{180, 65, 30}, Secondary: HSL{280, 55, 55}, Accent: HSL{35, 90, 55}, Background: HSL{175, 20, 97}, Foreground: HSL{180, 40, 10}},
	{ID: "plum", Name: "Plum Finance", Primary: HSL{270, 55, 40}, Secondary: HSL{150, 55, 42}, Accent: HSL{20, 88, 58}, Background: HSL{270, 15, 97}, Foreground: HSL{270, 40, 12}},
}

var Fonts = []Font{
	{ID: "dm-sans", Name: "DM Sans", GoogleImport: "DM+Sans:opsz,wght@9..40,400;9..40,600;9..40,700", Family: `"DM Sans"`},
	{ID: "plus-jakarta", Name: "Plus Jakarta Sans", GoogleImport: "Plus+Jakarta+Sans:wght@400;600;700", Family: `"Plus Jakarta Sans"`},
	{ID: "outfit", Name: "Outfit", GoogleImport: "Outfit:wght@400;500;600;700", Family: `"Outfit"`},
	{ID: "manrope", Name: "Manrope", GoogleImport: "Manrope:wght@400;500;600;700;800", Family: `"Manrope"`},
	{ID: "sora", Name: "Sora", GoogleImport: "Sora:wght@400;500;600;700", Family: `"Sora"`},
	{ID: "figtree", Name: "Figtree", GoogleImport: "Figtree:wght@400;500;600;700", Family: `"Figtree"`},
	{ID: "inter", Name: "Inter", GoogleImport: "Inter:wght@400;500;600;700", Family: `"Inter"`},
	{ID: "space-grotesk", Name: "Space Grotesk", GoogleImport: "Space+Grotesk:wght@400;500;600;700", Family: `"Space Grotesk"`},
}

var Layouts = []Layout{
	{ID: "hero-left", Label: "Hero Left + Form Right", Desc: "Classic split"},
	{ID: "hero-center", Label: "Hero Center + Form Below", Desc: "Centered modern"},
	{ID: "hero-full", Label: "Full Width Hero", Desc: "Impact first"},
}

var Radii = []Radius{
	{ID: "sharp", Label: "Sharp", Value: "0rem"},
	{ID: "subtle", Label: "Subtle", Value: "0.375rem"},
	{ID: "rounded", Label: "Rounded", Value: "0.75rem"},
	{ID: "pill", Label: "Pill", Value: "1.5rem"},
}

var CopySets = []CopySet{
	{ID: "smart", Brand: "ElasticCredits", H1: "A Smarter Way", H1Span: "to Borrow", Sub: "Get approved in minutes. Funds as fast as next business day.", CTA: "Check My Rate", Badge: "4,200+ funded this month"},
	{ID: "fast", Brand: "QuickFund", H1: "Fast Cash", H1Span: "When You Need It", Sub: "Simple application. Quick decisions. Direct deposit.", CTA: "Get Started Now", Badge: "3,800+ approved this week"},
	{ID: "simple", Brand: "ClearPath Loans", H1: "Simple Loans,", H1Span: "Clear Terms", Sub: "No hidden fees. No surprises. Straightforward loans.", CTA: "See Your Rate", Badge: "5,000+ happy borrowers"},
	{ID: "trust", Brand: "LoanBridge", H1: "Trusted by", H1Span: "Thousands", Sub: "Join thousands who found better rates with our lender network.", CTA: "Find My Rate", Badge: "12,000+ loans funded"},
	{ID: "easy", Brand: "EasyLend", H1: "Borrowing", H1Span: "Made Easy", Sub: "2-minute application. All credit types welcome.", CTA: "Apply Now Free", Badge: "2,900+ served nationwide"},
	{ID: "flex", Brand: "FlexCredit", H1: "Flexible Loans", H1Span: "on Your Terms", Sub: "Choose your amount. Pick your timeline. Get funded fast.", CTA: "Check Eligibility", Badge: "6,100+ customers served"},
}

var SectionOrders = []SectionOrder{
	{ID: "default", Name: "Standard", Order: []string{"social", "steps", "calc", "features", "faq", "cta"}},
	{ID: "trust-first", Name: "Trust First", Order: []string{"social", "features", "steps", "calc", "faq", "cta"}},
	{ID: "calc-early", Name: "Calc Early", Order: []string{"social", "calc", "steps", "features", "faq", "cta"}},
	{ID: "minimal", Name: "Minimal", Order: []string{"social", "steps", "faq", "cta"}},
	{ID: "faq-early", Name: "FAQ Early", Order: []string{"social", "faq", "steps", "calc", "features", "cta"}},
}

var ComplianceVariants = []ComplianceVariant{
	{ID: "standard", Name: "Standard", Example: "$1,000 loan, 12mo at 15% APR = $90.26/mo.", APR: "APR 5.99%–35.99%."},
	{ID: "detailed", Name: "Detailed", Example: "$2,500, 24mo at 19.9% APR = ~$127.12/mo.", APR: "5.99%–35.99% APR depending on credit."},
	{ID: "simple", Name: "Simple", Example: "$1,500 for 12mo at 12% APR. $133.28/mo.", APR: "APR 5.99%–35.99%."},
}

var LoanTypes = []LoanType{
	{ID: "personal", Label: "Personal Loans"},
	{ID: "installment", Label: "Installment Loans"},
	{ID: "pet", Label: "Pet Care Financing"},
	{ID: "medical", Label: "Medical Financing"},
	{ID: "auto", Label: "Auto Loans"},
	{ID: "custom", Label: "Custom / Other"},
}

// Affiliate networks and registrars offered by the ops UI.
var (
	Networks   = []string{"LeadsGate", "ZeroParallel", "LeadStack", "ClickDealer", "Everflow", "Custom"}
	Registrars = []string{"Namecheap", "GoDaddy", "Cloudflare", "Porkbun", "Other"}
	Statuses   = []string{"active", "paused", "suspended", "setup", "expired"}
)

// ColorByID returns the palette with the given id, falling back to the
// first palette.
func ColorByID(id string) ColorPalette {
	for _, c := range Colors {
		if c.ID == id {
			return c
		}
	}
	return Colors[0]
}

// FontByID returns the font with the given id, falling back to the first
// font.
func FontByID(id string) Font {
	for _, f := range Fonts {
		if f.ID == id {
			return f
		}
	}
	return Fonts[0]
}

// RadiusByID returns the radius preset with the given id, falling back to
// the first preset.
func RadiusByID(id string) Radius {
	for _, r := range Radii {
		if r.ID == id {
			return r
		}
	}
	return Radii[0]
}

// CopySetByID returns the copy set with the given id, falling back to the
// first set.
func CopySetByID(id string) CopySet {
	for _, c := range CopySets {
		if c.ID == id {
			return c
		}
	}
	return CopySets[0]
}

// SectionOrderByID returns the section order with the given id, falling
// back to the first order.
func SectionOrderByID(id string) SectionOrder {
	for _, s := range SectionOrders {
		if s.ID == id {
			return s
		}
	}
	return SectionOrders[0]
}

// ComplianceByID returns the compliance variant with the given id, falling
// back to the first variant.
func ComplianceByID(id string) ComplianceVariant {
	for _, c := range ComplianceVariants {
		if c.ID == id {
			return c
		}
	}
	return ComplianceVariants[0]
}

// LoanTypeLabel returns the display label for a loan type id, falling back
// to the first loan type's label.
func LoanTypeLabel(id string) string {
	for _, l := range LoanTypes {
		if l.ID == id {
			return l.Label
		}
	}
	return LoanTypes[0].Label
}
