// Package lp renders the deployable landing page HTML for a site.
package lp

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/rxtech-lab/lp-factory/internal/models"
	"github.com/rxtech-lab/lp-factory/internal/theme"
)

// pageData is the resolved input to the page template: catalog lookups
// applied, blank copy fields replaced with defaults.
type pageData struct {
	Brand       string
	Title       string
	Description string
	H1          string
	Badge       string
	CTA         string
	Sub         string
	GtmID       string
	RedirectURL string
	AmountMin   int
	AmountMax   int
	AmountMid   int
	FontImport  string
	FontFamily  string
	Radius      string
	Primary     string
	Secondary   string
	Accent      string
	Background  string
	Foreground  string
	Sections    []string
	Compliance  theme.ComplianceVariant
	Email       string
	AprMin      float64
	AprMax      float64
}

// Generate renders the complete single-file landing page for a site.
// Unknown catalog ids fall back to the first catalog entry; blank copy
// fields get generic loan copy so the output is always a complete page.
func Generate(site *models.Site) (string, error) {
	c := theme.ColorByID(site.ColorID)
	f := theme.FontByID(site.FontID)
	r := theme.RadiusByID(site.RadiusID)
	so := theme.SectionOrderByID(site.Sections)
	comp := theme.ComplianceByID(site.Compliance)

	brand := site.Brand
	if brand == "" {
		brand = "LoanBridge"
	}
	amountMax := site.AmountMax
	if amountMax == 0 {
		amountMax = 5000
	}
	h1 := site.H1
	if h1 == "" {
		h1 = fmt.Sprintf("Fast %s Up To $%d", theme.LoanTypeLabel(site.LoanType), amountMax)
	}
	badge := site.Badge
	if badge == "" {
		badge = "Trusted by 15,000+ borrowers"
	}
	cta := site.CTA
	if cta == "" {
		cta = "Check Your Rate →"
	}
	sub := site.Sub
	if sub == "" {
		sub = "Get approved in minutes. Funds as fast as next business day."
	}

	data := pageData{
		Brand:       brand,
		Title:       fmt.Sprintf("%s – %s | Fast Approval", brand, theme.LoanTypeLabel(site.LoanType)),
		Description: sub,
		H1:          h1,
		Badge:       badge,
		CTA:         cta,
		Sub:         sub,
		GtmID:       site.GtmID,
		RedirectURL: site.RedirectURL,
		AmountMin:   site.AmountMin,
		AmountMax:   amountMax,
		AmountMid:   (site.AmountMin + amountMax) / 2,
		FontImport:  f.GoogleImport,
		FontFamily:  f.Family,
		Radius:      r.Value,
		Primary:     cssTriple(c.Primary),
		Secondary:   cssTriple(c.Secondary),
		Accent:      cssTriple(c.Accent),
		Background:  cssTriple(c.Background),
		Foreground:  cssTriple(c.Foreground),
		Sections:    so.Order,
		Compliance:  comp,
		Email:       site.Email,
		AprMin:      site.AprMin,
		AprMax:      site.AprMax,
	}

	var b strings.Builder
	if err := pageTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering landing page: %w", err)
	}
	return b.String(), nil
}

// cssTriple formats an HSL triple for a CSS hsl(var(--x)) variable.
func cssTriple(c theme.HSL) string {
	return fmt.Sprintf("%d,%d%%,%d%%", c[0], c[1], c[2])
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8"><meta name="viewport" content="width=device-width,initial-scale=1.0">
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
<link rel="preconnect" href="https://fonts.googleapis.com">
<link href="https://fonts.googleapis.com/css2?family={{.FontImport}}&display=swap" rel="stylesheet">
{{if .GtmID}}<script>(function(w,d,s,l,i){w[l]=w[l]||[];w[l].push({'gtm.start':new Date().getTime(),event:'gtm.js'});var f=d.getElementsByTagName(s)[0],j=d.createElement(s),dl=l!='dataLayer'?'&l='+l:'';j.async=true;j.src='https://www.googletagmanager.com/gtm.js?id='+i+dl;f.parentNode.insertBefore(j,f);})(window,document,'script','dataLayer','{{.GtmID}}');</script>{{end}}
<style>
:root{--p:{{.Primary}};--s:{{.Secondary}};--a:{{.Accent}};--bg:{{.Background}};--fg:{{.Foreground}};--radius:{{.Radius}}}
*{margin:0;padding:0;box-sizing:border-box}
body{font-family:{{.FontFamily}},system-ui,sans-serif;background:hsl(var(--bg));color:hsl(var(--fg))}
.container{max-width:1120px;margin:0 auto;padding:0 20px}
.btn{display:inline-flex;align-items:center;justify-content:center;gap:8px;padding:14px 32px;border-radius:var(--radius);font-weight:700;font-size:16px;border:none;cursor:pointer;text-decoration:none}
.btn-cta{background:linear-gradient(135deg,hsl(var(--a)),hsl(var(--a)/.85));color:#fff}
header{position:fixed;top:0;left:0;right:0;z-index:50;background:rgba(255,255,255,.92);border-bottom:1px solid hsl(var(--fg)/.06)}
header .inner{display:flex;align-items:center;justify-content:space-between;height:64px}
.hero{padding:100px 0 60px;background:linear-gradient(135deg,hsl(var(--p)),hsl(var(--p)/.7));color:#fff}
.hero .grid{display:grid;grid-template-columns:1fr 1fr;gap:48px;align-items:center}
.badge{display:inline-flex;align-items:center;gap:6px;padding:6px 16px;border-radius:999px;background:rgba(255,255,255,.1);font-size:14px;margin-bottom:20px}
h1{font-size:clamp(32px,5vw,56px);font-weight:800;line-height:1.1;margin-bottom:20px}
.hero p{font-size:18px;color:rgba(255,255,255,.7);max-width:480px;margin-bottom:28px}
.form-card{background:rgba(255,255,255,.08);border:1px solid rgba(255,255,255,.12);border-radius:var(--radius);padding:28px}
.slider-amount{font-size:28px;font-weight:800;color:hsl(var(--a))}
section{padding:64px 0}
.section-title{text-align:center;margin-bottom:40px}
footer{background:hsl(var(--fg)/.03);border-top:1px solid hsl(var(--fg)/.06);padding:48px 0 24px}
.compliance{border-top:1px solid hsl(var(--fg)/.06);padding-top:24px;font-size:11px;color:hsl(var(--fg)/.4);line-height:1.7}
</style>
</head>
<body>
{{if .GtmID}}<noscript><iframe src="https://www.googletagmanager.com/ns.html?id={{.GtmID}}" height="0" width="0" style="display:none;visibility:hidden"></iframe></noscript>{{end}}
<header><div class="container"><div class="inner">
  <span style="font-size:16px;font-weight:700">{{.Brand}}</span>
  <a href="#apply" class="btn btn-cta" style="padding:10px 20px;font-size:14px">{{.CTA}}</a>
</div></div></header>
<section class="hero" id="apply"><div class="container"><div class="grid">
  <div>
    <div class="badge">{{.Badge}}</div>
    <h1>{{.H1}}</h1>
    <p>{{.Sub}}</p>
  </div>
  <div class="form-card">
    <h3>How much do you need?</h3>
    <div class="slider-amount">${{.AmountMid}}</div>
    <input type="range" min="{{.AmountMin}}" max="{{.AmountMax}}" value="{{.AmountMid}}"
      oninput="this.previousElementSibling.textContent='$'+Number(this.value).toLocaleString();if(window.dataLayer)dataLayer.push({event:'slider_interact'})">
    <a href="{{if .RedirectURL}}{{.RedirectURL}}{{else}}#{{end}}" class="btn btn-cta" style="width:100%"
      onclick="if(window.dataLayer){dataLayer.push({event:'cta_click'});dataLayer.push({event:'generate_lead_start'})}">{{.CTA}}</a>
  </div>
</div></div></section>
{{range .Sections}}{{if eq . "social"}}
<section id="social"><div class="container" style="text-align:center">
  <span>15,000+ loans funded</span> &middot; <span>4.8/5 rating</span> &middot; <span>256-bit encryption</span>
</div></section>
{{else if eq . "steps"}}
<section id="steps"><div class="container"><div class="section-title"><h2>How It Works</h2></div>
  <ol><li>Tell us how much you need</li><li>Get matched in minutes</li><li>Receive funds as fast as next business day</li></ol>
</div></section>
{{else if eq . "calc"}}
<section id="calc"><div class="container"><div class="section-title"><h2>Estimate Your Payment</h2></div>
  <p>{{$.Compliance.Example}}</p>
</div></section>
{{else if eq . "features"}}
<section id="features"><div class="container"><div class="section-title"><h2>Why {{$.Brand}}</h2></div>
  <ul><li>All credit types welcome</li><li>2-minute application</li><li>No hidden fees</li><li>Direct deposit</li></ul>
</div></section>
{{else if eq . "faq"}}
<section id="faq"><div class="container"><div class="section-title"><h2>Questions</h2></div>
  <p>Checking your rate will not affect your credit score.</p>
</div></section>
{{else if eq . "cta"}}
<section id="cta"><div class="container" style="text-align:center">
  <h2>Ready to get started?</h2>
  <a href="#apply" class="btn btn-cta">{{$.CTA}}</a>
</div></section>
{{end}}{{end}}
<footer><div class="container">
  <div class="compliance">
    <strong>Representative example:</strong> {{.Compliance.Example}} {{.Compliance.APR}}
    {{if .Email}}Questions: {{.Email}}{{end}}
  </div>
</div></footer>
<script>
if(window.dataLayer){
  var marks={25:false,50:false,75:false};
  window.addEventListener('scroll',function(){
    var pct=Math.round(window.scrollY/(document.body.scrollHeight-window.innerHeight)*100);
    [25,50,75].forEach(function(m){if(pct>=m&&!marks[m]){marks[m]=true;dataLayer.push({event:'scroll_'+m});}});
  });
  setTimeout(function(){dataLayer.push({event:'time_on_page_30s'})},30000);
  setTimeout(function(){dataLayer.push({event:'time_on_page_60s'})},60000);
}
</script>
</body></html>`))
