// Package risk scans the ops collections for unsafe resource sharing.
// Findings are recomputed on every read; nothing is persisted or
// acknowledged, each report is point in time.
package risk

import (
	"fmt"
	"strings"

	"github.com/rxtech-lab/lp-factory/internal/models"
)

// Finding severity levels.
const (
	LevelCritical = "critical"
	LevelHigh     = "high"
	LevelMedium   = "medium"
)

// Finding is one detected correlation risk.
type Finding struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
}

// Detect reports, in order of first appearance:
//   - critical: a payment method referenced by more than one account
//   - high: a /24-equivalent proxy prefix shared by more than one profile
//   - medium: a registrar holding more than two domains
func Detect(domains []models.Domain, accounts []models.Account, profiles []models.Profile, payments []models.Payment) []Finding {
	var findings []Finding

	paymentLabels := make(map[string]string, len(payments))
	for _, p := range payments {
		paymentLabels[p.ID] = p.Label
	}

	for _, group := range groupBy(accounts, func(a models.Account) string { return a.PaymentID }) {
		if len(group.members) <= 1 {
			continue
		}
		label := paymentLabels[group.key]
		if label == "" {
			label = group.key
		}
		findings = append(findings, Finding{
			Level: LevelCritical,
			Msg:   fmt.Sprintf("Payment %q shared by %d accounts", label, len(group.members)),
		})
	}

	for _, group := range groupBy(profiles, func(p models.Profile) string { return proxyPrefix(p.ProxyIP) }) {
		if len(group.members) <= 1 {
			continue
		}
		findings = append(findings, Finding{
			Level: LevelHigh,
			Msg:   fmt.Sprintf("Proxy %s.* shared by %d profiles", group.key, len(group.members)),
		})
	}

	for _, group := range groupBy(domains, func(d models.Domain) string { return d.Registrar }) {
		if len(group.members) <= 2 {
			continue
		}
		findings = append(findings, Finding{
			Level: LevelMedium,
			Msg:   fmt.Sprintf("%d domains on %s", len(group.members), group.key),
		})
	}

	return findings
}

// proxyPrefix keys a proxy IP by its first three dot-separated fields.
// Input is not validated: malformed addresses group under whatever prefix
// they produce, matching the stored data as-is.
func proxyPrefix(ip string) string {
	parts := strings.Split(ip, ".")
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return strings.Join(parts, ".")
}

type group[T any] struct {
	key     string
	members []T
}

// groupBy buckets items by key, skipping empty keys and preserving the
// order in which keys first appear.
func groupBy[T any](items []T, keyFn func(T) string) []group[T] {
	var order []string
	buckets := make(map[string][]T)
	for _, item := range items {
		key := keyFn(item)
		if key == "" {
			continue
		}
		if _, seen := buckets[key]; !seen {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], item)
	}

	groups := make([]group[T], 0, len(order))
	for _, key := range order {
		groups = append(groups, group[T]{key: key, members: buckets[key]})
	}
	return groups
}
