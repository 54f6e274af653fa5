package risk

import (
	"testing"

	"github.com/rxtech-lab/lp-factory/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectNoSharing(t *testing.T) {
	findings := Detect(
		[]models.Domain{{ID: "d1", Domain: "a.com", Registrar: "Namecheap"}},
		[]models.Account{{ID: "a1", PaymentID: "p1"}, {ID: "a2", PaymentID: "p2"}},
		[]models.Profile{{ID: "pr1", ProxyIP: "1.2.3.4"}, {ID: "pr2", ProxyIP: "8.8.8.8"}},
		[]models.Payment{{ID: "p1", Label: "Main Card"}, {ID: "p2", Label: "Backup"}},
	)
	assert.Empty(t, findings)
}

func TestDetectSharedPayment(t *testing.T) {
	findings := Detect(
		nil,
		[]models.Account{
			{ID: "a1", PaymentID: "p1"},
			{ID: "a2", PaymentID: "p1"},
		},
		nil,
		[]models.Payment{{ID: "p1", Label: "Main Card"}},
	)

	require.Len(t, findings, 1)
	assert.Equal(t, LevelCritical, findings[0].Level)
	assert.Contains(t, findings[0].Msg, "Main Card")
	assert.Contains(t, findings[0].Msg, "2 accounts")
}

func TestDetectSharedPaymentFallsBackToID(t *testing.T) {
	// Dangling payment reference: no matching payment record exists.
	findings := Detect(
		nil,
		[]models.Account{
			{ID: "a1", PaymentID: "p-gone"},
			{ID: "a2", PaymentID: "p-gone"},
		},
		nil, nil,
	)

	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Msg, "p-gone")
}

func TestDetectSharedProxyRange(t *testing.T) {
	findings := Detect(
		nil, nil,
		[]models.Profile{
			{ID: "pr1", ProxyIP: "10.20.30.4"},
			{ID: "pr2", ProxyIP: "10.20.30.99"},
			{ID: "pr3", ProxyIP: "10.20.31.4"},
		},
		nil,
	)

	require.Len(t, findings, 1)
	assert.Equal(t, LevelHigh, findings[0].Level)
	assert.Contains(t, findings[0].Msg, "10.20.30.*")
	assert.Contains(t, findings[0].Msg, "2 profiles")
}

func TestDetectRegistrarConcentration(t *testing.T) {
	domains := []models.Domain{
		{ID: "d1", Registrar: "Namecheap"},
		{ID: "d2", Registrar: "Namecheap"},
		{ID: "d3", Registrar: "Namecheap"},
		{ID: "d4", Registrar: "GoDaddy"},
		{ID: "d5", Registrar: "GoDaddy"},
	}

	findings := Detect(domains, nil, nil, nil)

	// Two domains on one registrar is fine; three is not.
	require.Len(t, findings, 1)
	assert.Equal(t, LevelMedium, findings[0].Level)
	assert.Contains(t, findings[0].Msg, "3 domains on Namecheap")
}

func TestDetectEmptyKeysIgnored(t *testing.T) {
	findings := Detect(
		[]models.Domain{{ID: "d1"}, {ID: "d2"}, {ID: "d3"}},
		[]models.Account{{ID: "a1"}, {ID: "a2"}},
		[]models.Profile{{ID: "pr1"}, {ID: "pr2"}},
		nil,
	)
	assert.Empty(t, findings)
}

func TestDetectOrdersBySeverity(t *testing.T) {
	findings := Detect(
		[]models.Domain{
			{ID: "d1", Registrar: "Porkbun"},
			{ID: "d2", Registrar: "Porkbun"},
			{ID: "d3", Registrar: "Porkbun"},
		},
		[]models.Account{
			{ID: "a1", PaymentID: "p1"},
			{ID: "a2", PaymentID: "p1"},
		},
		[]models.Profile{
			{ID: "pr1", ProxyIP: "1.2.3.4"},
			{ID: "pr2", ProxyIP: "1.2.3.5"},
		},
		[]models.Payment{{ID: "p1", Label: "Shared"}},
	)

	require.Len(t, findings, 3)
	assert.Equal(t, LevelCritical, findings[0].Level)
	assert.Equal(t, LevelHigh, findings[1].Level)
	assert.Equal(t, LevelMedium, findings[2].Level)
}
