package copygen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxtech-lab/lp-factory/internal/models"
)

func TestParseCopy(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		copySet, err := ParseCopy(`{"h1":"Fast Cash","badge":"Trusted","cta":"Apply","sub":"Easy.","tagline":"Loans"}`)
		require.NoError(t, err)
		assert.Equal(t, "Fast Cash", copySet.H1)
		assert.Equal(t, "Loans", copySet.Tagline)
	})

	t.Run("strips markdown fences", func(t *testing.T) {
		copySet, err := ParseCopy("```json\n{\"h1\":\"Fenced\",\"cta\":\"Go\"}\n```")
		require.NoError(t, err)
		assert.Equal(t, "Fenced", copySet.H1)
		assert.Equal(t, "Go", copySet.CTA)
	})

	t.Run("rejects non-json", func(t *testing.T) {
		_, err := ParseCopy("Sorry, I can't help with that.")
		assert.Error(t, err)
	})
}

func TestFillBlankFields(t *testing.T) {
	copySet := &Copy{H1: "Gen H1", Badge: "Gen Badge", CTA: "Gen CTA", Sub: "Gen Sub", Tagline: "Gen Tagline"}

	t.Run("fills only blanks", func(t *testing.T) {
		site := &models.Site{H1: "Operator H1", CTA: "Operator CTA"}
		FillBlankFields(site, copySet)

		assert.Equal(t, "Operator H1", site.H1)
		assert.Equal(t, "Operator CTA", site.CTA)
		assert.Equal(t, "Gen Badge", site.Badge)
		assert.Equal(t, "Gen Sub", site.Sub)
		assert.Equal(t, "Gen Tagline", site.Tagline)
	})

	t.Run("nil copy is a no-op", func(t *testing.T) {
		site := &models.Site{H1: "Keep"}
		FillBlankFields(site, nil)
		assert.Equal(t, "Keep", site.H1)
	})
}
