package theme

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rxtech-lab/lp-factory/internal/utils"
)

// Variant is one selectable combination across the catalog axes. It is a
// value object: never mutated after creation.
type Variant struct {
	ID         string `json:"id"`
	ColorID    string `json:"colorId"`
	FontID     string `json:"fontId"`
	Layout     string `json:"layout"`
	RadiusID   string `json:"radiusId"`
	CopyID     string `json:"copyId"`
	Sections   string `json:"sections"`
	Compliance string `json:"compliance"`
}

// similarityAxes is the fixed ordered list of comparators that defines the
// similarity contract. Radius is not an axis.
var similarityAxes = [6]func(a, b Variant) bool{
	func(a, b Variant) bool { return a.ColorID == b.ColorID },
	func(a, b Variant) bool { return a.FontID == b.FontID },
	func(a, b Variant) bool { return a.Layout == b.Layout },
	func(a, b Variant) bool { return a.CopyID == b.CopyID },
	func(a, b Variant) bool { return a.Sections == b.Sections },
	func(a, b Variant) bool { return a.Compliance == b.Compliance },
}

// Similarity scores how close two variants look, as a percentage: the count
// of matching axes out of six, rounded to the nearest integer percent.
// Symmetric; range {0, 17, 33, 50, 67, 83, 100}.
func Similarity(a, b Variant) int {
	matches := 0
	for _, same := range similarityAxes {
		if same(a, b) {
			matches++
		}
	}
	return int(math.Round(float64(matches) / 6 * 100))
}

// MaxSimilarity returns the highest similarity between v and any member of
// population with a different id. With one or zero members there are no
// comparable peers and the result is 0. This is the fingerprint collision
// risk signal shown to the operator.
func MaxSimilarity(v Variant, population []Variant) int {
	if len(population) <= 1 {
		return 0
	}
	max := 0
	for _, other := range population {
		if other.ID == v.ID {
			continue
		}
		if s := Similarity(v, other); s > max {
			max = s
		}
	}
	return max
}

// MaxBatchSimilarity caps the similarity a generated variant may have
// against the registry before it is rejected.
const MaxBatchSimilarity = 70

// maxDrawAttempts bounds the batch generator. Generation is best effort:
// hitting the cap returns a partial result, never an error.
const maxDrawAttempts = 300

// RandomVariant draws one variant with an independent uniform pick per axis.
func RandomVariant(rng *rand.Rand) Variant {
	return Variant{
		ID:         utils.NewID(),
		ColorID:    Colors[rng.Intn(len(Colors))].ID,
		FontID:     Fonts[rng.Intn(len(Fonts))].ID,
		Layout:     Layouts[rng.Intn(len(Layouts))].ID,
		RadiusID:   Radii[rng.Intn(len(Radii))].ID,
		CopyID:     CopySets[rng.Intn(len(CopySets))].ID,
		Sections:   SectionOrders[rng.Intn(len(SectionOrders))].ID,
		Compliance: ComplianceVariants[rng.Intn(len(ComplianceVariants))].ID,
	}
}

// GenerateBatch draws random variants until n are collected whose
// (colorId, fontId, copyId, layout) key is unique within the batch and
// whose max similarity against population plus the batch so far stays
// below MaxBatchSimilarity. The draw count is capped; the result may hold
// fewer than n variants.
func GenerateBatch(rng *rand.Rand, n int, population []Variant) []Variant {
	results := make([]Variant, 0, n)
	used := make(map[string]struct{})

	for attempts := 0; len(results) < n && attempts < maxDrawAttempts; attempts++ {
		v := RandomVariant(rng)
		key := fmt.Sprintf("%s-%s-%s-%s", v.ColorID, v.FontID, v.CopyID, v.Layout)
		if _, dup := used[key]; dup {
			continue
		}
		used[key] = struct{}{}

		all := append(append([]Variant{}, population...), results...)
		max := 0
		for _, other := range all {
			if s := Similarity(v, other); s > max {
				max = s
			}
		}
		if max < MaxBatchSimilarity {
			results = append(results, v)
		}
	}
	return results
}
