package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupVoice_KnownIDs(t *testing.T) {
	for _, p := range Publications() {
		got := LookupVoice(p.ID)
		assert.Equal(t, p, got)
		assert.NotEmpty(t, got.Model, "publication %s must have a model", p.ID)
		assert.NotEmpty(t, got.Config, "publication %s must have a voice block", p.ID)
	}
}

func TestLookupVoice_UnknownFallsBack(t *testing.T) {
	def := LookupVoice(DefaultPublication)
	for _, id := range []string{"", "nope", "WIKI-NEWS", "business2"} {
		assert.Equal(t, def, LookupVoice(id), "id %q", id)
	}
	assert.False(t, KnownPublication("nope"))
	assert.True(t, KnownPublication("gourmet"))
}

func TestLookupVoice_Idempotent(t *testing.T) {
	first := LookupVoice("gourmet")
	second := LookupVoice("gourmet")
	assert.Equal(t, first, second)
}

func TestLookupBrand(t *testing.T) {
	b := LookupBrand("smartmoney")
	assert.Equal(t, "SmartMoney Magazine", b.Name)
	assert.Equal(t, "editorial@smartmoneymagazine.com", b.Email)

	def := LookupBrand("")
	assert.Equal(t, "Business 2.0 Magazine", def.Name)
	assert.Equal(t, def, LookupBrand("unknown-brand"))
}

func TestBrands_HaveFromEmail(t *testing.T) {
	for _, tag := range []string{
		"smartmoney", "gourmet", "mademoiselle", "blender", "family-circle",
		"modern-bride", "lhj", "teen-people", "business2",
	} {
		b := LookupBrand(tag)
		require.Equal(t, tag, b.ID)
		assert.NotEmpty(t, b.Email)
		assert.NotEmpty(t, b.Tone)
	}
}

func TestLookupTier(t *testing.T) {
	premium := LookupTier("premium")
	assert.Equal(t, 250, premium.Price)
	assert.Equal(t, 800, premium.Words)
	assert.Equal(t, []int{14}, premium.UpsellDays)

	def := LookupTier("")
	assert.Equal(t, 50, def.Price)
	assert.Equal(t, def, LookupTier("platinum"))
}

func TestTiers_UpsellDaysNonDecreasing(t *testing.T) {
	for _, tier := range Tiers() {
		for i := 1; i < len(tier.UpsellDays); i++ {
			assert.LessOrEqual(t, tier.UpsellDays[i-1], tier.UpsellDays[i],
				"tier %s upsell schedule out of order", tier.ID)
		}
	}
}
