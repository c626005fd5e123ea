package registry

// Tier is a purchasable Business 2.0 listing package. UpsellDays is the
// schedule (days after purchase) for upgrade offers and is always
// non-decreasing.
type Tier struct {
	ID         string `json:"id"`
	Price      int    `json:"price"`
	Words      int    `json:"words"`
	Label      string `json:"label"`
	UpsellDays []int  `json:"upsellDays"`
}

// DefaultTier is the fallback when an unknown tier id comes in.
const DefaultTier = "listing"

var tiers = map[string]Tier{
	"listing":   {ID: "listing", Price: 50, Words: 300, Label: "Basic Listing", UpsellDays: []int{3, 7, 14}},
	"featured":  {ID: "featured", Price: 100, Words: 500, Label: "Featured", UpsellDays: []int{7, 14}},
	"premium":   {ID: "premium", Price: 250, Words: 800, Label: "Premium", UpsellDays: []int{14}},
	"sponsored": {ID: "sponsored", Price: 500, Words: 1200, Label: "Sponsored Content", UpsellDays: []int{}},
}

// LookupTier returns the tier for id, or the basic listing when id is
// unknown or empty. Never fails.
func LookupTier(id string) Tier {
	if t, ok := tiers[id]; ok {
		return t
	}
	return tiers[DefaultTier]
}

// Tiers returns all configured tiers in ascending price order.
func Tiers() []Tier {
	return []Tier{tiers["listing"], tiers["featured"], tiers["premium"], tiers["sponsored"]}
}
