package registry

// BrandVoice describes one magazine brand used by the outreach pipeline:
// its outbound identity, tone, and certification upsell.
type BrandVoice struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Tone      string `json:"tone"`
	Cert      string `json:"cert"`
	CertPrice string `json:"certPrice"`
}

// DefaultBrand is the fallback when an unknown brand tag comes in.
const DefaultBrand = "business2"

var brandVoices = map[string]BrandVoice{
	"smartmoney": {
		ID:        "smartmoney",
		Name:      "SmartMoney Magazine",
		Email:     "editorial@smartmoneymagazine.com",
		Tone:      "authoritative, data-driven, professional",
		Cert:      "SmartMoney Certified™ Advisor",
		CertPrice: "$999/year",
	},
	"gourmet": {
		ID:        "gourmet",
		Name:      "Gourmet Magazine",
		Email:     "editorial@gourmetmagazine.com",
		Tone:      "sophisticated, sensual, culinary excellence",
		Cert:      "Gourmet Stars™",
		CertPrice: "$499/year",
	},
	"mademoiselle": {
		ID:        "mademoiselle",
		Name:      "Mademoiselle Magazine",
		Email:     "editorial@mademoisellemagazine.com",
		Tone:      "chic, empowering, modern feminine",
		Cert:      "Mademoiselle Best Of™",
		CertPrice: "$499/year",
	},
	"blender": {
		ID:        "blender",
		Name:      "Blender Magazine",
		Email:     "editorial@blendermagazine.com",
		Tone:      "edgy, music-forward, cultural",
		Cert:      "Blender Certified™ Artist",
		CertPrice: "$299/year",
	},
	"family-circle": {
		ID:        "family-circle",
		Name:      "Family Circle Magazine",
		Email:     "editorial@familycirclemagazine.com",
		Tone:      "warm, trusted, family-focused",
		Cert:      "Family Circle Approved™",
		CertPrice: "$399/year",
	},
	"modern-bride": {
		ID:        "modern-bride",
		Name:      "Modern Bride Magazine",
		Email:     "editorial@modernbridemagazine.com",
		Tone:      "romantic, aspirational, wedding-centric",
		Cert:      "Modern Bride Certified™",
		CertPrice: "$499/year",
	},
	"lhj": {
		ID:        "lhj",
		Name:      "Ladies' Home Journal",
		Email:     "editorial@ladieshomejournal.com",
		Tone:      "refined, home & lifestyle, trusted classic",
		Cert:      "LHJ Approved™ Professional",
		CertPrice: "$499/year",
	},
	"teen-people": {
		ID:        "teen-people",
		Name:      "Teen People Magazine",
		Email:     "editorial@teenpeoplemagazine.com",
		Tone:      "vibrant, youth-forward, pop culture",
		Cert:      "Creator Certified™",
		CertPrice: "$249/year",
	},
	"business2": {
		ID:        "business2",
		Name:      "Business 2.0 Magazine",
		Email:     "editorial@business2magazine.com",
		Tone:      "entrepreneurial, direct, growth-focused",
		Cert:      "Business 2.0 Verified™",
		CertPrice: "$199/year",
	},
}

// LookupBrand returns the brand voice for tag, or the business2 default when
// tag is unknown or empty. Never fails.
func LookupBrand(tag string) BrandVoice {
	if b, ok := brandVoices[tag]; ok {
		return b
	}
	return brandVoices[DefaultBrand]
}
