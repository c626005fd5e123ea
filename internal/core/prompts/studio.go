package prompts

import (
	"fmt"
	"strings"
)

// EmailRequest generates one personalized email.
type EmailRequest struct {
	ContactName    string   `json:"contactName"`
	EmailType      string   `json:"emailType"` // prayer | offer | nurture | followup
	Product        string   `json:"product"`
	PrayerRequest  string   `json:"prayerRequest"`
	HealthTags     []string `json:"healthTags"`
	DaysSincePrayer int     `json:"daysSincePrayer"`
	Context        string   `json:"context"`
}

// SocialRequest generates one platform post.
type SocialRequest struct {
	Pillar   string `json:"pillar"`
	Platform string `json:"platform"`
	Topic    string `json:"topic"`
	Product  string `json:"product"`
}

// AdCopyRequest generates three ad variations.
type AdCopyRequest struct {
	Campaign string `json:"campaign"`
	Audience string `json:"audience"`
	Offer    string `json:"offer"`
	Angle    string `json:"angle"`
}

// VideoScriptRequest generates a short-form video script.
type VideoScriptRequest struct {
	Topic    string `json:"topic"`
	Duration string `json:"duration"`
	Platform string `json:"platform"`
}

// CanvaBriefRequest generates a design brief.
type CanvaBriefRequest struct {
	ContentType string `json:"contentType"`
	Text        string `json:"text"`
	Colors      string `json:"colors"`
	TemplateID  string `json:"templateId"`
}

// EmailPrompt builds the user prompt for a personalized email. Every
// optional field maps to an explicit "none" so the template is never
// malformed.
func EmailPrompt(req EmailRequest) string {
	return fmt.Sprintf(`Generate a personalized email.
Contact: %s
Type: %s
Product: %s
Prayer request: %s
Health tags: %s
Days since prayer: %d
Context: %s
Voice calibration: %s

Return JSON: { subject, body, cta_text, cta_link, voice_ratio: { cardone, hormozi, buddhist } }`,
		req.ContactName,
		req.EmailType,
		orElse(req.Product, "none"),
		orElse(req.PrayerRequest, "none"),
		orElse(strings.Join(req.HealthTags, ", "), "none"),
		req.DaysSincePrayer,
		orElse(req.Context, "none"),
		VoiceRatio(req.EmailType, req.Product))
}

// SocialPrompt builds the user prompt for a platform post.
func SocialPrompt(req SocialRequest) string {
	return fmt.Sprintf(`Generate a %s post.
Pillar: %s — %s
Topic: %s
Product to mention: %s
Platform notes: %s

Return JSON: { post_text, hashtags, best_time, visual_brief, cta }`,
		req.Platform,
		req.Pillar, pillarGuide(req.Pillar),
		orElse(req.Topic, "auto-select based on pillar"),
		orElse(req.Product, "none"),
		platformNotes(req.Platform))
}

// AdCopyPrompt builds the user prompt for three Meta ad variations.
func AdCopyPrompt(req AdCopyRequest) string {
	return fmt.Sprintf(`Generate 3 Meta ad variations.
Campaign: %s
Audience: %s
Offer: %s
Angle: %s — %s

Return JSON array of 3 ads: [{ headline, primary_text, description, cta_button, visual_brief }]`,
		req.Campaign, req.Audience, req.Offer, req.Angle, angleGuide(req.Angle))
}

// WeeklyCalendarPrompt builds the 7-day content calendar prompt.
func WeeklyCalendarPrompt(weekStart string) string {
	return fmt.Sprintf(`Generate a full 7-day content calendar starting %s.

7-DAY PILLAR SYSTEM:
Monday: MOTIVATION (Cardone fire — stop being average, your calling is bigger than your comfort)
Tuesday: TEACHING (Hormozi frameworks — value stacking, offer creation, ROI math)
Wednesday: TESTIMONY (Real transformation stories from BDT students and patients)
Thursday: BEHIND SCENES (Authentic look inside temple, meditation hall, tree planting)
Friday: DIRECT OFFER (Full value stack with price anchoring and clear CTA)
Saturday: SPIRITUAL (Buddhist depth — sutras, meditation, the Buddha's example)
Sunday: PRAYER (Community prayer — invite people to share, respond with compassion)

For each day, generate posts for Facebook AND Instagram.
Return JSON: { days: [{ day, pillar, facebook: { post, hashtags, visual_brief, best_time }, instagram: { post, hashtags, visual_brief, best_time } }] }`, weekStart)
}

// VideoScriptPrompt builds the video script prompt.
func VideoScriptPrompt(req VideoScriptRequest) string {
	return fmt.Sprintf(`Generate a %s video script for %s.
Topic: %s

Return JSON: { hook, body_sections: [{ timestamp, script, visual_note }], cta, hashtags }`,
		orElse(req.Duration, "60s"),
		orElse(req.Platform, "reels"),
		req.Topic)
}

// CanvaBriefPrompt builds the design brief prompt.
func CanvaBriefPrompt(req CanvaBriefRequest) string {
	return fmt.Sprintf(`Generate a Canva design brief.
Content type: %s
Text: %s
Brand colors: %s
Template ID: %s

Return JSON: { design_dimensions, background_suggestion, text_hierarchy: [], color_palette: [], image_suggestions: [], mood }`,
		req.ContentType,
		req.Text,
		orElse(req.Colors, "gold (#D4AF37), deep purple (#4A0E8F), white"),
		orElse(req.TemplateID, "auto-suggest"))
}

// VoiceRatio maps an email type and product to the Cardone/Hormozi/Buddhist
// calibration line.
func VoiceRatio(emailType, product string) string {
	switch {
	case emailType == "prayer":
		return "10% Cardone / 20% Hormozi / 70% Buddhist — very compassionate, minimal selling"
	case emailType == "offer" && strings.Contains(product, "MBA"):
		return "60% Cardone / 30% Hormozi / 10% Buddhist — high urgency"
	case emailType == "offer":
		return "40% Cardone / 40% Hormozi / 20% Buddhist — balanced"
	case emailType == "nurture":
		return "20% Cardone / 30% Hormozi / 50% Buddhist — warm, building trust"
	default:
		return "30% Cardone / 40% Hormozi / 30% Buddhist — standard"
	}
}

func pillarGuide(pillar string) string {
	guides := map[string]string{
		"motivation":    "Cardone energy — stop being average, your calling is bigger than your comfort",
		"teaching":      "Hormozi frameworks — value stacking, offer creation, ROI math",
		"testimony":     "Real stories of transformation through BDT programs and prayers",
		"behind-scenes": "Authentic look inside temple, meditation hall, tree planting ceremony",
		"offer":         "Full value stack with price anchoring and clear CTA",
		"spiritual":     "Buddhist depth — sutras, meditation, the Buddha's example",
		"prayer":        "Community prayer — invite people to share their request, respond with compassion",
	}
	if g, ok := guides[pillar]; ok {
		return g
	}
	return "General BDT content"
}

func platformNotes(platform string) string {
	notes := map[string]string{
		"facebook":  "3-5 sentences, conversational, ends with question or CTA",
		"instagram": "Hook in first line, emojis OK, max 30 hashtags",
		"tiktok":    "Conversational, trending sounds reference, 15-30 sec read time",
		"linkedin":  "Professional tone, longer form OK, thought leadership angle",
	}
	if n, ok := notes[platform]; ok {
		return n
	}
	return "Standard social format"
}

func angleGuide(angle string) string {
	guides := map[string]string{
		"pain":         "Lead with the problem — what they're suffering without this",
		"aspiration":   "Lead with the dream — what life looks like after",
		"curiosity":    "Lead with a surprising fact or question",
		"social-proof": "Lead with results from others like them",
		"urgency":      "Lead with scarcity or deadline",
	}
	if g, ok := guides[angle]; ok {
		return g
	}
	return "Mixed approach"
}
