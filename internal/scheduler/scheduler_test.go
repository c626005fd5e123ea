package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdt-media/sales-engine/internal/core/crm"
	"github.com/bdt-media/sales-engine/internal/core/llm"
	"github.com/bdt-media/sales-engine/internal/core/notify"
	"github.com/bdt-media/sales-engine/internal/modules/smm"
	"github.com/bdt-media/sales-engine/internal/modules/writers"
	"github.com/bdt-media/sales-engine/internal/shared/config"
)

var testNow = time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)

func leadContact(id, prayerDate, brandTag string, tags ...string) crm.Contact {
	c := crm.Contact{
		ID:          id,
		Name:        "Owner " + id,
		CompanyName: "Business " + id,
		Email:       id + "@biz.test",
		City:        "Austin",
		State:       "TX",
		Tags:        append([]string{"bdt-lead"}, tags...),
	}
	if prayerDate != "" {
		c.CustomFields = append(c.CustomFields, crm.CustomField{Key: "contact.prayer_sent_date", Value: prayerDate})
	}
	if brandTag != "" {
		c.CustomFields = append(c.CustomFields, crm.CustomField{Key: "contact.brand_tag", Value: brandTag})
	}
	return c
}

func TestEligible(t *testing.T) {
	cases := []struct {
		name    string
		contact crm.Contact
		want    bool
	}{
		{"qualified", leadContact("a", "2026-08-20", "gourmet"), true},
		{"exactly seven days", leadContact("b", "2026-08-25", "gourmet"), true},
		{"too recent", leadContact("c", "2026-08-28", "gourmet"), false},
		{"already contacted", leadContact("d", "2026-08-20", "gourmet", "smm-contacted"), false},
		{"no brand tag", leadContact("e", "2026-08-20", ""), false},
		{"no prayer date", leadContact("f", "", "gourmet"), false},
		{"garbage prayer date", leadContact("g", "last Tuesday", "gourmet"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			now := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
			assert.Equal(t, tc.want, Eligible(tc.contact, now))
		})
	}
}

func newTestScheduler(llmMock *llm.MockClient, crmMock *crm.MockAPI) (*Scheduler, *notify.CaptureNotifier, *[]time.Duration) {
	capture := &notify.CaptureNotifier{}
	cfg := config.Config{
		DiscordSMMLeadsWebhook:   "https://discord.test/leads",
		DiscordSMMContentWebhook: "https://discord.test/content",
		DiscordSMMDailyWebhook:   "https://discord.test/daily",
		SchedulerTimezone:        "America/New_York",
	}
	writersSvc := writers.NewService(llmMock)
	smmSvc := smm.NewService(llmMock, crmMock, capture, cfg)
	s := New(writersSvc, smmSvc, crmMock, capture, cfg)

	slept := &[]time.Duration{}
	s.sleep = func(d time.Duration) { *slept = append(*slept, d) }
	s.now = func() time.Time { return testNow }
	return s, capture, slept
}

func TestRunOutreachBatch_FiltersAndSends(t *testing.T) {
	llmMock := llm.NewMockClient("Subject line: Hello\n\nWe would like to feature you.")
	crmMock := crm.NewMockAPI()

	qualified := leadContact("q1", "2026-08-20", "gourmet")
	contacted := leadContact("q2", "2026-08-20", "gourmet", "smm-contacted")
	noBrand := leadContact("q3", "2026-08-20", "")
	crmMock.Listed = []crm.Contact{qualified, contacted, noBrand}
	crmMock.Contacts["q1"] = &qualified

	s, capture, slept := newTestScheduler(llmMock, crmMock)
	s.RunOutreachBatch(context.Background())

	require.Equal(t, 1, crmMock.EmailCount())
	assert.Equal(t, "q1@biz.test", crmMock.SentEmails[0].To)
	assert.Equal(t, "editorial@gourmetmagazine.com", crmMock.SentEmails[0].From)
	assert.Equal(t, []string{"smm-contacted", "gourmet"}, crmMock.Tagged["q1"])
	assert.Empty(t, *slept, "single send needs no inter-call delay")

	require.Len(t, capture.Sent, 1)
	assert.Equal(t, "https://discord.test/leads", capture.Sent[0].WebhookURL)
}

func TestRunOutreachBatch_CapsAtThirty(t *testing.T) {
	llmMock := llm.NewMockClient("Subject line: Hello\n\nBody.")
	crmMock := crm.NewMockAPI()

	for i := 0; i < 40; i++ {
		c := leadContact(fmt.Sprintf("c%02d", i), "2026-08-01", "smartmoney")
		crmMock.Listed = append(crmMock.Listed, c)
		contact := c
		crmMock.Contacts[c.ID] = &contact
	}

	s, _, slept := newTestScheduler(llmMock, crmMock)
	s.RunOutreachBatch(context.Background())

	assert.Equal(t, 30, crmMock.EmailCount())
	assert.Len(t, *slept, 29, "fixed delay between consecutive sends")
	for _, d := range *slept {
		assert.Equal(t, 2*time.Second, d)
	}
}

func TestRunOutreachBatch_FailedCandidateSkipped(t *testing.T) {
	llmMock := llm.NewMockClient("Subject line: Hello\n\nBody.")
	crmMock := crm.NewMockAPI()

	okContact := leadContact("ok", "2026-08-01", "gourmet")
	broken := leadContact("broken", "2026-08-01", "gourmet")
	broken.Email = ""
	crmMock.Listed = []crm.Contact{broken, okContact}
	crmMock.Contacts["ok"] = &okContact
	crmMock.Contacts["broken"] = &broken

	s, _, _ := newTestScheduler(llmMock, crmMock)
	s.RunOutreachBatch(context.Background())

	// The contact without an email fails its send but the batch continues.
	require.Equal(t, 1, crmMock.EmailCount())
	assert.Equal(t, "ok@biz.test", crmMock.SentEmails[0].To)
}

func TestRunContentEngine_OneArticlePerBrand(t *testing.T) {
	llmMock := llm.NewMockClient("# Daily Trends\n\nSolid reporting follows.")
	crmMock := crm.NewMockAPI()

	s, capture, slept := newTestScheduler(llmMock, crmMock)
	s.RunContentEngine(context.Background())

	assert.Equal(t, len(contentBrands), llmMock.CallCount())
	assert.Len(t, *slept, len(contentBrands)-1)
	for _, d := range *slept {
		assert.Equal(t, 5*time.Second, d)
	}

	require.Len(t, capture.Sent, len(contentBrands))
	for _, sent := range capture.Sent {
		assert.Equal(t, "https://discord.test/content", sent.WebhookURL)
		assert.Contains(t, sent.Content, "Daily Trends")
	}
}

func TestRunContentEngine_FailedBrandSkipped(t *testing.T) {
	llmMock := llm.NewMockClient("")
	calls := 0
	llmMock.RespondFunc = func(llm.Request) (string, error) {
		calls++
		if calls == 1 {
			return "", assert.AnError
		}
		return "# Fine Article\n\nBody.", nil
	}
	crmMock := crm.NewMockAPI()

	s, capture, _ := newTestScheduler(llmMock, crmMock)
	s.RunContentEngine(context.Background())

	assert.Equal(t, len(contentBrands), llmMock.CallCount(), "every brand is attempted")
	assert.Len(t, capture.Sent, len(contentBrands)-1)
}

func TestRunDailyReport(t *testing.T) {
	llmMock := llm.NewMockClient("unused")
	s, capture, _ := newTestScheduler(llmMock, crm.NewMockAPI())

	s.RunDailyReport()
	require.Len(t, capture.Sent, 1)
	assert.Equal(t, "https://discord.test/daily", capture.Sent[0].WebhookURL)
	assert.Contains(t, capture.Sent[0].Content, "SMM Daily Report")
}
