package smm

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdt-media/sales-engine/internal/core/crm"
	"github.com/bdt-media/sales-engine/internal/core/llm"
)

func newTestApp(mock *llm.MockClient) (*fiber.App, *crm.MockAPI) {
	svc, crmMock, _ := newFixture(mock)
	handler := NewHandler(svc)
	app := fiber.New()
	app.Post("/smm/outreach", handler.Outreach)
	app.Post("/smm/classify-reply", handler.ClassifyReply)
	app.Post("/smm/fulfill-featured", handler.FulfillFeatured)
	app.Get("/smm/daily-report", handler.DailyReport)
	return app, crmMock
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, map[string]any) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestOutreachEndpoint_NoContactEmailReturns400(t *testing.T) {
	mock := llm.NewMockClient("Subject line: Hi\n\nBody.")
	app, crmMock := newTestApp(mock)
	crmMock.Contacts["c-1"] = &crm.Contact{ID: "c-1"}

	status, body := postJSON(t, app, "/smm/outreach", map[string]any{
		"contactId": "c-1", "businessName": "No Email LLC", "brandTag": "gourmet",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "no email for contact", body["error"])
}

func TestClassifyEndpoint_MissingReplyTextReturns400(t *testing.T) {
	mock := llm.NewMockClient("unused")
	app, _ := newTestApp(mock)

	status, body := postJSON(t, app, "/smm/classify-reply", map[string]any{
		"contactId": "c-1",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "replyText is required", body["error"])
	assert.Zero(t, mock.CallCount())
}

func TestClassifyEndpoint_ReturnsCategory(t *testing.T) {
	mock := llm.NewMockClient("QUESTION")
	app, _ := newTestApp(mock)

	status, body := postJSON(t, app, "/smm/classify-reply", map[string]any{
		"replyText": "What does a feature cost?", "contactId": "c-2", "brandTag": "gourmet",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "QUESTION", body["category"])
	assert.Equal(t, "Gourmet Magazine", body["brand"])
	assert.Equal(t, false, body["offerSent"])
}

func TestDailyReportEndpoint(t *testing.T) {
	app, _ := newTestApp(llm.NewMockClient("unused"))

	req := httptest.NewRequest("GET", "/smm/daily-report", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, true, body["ok"])
	assert.Contains(t, body["report"], "SMM Daily Report")
}
