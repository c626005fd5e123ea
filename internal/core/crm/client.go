package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const apiVersion = "2021-07-28"

// Client talks to a GoHighLevel-compatible CRM API.
type Client struct {
	baseURL    string
	apiKey     string
	locationID string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, locationID string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		locationID: locationID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) GetContact(ctx context.Context, id string) (*Contact, error) {
	var out struct {
		Contact *Contact `json:"contact"`
	}
	if err := c.do(ctx, http.MethodGet, "/contacts/"+id, nil, &out); err != nil {
		return nil, fmt.Errorf("fetch contact %s: %w", id, err)
	}
	if out.Contact == nil {
		return nil, fmt.Errorf("contact %s not found", id)
	}
	return out.Contact, nil
}

func (c *Client) ListContacts(ctx context.Context, tag string, limit int) ([]Contact, error) {
	q := url.Values{}
	q.Set("locationId", c.locationID)
	q.Set("tags", tag)
	q.Set("limit", fmt.Sprintf("%d", limit))

	var out struct {
		Contacts []Contact `json:"contacts"`
	}
	if err := c.do(ctx, http.MethodGet, "/contacts/?"+q.Encode(), nil, &out); err != nil {
		return nil, fmt.Errorf("list contacts (tag %s): %w", tag, err)
	}
	return out.Contacts, nil
}

func (c *Client) CreateContact(ctx context.Context, in ContactInput) error {
	in.LocationID = c.locationID
	if err := c.do(ctx, http.MethodPost, "/contacts/", in, nil); err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (c *Client) AddTags(ctx context.Context, contactID string, tags []string) error {
	body := map[string][]string{"tags": tags}
	if err := c.do(ctx, http.MethodPost, "/contacts/"+contactID+"/tags", body, nil); err != nil {
		return fmt.Errorf("tag contact %s: %w", contactID, err)
	}
	return nil
}

func (c *Client) SendEmail(ctx context.Context, msg EmailMessage) error {
	body := map[string]string{
		"type":       "Email",
		"contactId":  msg.ContactID,
		"emailFrom":  msg.From,
		"emailTo":    msg.To,
		"subject":    msg.Subject,
		"html":       msg.HTML,
		"locationId": c.locationID,
	}
	if err := c.do(ctx, http.MethodPost, "/conversations/messages", body, nil); err != nil {
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		payload = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("crm request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("crm API error (status %d): %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}
