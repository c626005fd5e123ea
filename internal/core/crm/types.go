// Package crm is the boundary to the external CRM collaborator. All durable
// state (contacts, tags, payment records) lives there; this service keeps
// nothing.
package crm

import "context"

// CustomField is one key/value attribute on a CRM contact.
type CustomField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Contact is the subset of the CRM contact record this service reads.
type Contact struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	CompanyName  string        `json:"companyName"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	City         string        `json:"city"`
	State        string        `json:"state"`
	Tags         []string      `json:"tags"`
	CustomFields []CustomField `json:"customFields"`
}

// Field returns the value of a custom field, or "" when absent.
func (c *Contact) Field(key string) string {
	for _, f := range c.CustomFields {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// HasTag reports whether the contact carries the given tag.
func (c *Contact) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ContactInput creates a new CRM contact.
type ContactInput struct {
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone,omitempty"`
	CompanyName  string        `json:"companyName,omitempty"`
	City         string        `json:"city,omitempty"`
	State        string        `json:"state,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	CustomFields []fieldInput  `json:"customFields,omitempty"`
	LocationID   string        `json:"locationId"`
}

type fieldInput struct {
	Key        string `json:"key"`
	FieldValue string `json:"field_value"`
}

// SetField appends a custom field to the input.
func (in *ContactInput) SetField(key, value string) {
	in.CustomFields = append(in.CustomFields, fieldInput{Key: key, FieldValue: value})
}

// EmailMessage is one outbound conversation email sent through the CRM.
type EmailMessage struct {
	ContactID string
	From      string
	To        string
	Subject   string
	HTML      string
}

// API is the CRM collaborator boundary. Services depend on this interface so
// tests can substitute a mock.
type API interface {
	GetContact(ctx context.Context, id string) (*Contact, error)
	ListContacts(ctx context.Context, tag string, limit int) ([]Contact, error)
	CreateContact(ctx context.Context, in ContactInput) error
	AddTags(ctx context.Context, contactID string, tags []string) error
	SendEmail(ctx context.Context, msg EmailMessage) error
}
