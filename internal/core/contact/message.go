// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

/*
Package contact stores messages sent through the public contact form and
lets staff triage them.

Intake is write-only for anonymous callers: a submission is validated,
stamped with the caller's address and user agent, and stored with status
"new". Nothing is deduplicated and nobody is notified.
*/
package contact

import (
	"strings"
	"time"

	"github.com/wiwekaitech/wiweka/internal/platform/validate"
	"github.com/wiwekaitech/wiweka/pkg/pointer"
)

// Status is the triage state of a message.
type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusReplied  Status = "replied"
	StatusArchived Status = "archived"
)

// Statuses lists every triage state in workflow order.
var Statuses = []string{string(StatusNew), string(StatusRead), string(StatusReplied), string(StatusArchived)}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied, StatusArchived:
		return true
	}
	return false
}

// Preferred contact channels.
const (
	ChannelEmail    = "email"
	ChannelPhone    = "phone"
	ChannelWhatsApp = "whatsapp"
)

// Global field names for validation
const (
	FieldName             = "name"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldCompany          = "company"
	FieldSubject          = "subject"
	FieldMessage          = "message"
	FieldPreferredContact = "preferred_contact"
	FieldStatus           = "status"
)

// Message is a stored contact form submission.
type Message struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            *string   `json:"phone"`
	Company          *string   `json:"company"`
	Subject          string    `json:"subject"`
	Body             string    `json:"message"`
	PreferredContact string    `json:"preferred_contact"`
	Status           Status    `json:"status"`
	IPAddress        *string   `json:"ip_address"`
	UserAgent        *string   `json:"user_agent"`
	CreatedAt        time.Time `json:"created_at"`
}

// Submission is the public form payload.
type Submission struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Company          string `json:"company"`
	Subject          string `json:"subject"`
	Message          string `json:"message"`
	PreferredContact string `json:"preferred_contact"`
}

// Origin describes where a submission came from.
type Origin struct {
	IPAddress string
	UserAgent string
}

// Receipt is what the submitter gets back.
type Receipt struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// normalize trims the submission and applies the channel default.
func (s *Submission) normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Company = strings.TrimSpace(s.Company)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)
	if s.PreferredContact == "" {
		s.PreferredContact = ChannelEmail
	}
}

func (s *Submission) validate() error {
	v := &validate.Validator{}

	v.Required(FieldName, s.Name).MinLen(FieldName, s.Name, 2).MaxLen(FieldName, s.Name, 200)
	v.Required(FieldEmail, s.Email).Email(FieldEmail, s.Email).MaxLen(FieldEmail, s.Email, 200)
	v.MaxLen(FieldPhone, s.Phone, 50)
	v.MaxLen(FieldCompany, s.Company, 200)
	v.Required(FieldSubject, s.Subject).MinLen(FieldSubject, s.Subject, 5).MaxLen(FieldSubject, s.Subject, 300)
	v.Required(FieldMessage, s.Message).MinLen(FieldMessage, s.Message, 20).MaxLen(FieldMessage, s.Message, 5000)
	v.OneOf(FieldPreferredContact, s.PreferredContact, ChannelEmail, ChannelPhone, ChannelWhatsApp)

	return v.Err()
}

// toMessage builds the row to store from a validated submission.
func (s *Submission) toMessage(origin Origin) *Message {
	return &Message{
		Name:             s.Name,
		Email:            s.Email,
		Phone:            pointer.NonBlank(s.Phone),
		Company:          pointer.NonBlank(s.Company),
		Subject:          s.Subject,
		Body:             s.Message,
		PreferredContact: s.PreferredContact,
		Status:           StatusNew,
		IPAddress:        pointer.NonBlank(origin.IPAddress),
		UserAgent:        pointer.NonBlank(truncate(origin.UserAgent, 500)),
	}
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	return value[:max]
}
