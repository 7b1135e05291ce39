// Copyright (c) 2026 Wiwekaitech. All rights reserved.
// Author: engineering@wiwekaitech.com

package schema

// ContactMessageTable represents the 'contact_messages' table
type ContactMessageTable struct {
	Table            string
	ID               string
	Name             string
	Email            string
	Phone            string
	Company          string
	Subject          string
	Message          string
	PreferredContact string
	Status           string
	IPAddress        string
	UserAgent        string
	CreatedAt        string
}

// ContactMessage is the schema definition for contact_messages
var ContactMessage = ContactMessageTable{
	Table:            "contact_messages",
	ID:               "id",
	Name:             "name",
	Email:            "email",
	Phone:            "phone",
	Company:          "company",
	Subject:          "subject",
	Message:          "message",
	PreferredContact: "preferred_contact",
	Status:           "status",
	IPAddress:        "ip_address",
	UserAgent:        "user_agent",
	CreatedAt:        "created_at",
}

// Columns returns all standard column names
func (t ContactMessageTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Email, t.Phone, t.Company, t.Subject, t.Message,
		t.PreferredContact, t.Status, t.IPAddress, t.UserAgent, t.CreatedAt,
	}
}
