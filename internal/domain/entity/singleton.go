package entity

import "time"

// Well-known identifiers of the singleton documents.
const (
	ContactInfoID = "contact_info"
	CTASectionID  = "cta_section"
)

// ContactInfo holds the site-wide contact details.
type ContactInfo struct {
	ID             string    `json:"id" bson:"id"`
	Address        string    `json:"address" bson:"address"`
	Phone          string    `json:"phone" bson:"phone"`
	EmergencyPhone string    `json:"emergency_phone" bson:"emergency_phone"`
	Email          string    `json:"email" bson:"email"`
	WhatsApp       string    `json:"whatsapp" bson:"whatsapp"`
	WorkingHours   string    `json:"working_hours" bson:"working_hours"`
	MapsURL        string    `json:"maps_url" bson:"maps_url"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

func (c *ContactInfo) DocumentID() string { return c.ID }

// Assign ignores the generated id; the singleton always lives under ContactInfoID.
func (c *ContactInfo) Assign(_ string, now time.Time) {
	c.ID = ContactInfoID
	c.UpdatedAt = now
}

func (c *ContactInfo) LastUpdated() time.Time { return c.UpdatedAt }

// CTASection is the appointment call-to-action block of the home page.
type CTASection struct {
	ID         string    `json:"id" bson:"id"`
	Title      string    `json:"title" bson:"title"`
	Subtitle   string    `json:"subtitle" bson:"subtitle"`
	ButtonText string    `json:"button_text" bson:"button_text"`
	ButtonLink string    `json:"button_link" bson:"button_link"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

func (c *CTASection) DocumentID() string { return c.ID }

// Assign ignores the generated id; the singleton always lives under CTASectionID.
func (c *CTASection) Assign(_ string, now time.Time) {
	c.ID = CTASectionID
	c.UpdatedAt = now
}

func (c *CTASection) LastUpdated() time.Time { return c.UpdatedAt }
