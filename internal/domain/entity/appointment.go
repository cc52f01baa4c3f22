package entity

import "time"

// AppointmentStatus is the lifecycle state of an appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment is a booking submitted by the public. Only status and notes
// change after creation, and only through an admin.
type Appointment struct {
	ID           string            `json:"id" bson:"id"`
	CustomerName string            `json:"customer_name" bson:"customer_name"`
	Phone        string            `json:"phone" bson:"phone"`
	Email        string            `json:"email" bson:"email"`
	Service      string            `json:"service" bson:"service"`
	Date         string            `json:"date" bson:"date"` // YYYY-MM-DD
	Time         string            `json:"time" bson:"time"` // HH:MM
	Notes        string            `json:"notes" bson:"notes"`
	Status       AppointmentStatus `json:"status" bson:"status"`
	CreatedAt    time.Time         `json:"created_at" bson:"created_at"`
}

func (a *Appointment) DocumentID() string { return a.ID }

// Assign sets identity and creation time and forces the pending status.
func (a *Appointment) Assign(id string, now time.Time) {
	a.ID = id
	a.CreatedAt = now
	a.Status = AppointmentPending
}
