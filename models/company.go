package models

import "time"

// Company is a tenant business that publishes its own schedule.
// Working hours are naive local clock strings; there is no time-zone handling.
type Company struct {
	ID                  string    `bson:"id" json:"id"`
	OwnerID             string    `bson:"ownerId" json:"ownerId"`                         // one company per owner, enforced by a unique index
	Name                string    `bson:"name" json:"name"`
	Description         string    `bson:"description" json:"description"`
	ImageURL            string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	WorkingHoursStart   string    `bson:"workingHoursStart" json:"workingHoursStart"`     // "HH:MM", e.g. "08:00"
	WorkingHoursEnd     string    `bson:"workingHoursEnd" json:"workingHoursEnd"`         // "HH:MM", e.g. "18:00"
	SlotDurationMinutes int       `bson:"slotDurationMinutes" json:"slotDurationMinutes"` // e.g. 30 or 60
	CreatedAt           time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time `bson:"updatedAt" json:"updatedAt"`
}
