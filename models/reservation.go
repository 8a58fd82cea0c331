package models

import "time"

// Reservation statuses. Cancelled is terminal; cancelled reservations no
// longer count against a company's capacity.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is a member of the status enum.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// Reservation is a customer's claim on one slot for one company and date.
// UserName, UserEmail and CompanyName are snapshots taken at booking time;
// they intentionally do not track later profile or company renames.
type Reservation struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	UserName        string    `bson:"userName" json:"userName"`
	UserEmail       string    `bson:"userEmail" json:"userEmail"`
	CompanyID       string    `bson:"companyId" json:"companyId"`
	CompanyName     string    `bson:"companyName" json:"companyName"`
	Date            string    `bson:"date" json:"date"`           // "YYYY-MM-DD"
	StartTime       string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime         string    `bson:"endTime" json:"endTime"`     // "HH:MM", always startTime + duration
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Status          string    `bson:"status" json:"status"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	ReminderSent    bool      `bson:"reminderSent" json:"reminderSent"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
