package models

// TimeSlot is one bookable half-open interval [StartTime, EndTime) of a
// company's day grid, with its availability flag. Slots are derived from the
// company configuration and reservation set on every resolve; the cached copy
// kept by the slot cache is never authoritative.
type TimeSlot struct {
	StartTime   string `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime     string `bson:"endTime" json:"endTime"`     // "HH:MM"
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}
