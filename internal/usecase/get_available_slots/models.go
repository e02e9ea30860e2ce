package get_available_slots

import "time"

// Request asks for a caregiver's bookable slots over a date window.
type Request struct {
	CaregiverID int64
	From        *time.Time // default: today
	Days        *int       // default: the configured horizon
}

// Slot is one open range on one date.
type Slot struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "12:00"
}

// DaySlots groups the open ranges of one date. Dates with no
// availability are omitted from the response entirely.
type DaySlots struct {
	Date  string `json:"date"` // "2026-03-10"
	Slots []Slot `json:"slots"`
}

// Response lists the caregiver's bookable slots, dates ascending.
type Response struct {
	CaregiverID int64      `json:"caregiverId"`
	From        string     `json:"from"`
	Days        int        `json:"days"`
	Available   []DaySlots `json:"available"`
}
