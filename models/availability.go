package models

// AvailabilityWindow is one bookable interval on a date, HH:MM wall clock.
type AvailabilityWindow struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailabilityView is the client-facing projection of a tutor's availability
// index: the bookable dates and the windows under each.
type AvailabilityView struct {
	TutorID string                          `json:"tutorId"`
	Dates   []string                        `json:"dates"`
	Windows map[string][]AvailabilityWindow `json:"windows"`
}
