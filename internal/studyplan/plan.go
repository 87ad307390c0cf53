package studyplan

import (
	"encoding/json"
	"fmt"
	"time"
)

// Scheduling defaults.
const (
	DefaultDurationDays = 7
	DefaultHoursPerDay  = 2

	// dayTitleTopicLen is how many characters of each topic title appear
	// in a day's title.
	dayTitleTopicLen = 20
)

// Fixed session slots.
const (
	MorningSlot   = "09:00-11:00"
	AfternoonSlot = "14:00-16:00"
	EveningSlot   = "19:00-20:00"
)

// DateLayout is the calendar date format used in plans.
const DateLayout = "2006-01-02"

// Preferences tunes plan construction. Zero values take the defaults.
type Preferences struct {
	DurationDays int `json:"duration_days"`
	HoursPerDay  int `json:"hours_per_day"`
}

// withDefaults fills non-positive fields.
func (p Preferences) withDefaults() Preferences {
	if p.DurationDays <= 0 {
		p.DurationDays = DefaultDurationDays
	}
	if p.HoursPerDay <= 0 {
		p.HoursPerDay = DefaultHoursPerDay
	}
	return p
}

// Date is a calendar day, serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d Date) String() string { return d.Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Session is one time block on a study day.
type Session struct {
	Time       string   `json:"time"`
	Topic      string   `json:"topic"`
	Activities []string `json:"activities"`
	Source     string   `json:"source,omitempty"`
}

// Day is one entry in the schedule.
type Day struct {
	Day         int       `json:"day"`
	Date        Date      `json:"date"`
	Title       string    `json:"day_title"`
	Sessions    []Session `json:"sessions"`
	TopicsCount int       `json:"topics_count"`
}

// Plan is a complete multi-day study schedule.
type Plan struct {
	Title             string `json:"title"`
	TotalDuration     string `json:"total_duration"`
	DocumentsIncluded int    `json:"documents_included"`
	TotalTopics       int    `json:"total_topics"`
	HoursPerDay       int    `json:"hours_per_day"`
	Schedule          []Day  `json:"schedule"`
}
