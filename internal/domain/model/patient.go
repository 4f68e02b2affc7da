package model

import "fmt"

// SurvivalStatus is the vital status of a patient at last follow-up.
type SurvivalStatus string

// Known statuses.
const (
	StatusAlive    SurvivalStatus = "Alive"
	StatusDeceased SurvivalStatus = "Deceased"
)

// Valid reports whether s is a known status.
func (s SurvivalStatus) Valid() bool {
	return s == StatusAlive || s == StatusDeceased
}

// UnmarshalText rejects unknown statuses.
func (s *SurvivalStatus) UnmarshalText(b []byte) error {
	v := SurvivalStatus(b)
	if !v.Valid() {
		return fmt.Errorf("unknown survival status %q", string(b))
	}
	*s = v
	return nil
}

// Patient is one survival-analysis record. Survival is in days.
type Patient struct {
	Patient   string         `json:"patient"`
	Survival  int            `json:"survival"`
	Status    SurvivalStatus `json:"status"`
	Treatment string         `json:"treatment"`
}

// Study is the survival results envelope.
type Study struct {
	App     string    `json:"app"`
	Version string    `json:"version"`
	Results []Patient `json:"results"`
}
