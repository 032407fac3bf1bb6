package models

import "time"

// Paddock is a fenced land unit carrying a pasture dry-matter mass.
// TotalDM is kept equal to Area * DMPerHa on every user edit; the daily
// advancement recomputes DMPerHa from TotalDM instead.
type Paddock struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Area    float64 `json:"area"`
	DMPerHa float64 `json:"dm_per_ha"`
	TotalDM float64 `json:"total_dm"`
}

// PaddockSummary is a paddock row joined with its occupying mob for the
// paddock listing page.
type PaddockSummary struct {
	Paddock
	MobName    string `json:"mob_name"`
	StockCount int    `json:"stock_count"`
}

// Mob is a named group of stock animals, in at most one paddock at a time.
// PaddockID is a weak reference; nil means the mob is unassigned.
type Mob struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	PaddockID *int   `json:"paddock_id,omitempty"`
}

// MobSummary is a mob row joined with its paddock name for the mob listing.
type MobSummary struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	PaddockName string `json:"paddock_name"`
}

// StockAnimal is an individual animal. Animals are seeded by the reset
// script and never mutated here. Age is derived from the simulated date at
// read time.
type StockAnimal struct {
	ID     int       `json:"id"`
	MobID  int       `json:"mob_id"`
	Weight float64   `json:"weight"`
	DOB    time.Time `json:"dob"`
	Age    float64   `json:"age"`
}

// MobStock is the per-mob block on the stock page: the mob's summary
// figures plus its animals. AverageWeight is nil when the mob is empty.
type MobStock struct {
	MobID         int            `json:"mob_id"`
	MobName       string         `json:"mob_name"`
	PaddockName   string         `json:"paddock_name"`
	StockCount    int            `json:"stock_count"`
	AverageWeight *float64       `json:"average_weight,omitempty"`
	Animals       []*StockAnimal `json:"animals"`
}
