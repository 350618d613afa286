package models

// Token is one unit of a tokenized query.
type Token struct {
	Text     string
	LikeNum  bool
	Position int
}

type CostComparison struct {
	Miles         int     `json:"miles" yaml:"miles"`
	DieselTotal   float64 `json:"dieselTotal" yaml:"dieselTotal"`
	ElectricTotal float64 `json:"electricTotal" yaml:"electricTotal"`
	Savings       float64 `json:"savings" yaml:"savings"`
}

// TripRow is one input row of a batch workbook.
type TripRow struct {
	Row   int
	Query string
}

type ResultRow struct {
	Row           int
	Query         string
	Miles         int
	DieselTotal   float64
	ElectricTotal float64
	Savings       float64
	// Error holds the user-facing message when the row could not be quoted.
	Error string
}
