package models

// DailyStats is one row of a social-media metrics export.
type DailyStats struct {
	Date         string `json:"date"`
	Views        int64  `json:"views"`
	Interactions int64  `json:"interactions"`
	Follows      int64  `json:"follows"`
	LinkClicks   int64  `json:"linkClicks"`
	Reach        int64  `json:"reach"`
}

// Add accumulates o into s. Date is left untouched.
func (s *DailyStats) Add(o DailyStats) {
	s.Views += o.Views
	s.Interactions += o.Interactions
	s.Follows += o.Follows
	s.LinkClicks += o.LinkClicks
	s.Reach += o.Reach
}

// MetricChanges holds a percentage change per metric.
type MetricChanges struct {
	Views        float64 `json:"views"`
	Interactions float64 `json:"interactions"`
	Follows      float64 `json:"follows"`
	LinkClicks   float64 `json:"linkClicks"`
	Reach        float64 `json:"reach"`
}

// DatasetSummary is the chart-ready aggregation of a stored CSV dataset.
type DatasetSummary struct {
	FileID       int64        `json:"fileId"`
	OriginalName string       `json:"originalname"`
	DailyStats   []DailyStats `json:"dailyStats"`
	Totals       DailyStats   `json:"totals"`

	// CurrentYear is the latest year present in the data; PreviousYear is
	// the one before it. Both are zero when no row carries a parsable date.
	CurrentYear  int `json:"currentYear,omitempty"`
	PreviousYear int `json:"previousYear,omitempty"`

	// YoYChanges compares CurrentYear totals to PreviousYear totals.
	YoYChanges MetricChanges `json:"yoyChanges"`
}
