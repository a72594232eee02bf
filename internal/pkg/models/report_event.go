package models

import "time"

// ReportIngestedMessage is published after a report is persisted.
type ReportIngestedMessage struct {
	ReportID     string    `json:"reportId"`
	ReportNumber string    `json:"reportNumber"`
	PAN          string    `json:"pan"`
	CreditScore  *int      `json:"creditScore,omitempty"`
	IngestedAt   time.Time `json:"ingestedAt"`
}
