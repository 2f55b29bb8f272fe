package domain

import "time"

// DatasetInfo describes the snapshot currently being served.
type DatasetInfo struct {
	ID            string         `json:"id"`
	Seed          uint64         `json:"seed"`
	ReferenceDate time.Time      `json:"reference_date"`
	Days          int            `json:"days"`
	GeneratedAt   time.Time      `json:"generated_at"`
	Counts        map[string]int `json:"counts"`
}

// PublishedExport is a report workbook stored in object storage.
type PublishedExport struct {
	Report      string    `json:"report"`
	FileName    string    `json:"file_name"`
	Key         string    `json:"key"`
	Size        int64     `json:"size"`
	PublishedAt time.Time `json:"published_at"`
}
