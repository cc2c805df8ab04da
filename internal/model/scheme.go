package model

import "github.com/ndewijer/mutual-fund-explorer-backend/internal/mfapi"

// SchemeListingPage is one page of the scheme catalogue.
type SchemeListingPage struct {
	Schemes  []mfapi.SchemeListing `json:"schemes"`
	Total    int                   `json:"total"`    // Matches before paging
	Page     int                   `json:"page"`     // 1-based
	PageSize int                   `json:"pageSize"` // Requested page size after clamping
}

// NavPoint is a NAV observation on the wire.
type NavPoint struct {
	Date string  `json:"date"` // Date in YYYY-MM-DD format
	NAV  float64 `json:"nav"`
}

// SchemeDetail is scheme metadata plus its canonical NAV history (ascending by date).
type SchemeDetail struct {
	Metadata   mfapi.Metadata `json:"metadata"`
	NavHistory []NavPoint     `json:"navHistory"`
}
