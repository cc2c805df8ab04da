package model

import "github.com/ndewijer/mutual-fund-explorer-backend/internal/mfapi"

// ComparisonEntry is one scheme of a side-by-side comparison. RiskReturn is
// nil and NeedsReview set when statistics could not be computed.
type ComparisonEntry struct {
	Metadata    mfapi.Metadata      `json:"metadata"`
	RiskReturn  *RiskReturnResponse `json:"riskReturn,omitempty"`
	NeedsReview *NeedsReview        `json:"needsReview,omitempty"`
	NavHistory  []NavPoint          `json:"navHistory"` // Trailing year
}
