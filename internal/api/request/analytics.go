package request

// SIPRequest is the body of POST /api/scheme/{code}/sip.
type SIPRequest struct {
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
	From      string  `json:"from"`
	To        string  `json:"to"`
}

// LumpsumRequest is the body of POST /api/scheme/{code}/lumpsum.
type LumpsumRequest struct {
	Amount float64 `json:"amount"`
	From   string  `json:"from"`
	To     string  `json:"to"`
}

// SWPRequest is the body of POST /api/scheme/{code}/swp.
type SWPRequest struct {
	Withdrawal float64 `json:"withdrawal"`
	Frequency  string  `json:"frequency"`
	From       string  `json:"from"`
}

// ReturnsQuery holds the query parameters of GET /api/scheme/{code}/returns.
type ReturnsQuery struct {
	Period string
	From   string
	To     string
}

// StrategiesQuery holds the query parameters of GET /api/scheme/{code}/strategies.
type StrategiesQuery struct {
	SIPAmount     string
	SIPFrequency  string
	LumpsumAmount string
	SWPAmount     string
	SWPFrequency  string
	From          string
	To            string
}

// ListSchemesQuery holds the query parameters of GET /api/mf.
type ListSchemesQuery struct {
	Query    string
	Page     string
	PageSize string
}
