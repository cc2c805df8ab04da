package model

// NeedsReview is returned instead of a number when a calculation cannot
// produce a meaningful result.
type NeedsReview struct {
	NeedsReview bool   `json:"needsReview"`
	Reason      string `json:"reason"`
}

// ReturnsResponse is a point-to-point return over a resolved window.
type ReturnsResponse struct {
	StartDate           string  `json:"startDate"`
	EndDate             string  `json:"endDate"`
	StartNAV            float64 `json:"startNAV"`
	EndNAV              float64 `json:"endNAV"`
	SimpleReturnPct     float64 `json:"simpleReturn"`
	AnnualizedReturnPct float64 `json:"annualizedReturn"`
}

// ReturnsSummaryRow is one period of the returns table. Exactly one of Result
// and NeedsReview is set.
type ReturnsSummaryRow struct {
	Period      string           `json:"period"`
	Result      *ReturnsResponse `json:"result,omitempty"`
	NeedsReview *NeedsReview     `json:"needsReview,omitempty"`
}

// ValuePoint is one point of a simulated value curve.
type ValuePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Cashflow is a dated money movement used for XIRR.
type Cashflow struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// SIPResponse is the outcome of a systematic investment plan simulation.
// XIRRPct is money-weighted; CAGRPct is calendar growth of final value over total invested.
type SIPResponse struct {
	TotalInvested     float64      `json:"totalInvested"`
	CurrentValue      float64      `json:"currentValue"`
	TotalUnits        float64      `json:"totalUnits"`
	Installments      int          `json:"installments"`
	AbsoluteReturnPct float64      `json:"absoluteReturn"`
	XIRRPct           float64      `json:"xirrPct"`
	CAGRPct           *float64     `json:"cagrPct"`
	ValuationDate     string       `json:"valuationDate"`
	ValuationNAV      float64      `json:"valuationNAV"`
	Series            []ValuePoint `json:"series"`
	Cashflows         []Cashflow   `json:"cashflows"`
}

// LumpsumResponse is a buy-and-hold valuation curve with its summary.
type LumpsumResponse struct {
	Invested          float64      `json:"invested"`
	Units             float64      `json:"units"`
	PurchaseDate      string       `json:"purchaseDate"`
	PurchaseNAV       float64      `json:"purchaseNAV"`
	CurrentValue      float64      `json:"currentValue"`
	AbsoluteReturnPct float64      `json:"absoluteReturn"`
	Series            []ValuePoint `json:"series"`
}

// SWPResponse is the depletion curve of a systematic withdrawal plan.
type SWPResponse struct {
	InitialCorpus  float64      `json:"initialCorpus"`
	StartDate      string       `json:"startDate"`
	StartNAV       float64      `json:"startNAV"`
	Withdrawals    int          `json:"withdrawals"`
	TotalWithdrawn float64      `json:"totalWithdrawn"`
	FinalValue     float64      `json:"finalValue"`
	DepletionDate  *string      `json:"depletionDate"` // Null while the corpus lasts
	Series         []ValuePoint `json:"series"`
}

// StrategyPoint is the value of the SIP, lumpsum and SWP strategies on one date.
// A strategy with no value on the date is null.
type StrategyPoint struct {
	Date    string   `json:"date"`
	SIP     *float64 `json:"sip"`
	Lumpsum *float64 `json:"lumpsum"`
	SWP     *float64 `json:"swp"`
}

// StrategiesResponse compares the three strategies over one window.
// NeedsReview is keyed by strategy name for strategies that could not run.
type StrategiesResponse struct {
	Points      []StrategyPoint         `json:"points"`
	NeedsReview map[string]*NeedsReview `json:"needsReview,omitempty"`
}

// ChartPoint is a NAV observation with its moving average. MovingAverage is
// null when the window held no finite value.
type ChartPoint struct {
	Date          string   `json:"date"`
	NAV           float64  `json:"nav"`
	MovingAverage *float64 `json:"movingAverage"`
}

// ChartResponse is the trailing-year NAV chart of a scheme.
type ChartResponse struct {
	Window int          `json:"window"`
	Points []ChartPoint `json:"points"`
}

// RiskReturnResponse summarises day-over-day returns in percent.
type RiskReturnResponse struct {
	MeanReturnPct float64 `json:"meanReturn"`
	VolatilityPct float64 `json:"volatility"`
	Observations  int     `json:"observations"`
	Lookback      int     `json:"lookback"`
}
