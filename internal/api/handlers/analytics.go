package handlers

import (
	"net/http"

	"github.com/ndewijer/mutual-fund-explorer-backend/internal/api/request"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/api/response"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/apperrors"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/service"
	"github.com/ndewijer/mutual-fund-explorer-backend/internal/validation"
)

// AnalyticsHandler handles HTTP requests for scheme analytics: returns,
// investment simulations, chart series, risk statistics and comparisons.
//
// Calculations that cannot produce a meaningful number respond with
// 422 Unprocessable Entity and a {"needsReview": true, "reason": ...} body.
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler with the provided service dependency.
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Returns handles GET requests for the return of a scheme over a window.
// The window is either a named period or an explicit from/to range.
//
// Endpoint: GET /api/scheme/{code}/returns?period={1m|3m|6m|1y}
// Endpoint: GET /api/scheme/{code}/returns?from={yyyy-MM-dd}&to={yyyy-MM-dd}
// Response: 200 OK with ReturnsResponse
// Error: 400 Bad Request if the window is invalid
// Error: 404 Not Found if the scheme does not exist
// Error: 422 Unprocessable Entity if the window needs review
func (h *AnalyticsHandler) Returns(w http.ResponseWriter, r *http.Request) {
	code, err := schemeCode(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid scheme code", err.Error())
		return
	}

	q := r.URL.Query()
	window, err := validation.ValidateReturnsQuery(request.ReturnsQuery{
		Period: q.Get("period"),
		From:   q.Get("from"),
		To:     q.Get("to"),
	})
	if err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	result, err := h.analyticsService.Returns(r.Context(), code, window)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCalculateReturns.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// ReturnsSummary handles GET requests for the returns table over every supported period.
//
// Endpoint: GET /api/scheme/{code}/returns/summary
// Response: 200 OK with array of ReturnsSummaryRow
// Error: 404 Not Found if the scheme does not exist
func (h *AnalyticsHandler) ReturnsSummary(w http.ResponseWriter, r *http.Request) {
	code, err := schemeCode(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid scheme code", err.Error())
		return
	}

	rows, err := h.analyticsService.ReturnsSummary(r.Context(), code)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCalculateReturns.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, rows)
}

// SIP handles POST requests to simulate a systematic investment plan.
//
// Endpoint: POST /api/scheme/{code}/sip
// Request Body: SIPRequest
// Response: 200 OK with SIPResponse
// Error: 400 Bad Request if the body is malformed or fails validation
// Error: 422 Unprocessable Entity if no installment could be executed
func (h *AnalyticsHandler) SIP(w http.ResponseWriter, r *http.Request) {
	code, err := schemeCode(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid scheme code", err.Error())
		return
	}

	req, err := parseJSON[request.SIPRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	params, err := validation.ValidateSIPRequest(req)
	if err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	result, err := h.analyticsService.SIP(r.Context(), code, params)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCalculateSIP.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// Lumpsum handles POST requests to value a one-time investment.
//
// Endpoint: POST /api/scheme/{code}/lumpsum
// Request Body: LumpsumRequest
// Response: 200 OK with LumpsumResponse
// Error: 400 Bad Request if the body is malformed or fails validation
// Error: 422 Unprocessable Entity if there is no usable purchase NAV
func (h *AnalyticsHandler) Lumpsum(w http.ResponseWriter, r *http.Request) {
	code, err := schemeCode(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid scheme code", err.Error())
		return
	}

	req, err := parseJSON[request.LumpsumRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	params, err := validation.ValidateLumpsumRequest(req)
	if err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	result, err := h.analyticsService.Lumpsum(r.Context(), code, params)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCalculateLumpsum.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// SWP handles POST requests to simulate a systematic withdrawal plan.
//
// Endpoint: POST /api/scheme/{code}/swp
// Request Body: SWPRequest
// Response: 200 OK with SWPResponse
// Error: 400 Bad Request if the body is malformed or fails validation
// Error: 422 Unprocessable Entity if there is no usable starting NAV
func (h *AnalyticsHandler) SWP(w http.ResponseWriter, r *http.Request) {
	code, err := schemeCode(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid scheme code", err.Error())
		return
	}

	req, err := parseJSON[request.SWPRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	params, err := validation.ValidateSWPRequest(req)
	if err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	result, err := h.analyticsService.SWP(r.Context(), code, params)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCalculateSWP.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// Strategies handles GET requests comparing SIP, lumpsum and SWP over one window.
// Omitted amounts and frequencies take the comparison defaults.
//
// Endpoint: GET /api/scheme/{code}/strategies?from={yyyy-MM-dd}&to={yyyy-MM-dd}&sipAmount={n}&sipFrequency={f}&lumpsumAmount={n}&swpAmount={n}&swpFrequency={f}
// Response: 200 OK with StrategiesResponse
// Error: 400 Bad Request if a parameter fails validation
// Error: 404 Not Found if the scheme does not exist
// Error: 422 Unprocessable Entity if none of the strategies can run
func (h *AnalyticsHandler) Strategies(w http.ResponseWriter, r *http.Request) {
	code, err := schemeCode(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid scheme code", err.Error())
		return
	}

	q := r.URL.Query()
	params, err := validation.ValidateStrategiesQuery(request.StrategiesQuery{
		SIPAmount:     q.Get("sipAmount"),
		SIPFrequency:  q.Get("sipFrequency"),
		LumpsumAmount: q.Get("lumpsumAmount"),
		SWPAmount:     q.Get("swpAmount"),
		SWPFrequency:  q.Get("swpFrequency"),
		From:          q.Get("from"),
		To:            q.Get("to"),
	})
	if err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	result, err := h.analyticsService.Strategies(r.Context(), code, params)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCompareStrategies.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// Chart handles GET requests for the NAV series with a trailing moving average.
//
// Endpoint: GET /api/scheme/{code}/chart?window={n}
// Response: 200 OK with ChartResponse
// Error: 400 Bad Request if window is not an integer in range
// Error: 422 Unprocessable Entity if the scheme has no NAV history
func (h *AnalyticsHandler) Chart(w http.ResponseWriter, r *http.Request) {
	code, err := schemeCode(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid scheme code", err.Error())
		return
	}

	window, err := validation.ValidateMAWindow(r.URL.Query().Get("window"))
	if err != nil {
		respondServiceError(w, err, "validation failed")
		return
	}

	chart, err := h.analyticsService.Chart(r.Context(), code, window)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCalculateStatistics.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, chart)
}

// Risk handles GET requests for the mean return and volatility of recent daily returns.
//
// Endpoint: GET /api/scheme/{code}/risk
// Response: 200 OK with RiskReturnResponse
// Error: 422 Unprocessable Entity if there are too few usable returns
func (h *AnalyticsHandler) Risk(w http.ResponseWriter, r *http.Request) {
	code, err := schemeCode(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid scheme code", err.Error())
		return
	}

	risk, err := h.analyticsService.RiskReturn(r.Context(), code)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCalculateStatistics.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, risk)
}

// Compare handles GET requests to compare several schemes side by side.
// Entries keep the order of the requested codes; duplicates are dropped.
//
// Endpoint: GET /api/compare?codes={code},{code}
// Response: 200 OK with array of ComparisonEntry
// Error: 400 Bad Request if codes are missing, invalid, or more than five
// Error: 404 Not Found if any scheme does not exist
func (h *AnalyticsHandler) Compare(w http.ResponseWriter, r *http.Request) {
	codes, err := validation.ValidateSchemeCodes(r.URL.Query().Get("codes"))
	if err != nil {
		respondServiceError(w, err, "invalid scheme codes")
		return
	}

	entries, err := h.analyticsService.Compare(r.Context(), codes)
	if err != nil {
		respondServiceError(w, err, apperrors.ErrFailedToCompareSchemes.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entries)
}
