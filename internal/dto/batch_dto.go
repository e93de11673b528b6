package dto

// BatchAccountError reports one account that could not be processed; the
// batch keeps going past it.
type BatchAccountError struct {
	AccountId   string `json:"account_id"`
	ExternalKey string `json:"external_key,omitempty"`
	Error       string `json:"error"`
}

// BatchReportResponse summarizes one recompute run over all accounts.
// PartialCoverage counts recommendations stored with unmet features;
// NoCandidate counts accounts the catalog could not serve at all.
type BatchReportResponse struct {
	CatalogVersion  int                 `json:"catalog_version"`
	Processed       int                 `json:"processed"`
	Succeeded       int                 `json:"succeeded"`
	Failed          int                 `json:"failed"`
	NoCandidate     int                 `json:"no_candidate"`
	PartialCoverage int                 `json:"partial_coverage"`
	DurationMs      int64               `json:"duration_ms"`
	Errors          []BatchAccountError `json:"errors,omitempty"`
}
