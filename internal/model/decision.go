package model

// RequestContext carries everything the decision engine is allowed to look at.
// It is built once per request by the caller (live handler or simulation) and
// never mutated afterwards. Any upstream lookup (geo-IP, ML score, fingerprint
// cache) happens before construction; optional signals stay nil when the
// lookup failed or never ran.
type RequestContext struct {
	Host            string
	Path            string
	ClientIP        string
	UserAgent       string
	AcceptLanguage  string
	FingerprintHash string
	// Device classification derived from the user agent: "mobile", "desktop"
	// or "" when unknown.
	DeviceType string
	Isp        string
	// ISO 3166-1 alpha-2, uppercase. Empty when not resolvable.
	CountryCode string
	// nil when the scorer was unavailable or returned nothing.
	MlScore *float64
	// Client-reported JS execution time in milliseconds; nil when absent.
	JsExecutionTimeMs *int
	// nil when no Turnstile token was presented.
	TurnstileValid *bool
}

const (
	DecisionWhite   = "white"
	DecisionBlack   = "black"
	DecisionBlocked = "blocked"
)

// DecisionTrace godoc
// @Description Outcome of one cloaking evaluation with a per-filter breakdown
// @Type DecisionTrace
type DecisionTrace struct {
	Decision string            `json:"decision"`
	Reason   string            `json:"reason"`
	MlScore  *float64          `json:"ml_score,omitempty"`
	Filters  map[string]string `json:"applied_filters_summary"`
}
