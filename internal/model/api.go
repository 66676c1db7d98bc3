package model

// Request and response bodies for the HTTP surface. Field names mirror the
// contract the edge worker and the dashboard already speak.

// DecideCloakRequest godoc
// @Description Cloaking decision request sent by the edge worker
// @Type DecideCloakRequest
type DecideCloakRequest struct {
	Host    string            `json:"host"`
	Path    string            `json:"path"`
	Headers map[string]string `json:"headers"`
}

// DecideCloakResponse godoc
// @Description Literal page content to serve
// @Type DecideCloakResponse
type DecideCloakResponse struct {
	Content     string `json:"content"`
	ContentType string `json:"content_type"`
}

type RouteRequest struct {
	TurnstileToken string `json:"turnstileToken,omitempty"`
}

// RouteResponse godoc
// @Description Redirect decision for the legacy route path
// @Type RouteResponse
type RouteResponse struct {
	Decision string `json:"decision"`
	Action   string `json:"action"`
	Url      string `json:"url"`
}

type CampaignCreateRequest struct {
	DomainName   string          `json:"domain_name"`
	Path         string          `json:"path"`
	WhiteContent string          `json:"white_content"`
	BlackContent string          `json:"black_content"`
	Filters      *FilterSettings `json:"filters,omitempty"`
}

type CampaignUpdateRequest struct {
	WhiteContent *string         `json:"white_content,omitempty"`
	BlackContent *string         `json:"black_content,omitempty"`
	Filters      *FilterSettings `json:"filters,omitempty"`
}

type CampaignsListResponse struct {
	DomainName string     `json:"domain_name"`
	Campaigns  []Campaign `json:"campaigns"`
}

type DomainConfigRequest struct {
	DomainName       string          `json:"domain_name"`
	WhitePageUrl     string          `json:"white_page_url"`
	BlackPageUrl     string          `json:"black_page_url"`
	BlockedCountries []string        `json:"blocked_countries,omitempty"`
	Filters          *FilterSettings `json:"filters,omitempty"`
}

type CloakedLinkCreateRequest struct {
	CampaignName  string `json:"campaign_name"`
	BlackPageUrlA string `json:"black_page_url_a"`
	BlackPageUrlB string `json:"black_page_url_b,omitempty"`
	WhitePageUrl  string `json:"white_page_url"`
}

type UpdateLinkFiltersRequest struct {
	Filters *FilterSettings `json:"filters"`
}

type FilterUpdateResponse struct {
	LinkID  string `json:"link_id"`
	Message string `json:"message"`
}

// SimulationParams godoc
// @Description Synthetic request parameters for the admin simulation
// @Type SimulationParams
type SimulationParams struct {
	UserAgent   string `json:"user_agent"`
	IpAddress   string `json:"ip_address"`
	CountryCode string `json:"country_code"`
	DeviceType  string `json:"device_type"`
	LinkID      string `json:"link_id,omitempty"`
}

type WorkerValidationRequest struct {
	Fingerprint string `json:"fingerprint"`
	CampaignID  string `json:"campaign_id"`
}

type WorkerValidationResponse struct {
	IsBot     bool   `json:"is_bot"`
	TargetUrl string `json:"target_url"`
}

type TurnstileValidationRequest struct {
	Token string `json:"token"`
}

type TurnstileValidationResponse struct {
	Success     bool     `json:"success"`
	ChallengeTs string   `json:"challenge_ts,omitempty"`
	Hostname    string   `json:"hostname,omitempty"`
	ErrorCodes  []string `json:"error_codes,omitempty"`
	Action      string   `json:"action,omitempty"`
	Cdata       string   `json:"cdata,omitempty"`
}
