package model

import "time"

// DomainConfig godoc
// @Description Domain-wide cloaking defaults
// @Type DomainConfig
type DomainConfig struct {
	DomainName   string `json:"domain_name"`
	WhitePageUrl string `json:"white_page_url"`
	BlackPageUrl string `json:"black_page_url"`
	// Legacy domain-wide country blocklist, folded into the effective
	// country filter when the domain defines no filter settings of its own.
	BlockedCountries []string        `json:"blocked_countries"`
	Filters          *FilterSettings `json:"filters,omitempty"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

const DomainStatusActive = "active"

// Campaign godoc
// @Description A configured white/black content pair under a domain path
// @Type Campaign
type Campaign struct {
	DomainName   string          `json:"domain_name"`
	Path         string          `json:"path"`
	WhiteContent string          `json:"white_content"`
	BlackContent string          `json:"black_content"`
	Filters      *FilterSettings `json:"filters,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CloakedLink godoc
// @Description Legacy id-addressable destination pair with optional A/B split
// @Type CloakedLink
type CloakedLink struct {
	ID            int64  `json:"id"`
	CampaignName  string `json:"campaign_name"`
	BlackPageUrlA string `json:"black_page_url_a"`
	BlackPageUrlB string `json:"black_page_url_b,omitempty"`
	WhitePageUrl  string `json:"white_page_url"`
}
