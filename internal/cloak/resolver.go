package cloak

import (
	"strings"

	"github.com/IliaW/cloak-api/internal/model"
)

// ConfigSource is the read side of the configuration store. Implementations
// must be safe for concurrent reads and must never expose a half-written
// configuration (the snapshot store satisfies both).
//
//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name ConfigSource
type ConfigSource interface {
	DomainConfig(name string) (*model.DomainConfig, bool)
	Campaign(domain, path string) (*model.Campaign, bool)
	Link(id int64) (*model.CloakedLink, bool)
	LinkFilters(id int64) (*model.FilterSettings, bool)
}

// ResolvedFilters is a fully defaulted, concrete view of the layered filter
// configuration. Every field has a value; the engine never sees a nil.
type ResolvedFilters struct {
	GeolocationEnabled    bool
	FingerprintingEnabled bool

	MlEnabled      bool
	MlBotThreshold float64

	IpRangesEnabled bool
	AllowedRanges   []string
	BlockedRanges   []string

	SensitivityMinMs int
	SensitivityMaxMs int

	ExceptionIps     []string
	ExceptionIsps    []string
	ExceptionDevices []string

	DeviceTypeEnabled bool
	TargetDevice      string

	CountryEnabled bool
	CountryMode    string
	Countries      []string

	LanguageEnabled bool
	LanguageMode    string
	Languages       []string

	UaBlocklist []string
}

type Resolver struct {
	src ConfigSource
	// library-wide fallback for the ML bot threshold, from service config
	mlBotThreshold float64
}

func NewResolver(src ConfigSource, mlBotThreshold float64) *Resolver {
	if mlBotThreshold <= 0 || mlBotThreshold > 1 {
		mlBotThreshold = model.DefaultMlBotThreshold
	}
	return &Resolver{src: src, mlBotThreshold: mlBotThreshold}
}

// Defaults returns the library-wide settings with no domain or campaign layer
// applied. Zero configuration resolves here, never to an error.
func (r *Resolver) Defaults() ResolvedFilters {
	return r.concrete(&model.FilterSettings{})
}

// ResolveForCampaign merges campaign overrides on top of the domain layer on
// top of the library defaults. A missing campaign or domain record simply
// contributes nothing.
func (r *Resolver) ResolveForCampaign(domain, path string) ResolvedFilters {
	var campaignFilters *model.FilterSettings
	if c, ok := r.src.Campaign(domain, path); ok {
		campaignFilters = c.Filters
	}
	return r.concrete(model.Merge(campaignFilters, r.domainLayer(domain)))
}

// ResolveForDomain resolves the domain layer alone (the legacy route path has
// no campaign granularity).
func (r *Resolver) ResolveForDomain(domain string) ResolvedFilters {
	return r.concrete(model.Merge(nil, r.domainLayer(domain)))
}

// ResolveForLink merges the legacy per-link settings over the library
// defaults. Link filters have no domain parent; the link store predates the
// domain layer.
func (r *Resolver) ResolveForLink(id int64) ResolvedFilters {
	var linkFilters *model.FilterSettings
	if f, ok := r.src.LinkFilters(id); ok {
		linkFilters = f
	}
	return r.concrete(model.Merge(linkFilters, nil))
}

func (r *Resolver) domainLayer(domain string) *model.FilterSettings {
	dc, ok := r.src.DomainConfig(domain)
	if !ok {
		return nil
	}
	layer := dc.Filters
	// The legacy blocked_countries list acts as a domain-level country filter
	// unless an explicit country filter supersedes it.
	if len(dc.BlockedCountries) > 0 && (layer == nil || layer.Country == nil) {
		mode := model.ModeBlock
		country := &model.CountryFilter{Mode: &mode, Countries: dc.BlockedCountries}
		merged := model.Merge(layer, &model.FilterSettings{Country: country})
		return merged
	}
	return layer
}

// concrete applies the per-field library defaults to a merged settings object.
// Total for any input, including nil sub-filters.
func (r *Resolver) concrete(s *model.FilterSettings) ResolvedFilters {
	if s == nil {
		s = &model.FilterSettings{}
	}
	out := ResolvedFilters{
		GeolocationEnabled: true,
		// Off unless an override enables it: a request with no fingerprint
		// and no other signal still resolves to the black page.
		FingerprintingEnabled: false,
		MlEnabled:             true,
		MlBotThreshold:        r.mlBotThreshold,
		IpRangesEnabled:       true,
		SensitivityMinMs:      model.DefaultJsExecutionTimeMin,
		SensitivityMaxMs:      model.DefaultJsExecutionTimeMax,
		DeviceTypeEnabled:     true,
		TargetDevice:          model.DeviceAll,
		CountryEnabled:        true,
		CountryMode:           model.ModeAllow,
		LanguageEnabled:       true,
		LanguageMode:          model.ModeAllow,
	}
	if g := s.Geolocation; g != nil && g.Enabled != nil {
		out.GeolocationEnabled = *g.Enabled
	}
	if f := s.Fingerprinting; f != nil && f.Enabled != nil {
		out.FingerprintingEnabled = *f.Enabled
	}
	if m := s.Ml; m != nil {
		if m.Enabled != nil {
			out.MlEnabled = *m.Enabled
		}
		if m.BotThreshold != nil {
			out.MlBotThreshold = *m.BotThreshold
		}
	}
	if ir := s.IpRanges; ir != nil {
		if ir.Enabled != nil {
			out.IpRangesEnabled = *ir.Enabled
		}
		if ir.Allowed != nil {
			out.AllowedRanges = splitCsv(*ir.Allowed)
		}
		if ir.Blocked != nil {
			out.BlockedRanges = splitCsv(*ir.Blocked)
		}
	}
	if sv := s.Sensitivity; sv != nil {
		if sv.JsExecutionTimeMin != nil {
			out.SensitivityMinMs = *sv.JsExecutionTimeMin
		}
		if sv.JsExecutionTimeMax != nil {
			out.SensitivityMaxMs = *sv.JsExecutionTimeMax
		}
	}
	if e := s.Exceptions; e != nil {
		if e.Ips != nil {
			out.ExceptionIps = splitCsv(*e.Ips)
		}
		if e.Isps != nil {
			out.ExceptionIsps = splitCsv(*e.Isps)
		}
		if e.Devices != nil {
			out.ExceptionDevices = splitCsv(*e.Devices)
		}
	}
	if d := s.DeviceType; d != nil {
		if d.Enabled != nil {
			out.DeviceTypeEnabled = *d.Enabled
		}
		if d.TargetDevice != nil {
			out.TargetDevice = strings.ToLower(*d.TargetDevice)
		}
	}
	if c := s.Country; c != nil {
		if c.Enabled != nil {
			out.CountryEnabled = *c.Enabled
		}
		if c.Mode != nil {
			out.CountryMode = strings.ToLower(*c.Mode)
		}
		for _, cc := range c.Countries {
			out.Countries = append(out.Countries, strings.ToUpper(strings.TrimSpace(cc)))
		}
	}
	// The legacy geo_country_block list acts as a country blocklist unless an
	// explicit country filter supersedes it.
	if s.Country == nil && len(s.GeoCountryBlock) > 0 {
		out.CountryMode = model.ModeBlock
		for _, cc := range s.GeoCountryBlock {
			out.Countries = append(out.Countries, strings.ToUpper(strings.TrimSpace(cc)))
		}
	}
	if l := s.Language; l != nil {
		if l.Enabled != nil {
			out.LanguageEnabled = *l.Enabled
		}
		if l.Mode != nil {
			out.LanguageMode = strings.ToLower(*l.Mode)
		}
		for _, lc := range l.Languages {
			out.Languages = append(out.Languages, strings.ToLower(strings.TrimSpace(lc)))
		}
	}
	for _, ua := range s.UserAgentContainsBlock {
		if ua = strings.TrimSpace(ua); ua != "" {
			out.UaBlocklist = append(out.UaBlocklist, ua)
		}
	}
	return out
}

func splitCsv(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
