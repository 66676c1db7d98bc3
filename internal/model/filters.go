package model

// Filter settings are stored partially specified: every field is optional and
// inherits from the parent layer (link/campaign -> domain -> library defaults)
// during resolution. Pointer fields distinguish "not set" from a zero value.

const (
	ModeAllow = "allow"
	ModeBlock = "block"

	DeviceAll     = "all"
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
)

const (
	DefaultJsExecutionTimeMin = 500
	DefaultJsExecutionTimeMax = 2000
	DefaultMlBotThreshold     = 0.7
)

// FilterSettings godoc
// @Description Per-check cloaking filter configuration. All fields optional.
// @Type FilterSettings
type FilterSettings struct {
	Geolocation    *GeolocationFilter    `json:"geolocalization,omitempty"`
	Fingerprinting *FingerprintingFilter `json:"fingerprinting,omitempty"`
	Ml             *MlFilter             `json:"ml,omitempty"`
	IpRanges       *IpRangesFilter       `json:"ipRanges,omitempty"`
	Sensitivity    *SensitivityFilter    `json:"sensitivity,omitempty"`
	Exceptions     *ExceptionsFilter     `json:"exceptions,omitempty"`
	DeviceType     *DeviceTypeFilter     `json:"deviceType,omitempty"`
	Country        *CountryFilter        `json:"country,omitempty"`
	Language       *LanguageFilter       `json:"language,omitempty"`
	// Legacy campaign-level filters still written by the dashboard. The
	// country blocklist folds into the country filter when no explicit one
	// is set.
	UserAgentContainsBlock []string `json:"user_agent_contains_block,omitempty"`
	GeoCountryBlock        []string `json:"geo_country_block,omitempty"`
}

type GeolocationFilter struct {
	Enabled *bool `json:"enabled,omitempty"`
}

type FingerprintingFilter struct {
	Enabled *bool `json:"enabled,omitempty"`
}

type MlFilter struct {
	Enabled      *bool    `json:"enabled,omitempty"`
	BotThreshold *float64 `json:"botThreshold,omitempty"`
}

type IpRangesFilter struct {
	Enabled *bool `json:"enabled,omitempty"`
	// Comma-separated IP addresses or CIDR ranges.
	Allowed *string `json:"allowed,omitempty"`
	Blocked *string `json:"blocked,omitempty"`
}

type SensitivityFilter struct {
	JsExecutionTimeMin *int `json:"jsExecutionTimeMin,omitempty"`
	JsExecutionTimeMax *int `json:"jsExecutionTimeMax,omitempty"`
}

type ExceptionsFilter struct {
	// Comma-separated values. Matching requests always get the black page.
	Ips     *string `json:"ips,omitempty"`
	Isps    *string `json:"isps,omitempty"`
	Devices *string `json:"devices,omitempty"`
}

type DeviceTypeFilter struct {
	Enabled      *bool   `json:"enabled,omitempty"`
	TargetDevice *string `json:"targetDevice,omitempty"`
}

type CountryFilter struct {
	Enabled *bool   `json:"enabled,omitempty"`
	Mode    *string `json:"mode,omitempty"`
	// ISO 3166-1 alpha-2 codes, stored uppercase.
	Countries []string `json:"countries,omitempty"`
}

type LanguageFilter struct {
	Enabled *bool   `json:"enabled,omitempty"`
	Mode    *string `json:"mode,omitempty"`
	// ISO 639-1 codes, stored lowercase.
	Languages []string `json:"languages,omitempty"`
}

// Merge overlays the override settings on top of the base, field by field.
// A sub-filter set in the override does not hide the base's other fields:
// only the fields the override actually specifies win. Neither argument is
// mutated; the result is a fresh value.
func Merge(override, base *FilterSettings) *FilterSettings {
	if override == nil && base == nil {
		return &FilterSettings{}
	}
	if override == nil {
		override = &FilterSettings{}
	}
	if base == nil {
		base = &FilterSettings{}
	}
	out := &FilterSettings{
		Geolocation:    mergeGeolocation(override.Geolocation, base.Geolocation),
		Fingerprinting: mergeFingerprinting(override.Fingerprinting, base.Fingerprinting),
		Ml:             mergeMl(override.Ml, base.Ml),
		IpRanges:       mergeIpRanges(override.IpRanges, base.IpRanges),
		Sensitivity:    mergeSensitivity(override.Sensitivity, base.Sensitivity),
		Exceptions:     mergeExceptions(override.Exceptions, base.Exceptions),
		DeviceType:     mergeDeviceType(override.DeviceType, base.DeviceType),
		Country:        mergeCountry(override.Country, base.Country),
		Language:       mergeLanguage(override.Language, base.Language),
	}
	if override.UserAgentContainsBlock != nil {
		out.UserAgentContainsBlock = append([]string(nil), override.UserAgentContainsBlock...)
	} else if base.UserAgentContainsBlock != nil {
		out.UserAgentContainsBlock = append([]string(nil), base.UserAgentContainsBlock...)
	}
	if override.GeoCountryBlock != nil {
		out.GeoCountryBlock = append([]string(nil), override.GeoCountryBlock...)
	} else if base.GeoCountryBlock != nil {
		out.GeoCountryBlock = append([]string(nil), base.GeoCountryBlock...)
	}
	return out
}

func mergeGeolocation(o, b *GeolocationFilter) *GeolocationFilter {
	if o == nil && b == nil {
		return nil
	}
	out := &GeolocationFilter{}
	if b != nil {
		out.Enabled = b.Enabled
	}
	if o != nil && o.Enabled != nil {
		out.Enabled = o.Enabled
	}
	return out
}

func mergeFingerprinting(o, b *FingerprintingFilter) *FingerprintingFilter {
	if o == nil && b == nil {
		return nil
	}
	out := &FingerprintingFilter{}
	if b != nil {
		out.Enabled = b.Enabled
	}
	if o != nil && o.Enabled != nil {
		out.Enabled = o.Enabled
	}
	return out
}

func mergeMl(o, b *MlFilter) *MlFilter {
	if o == nil && b == nil {
		return nil
	}
	out := &MlFilter{}
	if b != nil {
		out.Enabled = b.Enabled
		out.BotThreshold = b.BotThreshold
	}
	if o != nil {
		if o.Enabled != nil {
			out.Enabled = o.Enabled
		}
		if o.BotThreshold != nil {
			out.BotThreshold = o.BotThreshold
		}
	}
	return out
}

func mergeIpRanges(o, b *IpRangesFilter) *IpRangesFilter {
	if o == nil && b == nil {
		return nil
	}
	out := &IpRangesFilter{}
	if b != nil {
		out.Enabled = b.Enabled
		out.Allowed = b.Allowed
		out.Blocked = b.Blocked
	}
	if o != nil {
		if o.Enabled != nil {
			out.Enabled = o.Enabled
		}
		if o.Allowed != nil {
			out.Allowed = o.Allowed
		}
		if o.Blocked != nil {
			out.Blocked = o.Blocked
		}
	}
	return out
}

func mergeSensitivity(o, b *SensitivityFilter) *SensitivityFilter {
	if o == nil && b == nil {
		return nil
	}
	out := &SensitivityFilter{}
	if b != nil {
		out.JsExecutionTimeMin = b.JsExecutionTimeMin
		out.JsExecutionTimeMax = b.JsExecutionTimeMax
	}
	if o != nil {
		if o.JsExecutionTimeMin != nil {
			out.JsExecutionTimeMin = o.JsExecutionTimeMin
		}
		if o.JsExecutionTimeMax != nil {
			out.JsExecutionTimeMax = o.JsExecutionTimeMax
		}
	}
	return out
}

func mergeExceptions(o, b *ExceptionsFilter) *ExceptionsFilter {
	if o == nil && b == nil {
		return nil
	}
	out := &ExceptionsFilter{}
	if b != nil {
		out.Ips = b.Ips
		out.Isps = b.Isps
		out.Devices = b.Devices
	}
	if o != nil {
		if o.Ips != nil {
			out.Ips = o.Ips
		}
		if o.Isps != nil {
			out.Isps = o.Isps
		}
		if o.Devices != nil {
			out.Devices = o.Devices
		}
	}
	return out
}

func mergeDeviceType(o, b *DeviceTypeFilter) *DeviceTypeFilter {
	if o == nil && b == nil {
		return nil
	}
	out := &DeviceTypeFilter{}
	if b != nil {
		out.Enabled = b.Enabled
		out.TargetDevice = b.TargetDevice
	}
	if o != nil {
		if o.Enabled != nil {
			out.Enabled = o.Enabled
		}
		if o.TargetDevice != nil {
			out.TargetDevice = o.TargetDevice
		}
	}
	return out
}

func mergeCountry(o, b *CountryFilter) *CountryFilter {
	if o == nil && b == nil {
		return nil
	}
	out := &CountryFilter{}
	if b != nil {
		out.Enabled = b.Enabled
		out.Mode = b.Mode
		out.Countries = b.Countries
	}
	if o != nil {
		if o.Enabled != nil {
			out.Enabled = o.Enabled
		}
		if o.Mode != nil {
			out.Mode = o.Mode
		}
		if o.Countries != nil {
			out.Countries = o.Countries
		}
	}
	if out.Countries != nil {
		out.Countries = append([]string(nil), out.Countries...)
	}
	return out
}

func mergeLanguage(o, b *LanguageFilter) *LanguageFilter {
	if o == nil && b == nil {
		return nil
	}
	out := &LanguageFilter{}
	if b != nil {
		out.Enabled = b.Enabled
		out.Mode = b.Mode
		out.Languages = b.Languages
	}
	if o != nil {
		if o.Enabled != nil {
			out.Enabled = o.Enabled
		}
		if o.Mode != nil {
			out.Mode = o.Mode
		}
		if o.Languages != nil {
			out.Languages = o.Languages
		}
	}
	if out.Languages != nil {
		out.Languages = append([]string(nil), out.Languages...)
	}
	return out
}
