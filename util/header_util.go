package util

import (
	"net"
	"strings"

	"github.com/mssola/useragent"
)

// Header names set by the edge proxy.
const (
	HeaderConnectingIP    = "cf-connecting-ip"
	HeaderIPCountry       = "cf-ipcountry"
	HeaderForwardedFor    = "x-forwarded-for"
	HeaderUserAgent       = "user-agent"
	HeaderAcceptLanguage  = "accept-language"
	HeaderFingerprintHash = "x-fingerprint-hash"
)

// ClientIP extracts the originating client address from proxy headers,
// preferring the edge-provided connecting IP.
func ClientIP(headers map[string]string) string {
	if ip := headers[HeaderConnectingIP]; ip != "" {
		return strings.TrimSpace(ip)
	}
	if fwd := headers[HeaderForwardedFor]; fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	return ""
}

// CountryCode returns the edge-resolved country as uppercase ISO 3166-1
// alpha-2, or empty when the header is absent or a placeholder.
func CountryCode(headers map[string]string) string {
	cc := strings.ToUpper(strings.TrimSpace(headers[HeaderIPCountry]))
	if cc == "" || cc == "XX" || cc == "T1" {
		return ""
	}
	return cc
}

// StripPort removes a trailing :port from a host value. Hosts without a port,
// including bare IPv6 literals, pass through unchanged.
func StripPort(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

// PrimaryLanguage extracts the first language code from an Accept-Language
// header, e.g. "pt-BR,pt;q=0.9" -> "pt".
func PrimaryLanguage(acceptLanguage string) string {
	first := strings.Split(acceptLanguage, ",")[0]
	first = strings.Split(first, ";")[0]
	first = strings.Split(first, "-")[0]
	return strings.ToLower(strings.TrimSpace(first))
}

// ClassifyDevice maps a user agent onto "mobile" or "desktop". Empty when the
// user agent is blank.
func ClassifyDevice(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return ""
	}
	if useragent.New(ua).Mobile() {
		return "mobile"
	}
	return "desktop"
}

// IsKnownBot reports whether the user agent identifies itself as an automated
// client, either by browser-level bot detection or by one of the configured
// substrings.
func IsKnownBot(ua string, extraPatterns []string) bool {
	if strings.TrimSpace(ua) == "" {
		return false
	}
	if useragent.New(ua).Bot() {
		return true
	}
	lower := strings.ToLower(ua)
	for _, pattern := range extraPatterns {
		if pattern != "" && strings.Contains(lower, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}
