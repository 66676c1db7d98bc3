package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ClientIP(t *testing.T) {
	testSet := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "cf connecting ip preferred",
			headers:  map[string]string{HeaderConnectingIP: "203.0.113.7", HeaderForwardedFor: "10.0.0.1"},
			expected: "203.0.113.7",
		},
		{
			name:     "first forwarded-for entry",
			headers:  map[string]string{HeaderForwardedFor: "203.0.113.7, 10.0.0.1"},
			expected: "203.0.113.7",
		},
		{
			name:     "no ip headers",
			headers:  map[string]string{},
			expected: "",
		},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			assert.Equal(tt, test.expected, ClientIP(test.headers))
		})
	}
}

func Test_CountryCode(t *testing.T) {
	testSet := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "normal code uppercased", header: "us", expected: "US"},
		{name: "placeholder xx dropped", header: "XX", expected: ""},
		{name: "tor placeholder dropped", header: "T1", expected: ""},
		{name: "absent", header: "", expected: ""},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			assert.Equal(tt, test.expected, CountryCode(map[string]string{HeaderIPCountry: test.header}))
		})
	}
}

func Test_StripPort(t *testing.T) {
	testSet := []struct {
		name     string
		host     string
		expected string
	}{
		{name: "host with port", host: "example.com:8080", expected: "example.com"},
		{name: "host without port", host: "example.com", expected: "example.com"},
		{name: "bracketed ipv6 with port", host: "[::1]:8080", expected: "::1"},
		{name: "bare ipv6 without port", host: "2001:db8::1", expected: "2001:db8::1"},
		{name: "ipv4 with port", host: "203.0.113.7:443", expected: "203.0.113.7"},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			assert.Equal(tt, test.expected, StripPort(test.host))
		})
	}
}

func Test_PrimaryLanguage(t *testing.T) {
	testSet := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "region and quality stripped", header: "pt-BR,pt;q=0.9,en;q=0.8", expected: "pt"},
		{name: "single language", header: "en", expected: "en"},
		{name: "uppercase normalized", header: "EN-US", expected: "en"},
		{name: "empty", header: "", expected: ""},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			assert.Equal(tt, test.expected, PrimaryLanguage(test.header))
		})
	}
}

func Test_ClassifyDevice(t *testing.T) {
	testSet := []struct {
		name     string
		ua       string
		expected string
	}{
		{
			name:     "iphone is mobile",
			ua:       "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			expected: "mobile",
		},
		{
			name:     "desktop chrome",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			expected: "desktop",
		},
		{name: "blank", ua: "", expected: ""},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			assert.Equal(tt, test.expected, ClassifyDevice(test.ua))
		})
	}
}

func Test_IsKnownBot(t *testing.T) {
	testSet := []struct {
		name     string
		ua       string
		patterns []string
		expected bool
	}{
		{
			name:     "googlebot detected by parser",
			ua:       "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			expected: true,
		},
		{
			name:     "configured substring",
			ua:       "python-requests/2.31.0",
			patterns: []string{"python-requests"},
			expected: true,
		},
		{
			name:     "regular browser",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			patterns: []string{"curl"},
			expected: false,
		},
		{name: "blank user agent", ua: "", expected: false},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			assert.Equal(tt, test.expected, IsKnownBot(test.ua, test.patterns))
		})
	}
}
