package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func Test_Merge_NilArguments(t *testing.T) {
	assert.Equal(t, &FilterSettings{}, Merge(nil, nil))
	base := &FilterSettings{Ml: &MlFilter{Enabled: boolPtr(false)}}
	assert.Equal(t, base.Ml.Enabled, Merge(nil, base).Ml.Enabled)
	assert.Equal(t, base.Ml.Enabled, Merge(base, nil).Ml.Enabled)
}

func Test_Merge_OverrideWinsFieldWise(t *testing.T) {
	base := &FilterSettings{
		Country: &CountryFilter{
			Enabled:   boolPtr(true),
			Mode:      strPtr(ModeAllow),
			Countries: []string{"US", "CA"},
		},
		Sensitivity: &SensitivityFilter{
			JsExecutionTimeMin: intPtr(500),
			JsExecutionTimeMax: intPtr(2000),
		},
	}
	override := &FilterSettings{
		Country:     &CountryFilter{Mode: strPtr(ModeBlock)},
		Sensitivity: &SensitivityFilter{JsExecutionTimeMin: intPtr(100)},
	}

	merged := Merge(override, base)

	// only the fields the override sets change; the rest inherit
	assert.Equal(t, ModeBlock, *merged.Country.Mode)
	assert.Equal(t, []string{"US", "CA"}, merged.Country.Countries)
	assert.True(t, *merged.Country.Enabled)
	assert.Equal(t, 100, *merged.Sensitivity.JsExecutionTimeMin)
	assert.Equal(t, 2000, *merged.Sensitivity.JsExecutionTimeMax)
}

func Test_Merge_EmptyOverrideEqualsBase(t *testing.T) {
	base := &FilterSettings{
		Ml:         &MlFilter{Enabled: boolPtr(true), BotThreshold: floatPtr(0.8)},
		Exceptions: &ExceptionsFilter{Ips: strPtr("203.0.113.7")},
	}

	assert.Equal(t, Merge(nil, base), Merge(&FilterSettings{}, base))
}

func Test_Merge_DoesNotMutateArguments(t *testing.T) {
	base := &FilterSettings{
		Country: &CountryFilter{Mode: strPtr(ModeAllow), Countries: []string{"US"}},
	}
	override := &FilterSettings{
		Country: &CountryFilter{Countries: []string{"BR"}},
	}

	merged := Merge(override, base)
	merged.Country.Countries[0] = "ZZ"
	modeCopy := ModeBlock
	merged.Country.Mode = &modeCopy

	assert.Equal(t, []string{"US"}, base.Country.Countries)
	assert.Equal(t, ModeAllow, *base.Country.Mode)
	assert.Equal(t, []string{"BR"}, override.Country.Countries)
}

func Test_Merge_SubFilterAbsentEverywhereStaysNil(t *testing.T) {
	merged := Merge(&FilterSettings{}, &FilterSettings{})

	assert.Nil(t, merged.Country)
	assert.Nil(t, merged.Ml)
	assert.Nil(t, merged.Exceptions)
}

func Test_Merge_UserAgentBlocklistReplaceNotAppend(t *testing.T) {
	base := &FilterSettings{UserAgentContainsBlock: []string{"curl", "wget"}}
	override := &FilterSettings{UserAgentContainsBlock: []string{"phantomjs"}}

	assert.Equal(t, []string{"phantomjs"}, Merge(override, base).UserAgentContainsBlock)
	assert.Equal(t, []string{"curl", "wget"}, Merge(&FilterSettings{}, base).UserAgentContainsBlock)
}

func Test_Merge_GeoCountryBlockReplaceNotAppend(t *testing.T) {
	base := &FilterSettings{GeoCountryBlock: []string{"KP", "IR"}}
	override := &FilterSettings{GeoCountryBlock: []string{"RU"}}

	assert.Equal(t, []string{"RU"}, Merge(override, base).GeoCountryBlock)
	assert.Equal(t, []string{"KP", "IR"}, Merge(&FilterSettings{}, base).GeoCountryBlock)
}
