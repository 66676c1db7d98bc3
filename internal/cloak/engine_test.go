package cloak

import (
	"testing"

	"github.com/IliaW/cloak-api/internal/model"
	"github.com/stretchr/testify/assert"
)

func defaults() ResolvedFilters {
	return NewResolver(nil, 0).Defaults()
}

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func Test_Decide_DefaultBlack(t *testing.T) {
	cfg := defaults()
	ctx := model.RequestContext{
		ClientIP:    "198.51.100.10",
		UserAgent:   "Mozilla/5.0",
		CountryCode: "US",
	}

	trace := Decide(ctx, cfg)

	// no fingerprint, no ML score, no configured filters: still black
	assert.Equal(t, model.DecisionBlack, trace.Decision)
	assert.Equal(t, "passed all checks", trace.Reason)
	assert.Equal(t, "skip: disabled", trace.Filters["fingerprinting"])
}

func Test_Decide_TraceCoversEveryFilter(t *testing.T) {
	trace := Decide(model.RequestContext{FingerprintHash: "abc123"}, defaults())

	expected := []string{"exceptions", "ip_ranges", "country", "language", "device_type",
		"user_agent", "fingerprinting", "ml", "sensitivity"}
	assert.Len(t, trace.Filters, len(expected))
	for _, name := range expected {
		assert.Contains(t, trace.Filters, name)
	}
}

func Test_Decide_Idempotent(t *testing.T) {
	cfg := defaults()
	cfg.Countries = []string{"US"}
	cfg.CountryMode = model.ModeBlock
	ctx := model.RequestContext{
		ClientIP:        "198.51.100.10",
		FingerprintHash: "abc123",
		CountryCode:     "US",
		MlScore:         floatPtr(0.3),
	}

	first := Decide(ctx, cfg)
	second := Decide(ctx, cfg)

	assert.Equal(t, first, second)
}

func Test_Decide_ExceptionBypassesEverything(t *testing.T) {
	cfg := defaults()
	cfg.ExceptionIps = []string{"203.0.113.7"}
	ctx := model.RequestContext{
		ClientIP:    "203.0.113.7",
		CountryCode: "KP",
		MlScore:     floatPtr(0.99),
	}
	cfg.Countries = []string{"KP"}
	cfg.CountryMode = model.ModeBlock

	trace := Decide(ctx, cfg)

	assert.Equal(t, model.DecisionBlack, trace.Decision)
	assert.Contains(t, trace.Reason, "exceptions")
	assert.Equal(t, "skip: not evaluated", trace.Filters["ml"])
	assert.Equal(t, "skip: not evaluated", trace.Filters["country"])
}

func Test_Decide_BlockedIpWinsOverLaterFilters(t *testing.T) {
	cfg := defaults()
	cfg.BlockedRanges = []string{"203.0.113.5"}
	ctx := model.RequestContext{
		ClientIP:        "203.0.113.5",
		FingerprintHash: "abc123",
		MlScore:         floatPtr(0.99),
	}

	trace := Decide(ctx, cfg)

	assert.Equal(t, model.DecisionBlocked, trace.Decision)
	assert.Contains(t, trace.Reason, "ip_ranges")
	assert.Equal(t, "skip: not evaluated", trace.Filters["ml"])
}

func Test_Decide_AllowedRangeShortCircuits(t *testing.T) {
	cfg := defaults()
	cfg.AllowedRanges = []string{"10.0.0.0/8"}
	ctx := model.RequestContext{
		ClientIP: "10.1.2.3",
		MlScore:  floatPtr(0.99),
	}

	trace := Decide(ctx, cfg)

	assert.Equal(t, model.DecisionBlack, trace.Decision)
	assert.Contains(t, trace.Reason, "ip_ranges")
}

func Test_Decide_CountryBlocklist(t *testing.T) {
	cfg := defaults()
	cfg.Countries = []string{"KP", "IR"}
	cfg.CountryMode = model.ModeBlock
	ctx := model.RequestContext{
		ClientIP:        "198.51.100.10",
		FingerprintHash: "abc123",
		CountryCode:     "KP",
	}

	trace := Decide(ctx, cfg)

	assert.Equal(t, model.DecisionBlocked, trace.Decision)
	assert.Contains(t, trace.Reason, "country")
}

func Test_Decide_CountryAllowlistBlocksUnlisted(t *testing.T) {
	cfg := defaults()
	cfg.Countries = []string{"US"}
	ctx := model.RequestContext{
		FingerprintHash: "abc123",
		CountryCode:     "BR",
	}

	trace := Decide(ctx, cfg)

	assert.Equal(t, model.DecisionBlocked, trace.Decision)
	assert.Contains(t, trace.Reason, "country")
}

func Test_Decide_EmptyCountryListIsNeutral(t *testing.T) {
	cfg := defaults()
	ctx := model.RequestContext{
		FingerprintHash: "abc123",
		CountryCode:     "US",
	}

	trace := Decide(ctx, cfg)

	assert.Equal(t, model.DecisionBlack, trace.Decision)
	assert.Equal(t, "skip: no countries configured", trace.Filters["country"])
}

func Test_Decide_LanguageBlocklist(t *testing.T) {
	cfg := defaults()
	cfg.Languages = []string{"ru"}
	cfg.LanguageMode = model.ModeBlock
	ctx := model.RequestContext{
		FingerprintHash: "abc123",
		AcceptLanguage:  "ru-RU,ru;q=0.9",
	}

	trace := Decide(ctx, cfg)

	assert.Equal(t, model.DecisionBlocked, trace.Decision)
	assert.Contains(t, trace.Reason, "language")
}

func Test_Decide_DeviceMismatchBlocks(t *testing.T) {
	cfg := defaults()
	cfg.TargetDevice = model.DeviceMobile
	ctx := model.RequestContext{
		FingerprintHash: "abc123",
		DeviceType:      model.DeviceDesktop,
	}

	trace := Decide(ctx, cfg)

	assert.Equal(t, model.DecisionBlocked, trace.Decision)
	assert.Contains(t, trace.Reason, "device_type")
}

func Test_Decide_UserAgentPatternBlocks(t *testing.T) {
	cfg := defaults()
	cfg.UaBlocklist = []string{"HeadlessChrome"}
	ctx := model.RequestContext{
		FingerprintHash: "abc123",
		UserAgent:       "Mozilla/5.0 (X11; Linux x86_64) HeadlessChrome/120.0",
	}

	trace := Decide(ctx, cfg)

	assert.Equal(t, model.DecisionBlocked, trace.Decision)
	assert.Contains(t, trace.Reason, "user_agent")
}

func Test_Decide_MissingFingerprintBlocksWhenEnabled(t *testing.T) {
	cfg := defaults()
	cfg.FingerprintingEnabled = true

	trace := Decide(model.RequestContext{ClientIP: "198.51.100.10"}, cfg)

	assert.Equal(t, model.DecisionBlocked, trace.Decision)
	assert.Contains(t, trace.Reason, "fingerprinting")
}

func Test_Decide_MlScore(t *testing.T) {
	testSet := []struct {
		name             string
		score            *float64
		expectedDecision string
	}{
		{name: "score above threshold blocks", score: floatPtr(0.95), expectedDecision: model.DecisionBlocked},
		{name: "score at threshold blocks", score: floatPtr(0.7), expectedDecision: model.DecisionBlocked},
		{name: "score below threshold passes", score: floatPtr(0.2), expectedDecision: model.DecisionBlack},
		{name: "absent score is neutral", score: nil, expectedDecision: model.DecisionBlack},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			ctx := model.RequestContext{
				FingerprintHash: "abc123",
				MlScore:         test.score,
			}
			trace := Decide(ctx, defaults())
			assert.Equal(tt, test.expectedDecision, trace.Decision)
			if test.expectedDecision == model.DecisionBlocked {
				assert.Contains(tt, trace.Reason, "ml")
			}
		})
	}
}

func Test_Decide_Sensitivity(t *testing.T) {
	testSet := []struct {
		name             string
		jsTimeMs         *int
		expectedDecision string
	}{
		{name: "too fast blocks", jsTimeMs: intPtr(100), expectedDecision: model.DecisionBlocked},
		{name: "too slow blocks", jsTimeMs: intPtr(5000), expectedDecision: model.DecisionBlocked},
		{name: "within range passes", jsTimeMs: intPtr(1000), expectedDecision: model.DecisionBlack},
		{name: "absent timing is neutral", jsTimeMs: nil, expectedDecision: model.DecisionBlack},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			ctx := model.RequestContext{
				FingerprintHash:   "abc123",
				JsExecutionTimeMs: test.jsTimeMs,
			}
			trace := Decide(ctx, defaults())
			assert.Equal(tt, test.expectedDecision, trace.Decision)
		})
	}
}

func Test_Decide_EverythingDisabledYieldsBlack(t *testing.T) {
	cfg := ResolvedFilters{
		MlBotThreshold:   model.DefaultMlBotThreshold,
		SensitivityMinMs: model.DefaultJsExecutionTimeMin,
		SensitivityMaxMs: model.DefaultJsExecutionTimeMax,
		TargetDevice:     model.DeviceAll,
		CountryMode:      model.ModeAllow,
		LanguageMode:     model.ModeAllow,
	}

	trace := Decide(model.RequestContext{}, cfg)

	assert.Equal(t, model.DecisionBlack, trace.Decision)
	assert.Equal(t, "passed all checks", trace.Reason)
}

func Test_Decide_PanickingEvaluatorIsSkipped(t *testing.T) {
	faulty := evaluator{
		name: "faulty",
		eval: func(ctx *model.RequestContext, cfg *ResolvedFilters) (Verdict, string) {
			panic("boom")
		},
	}

	verdict, detail := safeEval(faulty, &model.RequestContext{}, &ResolvedFilters{})

	assert.Equal(t, VerdictSkip, verdict)
	assert.Equal(t, "evaluator fault", detail)
}

func Test_MatchIP(t *testing.T) {
	testSet := []struct {
		name     string
		clientIP string
		ranges   []string
		expected bool
	}{
		{name: "exact match", clientIP: "203.0.113.5", ranges: []string{"203.0.113.5"}, expected: true},
		{name: "cidr match", clientIP: "10.1.2.3", ranges: []string{"10.0.0.0/8"}, expected: true},
		{name: "no match", clientIP: "192.0.2.1", ranges: []string{"10.0.0.0/8", "203.0.113.5"}, expected: false},
		{name: "unparseable entry ignored", clientIP: "192.0.2.1", ranges: []string{"not-an-ip", "bad/cidr"}, expected: false},
		{name: "unparseable client ip", clientIP: "garbage", ranges: []string{"10.0.0.0/8"}, expected: false},
	}
	for _, test := range testSet {
		t.Run(test.name, func(tt *testing.T) {
			assert.Equal(tt, test.expected, matchIP(test.clientIP, test.ranges))
		})
	}
}
