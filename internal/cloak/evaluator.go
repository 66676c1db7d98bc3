package cloak

import (
	"fmt"
	"net"
	"strings"

	"github.com/IliaW/cloak-api/internal/model"
	"github.com/IliaW/cloak-api/util"
)

type Verdict int

const (
	VerdictSkip Verdict = iota
	VerdictAllow
	VerdictBlock
)

func (v Verdict) String() string {
	switch v {
	case VerdictAllow:
		return "allow"
	case VerdictBlock:
		return "block"
	default:
		return "skip"
	}
}

type evaluator struct {
	name string
	// an Allow from these evaluators ends the run in favor of the black page
	shortCircuit bool
	eval         func(ctx *model.RequestContext, cfg *ResolvedFilters) (Verdict, string)
}

// Fixed evaluation order. Exceptions bypass everything; an allowed IP range
// bypasses everything after it; the remaining evaluators can only block.
var evaluators = []evaluator{
	{name: "exceptions", shortCircuit: true, eval: evalExceptions},
	{name: "ip_ranges", shortCircuit: true, eval: evalIpRanges},
	{name: "country", eval: evalCountry},
	{name: "language", eval: evalLanguage},
	{name: "device_type", eval: evalDeviceType},
	{name: "user_agent", eval: evalUserAgent},
	{name: "fingerprinting", eval: evalFingerprinting},
	{name: "ml", eval: evalMl},
	{name: "sensitivity", eval: evalSensitivity},
}

func evalExceptions(ctx *model.RequestContext, cfg *ResolvedFilters) (Verdict, string) {
	for _, ip := range cfg.ExceptionIps {
		if ip == ctx.ClientIP {
			return VerdictAllow, "ip " + ip + " on exception list"
		}
	}
	if ctx.Isp != "" {
		for _, isp := range cfg.ExceptionIsps {
			if strings.EqualFold(isp, ctx.Isp) {
				return VerdictAllow, "isp " + ctx.Isp + " on exception list"
			}
		}
	}
	if ctx.DeviceType != "" {
		for _, d := range cfg.ExceptionDevices {
			if strings.EqualFold(d, ctx.DeviceType) {
				return VerdictAllow, "device " + ctx.DeviceType + " on exception list"
			}
		}
	}
	return VerdictSkip, "no exception matched"
}

func evalIpRanges(ctx *model.RequestContext, cfg *ResolvedFilters) (Verdict, string) {
	if !cfg.IpRangesEnabled {
		return VerdictSkip, "disabled"
	}
	if ctx.ClientIP == "" {
		return VerdictSkip, "client ip unknown"
	}
	if matchIP(ctx.ClientIP, cfg.BlockedRanges) {
		return VerdictBlock, "ip " + ctx.ClientIP + " in blocked range"
	}
	if matchIP(ctx.ClientIP, cfg.AllowedRanges) {
		return VerdictAllow, "ip " + ctx.ClientIP + " in allowed range"
	}
	return VerdictSkip, "no range matched"
}

func evalCountry(ctx *model.RequestContext, cfg *ResolvedFilters) (Verdict, string) {
	if !cfg.GeolocationEnabled || !cfg.CountryEnabled {
		return VerdictSkip, "disabled"
	}
	if ctx.CountryCode == "" {
		return VerdictSkip, "country not resolvable"
	}
	if len(cfg.Countries) == 0 {
		return VerdictSkip, "no countries configured"
	}
	listed := containsFold(cfg.Countries, ctx.CountryCode)
	if cfg.CountryMode == model.ModeBlock && listed {
		return VerdictBlock, "country " + ctx.CountryCode + " in blocklist"
	}
	if cfg.CountryMode == model.ModeAllow && !listed {
		return VerdictBlock, "country " + ctx.CountryCode + " not in allowlist"
	}
	return VerdictAllow, "country " + ctx.CountryCode + " passed"
}

func evalLanguage(ctx *model.RequestContext, cfg *ResolvedFilters) (Verdict, string) {
	if !cfg.LanguageEnabled {
		return VerdictSkip, "disabled"
	}
	lang := util.PrimaryLanguage(ctx.AcceptLanguage)
	if lang == "" {
		return VerdictSkip, "language not resolvable"
	}
	if len(cfg.Languages) == 0 {
		return VerdictSkip, "no languages configured"
	}
	listed := containsFold(cfg.Languages, lang)
	if cfg.LanguageMode == model.ModeBlock && listed {
		return VerdictBlock, "language " + lang + " in blocklist"
	}
	if cfg.LanguageMode == model.ModeAllow && !listed {
		return VerdictBlock, "language " + lang + " not in allowlist"
	}
	return VerdictAllow, "language " + lang + " passed"
}

func evalDeviceType(ctx *model.RequestContext, cfg *ResolvedFilters) (Verdict, string) {
	if !cfg.DeviceTypeEnabled || cfg.TargetDevice == model.DeviceAll {
		return VerdictSkip, "disabled"
	}
	if ctx.DeviceType == "" {
		return VerdictSkip, "device not classified"
	}
	if !strings.EqualFold(ctx.DeviceType, cfg.TargetDevice) {
		return VerdictBlock, fmt.Sprintf("device %s does not match target %s", ctx.DeviceType, cfg.TargetDevice)
	}
	return VerdictAllow, "device " + ctx.DeviceType + " matches target"
}

func evalUserAgent(ctx *model.RequestContext, cfg *ResolvedFilters) (Verdict, string) {
	if len(cfg.UaBlocklist) == 0 {
		return VerdictSkip, "no patterns configured"
	}
	ua := strings.ToLower(ctx.UserAgent)
	for _, pattern := range cfg.UaBlocklist {
		if strings.Contains(ua, strings.ToLower(pattern)) {
			return VerdictBlock, "user agent matched pattern " + pattern
		}
	}
	return VerdictAllow, "no pattern matched"
}

func evalFingerprinting(ctx *model.RequestContext, cfg *ResolvedFilters) (Verdict, string) {
	if !cfg.FingerprintingEnabled {
		return VerdictSkip, "disabled"
	}
	if ctx.FingerprintHash == "" {
		return VerdictBlock, "fingerprint missing"
	}
	return VerdictAllow, "fingerprint present"
}

func evalMl(ctx *model.RequestContext, cfg *ResolvedFilters) (Verdict, string) {
	if !cfg.MlEnabled {
		return VerdictSkip, "disabled"
	}
	// Absent score is never treated as a bot signal.
	if ctx.MlScore == nil {
		return VerdictSkip, "score unavailable"
	}
	if *ctx.MlScore >= cfg.MlBotThreshold {
		return VerdictBlock, fmt.Sprintf("score %.2f above threshold %.2f", *ctx.MlScore, cfg.MlBotThreshold)
	}
	return VerdictAllow, fmt.Sprintf("score %.2f below threshold %.2f", *ctx.MlScore, cfg.MlBotThreshold)
}

func evalSensitivity(ctx *model.RequestContext, cfg *ResolvedFilters) (Verdict, string) {
	if ctx.JsExecutionTimeMs == nil {
		return VerdictSkip, "timing signal absent"
	}
	ms := *ctx.JsExecutionTimeMs
	if ms < cfg.SensitivityMinMs {
		return VerdictBlock, fmt.Sprintf("js execution %dms below %dms", ms, cfg.SensitivityMinMs)
	}
	if ms > cfg.SensitivityMaxMs {
		return VerdictBlock, fmt.Sprintf("js execution %dms above %dms", ms, cfg.SensitivityMaxMs)
	}
	return VerdictAllow, fmt.Sprintf("js execution %dms within range", ms)
}

// matchIP checks a client IP against a mixed list of exact addresses and CIDR
// ranges. Unparseable entries are ignored rather than failing the evaluation.
func matchIP(clientIP string, ranges []string) bool {
	ip := net.ParseIP(clientIP)
	if ip == nil {
		return false
	}
	for _, entry := range ranges {
		if strings.Contains(entry, "/") {
			_, cidr, err := net.ParseCIDR(entry)
			if err == nil && cidr.Contains(ip) {
				return true
			}
			continue
		}
		if exact := net.ParseIP(entry); exact != nil && exact.Equal(ip) {
			return true
		}
	}
	return false
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
