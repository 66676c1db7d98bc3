package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/IliaW/cloak-api/config"
	cacheClient "github.com/IliaW/cloak-api/internal/cache"
	"github.com/IliaW/cloak-api/internal/cloak"
	"github.com/IliaW/cloak-api/internal/mlscore"
	"github.com/IliaW/cloak-api/internal/model"
	"github.com/IliaW/cloak-api/internal/telemetry"
	"github.com/IliaW/cloak-api/internal/turnstile"
	"github.com/IliaW/cloak-api/util"
	"github.com/gin-gonic/gin"
)

type CloakHandler struct {
	cfg      *config.Config
	src      cloak.ConfigSource
	resolver *cloak.Resolver
	fpCache  cacheClient.FingerprintCache
	scorer   mlscore.Scorer
	verifier turnstile.Verifier
	metrics  *telemetry.ApiMetrics
}

func NewCloakHandler(cfg *config.Config, src cloak.ConfigSource, resolver *cloak.Resolver,
	fpCache cacheClient.FingerprintCache, scorer mlscore.Scorer, verifier turnstile.Verifier,
	metrics *telemetry.ApiMetrics) *CloakHandler {
	return &CloakHandler{
		cfg:      cfg,
		src:      src,
		resolver: resolver,
		fpCache:  fpCache,
		scorer:   scorer,
		verifier: verifier,
		metrics:  metrics,
	}
}

// DecideCloak godoc
// @Summary Decide which page content to serve for an edge request
// @Description Runs the filter chain for the given host/path and returns the white or black page content
// @Tags Cloaking
// @Accept json
// @Produce json
// @Param request body model.DecideCloakRequest true "Request forwarded by the edge worker"
// @Success 200 {object} model.DecideCloakResponse "Page content to serve"
// @Security ApiKeyAuth
// @Router /api/v1/cloaking/decide-cloak [post]
func (h *CloakHandler) DecideCloak(c *gin.Context) {
	var req model.DecideCloakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	if req.Host == "" || req.Path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'host' and 'path' fields are required"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	host := util.StripPort(strings.ToLower(req.Host))
	domain, ok := h.src.DomainConfig(host)
	if !ok || domain.Status != model.DomainStatusActive {
		c.JSON(http.StatusNotFound, gin.H{"error": "domain not configured or not active"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	path := strings.Trim(req.Path, "/")
	campaign, ok := h.src.Campaign(host, path)
	if !ok {
		c.JSON(http.StatusNotFound,
			gin.H{"error": fmt.Sprintf("campaign not found for path '%s' on host '%s'", path, host)})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	ctx := h.buildContext(c, host, path, lowercaseKeys(req.Headers))
	effective := h.resolver.ResolveForCampaign(host, path)
	trace := cloak.Decide(ctx, effective)
	h.countDecision(trace.Decision)
	slog.Info("cloaking decision.", slog.String("host", host), slog.String("path", path),
		slog.String("decision", trace.Decision), slog.String("reason", trace.Reason))

	target := cloak.DispatchContent(trace.Decision, campaign)
	c.JSON(http.StatusOK, model.DecideCloakResponse{
		Content:     target.Content,
		ContentType: target.ContentType,
	})
}

// RouteDecision godoc
// @Summary Resolve the redirect target for the legacy route path
// @Description Runs the domain-level filter chain against the live request and returns a redirect decision
// @Tags Cloaking
// @Accept json
// @Produce json
// @Param request body model.RouteRequest false "Optional Turnstile token"
// @Success 200 {object} model.RouteResponse "Redirect decision"
// @Router /route_decision/route [post]
func (h *CloakHandler) RouteDecision(c *gin.Context) {
	var req model.RouteRequest
	// the body is optional on this path
	_ = c.ShouldBindJSON(&req)

	host := util.StripPort(strings.ToLower(c.Request.Host))
	if host == "" {
		slog.Warn("host header is missing. Routing to the global default white page.")
		h.respondRoute(c, model.DecisionWhite, h.cfg.CloakSettings.DefaultWhiteUrl)
		return
	}

	domain, ok := h.src.DomainConfig(host)
	if !ok {
		slog.Warn("no configuration found for domain. Routing to the global default white page.",
			slog.String("host", host))
		h.respondRoute(c, model.DecisionWhite, h.cfg.CloakSettings.DefaultWhiteUrl)
		return
	}
	if domain.BlackPageUrl == "" {
		// without a black destination there is nothing to cloak
		h.respondRoute(c, model.DecisionWhite, domain.WhitePageUrl)
		return
	}

	headers := headersFromRequest(c)
	ctx := h.buildContext(c, host, "", headers)

	if req.TurnstileToken != "" {
		valid := h.verifyTurnstile(c, req.TurnstileToken, ctx.ClientIP)
		ctx.TurnstileValid = &valid
		if !valid {
			slog.Info("turnstile verification failed.", slog.String("host", host))
			h.metrics.BlockedCounter(1)
			h.respondRoute(c, model.DecisionBlocked, domain.WhitePageUrl)
			return
		}
	}

	if util.IsKnownBot(ctx.UserAgent, h.cfg.CloakSettings.BotUserAgents) {
		slog.Info("bot detected by user agent.", slog.String("host", host),
			slog.String("user_agent", ctx.UserAgent))
		h.metrics.BlockedCounter(1)
		h.respondRoute(c, model.DecisionBlocked, domain.WhitePageUrl)
		return
	}

	effective := h.resolver.ResolveForDomain(host)
	trace := cloak.Decide(ctx, effective)
	h.countDecision(trace.Decision)
	slog.Info("route decision.", slog.String("host", host), slog.String("decision", trace.Decision),
		slog.String("reason", trace.Reason))

	target := cloak.DispatchRedirect(trace.Decision, ctx.ClientIP, domain.WhitePageUrl, domain.BlackPageUrl, "")
	h.respondRoute(c, trace.Decision, target.RedirectUrl)
}

// ValidateForWorker godoc
// @Summary Validate a fingerprint on behalf of the edge worker
// @Description Scores the fingerprint and returns the destination the worker should send the client to
// @Tags Worker
// @Accept json
// @Produce json
// @Param request body model.WorkerValidationRequest true "Fingerprint and campaign id"
// @Success 200 {object} model.WorkerValidationResponse "Validation verdict"
// @Router /worker-logic/validate-for-worker [post]
func (h *CloakHandler) ValidateForWorker(c *gin.Context) {
	var req model.WorkerValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body. %s", err.Error())})
		return
	}
	if req.Fingerprint == "" || req.CampaignID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'fingerprint' and 'campaign_id' fields are required"})
		return
	}
	linkID, err := strconv.ParseInt(req.CampaignID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'campaign_id' must be a numeric link id"})
		return
	}
	link, ok := h.src.Link(linkID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("link with id '%d' not found", linkID)})
		return
	}

	if _, cached := h.fpCache.Lookup(req.Fingerprint); !cached {
		h.fpCache.Save(req.Fingerprint, []byte(`{"seen":true}`))
	}

	effective := h.resolver.ResolveForLink(linkID)
	score, scored := h.scorer.Score(c.Request.Context(), req.Fingerprint)
	// a missing score never counts as a bot signal
	isBot := scored && score >= effective.MlBotThreshold

	decision := model.DecisionBlack
	if isBot {
		decision = model.DecisionBlocked
		h.metrics.BlockedCounter(1)
	} else {
		h.metrics.BlackServedCounter(1)
	}
	// the fingerprint stands in for the client IP to keep the A/B variant stable
	target := cloak.DispatchRedirect(decision, req.Fingerprint,
		link.WhitePageUrl, link.BlackPageUrlA, link.BlackPageUrlB)

	c.JSON(http.StatusOK, model.WorkerValidationResponse{
		IsBot:     isBot,
		TargetUrl: target.RedirectUrl,
	})
}

// ValidateTurnstile godoc
// @Summary Validate a Cloudflare Turnstile token
// @Description Proxies the token to the siteverify endpoint and returns the verdict
// @Tags Turnstile
// @Accept json
// @Produce json
// @Param request body model.TurnstileValidationRequest true "Turnstile token"
// @Success 200 {object} model.TurnstileValidationResponse "Verification result"
// @Router /turnstile/validate [post]
func (h *CloakHandler) ValidateTurnstile(c *gin.Context) {
	var req model.TurnstileValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'token' field is required"})
		return
	}

	result, err := h.verifier.Verify(c.Request.Context(), req.Token, c.ClientIP())
	if err != nil {
		slog.Error("turnstile verification request failed.", slog.String("err", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "turnstile verification unavailable"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// buildContext resolves every upstream signal the engine may need before the
// evaluation starts. The engine itself performs no I/O.
func (h *CloakHandler) buildContext(c *gin.Context, host, path string, headers map[string]string) model.RequestContext {
	ua := headers[util.HeaderUserAgent]
	ctx := model.RequestContext{
		Host:            host,
		Path:            path,
		ClientIP:        util.ClientIP(headers),
		UserAgent:       ua,
		AcceptLanguage:  headers[util.HeaderAcceptLanguage],
		FingerprintHash: headers[util.HeaderFingerprintHash],
		DeviceType:      util.ClassifyDevice(ua),
		Isp:             headers["x-isp"],
		CountryCode:     util.CountryCode(headers),
	}
	if raw := headers["x-js-execution-time"]; raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil {
			ctx.JsExecutionTimeMs = &ms
		}
	}
	if ctx.FingerprintHash != "" {
		if _, cached := h.fpCache.Lookup(ctx.FingerprintHash); !cached {
			h.fpCache.Save(ctx.FingerprintHash, []byte(`{"seen":true}`))
		}
		if score, ok := h.scorer.Score(c.Request.Context(), ctx.FingerprintHash); ok {
			ctx.MlScore = &score
		}
	}

	return ctx
}

func (h *CloakHandler) verifyTurnstile(c *gin.Context, token, clientIP string) bool {
	result, err := h.verifier.Verify(c.Request.Context(), token, clientIP)
	if err != nil {
		slog.Warn("turnstile verifier unavailable, treating challenge as failed.",
			slog.String("err", err.Error()))
		return false
	}
	return result.Success
}

func (h *CloakHandler) respondRoute(c *gin.Context, decision, url string) {
	c.JSON(http.StatusOK, model.RouteResponse{
		Decision: decision,
		Action:   "redirect",
		Url:      url,
	})
}

func (h *CloakHandler) countDecision(decision string) {
	switch decision {
	case model.DecisionBlack:
		h.metrics.BlackServedCounter(1)
	case model.DecisionBlocked:
		h.metrics.BlockedCounter(1)
	default:
		h.metrics.WhiteServedCounter(1)
	}
}

func lowercaseKeys(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		out[strings.ToLower(k)] = v
	}
	return out
}

func headersFromRequest(c *gin.Context) map[string]string {
	out := make(map[string]string, len(c.Request.Header))
	for k, v := range c.Request.Header {
		if len(v) > 0 {
			out[strings.ToLower(k)] = v[0]
		}
	}
	return out
}
