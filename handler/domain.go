package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/IliaW/cloak-api/internal/model"
	"github.com/IliaW/cloak-api/internal/persistence"
	"github.com/IliaW/cloak-api/internal/telemetry"
	"github.com/gin-gonic/gin"
)

type DomainHandler struct {
	repo      persistence.DomainStorage
	snapshots SnapshotRefresher
	metrics   *telemetry.ApiMetrics
}

func NewDomainHandler(repo persistence.DomainStorage, snapshots SnapshotRefresher,
	metrics *telemetry.ApiMetrics) *DomainHandler {
	return &DomainHandler{repo: repo, snapshots: snapshots, metrics: metrics}
}

// Upsert godoc
// @Summary Create or replace a domain configuration
// @Description Registers the white/black page URLs and optional filter overrides for a domain
// @Tags Domains
// @Accept json
// @Produce json
// @Param request body model.DomainConfigRequest true "Domain configuration"
// @Success 200 {object} map[string]string "Confirmation"
// @Security ApiKeyAuth
// @Router /update-domain-config [post]
func (h *DomainHandler) Upsert(c *gin.Context) {
	var req model.DomainConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	domain := strings.ToLower(strings.TrimSpace(req.DomainName))
	if domain == "" || req.WhitePageUrl == "" || req.BlackPageUrl == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'domain_name', 'white_page_url' and" +
			" 'black_page_url' fields are required"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	blocked := make([]string, 0, len(req.BlockedCountries))
	for _, cc := range req.BlockedCountries {
		if cc = strings.ToUpper(strings.TrimSpace(cc)); cc != "" {
			blocked = append(blocked, cc)
		}
	}

	dc := &model.DomainConfig{
		DomainName:       domain,
		WhitePageUrl:     req.WhitePageUrl,
		BlackPageUrl:     req.BlackPageUrl,
		BlockedCountries: blocked,
		Filters:          req.Filters,
		Status:           model.DomainStatusActive,
		UpdatedAt:        time.Now().UTC(),
	}
	if err := h.repo.Upsert(dc); err != nil {
		slog.Error("failed to save domain config.", slog.String("err", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save domain config"})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	h.refresh()

	slog.Info("domain config saved.", slog.String("domain", domain))
	c.JSON(http.StatusOK, gin.H{
		"message":     "domain config saved",
		"domain_name": domain,
	})
}

// GetAll godoc
// @Summary List all domain configurations
// @Tags Domains
// @Produce json
// @Success 200 {object} map[string]model.DomainConfig "Configurations keyed by domain name"
// @Security ApiKeyAuth
// @Router /get-domain-configs [get]
func (h *DomainHandler) GetAll(c *gin.Context) {
	domains, err := h.repo.GetAll()
	if err != nil {
		slog.Error("failed to load domain configs.", slog.String("err", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load domain configs"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	out := make(map[string]*model.DomainConfig, len(domains))
	for _, d := range domains {
		out[d.DomainName] = d
	}
	c.JSON(http.StatusOK, out)
}

// Delete godoc
// @Summary Delete a domain configuration
// @Tags Domains
// @Produce json
// @Param domain path string true "Domain name"
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Security ApiKeyAuth
// @Router /delete-domain-config/{domain} [delete]
func (h *DomainHandler) Delete(c *gin.Context) {
	domain := strings.ToLower(c.Param("domain"))

	if err := h.repo.Delete(domain); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			slog.Error("failed to delete domain config.", slog.String("err", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete domain config"})
		}
		h.metrics.ErrorResponseCounter(1)
		return
	}
	h.refresh()

	slog.Info("domain config deleted.", slog.String("domain", domain))
	c.JSON(http.StatusOK, gin.H{
		"message":     "domain config deleted",
		"domain_name": domain,
	})
}

func (h *DomainHandler) refresh() {
	if err := h.snapshots.Refresh(); err != nil {
		slog.Error("failed to refresh configuration snapshot.", slog.String("err", err.Error()))
	}
}
