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

// SnapshotRefresher reloads the in-memory configuration after an admin write.
type SnapshotRefresher interface {
	Refresh() error
}

type CampaignHandler struct {
	repo       persistence.CampaignStorage
	domainRepo persistence.DomainStorage
	snapshots  SnapshotRefresher
	metrics    *telemetry.ApiMetrics
}

func NewCampaignHandler(repo persistence.CampaignStorage, domainRepo persistence.DomainStorage,
	snapshots SnapshotRefresher, metrics *telemetry.ApiMetrics) *CampaignHandler {
	return &CampaignHandler{
		repo:       repo,
		domainRepo: domainRepo,
		snapshots:  snapshots,
		metrics:    metrics,
	}
}

// Create godoc
// @Summary Create a campaign
// @Description Registers a white/black content pair for a path on an existing domain
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param request body model.CampaignCreateRequest true "Campaign definition"
// @Success 201 {object} model.Campaign "Created campaign"
// @Security ApiKeyAuth
// @Router /api/v1/cloaking/campaigns [post]
func (h *CampaignHandler) Create(c *gin.Context) {
	var req model.CampaignCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	domain := strings.ToLower(strings.TrimSpace(req.DomainName))
	path := strings.Trim(strings.TrimSpace(req.Path), "/")
	if domain == "" || path == "" || req.WhiteContent == "" || req.BlackContent == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'domain_name', 'path', 'white_content' and" +
			" 'black_content' fields are required"})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	if strings.Contains(path, "/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'path' must be a single segment without '/'"})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	if _, err := h.domainRepo.Get(domain); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("domain '%s' is not configured", domain)})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	if _, err := h.repo.Get(domain, path); err == nil {
		c.JSON(http.StatusConflict,
			gin.H{"error": fmt.Sprintf("campaign '%s' already exists for domain '%s'", path, domain)})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	campaign := &model.Campaign{
		DomainName:   domain,
		Path:         path,
		WhiteContent: req.WhiteContent,
		BlackContent: req.BlackContent,
		Filters:      req.Filters,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := h.repo.Save(campaign); err != nil {
		slog.Error("failed to save campaign.", slog.String("err", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save campaign"})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	h.refresh()

	slog.Info("campaign created.", slog.String("domain", domain), slog.String("path", path))
	c.JSON(http.StatusCreated, campaign)
}

// ListByDomain godoc
// @Summary List campaigns for a domain
// @Tags Campaigns
// @Produce json
// @Param domain path string true "Domain name"
// @Success 200 {object} model.CampaignsListResponse "Campaigns registered on the domain"
// @Security ApiKeyAuth
// @Router /api/v1/cloaking/campaigns/{domain} [get]
func (h *CampaignHandler) ListByDomain(c *gin.Context) {
	domain := strings.ToLower(c.Param("domain"))
	if _, err := h.domainRepo.Get(domain); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("domain '%s' is not configured", domain)})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	campaigns, err := h.repo.GetByDomain(domain)
	if err != nil {
		slog.Error("failed to load campaigns.", slog.String("err", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load campaigns"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	out := make([]model.Campaign, 0, len(campaigns))
	for _, campaign := range campaigns {
		out = append(out, *campaign)
	}
	c.JSON(http.StatusOK, model.CampaignsListResponse{
		DomainName: domain,
		Campaigns:  out,
	})
}

// Update godoc
// @Summary Update a campaign
// @Description Applies a partial update to the campaign content or filters
// @Tags Campaigns
// @Accept json
// @Produce json
// @Param domain path string true "Domain name"
// @Param path path string true "Campaign path"
// @Param request body model.CampaignUpdateRequest true "Fields to change"
// @Success 200 {object} model.Campaign "Updated campaign"
// @Security ApiKeyAuth
// @Router /api/v1/cloaking/campaigns/{domain}/{path} [put]
func (h *CampaignHandler) Update(c *gin.Context) {
	domain := strings.ToLower(c.Param("domain"))
	path := strings.Trim(c.Param("path"), "/")

	var req model.CampaignUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	campaign, err := h.repo.Get(domain, path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	if req.WhiteContent != nil {
		campaign.WhiteContent = *req.WhiteContent
	}
	if req.BlackContent != nil {
		campaign.BlackContent = *req.BlackContent
	}
	if req.Filters != nil {
		campaign.Filters = req.Filters
	}
	campaign.UpdatedAt = time.Now().UTC()

	updated, err := h.repo.Update(campaign)
	if err != nil {
		slog.Error("failed to update campaign.", slog.String("err", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update campaign"})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	h.refresh()

	slog.Info("campaign updated.", slog.String("domain", domain), slog.String("path", path))
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a campaign
// @Tags Campaigns
// @Produce json
// @Param domain path string true "Domain name"
// @Param path path string true "Campaign path"
// @Success 200 {object} map[string]string "Deletion confirmation"
// @Security ApiKeyAuth
// @Router /api/v1/cloaking/campaigns/{domain}/{path} [delete]
func (h *CampaignHandler) Delete(c *gin.Context) {
	domain := strings.ToLower(c.Param("domain"))
	path := strings.Trim(c.Param("path"), "/")

	if err := h.repo.Delete(domain, path); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			slog.Error("failed to delete campaign.", slog.String("err", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete campaign"})
		}
		h.metrics.ErrorResponseCounter(1)
		return
	}
	h.refresh()

	slog.Info("campaign deleted.", slog.String("domain", domain), slog.String("path", path))
	c.JSON(http.StatusOK, gin.H{
		"message":     "campaign deleted",
		"domain_name": domain,
		"path":        path,
	})
}

func (h *CampaignHandler) refresh() {
	if err := h.snapshots.Refresh(); err != nil {
		slog.Error("failed to refresh configuration snapshot.", slog.String("err", err.Error()))
	}
}
