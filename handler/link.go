package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/IliaW/cloak-api/internal/model"
	"github.com/IliaW/cloak-api/internal/persistence"
	"github.com/IliaW/cloak-api/internal/telemetry"
	"github.com/gin-gonic/gin"
)

type LinkHandler struct {
	repo      persistence.LinkStorage
	snapshots SnapshotRefresher
	metrics   *telemetry.ApiMetrics
}

func NewLinkHandler(repo persistence.LinkStorage, snapshots SnapshotRefresher,
	metrics *telemetry.ApiMetrics) *LinkHandler {
	return &LinkHandler{repo: repo, snapshots: snapshots, metrics: metrics}
}

// Create godoc
// @Summary Create a cloaked link
// @Description Registers an A/B black page pair with a white fallback
// @Tags Links
// @Accept json
// @Produce json
// @Param request body model.CloakedLinkCreateRequest true "Link definition"
// @Success 201 {object} model.CloakedLink "Created link"
// @Security ApiKeyAuth
// @Router /links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req model.CloakedLinkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	if req.CampaignName == "" || req.BlackPageUrlA == "" || req.WhitePageUrl == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'campaign_name', 'black_page_url_a' and" +
			" 'white_page_url' fields are required"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	link := &model.CloakedLink{
		CampaignName:  req.CampaignName,
		BlackPageUrlA: req.BlackPageUrlA,
		BlackPageUrlB: req.BlackPageUrlB,
		WhitePageUrl:  req.WhitePageUrl,
	}
	id, err := h.repo.Save(link)
	if err != nil {
		slog.Error("failed to save link.", slog.String("err", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save link"})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	link.ID = id
	h.refresh()

	slog.Info("cloaked link created.", slog.Int64("link_id", id),
		slog.String("campaign", req.CampaignName))
	c.JSON(http.StatusCreated, link)
}

// List godoc
// @Summary List cloaked links
// @Tags Links
// @Produce json
// @Success 200 {array} model.CloakedLink "All registered links"
// @Security ApiKeyAuth
// @Router /links [get]
func (h *LinkHandler) List(c *gin.Context) {
	links, err := h.repo.GetAll()
	if err != nil {
		slog.Error("failed to load links.", slog.String("err", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load links"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	c.JSON(http.StatusOK, links)
}

// GetFilters godoc
// @Summary Get filter settings for a link
// @Description Returns the stored overrides; an empty object means the link inherits every default
// @Tags Links
// @Produce json
// @Param link_id path int true "Link id"
// @Success 200 {object} model.FilterSettings "Stored filter overrides"
// @Security ApiKeyAuth
// @Router /links/{link_id}/filters [get]
func (h *LinkHandler) GetFilters(c *gin.Context) {
	id, ok := h.linkID(c)
	if !ok {
		return
	}
	if _, err := h.repo.Get(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	filters, err := h.repo.GetFilters(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusOK, &model.FilterSettings{})
			return
		}
		slog.Error("failed to load link filters.", slog.String("err", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load link filters"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	c.JSON(http.StatusOK, filters)
}

// UpdateFilters godoc
// @Summary Replace filter settings for a link
// @Tags Links
// @Accept json
// @Produce json
// @Param link_id path int true "Link id"
// @Param request body model.UpdateLinkFiltersRequest true "New filter overrides"
// @Success 200 {object} model.FilterUpdateResponse "Update confirmation"
// @Security ApiKeyAuth
// @Router /links/{link_id}/filters [put]
func (h *LinkHandler) UpdateFilters(c *gin.Context) {
	id, ok := h.linkID(c)
	if !ok {
		return
	}

	var req model.UpdateLinkFiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Filters == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'filters' field is required"})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	if _, err := h.repo.Get(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	if err := h.repo.SaveFilters(id, req.Filters); err != nil {
		slog.Error("failed to save link filters.", slog.String("err", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save link filters"})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	h.refresh()

	slog.Info("link filters updated.", slog.Int64("link_id", id))
	c.JSON(http.StatusOK, model.FilterUpdateResponse{
		LinkID:  strconv.FormatInt(id, 10),
		Message: "filter settings updated",
	})
}

func (h *LinkHandler) linkID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("link_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'link_id' must be an integer"})
		h.metrics.ErrorResponseCounter(1)
		return 0, false
	}
	return id, true
}

func (h *LinkHandler) refresh() {
	if err := h.snapshots.Refresh(); err != nil {
		slog.Error("failed to refresh configuration snapshot.", slog.String("err", err.Error()))
	}
}
