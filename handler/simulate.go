package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/IliaW/cloak-api/internal/cloak"
	"github.com/IliaW/cloak-api/internal/model"
	"github.com/IliaW/cloak-api/internal/telemetry"
	"github.com/gin-gonic/gin"
)

type SimulationHandler struct {
	sim     *cloak.Simulator
	metrics *telemetry.ApiMetrics
}

func NewSimulationHandler(sim *cloak.Simulator, metrics *telemetry.ApiMetrics) *SimulationHandler {
	return &SimulationHandler{sim: sim, metrics: metrics}
}

// Simulate godoc
// @Summary Replay the decision path against synthetic request parameters
// @Description Runs the same filter chain as the live path and returns the full decision trace
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.SimulationParams true "Synthetic request"
// @Success 200 {object} model.DecisionTrace "Decision with per-filter trace"
// @Router /admin/simulate_request [post]
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var params model.SimulationParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body. %s", err.Error())})
		h.metrics.ErrorResponseCounter(1)
		return
	}
	if params.UserAgent == "" || params.IpAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'user_agent' and 'ip_address' fields are required"})
		h.metrics.ErrorResponseCounter(1)
		return
	}

	trace := h.sim.Simulate(params)
	h.metrics.SimulationCounter(1)
	slog.Info("simulation completed.", slog.String("decision", trace.Decision),
		slog.String("reason", trace.Reason))

	c.JSON(http.StatusOK, trace)
}
