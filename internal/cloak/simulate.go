package cloak

import (
	"strconv"
	"strings"

	"github.com/IliaW/cloak-api/internal/model"
)

// DefaultFiltersLinkID is the sentinel the dashboard sends when a simulation
// should run against the library defaults instead of a stored link.
const DefaultFiltersLinkID = "campaign_default_filters"

// Simulator replays the production decision path against synthetic request
// parameters. No live lookups happen: the country code comes straight from
// the input, the ML score stays absent, and the engine call is the same one
// the live handlers make. A trace recorded here is valid evidence for the
// live path.
type Simulator struct {
	resolver *Resolver
}

func NewSimulator(resolver *Resolver) *Simulator {
	return &Simulator{resolver: resolver}
}

func (s *Simulator) Simulate(params model.SimulationParams) model.DecisionTrace {
	ctx := model.RequestContext{
		ClientIP:    params.IpAddress,
		UserAgent:   params.UserAgent,
		CountryCode: strings.ToUpper(strings.TrimSpace(params.CountryCode)),
		DeviceType:  normalizeDevice(params.DeviceType),
	}

	cfg := s.resolver.Defaults()
	if id, ok := parseLinkID(params.LinkID); ok {
		cfg = s.resolver.ResolveForLink(id)
	}

	return Decide(ctx, cfg)
}

func parseLinkID(raw string) (int64, bool) {
	if raw == "" || raw == DefaultFiltersLinkID {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func normalizeDevice(d string) string {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case model.DeviceMobile:
		return model.DeviceMobile
	case model.DeviceDesktop:
		return model.DeviceDesktop
	default:
		return ""
	}
}
