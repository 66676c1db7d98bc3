// Package store keeps an immutable in-memory snapshot of the cloaking
// configuration. The decision path reads the snapshot lock-free; admin writes
// go to Postgres and then swap in a freshly loaded snapshot with a single
// atomic pointer store, so concurrent evaluations never observe a half-written
// configuration.
package store

import (
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/IliaW/cloak-api/internal/model"
	"github.com/IliaW/cloak-api/internal/persistence"
)

type SnapshotStore struct {
	domainRepo   persistence.DomainStorage
	campaignRepo persistence.CampaignStorage
	linkRepo     persistence.LinkStorage
	current      atomic.Pointer[snapshot]
}

type snapshot struct {
	domains     map[string]*model.DomainConfig
	campaigns   map[campaignKey]*model.Campaign
	links       map[int64]*model.CloakedLink
	linkFilters map[int64]*model.FilterSettings
}

type campaignKey struct {
	domain string
	path   string
}

func NewSnapshotStore(domainRepo persistence.DomainStorage, campaignRepo persistence.CampaignStorage,
	linkRepo persistence.LinkStorage) *SnapshotStore {
	s := &SnapshotStore{
		domainRepo:   domainRepo,
		campaignRepo: campaignRepo,
		linkRepo:     linkRepo,
	}
	s.current.Store(emptySnapshot())

	return s
}

// Refresh loads the full configuration from the repositories and swaps it in.
// Called at startup and after every admin write. On failure the previous
// snapshot stays live, so the decision path keeps serving a consistent view.
func (s *SnapshotStore) Refresh() error {
	next := emptySnapshot()

	domains, err := s.domainRepo.GetAll()
	if err != nil {
		return err
	}
	for _, d := range domains {
		next.domains[strings.ToLower(d.DomainName)] = d
	}

	campaigns, err := s.campaignRepo.GetAll()
	if err != nil {
		return err
	}
	for _, c := range campaigns {
		next.campaigns[campaignKey{domain: strings.ToLower(c.DomainName), path: c.Path}] = c
	}

	links, err := s.linkRepo.GetAll()
	if err != nil {
		return err
	}
	for _, l := range links {
		next.links[l.ID] = l
		if f, err := s.linkRepo.GetFilters(l.ID); err == nil && f != nil {
			next.linkFilters[l.ID] = f
		}
	}

	s.current.Store(next)
	slog.Debug("configuration snapshot refreshed.",
		slog.Int("domains", len(next.domains)),
		slog.Int("campaigns", len(next.campaigns)),
		slog.Int("links", len(next.links)))

	return nil
}

func (s *SnapshotStore) DomainConfig(name string) (*model.DomainConfig, bool) {
	d, ok := s.current.Load().domains[strings.ToLower(name)]
	return d, ok
}

func (s *SnapshotStore) Campaign(domain, path string) (*model.Campaign, bool) {
	c, ok := s.current.Load().campaigns[campaignKey{domain: strings.ToLower(domain), path: path}]
	return c, ok
}

func (s *SnapshotStore) Link(id int64) (*model.CloakedLink, bool) {
	l, ok := s.current.Load().links[id]
	return l, ok
}

func (s *SnapshotStore) LinkFilters(id int64) (*model.FilterSettings, bool) {
	f, ok := s.current.Load().linkFilters[id]
	return f, ok
}

func emptySnapshot() *snapshot {
	return &snapshot{
		domains:     make(map[string]*model.DomainConfig),
		campaigns:   make(map[campaignKey]*model.Campaign),
		links:       make(map[int64]*model.CloakedLink),
		linkFilters: make(map[int64]*model.FilterSettings),
	}
}
