package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/IliaW/cloak-api/internal/model"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name LinkStorage
type LinkStorage interface {
	Get(int64) (*model.CloakedLink, error)
	GetAll() ([]*model.CloakedLink, error)
	Save(*model.CloakedLink) (int64, error)
	GetFilters(int64) (*model.FilterSettings, error)
	SaveFilters(int64, *model.FilterSettings) error
}

type LinkRepository struct {
	db *sql.DB
}

func NewLinkRepository(db *sql.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) Get(id int64) (*model.CloakedLink, error) {
	var l model.CloakedLink
	var blackB sql.NullString
	row := r.db.QueryRow(`SELECT id, campaign_name, black_page_url_a, black_page_url_b, white_page_url
										FROM cloaking.cloaked_link WHERE id = $1`, id)
	err := row.Scan(&l.ID, &l.CampaignName, &l.BlackPageUrlA, &blackB, &l.WhitePageUrl)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New(fmt.Sprintf("link with id '%d' not found", id))
		}
		slog.Debug("failed to get link from database.", slog.String("err", err.Error()))
		return nil, err
	}
	l.BlackPageUrlB = blackB.String
	slog.Debug("link fetched from db.")

	return &l, nil
}

func (r *LinkRepository) GetAll() ([]*model.CloakedLink, error) {
	rows, err := r.db.Query(`SELECT id, campaign_name, black_page_url_a, black_page_url_b, white_page_url
										FROM cloaking.cloaked_link ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*model.CloakedLink
	for rows.Next() {
		var l model.CloakedLink
		var blackB sql.NullString
		if err := rows.Scan(&l.ID, &l.CampaignName, &l.BlackPageUrlA, &blackB, &l.WhitePageUrl); err != nil {
			return nil, err
		}
		l.BlackPageUrlB = blackB.String
		links = append(links, &l)
	}

	return links, rows.Err()
}

func (r *LinkRepository) Save(l *model.CloakedLink) (int64, error) {
	var id int64
	var blackB any
	if l.BlackPageUrlB != "" {
		blackB = l.BlackPageUrlB
	}
	err := r.db.QueryRow(`INSERT INTO cloaking.cloaked_link (campaign_name, black_page_url_a, black_page_url_b,
							white_page_url) VALUES ($1, $2, $3, $4) RETURNING id`,
		l.CampaignName, l.BlackPageUrlA, blackB, l.WhitePageUrl).Scan(&id)
	if err != nil {
		return 0, err
	}
	slog.Debug("link saved to db.")

	return id, nil
}

func (r *LinkRepository) GetFilters(id int64) (*model.FilterSettings, error) {
	var raw sql.NullString
	row := r.db.QueryRow("SELECT filters FROM cloaking.link_filters WHERE link_id = $1", id)
	err := row.Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New(fmt.Sprintf("filters for link '%d' not found", id))
		}
		slog.Debug("failed to get link filters from database.", slog.String("err", err.Error()))
		return nil, err
	}
	slog.Debug("link filters fetched from db.")

	return unmarshalFilters(raw)
}

func (r *LinkRepository) SaveFilters(id int64, f *model.FilterSettings) error {
	filters, err := marshalFilters(f)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`INSERT INTO cloaking.link_filters (link_id, filters) VALUES ($1, $2)
							ON CONFLICT (link_id) DO UPDATE SET filters = EXCLUDED.filters, updated_at = now()`,
		id, filters)
	if err != nil {
		return err
	}
	slog.Debug("link filters saved to db.")

	return nil
}
