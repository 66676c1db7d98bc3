package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/IliaW/cloak-api/internal/model"
	"github.com/lib/pq"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name DomainStorage
type DomainStorage interface {
	Get(string) (*model.DomainConfig, error)
	GetAll() ([]*model.DomainConfig, error)
	Upsert(*model.DomainConfig) error
	Delete(string) error
}

type DomainRepository struct {
	db *sql.DB
}

func NewDomainRepository(db *sql.DB) *DomainRepository {
	return &DomainRepository{db: db}
}

func (r *DomainRepository) Get(name string) (*model.DomainConfig, error) {
	row := r.db.QueryRow(`SELECT domain_name, white_page_url, black_page_url, blocked_countries, filters, status,
										created_at, updated_at
										FROM cloaking.domain_config WHERE domain_name = $1`, strings.ToLower(name))
	dc, err := scanDomain(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New(fmt.Sprintf("domain config '%s' not found", name))
		}
		slog.Debug("failed to get domain config from database.", slog.String("err", err.Error()))
		return nil, err
	}
	slog.Debug("domain config fetched from db.")

	return dc, nil
}

func (r *DomainRepository) GetAll() ([]*model.DomainConfig, error) {
	rows, err := r.db.Query(`SELECT domain_name, white_page_url, black_page_url, blocked_countries, filters, status,
										created_at, updated_at
										FROM cloaking.domain_config`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []*model.DomainConfig
	for rows.Next() {
		dc, err := scanDomain(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, dc)
	}

	return configs, rows.Err()
}

func (r *DomainRepository) Upsert(dc *model.DomainConfig) error {
	filters, err := marshalFilters(dc.Filters)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`INSERT INTO cloaking.domain_config
							(domain_name, white_page_url, black_page_url, blocked_countries, filters, status)
							VALUES ($1, $2, $3, $4, $5, $6)
							ON CONFLICT (domain_name) DO UPDATE SET
								white_page_url = EXCLUDED.white_page_url,
								black_page_url = EXCLUDED.black_page_url,
								blocked_countries = EXCLUDED.blocked_countries,
								filters = EXCLUDED.filters,
								status = EXCLUDED.status,
								updated_at = now()`,
		strings.ToLower(dc.DomainName), dc.WhitePageUrl, dc.BlackPageUrl,
		pq.Array(dc.BlockedCountries), filters, dc.Status)
	if err != nil {
		return err
	}
	slog.Debug("domain config saved to db.")

	return nil
}

func (r *DomainRepository) Delete(name string) error {
	res, err := r.db.Exec("DELETE FROM cloaking.domain_config WHERE domain_name = $1", strings.ToLower(name))
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return errors.New(fmt.Sprintf("domain config '%s' not found", name))
	}
	slog.Debug("domain config deleted from db.")

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDomain(row rowScanner) (*model.DomainConfig, error) {
	var dc model.DomainConfig
	var countries pq.StringArray
	var filters sql.NullString
	err := row.Scan(&dc.DomainName, &dc.WhitePageUrl, &dc.BlackPageUrl, &countries, &filters, &dc.Status,
		&dc.CreatedAt, &dc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	dc.BlockedCountries = countries
	dc.Filters, err = unmarshalFilters(filters)
	if err != nil {
		return nil, err
	}

	return &dc, nil
}

func marshalFilters(f *model.FilterSettings) (any, error) {
	if f == nil {
		return nil, nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func unmarshalFilters(raw sql.NullString) (*model.FilterSettings, error) {
	if !raw.Valid || raw.String == "" {
		return nil, nil
	}
	var f model.FilterSettings
	if err := json.Unmarshal([]byte(raw.String), &f); err != nil {
		return nil, err
	}
	return &f, nil
}
