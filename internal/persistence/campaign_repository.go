package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/IliaW/cloak-api/internal/model"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name CampaignStorage
type CampaignStorage interface {
	Get(domain, path string) (*model.Campaign, error)
	GetByDomain(domain string) ([]*model.Campaign, error)
	GetAll() ([]*model.Campaign, error)
	Save(*model.Campaign) error
	Update(*model.Campaign) (*model.Campaign, error)
	Delete(domain, path string) error
}

type CampaignRepository struct {
	db *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func (r *CampaignRepository) Get(domain, path string) (*model.Campaign, error) {
	row := r.db.QueryRow(`SELECT domain_name, path, white_content, black_content, filters, created_at, updated_at
										FROM cloaking.campaign WHERE domain_name = $1 AND path = $2`,
		strings.ToLower(domain), path)
	c, err := scanCampaign(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New(fmt.Sprintf("campaign '%s' not found for domain '%s'", path, domain))
		}
		slog.Debug("failed to get campaign from database.", slog.String("err", err.Error()))
		return nil, err
	}
	slog.Debug("campaign fetched from db.")

	return c, nil
}

func (r *CampaignRepository) GetByDomain(domain string) ([]*model.Campaign, error) {
	return r.query(`SELECT domain_name, path, white_content, black_content, filters, created_at, updated_at
								FROM cloaking.campaign WHERE domain_name = $1 ORDER BY path`, strings.ToLower(domain))
}

func (r *CampaignRepository) GetAll() ([]*model.Campaign, error) {
	return r.query(`SELECT domain_name, path, white_content, black_content, filters, created_at, updated_at
								FROM cloaking.campaign`)
}

func (r *CampaignRepository) Save(c *model.Campaign) error {
	filters, err := marshalFilters(c.Filters)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`INSERT INTO cloaking.campaign (domain_name, path, white_content, black_content, filters)
							VALUES ($1, $2, $3, $4, $5)`,
		strings.ToLower(c.DomainName), c.Path, c.WhiteContent, c.BlackContent, filters)
	if err != nil {
		return err
	}
	slog.Debug("campaign saved to db.")

	return nil
}

func (r *CampaignRepository) Update(c *model.Campaign) (*model.Campaign, error) {
	filters, err := marshalFilters(c.Filters)
	if err != nil {
		return nil, err
	}
	_, err = r.db.Exec(`UPDATE cloaking.campaign SET white_content = $1, black_content = $2, filters = $3,
							updated_at = now() WHERE domain_name = $4 AND path = $5`,
		c.WhiteContent, c.BlackContent, filters, strings.ToLower(c.DomainName), c.Path)
	if err != nil {
		return nil, err
	}
	slog.Debug("campaign updated in db.")

	return r.Get(c.DomainName, c.Path)
}

func (r *CampaignRepository) Delete(domain, path string) error {
	res, err := r.db.Exec("DELETE FROM cloaking.campaign WHERE domain_name = $1 AND path = $2",
		strings.ToLower(domain), path)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return errors.New(fmt.Sprintf("campaign '%s' not found for domain '%s'", path, domain))
	}
	slog.Debug("campaign deleted from db.")

	return nil
}

func (r *CampaignRepository) query(q string, args ...any) ([]*model.Campaign, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []*model.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}

	return campaigns, rows.Err()
}

func scanCampaign(row rowScanner) (*model.Campaign, error) {
	var c model.Campaign
	var filters sql.NullString
	err := row.Scan(&c.DomainName, &c.Path, &c.WhiteContent, &c.BlackContent, &filters, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Filters, err = unmarshalFilters(filters)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
