package turnstile

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/IliaW/cloak-api/config"
	"github.com/IliaW/cloak-api/internal/model"
)

// Verifier proxies token validation to the Cloudflare Turnstile siteverify
// endpoint.
//
//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name Verifier
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (*model.TurnstileValidationResponse, error)
}

type Client struct {
	cfg        *config.TurnstileConfig
	httpClient *http.Client
}

func NewClient(cfg *config.TurnstileConfig, httpClient *http.Client) *Client {
	return &Client{cfg: cfg, httpClient: httpClient}
}

func (c *Client) Verify(ctx context.Context, token, remoteIP string) (*model.TurnstileValidationResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	form := url.Values{}
	form.Set("secret", c.cfg.SecretKey)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.VerifyUrl,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("error closing turnstile response body.", slog.String("err", err.Error()))
		}
	}()

	// siteverify uses hyphenated error-codes; remap to the API contract.
	var raw siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	return &model.TurnstileValidationResponse{
		Success:     raw.Success,
		ChallengeTs: raw.ChallengeTs,
		Hostname:    raw.Hostname,
		ErrorCodes:  raw.ErrorCodes,
		Action:      raw.Action,
		Cdata:       raw.Cdata,
	}, nil
}

type siteverifyResponse struct {
	Success     bool     `json:"success"`
	ChallengeTs string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
	Action      string   `json:"action"`
	Cdata       string   `json:"cdata"`
}
