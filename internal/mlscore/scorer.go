package mlscore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/IliaW/cloak-api/config"
)

// Scorer returns the bot probability for a fingerprint. ok=false means the
// score is unavailable (disabled, timed out, bad response); the decision path
// treats that as an absent signal, never as 0 or 1.
//
//go:generate go run github.com/vektra/mockery/v2@v2.53.0 --name Scorer
type Scorer interface {
	Score(ctx context.Context, fingerprintHash string) (float64, bool)
}

type HttpScorer struct {
	cfg        *config.ScorerConfig
	httpClient *http.Client
}

func NewHttpScorer(cfg *config.ScorerConfig, httpClient *http.Client) *HttpScorer {
	return &HttpScorer{cfg: cfg, httpClient: httpClient}
}

type scoreRequest struct {
	Fingerprint string `json:"fingerprint"`
}

type scoreResponse struct {
	MlScore float64 `json:"ml_score"`
}

func (s *HttpScorer) Score(ctx context.Context, fingerprintHash string) (float64, bool) {
	if !s.cfg.Enabled || fingerprintHash == "" {
		return 0, false
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(scoreRequest{Fingerprint: fingerprintHash})
	if err != nil {
		return 0, false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Url, strings.NewReader(string(body)))
	if err != nil {
		slog.Error("failed to build scorer request.", slog.String("err", err.Error()))
		return 0, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		slog.Warn("ml scorer unavailable.", slog.String("err", err.Error()))
		return 0, false
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("error closing scorer response body.", slog.String("err", err.Error()))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		slog.Warn(fmt.Sprintf("ml scorer returned status %d", resp.StatusCode))
		return 0, false
	}
	var sr scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		slog.Warn("failed to decode scorer response.", slog.String("err", err.Error()))
		return 0, false
	}
	if sr.MlScore < 0 || sr.MlScore > 1 {
		slog.Warn(fmt.Sprintf("ml scorer returned out-of-range score %f", sr.MlScore))
		return 0, false
	}

	return sr.MlScore, true
}
