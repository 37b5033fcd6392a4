package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"interviewlens/internal/config"
	"interviewlens/internal/insight"
)

// FollowupClient calls the external follow-up generation endpoint. It
// implements insight.FollowupSource: every failure mode (disabled config,
// transport error, non-2xx status, malformed body, empty list,
// cancellation) collapses to a nil result so the engine falls back to its
// template library. It never returns an error to its caller.
type FollowupClient struct {
	config *config.FollowupConfig
	client *http.Client
}

// NewFollowupClient creates a new follow-up client
func NewFollowupClient(cfg *config.FollowupConfig) *FollowupClient {
	return &FollowupClient{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

type followupRequest struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer,omitempty"`
	Category string   `json:"category,omitempty"`
	Topic    string   `json:"topic,omitempty"`
	Score    *float64 `json:"score,omitempty"`
	History  []string `json:"history,omitempty"`
}

type followupItem struct {
	Question string `json:"question"`
	Reason   string `json:"reason"`
}

// followupResponse tolerates the followups array at the top level, nested
// under a data wrapper object, or with data itself being the array.
type followupResponse struct {
	Followups []followupItem  `json:"followups"`
	Data      json.RawMessage `json:"data"`
}

// RequestFollowups performs a single POST to the configured endpoint and
// returns the raw candidates, or nil when nothing usable came back.
func (c *FollowupClient) RequestFollowups(ctx context.Context, query insight.FollowupQuery) []insight.FollowupCandidate {
	if !c.config.IsEnabled() {
		return nil
	}
	if strings.TrimSpace(query.Question) == "" {
		return nil
	}

	body, err := json.Marshal(followupRequest{
		Question: query.Question,
		Answer:   query.Answer,
		Category: query.Category,
		Topic:    query.Topic,
		Score:    query.Score,
		History:  query.History,
	})
	if err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Printf("followup request failed, falling back to templates: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("followup request returned status %d, falling back to templates", resp.StatusCode)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}

	var parsed followupResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("followup response not valid JSON, falling back to templates: %v", err)
		return nil
	}

	list := parsed.Followups
	if len(list) == 0 && len(parsed.Data) > 0 {
		var wrapped struct {
			Followups []followupItem `json:"followups"`
		}
		if err := json.Unmarshal(parsed.Data, &wrapped); err == nil {
			list = wrapped.Followups
		}
		if len(list) == 0 {
			var arr []followupItem
			if err := json.Unmarshal(parsed.Data, &arr); err == nil {
				list = arr
			}
		}
	}
	if len(list) == 0 {
		return nil
	}

	candidates := make([]insight.FollowupCandidate, 0, len(list))
	for _, item := range list {
		if strings.TrimSpace(item.Question) == "" {
			continue
		}
		candidates = append(candidates, insight.FollowupCandidate{
			Question: item.Question,
			Reason:   item.Reason,
		})
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates
}
