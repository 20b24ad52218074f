package kook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sandevgo/kord/internal/core"
	"github.com/sandevgo/kord/pkg/conv"
	"golang.org/x/time/rate"
)

const defaultAPIBase = "https://www.kookapp.cn/api/v3"

// Sender is the REST message client. It implements core.Sender and keeps
// outbound traffic under the platform rate limit.
type Sender struct {
	token   string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

func NewSender(token string) *Sender {
	return &Sender{
		token:   token,
		baseURL: defaultAPIBase,
		client:  &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(5), 5),
	}
}

type messageCreateRequest struct {
	Type     int    `json:"type"`
	TargetID string `json:"target_id"`
	Content  string `json:"content"`
	Quote    string `json:"quote,omitempty"`
}

type apiResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *Sender) SendMessage(ctx context.Context, channelID, content string, opts ...core.SendOption) error {
	o := core.BuildSendOptions(opts...)
	if o.Type == core.MessageTypeKMarkdown {
		content = strings.TrimSpace(conv.MarkdownToKMarkdown([]byte(content)))
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(messageCreateRequest{
		Type:     int(o.Type),
		TargetID: channelID,
		Content:  content,
		Quote:    o.Quote,
	})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/message/create", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bot "+s.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", core.KordUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("send message: unexpected status %s", resp.Status)
	}
	var ar apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return fmt.Errorf("decode send response: %w", err)
	}
	if ar.Code != 0 {
		return fmt.Errorf("send message: api error %d: %s", ar.Code, ar.Message)
	}
	return nil
}
