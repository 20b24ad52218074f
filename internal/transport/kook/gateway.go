package kook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sandevgo/kord/internal/core"
	"github.com/sandevgo/kord/pkg/log"
	"github.com/sandevgo/kord/pkg/retry"
)

const heartbeatInterval = 30 * time.Second

// EventHandler receives each decoded chat message as its own task.
type EventHandler func(ctx context.Context, s *core.Session)

// Gateway maintains the websocket connection to the platform: it resolves
// the gateway URL, performs the hello handshake, answers the heartbeat and
// reconnects with backoff when the connection drops.
type Gateway struct {
	token   string
	baseURL string
	client  *http.Client

	sn int64 // last seen event sequence number

	mu      sync.Mutex
	writeMu sync.Mutex
	conn    *websocket.Conn
}

func NewGateway(token string) *Gateway {
	return &Gateway{
		token:   token,
		baseURL: defaultAPIBase,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Run connects and processes frames until ctx is cancelled. Connection drops
// and server-requested reconnects are retried with backoff.
func (g *Gateway) Run(ctx context.Context, handle EventHandler) error {
	logger := log.FromCtx(ctx)

	retryCfg := retry.NewDefaultConfig()
	retryCfg.OnRetry = func(attempt int, err error, delay time.Duration) {
		logger.Warn().Err(err).Int("attempt", attempt).Dur("delay", delay).Msg("gateway connect failed, backing off")
	}
	retrier := retry.NewRetrier(retryCfg)

	for {
		var conn *websocket.Conn
		err := retrier.Do(ctx, func() error {
			var err error
			conn, err = g.dial(ctx)
			return err
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("connect gateway: %w", err)
		}

		logger.Info().Msg("gateway connected")
		err = g.readLoop(ctx, conn, handle)
		if ctx.Err() != nil {
			return nil
		}
		logger.Warn().Err(err).Msg("gateway connection lost, reconnecting")
	}
}

// Close tears down the current connection, unblocking Run's read loop.
func (g *Gateway) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.conn != nil {
		_ = g.conn.Close()
		g.conn = nil
	}
}

// dial resolves the gateway URL, opens the websocket and waits for the hello
// frame.
func (g *Gateway) dial(ctx context.Context) (*websocket.Conn, error) {
	url, err := g.resolveURL(ctx)
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(10 * time.Second)); err != nil {
		conn.Close()
		return nil, err
	}
	var f frame
	if err := conn.ReadJSON(&f); err != nil {
		conn.Close()
		return nil, fmt.Errorf("read hello: %w", err)
	}
	if f.Signal != signalHello {
		conn.Close()
		return nil, fmt.Errorf("expected hello frame, got signal %d", f.Signal)
	}
	var hello helloData
	if err := json.Unmarshal(f.Data, &hello); err != nil {
		conn.Close()
		return nil, fmt.Errorf("decode hello: %w", err)
	}
	if hello.Code != 0 {
		conn.Close()
		return nil, fmt.Errorf("gateway refused connection: code %d", hello.Code)
	}
	_ = conn.SetReadDeadline(time.Time{})

	g.mu.Lock()
	g.conn = conn
	g.mu.Unlock()
	return conn, nil
}

func (g *Gateway) readLoop(ctx context.Context, conn *websocket.Conn, handle EventHandler) error {
	logger := log.FromCtx(ctx)

	done := make(chan struct{})
	defer close(done)
	go g.heartbeat(ctx, conn, done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var f frame
		if err := json.Unmarshal(raw, &f); err != nil {
			logger.Warn().Err(err).Msg("dropping malformed gateway frame")
			continue
		}

		switch f.Signal {
		case signalEvent:
			atomic.StoreInt64(&g.sn, f.SN)
			var e event
			if err := json.Unmarshal(f.Data, &e); err != nil {
				logger.Warn().Err(err).Msg("dropping malformed event payload")
				continue
			}
			if s := e.session(); s != nil {
				// Each message runs as its own task; a slow handler stalls
				// only that message.
				go handle(ctx, s)
			}
		case signalPong:
			// Heartbeat acknowledged.
		case signalReconnect:
			return errors.New("server requested reconnect")
		}
	}
}

func (g *Gateway) heartbeat(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.writeMu.Lock()
			err := conn.WriteJSON(frame{Signal: signalPing, SN: atomic.LoadInt64(&g.sn)})
			g.writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (g *Gateway) resolveURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/gateway/index?compress=0", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bot "+g.token)
	req.Header.Set("User-Agent", core.KordUserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("resolve gateway url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("resolve gateway url: unexpected status %s", resp.Status)
	}
	var ar apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
		return "", fmt.Errorf("decode gateway response: %w", err)
	}
	if ar.Code != 0 {
		return "", fmt.Errorf("resolve gateway url: api error %d: %s", ar.Code, ar.Message)
	}
	var data struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(ar.Data, &data); err != nil {
		return "", fmt.Errorf("decode gateway url: %w", err)
	}
	if data.URL == "" {
		return "", errors.New("gateway api returned empty url")
	}
	return data.URL, nil
}
