package logic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"post_sentinel/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_session.go -package mocks post_sentinel/logic ISessionManager

const loginTimeoutSec = 15

// Session is the shared authenticated handle to the scrape gateway. Exactly one
// live session exists at a time; callers get the same one until it is
// invalidated.
type Session struct {
	Token     string
	CreatedAt time.Time
}

type ISessionManager interface {
	// Acquire returns the live session, logging in if needed. It blocks while a
	// throttling cool-down is in effect, honoring ctx cancellation. After the
	// gateway rejects the credentials, Acquire keeps returning ErrAuthFailed
	// without further login attempts until restart.
	Acquire(ctx context.Context) (*Session, error)
	// Invalidate marks the session dead; the next Acquire re-authenticates.
	Invalidate(s *Session)
	// ReportThrottled starts (or extends) the cool-down; each report doubles the
	// interval up to the configured ceiling.
	ReportThrottled()
	// ReportSuccess resets the cool-down interval to its base value.
	ReportSuccess()
}

type sessionManager struct {
	cfg       *shared.Config
	logger    shared.ILogger
	metrics   IMetrics
	client    *http.Client
	mu         sync.Mutex
	current    *Session
	coolUntil  time.Time
	coolSec    int
	authFailed bool
}

func NewSessionManager(cfg *shared.Config, logger shared.ILogger, metrics IMetrics) ISessionManager {
	return &sessionManager{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		client:  &http.Client{Timeout: loginTimeoutSec * time.Second},
		coolSec: cfg.CooldownBaseSec,
	}
}

func (sm *sessionManager) Acquire(ctx context.Context) (*Session, error) {

	if err := sm.waitCooldown(ctx); err != nil {
		return nil, err
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	// Once the gateway has rejected the credentials, stop contacting it.
	// Repeated failed logins risk locking the account upstream; the latch
	// holds until restart with fixed credentials.
	if sm.authFailed {
		return nil, ErrAuthFailed
	}

	if sm.current != nil {
		return sm.current, nil
	}

	s, err := sm.login(ctx)
	if err != nil {
		if errors.Is(err, ErrAuthFailed) {
			sm.authFailed = true
		}
		return nil, err
	}
	sm.current = s
	return s, nil
}

func (sm *sessionManager) waitCooldown(ctx context.Context) error {
	for {
		sm.mu.Lock()
		wait := time.Until(sm.coolUntil)
		sm.mu.Unlock()
		if wait <= 0 {
			return nil
		}
		sm.logger.Debugf("Cool-down in effect; waiting %v", wait)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (sm *sessionManager) login(ctx context.Context) (*Session, error) {

	sm.logger.Infof("Logging in to gateway at %s", sm.cfg.GatewayUrl)

	reqBody, err := json.Marshal(map[string]string{
		"username": sm.cfg.Secrets.GatewayUser,
		"password": sm.cfg.Secrets.GatewayPassword,
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", sm.cfg.GatewayUrl+"/api/session",
		bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := sm.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		sm.logger.Errorf("Gateway rejected credentials with status %d", resp.StatusCode)
		return nil, ErrAuthFailed
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		sm.reportThrottledLocked()
		return nil, ErrThrottled
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: login failed with status %d", ErrUnavailable, resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: malformed login response: %v", ErrUnavailable, err)
	}
	if body.Token == "" {
		return nil, fmt.Errorf("%w: login response carried no token", ErrUnavailable)
	}

	sm.logger.Infof("Gateway session established")
	return &Session{Token: body.Token, CreatedAt: time.Now().UTC()}, nil
}

func (sm *sessionManager) Invalidate(s *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.current != nil && s != nil && sm.current.Token == s.Token {
		sm.logger.Infof("Invalidating gateway session")
		sm.current = nil
	}
}

func (sm *sessionManager) ReportThrottled() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.reportThrottledLocked()
}

func (sm *sessionManager) reportThrottledLocked() {
	sm.coolUntil = time.Now().Add(time.Duration(sm.coolSec) * time.Second)
	sm.logger.Warnf("Throttled by gateway; cooling down for %d seconds", sm.coolSec)
	sm.metrics.FetchThrottled()
	sm.coolSec = sm.coolSec * 2
	if sm.coolSec > sm.cfg.CooldownMaxSec {
		sm.coolSec = sm.cfg.CooldownMaxSec
	}
}

func (sm *sessionManager) ReportSuccess() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.coolSec = sm.cfg.CooldownBaseSec
}
