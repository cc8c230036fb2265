package logic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"post_sentinel/shared"
)

func makeSessionConfig(gatewayUrl string) *shared.Config {
	cfg := &shared.Config{
		GatewayUrl:      gatewayUrl,
		CooldownBaseSec: 10,
		CooldownMaxSec:  35,
	}
	cfg.Secrets.GatewayUser = "sentinel"
	cfg.Secrets.GatewayPassword = "hunter2"
	return cfg
}

func TestCooldownDoublesThenCaps(t *testing.T) {

	sm := NewSessionManager(makeSessionConfig(""), nopLogger{}, nopMetrics{}).(*sessionManager)

	assert.Equal(t, 10, sm.coolSec)
	sm.ReportThrottled()
	assert.Equal(t, 20, sm.coolSec)
	sm.ReportThrottled()
	assert.Equal(t, 35, sm.coolSec)
	sm.ReportThrottled()
	assert.Equal(t, 35, sm.coolSec)

	sm.ReportSuccess()
	assert.Equal(t, 10, sm.coolSec)
}

func TestAcquireLogsInOnceAndCaches(t *testing.T) {

	var logins int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/api/session", r.URL.Path)
		atomic.AddInt32(&logins, 1)
		fmt.Fprintln(w, `{"token": "tok-123"}`)
	}))
	defer srv.Close()

	sm := NewSessionManager(makeSessionConfig(srv.URL), nopLogger{}, nopMetrics{})

	s1, err := sm.Acquire(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, "tok-123", s1.Token)

	s2, err := sm.Acquire(context.Background())
	assert.Nil(t, err)
	assert.Same(t, s1, s2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&logins))
}

func TestAcquireReLogsInAfterInvalidate(t *testing.T) {

	var logins int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&logins, 1)
		fmt.Fprintf(w, `{"token": "tok-%d"}`, n)
	}))
	defer srv.Close()

	sm := NewSessionManager(makeSessionConfig(srv.URL), nopLogger{}, nopMetrics{})

	s1, err := sm.Acquire(context.Background())
	assert.Nil(t, err)
	sm.Invalidate(s1)

	s2, err := sm.Acquire(context.Background())
	assert.Nil(t, err)
	assert.NotEqual(t, s1.Token, s2.Token)
	assert.Equal(t, int32(2), atomic.LoadInt32(&logins))
}

func TestAcquireRejectedCredentials(t *testing.T) {

	var logins int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&logins, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sm := NewSessionManager(makeSessionConfig(srv.URL), nopLogger{}, nopMetrics{})

	_, err := sm.Acquire(context.Background())
	assert.True(t, errors.Is(err, ErrAuthFailed))

	// The rejection latches: later Acquire calls fail without logging in again,
	// so bad credentials never hammer the gateway into a lockout.
	for i := 0; i < 4; i++ {
		_, err = sm.Acquire(context.Background())
		assert.True(t, errors.Is(err, ErrAuthFailed))
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&logins))
}

func TestAcquireThrottledLogin(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	sm := NewSessionManager(makeSessionConfig(srv.URL), nopLogger{}, nopMetrics{}).(*sessionManager)

	_, err := sm.Acquire(context.Background())
	assert.True(t, errors.Is(err, ErrThrottled))
	// The throttled login itself starts the cool-down
	assert.Equal(t, 20, sm.coolSec)
}

func TestAcquireHonorsContextDuringCooldown(t *testing.T) {

	sm := NewSessionManager(makeSessionConfig(""), nopLogger{}, nopMetrics{}).(*sessionManager)
	sm.mu.Lock()
	sm.coolUntil = time.Now().Add(time.Hour)
	sm.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := sm.Acquire(ctx)
	assert.NotNil(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
