package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "*/extract", Method: "POST", Limit: 2, Window: time.Hour, Burst: 2},
		},
	}
}

func TestAllowWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, info := l.Allow("1.2.3.4", "/sessions/abc/extract", "POST")
		assert.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 2, info.Limit)
	}

	allowed, info := l.Allow("1.2.3.4", "/sessions/abc/extract", "POST")
	assert.False(t, allowed)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.1.1.1", "/sessions/abc/extract", "POST")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("1.1.1.1", "/sessions/abc/extract", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("2.2.2.2", "/sessions/abc/extract", "POST")
	assert.True(t, allowed)
}

func TestDisabledLimiterAllowsEverything(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/sessions/abc/extract", "POST")
		require.True(t, allowed)
	}
}

func TestWhitelistBypassesLimits(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["9.9.9.9"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("9.9.9.9", "/sessions/abc/extract", "POST")
		require.True(t, allowed)
	}
}

func TestBlacklistRejectsImmediately(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["6.6.6.6"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, _ := l.Allow("6.6.6.6", "/templates", "GET")
	assert.False(t, allowed)
}

func TestHealthIsUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "*/extract", Method: "POST", Limit: 20},
		{Path: "/sessions", Method: "POST", Limit: 60},
		{Path: "/static/", Method: "GET", Limit: 500},
	}

	tests := []struct {
		name   string
		path   string
		method string
		want   int // expected Limit, -1 for no match
	}{
		{name: "suffix pattern", path: "/sessions/abc/extract", method: "POST", want: 20},
		{name: "exact", path: "/sessions", method: "POST", want: 60},
		{name: "prefix", path: "/static/css/app.css", method: "GET", want: 500},
		{name: "method mismatch", path: "/sessions", method: "GET", want: -1},
		{name: "no match", path: "/templates", method: "GET", want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.want < 0 {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Limit)
		})
	}
}

func TestBucketRefills(t *testing.T) {
	tb := newTokenBucket(1, 100) // 100 tokens/sec, capacity 1
	require.True(t, tb.allow())
	require.False(t, tb.allow())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, tb.allow())
}
