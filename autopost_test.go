package listcord

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAutoPoster_Validation(t *testing.T) {
	testCases := []struct {
		Name        string
		Host        Host
		Opts        []AutoPostOption
		ExpectError error
		ExpectEvery time.Duration
	}{
		{
			Name:        "no_host",
			ExpectError: ErrNoHost,
		},
		{
			Name:        "default_interval",
			Host:        StaticHost{ID: "1"},
			ExpectEvery: DefaultStatsInterval,
		},
		{
			Name:        "interval_below_floor",
			Host:        StaticHost{ID: "1"},
			Opts:        []AutoPostOption{WithInterval(MinStatsInterval - time.Millisecond)},
			ExpectError: ErrIntervalTooShort,
		},
		{
			Name:        "interval_exactly_floor",
			Host:        StaticHost{ID: "1"},
			Opts:        []AutoPostOption{WithInterval(MinStatsInterval)},
			ExpectEvery: MinStatsInterval,
		},
		{
			Name:        "interval_above_floor",
			Host:        StaticHost{ID: "1"},
			Opts:        []AutoPostOption{WithInterval(time.Hour)},
			ExpectEvery: time.Hour,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			opts := []Option{}
			if tc.Host != nil {
				opts = append(opts, WithHost(tc.Host))
			}
			c := New("token", opts...)

			poster, err := c.NewAutoPoster(tc.Opts...)
			if tc.ExpectError != nil {
				require.ErrorIs(t, err, tc.ExpectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectEvery, poster.Interval())
		})
	}
}

func TestAutoPoster_PostsOnReady(t *testing.T) {
	posted := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posted <- r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := New("token", WithBaseURL(srv.URL), WithHost(StaticHost{ID: "7", Guilds: 12}))

	notified := make(chan struct{}, 1)
	poster, err := c.NewAutoPoster(WithOnPosted(func() {
		notified <- struct{}{}
	}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poster.Start(ctx)

	select {
	case path := <-posted:
		assert.Equal(t, "/bots/7/stats", path)
	case <-time.After(5 * time.Second):
		t.Fatal("no stats post observed after ready signal")
	}
	select {
	case <-notified:
	case <-time.After(5 * time.Second):
		t.Fatal("posted notification not emitted")
	}
}

func TestAutoPoster_FailureIsFunnelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New("token", WithBaseURL(srv.URL), WithHost(StaticHost{ID: "7", Guilds: 12}))

	failures := make(chan error, 1)
	poster, err := c.NewAutoPoster(WithOnError(func(err error) {
		failures <- err
	}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	poster.Start(ctx)

	select {
	case err := <-failures:
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	case <-time.After(5 * time.Second):
		t.Fatal("error notification not emitted")
	}
}

func TestStaticHost_ReadyIsSynchronous(t *testing.T) {
	var called bool
	StaticHost{}.OnReady(func() { called = true })
	assert.True(t, called)
}
