package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdVoted_ArgValidation(t *testing.T) {
	testCases := []struct {
		Name string
		Args []string
	}{
		{
			Name: "no_args",
			Args: []string{"voted"},
		},
		{
			Name: "missing_user_id",
			Args: []string{"voted", "99"},
		},
		{
			Name: "too_many_args",
			Args: []string{"voted", "99", "42", "extra"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			cmd := New()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tc.Args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "accepts 2 arg(s)")
		})
	}
}

func TestCmdVoted_QueriesService(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"voted":true}`))
	}))
	defer srv.Close()

	out := &bytes.Buffer{}
	cmd := New()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"voted", "99", "42", "--token", "t", "--base-url", srv.URL})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "/bots/99/voted?userId=42", gotPath)
	assert.Equal(t, "true", strings.TrimSpace(out.String()))
}

func TestCmdAutopost_StopsOnContextCancel(t *testing.T) {
	posted := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case posted <- struct{}{}:
		default:
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"autopost", "--bot-id", "7", "--token", "t", "--base-url", srv.URL})

	done := make(chan error, 1)
	go func() {
		done <- cmd.ExecuteContext(ctx)
	}()

	select {
	case <-posted:
	case <-time.After(5 * time.Second):
		t.Fatal("no stats post observed after startup")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("autopost command did not stop on context cancellation")
	}
}
