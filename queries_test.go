package listcord

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONServer(record *string, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*record = r.URL.Path
		if q := r.URL.RawQuery; q != "" {
			*record += "?" + q
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestGetBot(t *testing.T) {
	testCases := []struct {
		Name        string
		ID          string
		Host        Host
		ExpectPath  string
		ExpectError error
	}{
		{
			Name:       "explicit_id",
			ID:         "123",
			ExpectPath: "/bots/123",
		},
		{
			Name:       "explicit_id_ignores_host_presence",
			ID:         "123",
			Host:       StaticHost{ID: "99"},
			ExpectPath: "/bots/123",
		},
		{
			Name:       "id_derived_from_host",
			Host:       StaticHost{ID: "99"},
			ExpectPath: "/bots/99",
		},
		{
			Name:        "no_id_no_host",
			ExpectError: ErrMissingID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var gotPath string
			srv := newJSONServer(&gotPath, `{"id":"123","username":"testbot","server_count":10,"votes":3}`)
			defer srv.Close()

			opts := []Option{WithBaseURL(srv.URL)}
			if tc.Host != nil {
				opts = append(opts, WithHost(tc.Host))
			}
			c := New("token", opts...)

			bot, err := c.GetBot(context.Background(), tc.ID)
			if tc.ExpectError != nil {
				require.ErrorIs(t, err, tc.ExpectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectPath, gotPath)
			assert.Equal(t, "testbot", bot.Username)
			assert.Equal(t, 10, bot.ServerCount)
		})
	}
}

func TestGetUser(t *testing.T) {
	var gotPath string
	srv := newJSONServer(&gotPath, `{"id":"42","username":"voter"}`)
	defer srv.Close()

	c := New("token", WithBaseURL(srv.URL))

	_, err := c.GetUser(context.Background(), "")
	require.ErrorIs(t, err, ErrMissingID)

	user, err := c.GetUser(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "/users/42", gotPath)
	assert.Equal(t, "voter", user.Username)
}

func TestHasVoted(t *testing.T) {
	testCases := []struct {
		Name     string
		Response string
		Expect   bool
	}{
		{
			Name:     "voted_true",
			Response: `{"voted":true}`,
			Expect:   true,
		},
		{
			Name:     "voted_false",
			Response: `{"voted":false}`,
		},
		{
			Name:     "voted_numeric_truthy",
			Response: `{"voted":1}`,
			Expect:   true,
		},
		{
			Name:     "voted_numeric_zero",
			Response: `{"voted":0}`,
		},
		{
			Name:     "voted_absent",
			Response: `{}`,
		},
		{
			Name:     "voted_string_truthy",
			Response: `{"voted":"yes"}`,
			Expect:   true,
		},
		{
			Name:     "voted_null",
			Response: `{"voted":null}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var gotPath string
			srv := newJSONServer(&gotPath, tc.Response)
			defer srv.Close()

			c := New("token", WithBaseURL(srv.URL), WithHost(StaticHost{ID: "99"}))
			voted, err := c.HasVoted(context.Background(), "42")
			require.NoError(t, err)
			assert.Equal(t, "/bots/99/voted?userId=42", gotPath)
			assert.Equal(t, tc.Expect, voted)
		})
	}
}

func TestHasVoted_Validation(t *testing.T) {
	c := New("token")
	_, err := c.HasVoted(context.Background(), "")
	require.ErrorIs(t, err, ErrMissingID)

	_, err = c.HasVoted(context.Background(), "42")
	require.ErrorIs(t, err, ErrNoHost)
}
