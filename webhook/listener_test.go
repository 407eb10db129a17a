package webhook_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/listcord/listcord-go/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListener_Process(t *testing.T) {
	testCases := []struct {
		Name         string
		Headers      map[string]string
		Body         string
		ExpectStatus int
		ExpectVote   *webhook.Vote
	}{
		{
			Name:         "missing_authorization",
			Headers:      map[string]string{},
			Body:         `{"bot":"1","user":"2"}`,
			ExpectStatus: http.StatusUnauthorized,
		},
		{
			Name: "wrong_authorization",
			Headers: map[string]string{
				"authorization": "wrong",
			},
			Body:         `{"bot":"1","user":"2"}`,
			ExpectStatus: http.StatusUnauthorized,
		},
		{
			Name: "undecodable_payload",
			Headers: map[string]string{
				"authorization": "secret",
			},
			Body:         "not json",
			ExpectStatus: http.StatusUnprocessableEntity,
		},
		{
			Name: "valid_vote",
			Headers: map[string]string{
				"authorization": "secret",
			},
			Body:         `{"bot":"1","user":"2","type":"vote"}`,
			ExpectStatus: http.StatusOK,
			ExpectVote:   &webhook.Vote{BotID: "1", UserID: "2", Type: "vote"},
		},
		{
			Name: "test_delivery",
			Headers: map[string]string{
				"authorization": "secret",
			},
			Body:         `{"bot":"1","user":"2","type":"test"}`,
			ExpectStatus: http.StatusOK,
			ExpectVote:   &webhook.Vote{BotID: "1", UserID: "2", Type: "test"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var emitted []webhook.Vote
			l := webhook.NewListener("secret")
			l.OnVote(func(v webhook.Vote) {
				emitted = append(emitted, v)
			})

			resp, err := l.Process([]byte(tc.Body), tc.Headers)
			assert.Equal(t, tc.ExpectStatus, resp.StatusCode)

			if tc.ExpectVote == nil {
				require.Error(t, err)
				assert.Empty(t, emitted)
				return
			}
			require.NoError(t, err)
			require.Len(t, emitted, 1)
			assert.Equal(t, *tc.ExpectVote, emitted[0])
			assert.Equal(t, tc.ExpectVote.Type == "test", emitted[0].IsTest())
		})
	}
}

func TestListener_Router(t *testing.T) {
	var emitted int
	l := webhook.NewListener("secret", webhook.WithPath("/votes"))
	l.OnVote(func(webhook.Vote) { emitted++ })

	srv := httptest.NewServer(l.Router())
	defer srv.Close()

	t.Run("post_with_secret", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodPost, srv.URL+"/votes", strings.NewReader(`{"bot":"1","user":"2"}`))
		req.Header.Set("Authorization", "secret")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, emitted)
	})

	t.Run("post_without_secret", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/votes", "application/json", strings.NewReader(`{"bot":"1","user":"2"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, 1, emitted)
	})

	t.Run("get_is_rejected", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/votes")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

type recordingArchiver struct {
	ids    []string
	bodies [][]byte
}

func (r *recordingArchiver) Archive(id string, body []byte) error {
	r.ids = append(r.ids, id)
	r.bodies = append(r.bodies, body)
	return nil
}

func TestListener_Archival(t *testing.T) {
	archiver := &recordingArchiver{}
	l := webhook.NewListener("secret", webhook.WithArchiver(archiver))

	_, err := l.Process([]byte(`{"bot":"1","user":"2"}`), map[string]string{"authorization": "secret"})
	require.NoError(t, err)
	require.Len(t, archiver.bodies, 1)
	assert.JSONEq(t, `{"bot":"1","user":"2"}`, string(archiver.bodies[0]))

	// unauthenticated deliveries are never archived
	_, err = l.Process([]byte(`{}`), map[string]string{})
	require.Error(t, err)
	assert.Len(t, archiver.bodies, 1)
}
