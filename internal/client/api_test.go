package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"change-request-service/internal/client"

	"github.com/stretchr/testify/require"
)

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := client.New("localhost:8080")
	require.Error(t, err)

	c, err := client.New("http://localhost:8080/")
	require.NoError(t, err)
	require.Empty(t, c.Token())
}

func TestQueryChangeRequests_BareAndWrapped(t *testing.T) {
	for _, wrap := range []bool{false, true} {
		b := newBackend()
		b.wrapQuery = wrap
		b.requests = []client.ChangeRequest{
			{ID: "1", Status: client.StatusPending, UserID: "u1"},
			{ID: "2", Status: client.StatusApproved, UserID: "u1"},
		}
		c := newTestClient(t, b)

		list, err := c.QueryChangeRequests(context.Background(), client.Query{Status: client.StatusPending})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, "1", list[0].ID)
	}
}

func TestAPIError_Decoding(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
		wantMsg  string
	}{
		{name: "nested", body: `{"error":{"code":"NOT_FOUND","message":"project not found"}}`, wantCode: "NOT_FOUND", wantMsg: "project not found"},
		{name: "flat", body: `{"message":"title taken"}`, wantMsg: "title taken"},
		{name: "string error", body: `{"error":"boom"}`, wantMsg: "boom"},
		{name: "not json", body: `oops`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()
			c, err := client.New(srv.URL, client.WithHTTPClient(srv.Client()))
			require.NoError(t, err)

			_, err = c.GetProject(context.Background(), "x")
			var apiErr *client.APIError
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, http.StatusBadRequest, apiErr.Status)
			require.Equal(t, tt.wantCode, apiErr.Code)
			require.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestMessageOr(t *testing.T) {
	require.Equal(t, "title taken", client.MessageOr(&client.APIError{Status: 409, Message: "title taken"}, "fallback"))
	require.Equal(t, "fallback", client.MessageOr(&client.APIError{Status: 500}, "fallback"))
	require.Equal(t, "fallback", client.MessageOr(errors.New("dial tcp: refused"), "fallback"))
}

func TestUpdateStatus_OmitsEmptyReason(t *testing.T) {
	b := newBackend()
	c := newTestClient(t, b)

	require.NoError(t, c.UpdateStatus(context.Background(), "cr1", client.StatusDeployed, ""))
	require.NoError(t, c.UpdateStatus(context.Background(), "cr2", client.StatusRolledBack, "broken"))

	require.Len(t, b.statuses(), 2)
	require.Nil(t, b.statuses()[0].Reason)
	require.NotNil(t, b.statuses()[1].Reason)
	require.Equal(t, "broken", *b.statuses()[1].Reason)
}
