package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/core"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func TestBearerHeaderAttached(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithTokenSource(staticTokens("tok-abc")))
	_, err := c.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestNoBearerWhenTokenEmpty(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"id":1,"email":"a@b.c","token":"t"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithTokenSource(staticTokens("")))
	_, err := c.Login(context.Background(), core.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "login must go out unauthenticated")
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)

		var creds core.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ada@example.com", creds.Email)

		json.NewEncoder(w).Encode(map[string]any{
			"id": 7, "firstName": "Ada", "lastName": "Lovelace",
			"email": "ada@example.com", "token": "jwt-token",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	sess, err := c.Login(context.Background(), core.Credentials{Email: "ada@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), sess.UserID)
	assert.Equal(t, "jwt-token", sess.Token)
}

func TestListTransactionsPaged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("size"))
		w.Write([]byte(`{"content":[
			{"id":1,"amount":12.5,"type":"EXPENSE","date":"2024-03-01T00:00:00Z",
			 "description":"coffee","transactionCategoryId":3,"transactionCategoryName":"Food"}
		],"totalElements":1}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	txs, err := c.ListTransactions(context.Background(), 0, 50)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, core.Expense, txs[0].Type, "type must come back lower-cased")
	assert.Equal(t, "Food", txs[0].Category)
	assert.Equal(t, int64(3), txs[0].CategoryID)
}

func TestListTransactionsBareArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":2,"amount":100,"type":"INCOME","date":"2024-03-02T00:00:00Z",
			 "description":"salary","transactionCategoryId":1,"category":"Work"}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	txs, err := c.ListTransactions(context.Background(), 0, 50)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, core.Income, txs[0].Type)
	assert.Equal(t, "Work", txs[0].Category, "plain category field must be used when the denormalized name is absent")
}

func TestCreateTransactionWireFormat(t *testing.T) {
	var sent map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.Write([]byte(`{"id":9,"amount":45.5,"type":"EXPENSE","date":"2024-03-05T14:30:00Z",
			"description":"groceries","transactionCategoryId":3,"transactionCategoryName":"Food"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	date := time.Date(2024, 3, 5, 15, 30, 0, 0, time.FixedZone("CET", 3600))
	tx, err := c.CreateTransaction(context.Background(), core.TransactionDraft{
		Amount:      45.5,
		Type:        core.Expense,
		CategoryID:  3,
		Date:        date,
		Description: "groceries",
	})
	require.NoError(t, err)

	assert.Equal(t, "EXPENSE", sent["type"], "type must go out upper-cased")
	assert.Equal(t, "2024-03-05T14:30:00Z", sent["date"], "date must go out as RFC 3339 in UTC")
	assert.Equal(t, float64(3), sent["transactionCategoryId"])
	assert.Equal(t, 45.5, sent["amount"])

	assert.Equal(t, int64(9), tx.ID)
	assert.Equal(t, core.Expense, tx.Type)
	assert.Equal(t, "Food", tx.Category)
}

func TestUnauthorizedTriggersHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"token expired"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	hookCalls := 0
	c := NewClient(srv.URL, OnUnauthorized(func() { hookCalls++ }))

	_, err := c.ListCategories(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, hookCalls, "401 must fire the hook exactly once")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "token expired", apiErr.Message)
}

func TestAPIErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name, body, want string
	}{
		{"message field", `{"message":"category in use"}`, "category in use"},
		{"error field", `{"error":"bad request"}`, "bad request"},
		{"plain text", "something broke", "something broke"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := NewClient(srv.URL).DeleteCategory(context.Background(), 5)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestUpdateSettingsPatchOnly(t *testing.T) {
	var sent map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		w.Write([]byte(`{"currency":"USD","language":"en","theme":"light","isRtl":false}`))
	}))
	defer srv.Close()

	set, err := NewClient(srv.URL).UpdateSettings(context.Background(), core.SettingsPatch{Currency: "USD"})
	require.NoError(t, err)

	assert.Equal(t, "USD", sent["currency"])
	_, hasLanguage := sent["language"]
	assert.False(t, hasLanguage, "absent patch fields must not be serialized")

	assert.Equal(t, core.Settings{Currency: "USD", Language: "en", Theme: "light"}, set)
}
