package store

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
)

func newTestAPIRepository(t *testing.T, handler http.HandlerFunc, retryAttempts uint) *APIRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	repo := NewAPIRepository(server.URL, "secret-token", time.Second, retryAttempts)
	repo.retryDelay = time.Millisecond
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestAPIRepository_FindCategories(t *testing.T) {
	tests := []struct {
		name          string
		responses     []int
		body          string
		retryAttempts uint
		want          []schedule.Category
		wantErr       string
		wantCalls     int32
	}{
		{
			name:      "returns categories",
			responses: []int{http.StatusOK},
			body:      `[{"id":1,"name":"Priority","fields":[{"id":10,"name":"Low","order":0}]},{"id":2,"name":"Empty","fields":null}]`,
			want: []schedule.Category{
				{ID: 1, Name: "Priority", Fields: []schedule.Field{{ID: 10, Name: "Low", Order: 0}}},
				{ID: 2, Name: "Empty", Fields: []schedule.Field{}},
			},
			wantCalls: 1,
		},
		{
			name:          "retries server errors",
			responses:     []int{http.StatusBadGateway, http.StatusTooManyRequests, http.StatusOK},
			body:          `[]`,
			retryAttempts: 2,
			want:          []schedule.Category{},
			wantCalls:     3,
		},
		{
			name:          "gives up after the retry attempts",
			responses:     []int{http.StatusInternalServerError, http.StatusInternalServerError, http.StatusInternalServerError},
			body:          `{"message":"Something went wrong"}`,
			retryAttempts: 1,
			wantErr:       "response error 500",
			wantCalls:     2,
		},
		{
			name:          "does not retry client errors",
			responses:     []int{http.StatusUnauthorized},
			body:          `{"message":"unauthorized"}`,
			retryAttempts: 3,
			wantErr:       "response error 401",
			wantCalls:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			repo := newTestAPIRepository(t, func(w http.ResponseWriter, r *http.Request) {
				n := calls.Add(1)
				assert.Equal(t, "/api/category", r.URL.Path)
				assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
				status := tt.responses[len(tt.responses)-1]
				if int(n) <= len(tt.responses) {
					status = tt.responses[n-1]
				}
				body := tt.body
				if status != http.StatusOK && status != http.StatusInternalServerError && status != http.StatusUnauthorized {
					body = `{"message":"try again"}`
				}
				writeJSON(w, status, body)
			}, tt.retryAttempts)

			got, err := repo.FindCategories(context.Background())
			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAPIRepository_FindSchedules(t *testing.T) {
	repo := newTestAPIRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/schedule", r.URL.Path)
		writeJSON(w, http.StatusOK, `[
			{"amount":"2","item":{"name":"Water plants","notes":null},"categories":[{"id":11,"cat_id":1}],"Monday":true,"Tuesday":false,"Wednesday":false,"Thursday":true,"Friday":false,"Saturday":false,"Sunday":false},
			{"amount":"1 bag","item":{"name":"Compost","notes":"garden bin"},"categories":[],"Monday":false,"Tuesday":false,"Wednesday":false,"Thursday":false,"Friday":false,"Saturday":true,"Sunday":false}
		]`)
	}, 0)

	got, err := repo.FindSchedules(context.Background())
	require.NoError(t, err)

	notes := "garden bin"
	assert.Equal(t, []schedule.ScheduleRecord{
		{
			Amount:     "2",
			Item:       schedule.Item{Name: "Water plants"},
			Categories: []schedule.FieldRef{{ID: 11, CategoryID: 1}},
			Monday:     true,
			Thursday:   true,
		},
		{
			Amount:     "1 bag",
			Item:       schedule.Item{Name: "Compost", Notes: &notes},
			Categories: []schedule.FieldRef{},
			Saturday:   true,
		},
	}, got)
}

func TestAPIRepository_ContextCanceled(t *testing.T) {
	repo := newTestAPIRepository(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, `{}`)
	}, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindSchedules(ctx)
	assert.Error(t, err)
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "server error", err: &responseError{StatusCode: 503}, want: true},
		{name: "rate limited", err: &responseError{StatusCode: 429}, want: true},
		{name: "not found", err: &responseError{StatusCode: 404}, want: false},
		{name: "wrapped server error", err: fmt.Errorf("find categories: %w", &responseError{StatusCode: 500}), want: true},
		{name: "network error", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: true},
		{name: "canceled", err: fmt.Errorf("get: %w", context.Canceled), want: false},
		{name: "other", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}
