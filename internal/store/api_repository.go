package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/TheoAcker12/weekly-scheduler/internal/schedule"
)

// APIRepository reads categories and schedules from a running scheduler web API.
type APIRepository struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
}

// NewAPIRepository creates an APIRepository for baseURL.
// An empty token sends no Authorization header.
func NewAPIRepository(baseURL, token string, timeout time.Duration, retryAttempts uint) *APIRepository {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if token != "" {
		client.SetAuthToken(token)
	}

	return &APIRepository{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
		retryDelay:       retry.DefaultDelay,
	}
}

func (r *APIRepository) Close() error {
	return r.httpClient.Close()
}

// responseError is a non-2xx response from the API.
type responseError struct {
	StatusCode int
	Body       string
}

func (e *responseError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Body)
}

// FindCategories implements CategoryRepository.
func (r *APIRepository) FindCategories(ctx context.Context) ([]schedule.Category, error) {
	var categories []schedule.Category
	if err := r.get(ctx, "/api/category", &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		return []schedule.Category{}, nil
	}
	for i := range categories {
		if categories[i].Fields == nil {
			categories[i].Fields = []schedule.Field{}
		}
	}
	return categories, nil
}

// FindSchedules implements ScheduleRepository.
func (r *APIRepository) FindSchedules(ctx context.Context) ([]schedule.ScheduleRecord, error) {
	var schedules []schedule.ScheduleRecord
	if err := r.get(ctx, "/api/schedule", &schedules); err != nil {
		return nil, err
	}
	if schedules == nil {
		return []schedule.ScheduleRecord{}, nil
	}
	for i := range schedules {
		if schedules[i].Categories == nil {
			schedules[i].Categories = []schedule.FieldRef{}
		}
	}
	return schedules, nil
}

// get fetches path into result, retrying server errors, rate limiting and network failures.
func (r *APIRepository) get(ctx context.Context, path string, result interface{}) error {
	attempt := 0
	return retry.Do(
		func() error {
			attempt++
			err := r.fetch(ctx, path, result)
			if err == nil {
				return nil
			}
			if !isRetryableError(err) {
				return retry.Unrecoverable(err)
			}
			slog.Default().Warn("scheduler API request failed",
				"path", path,
				"attempt", attempt,
				"error", err)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(r.maxRetryAttempts+1),
		retry.Delay(r.retryDelay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

func (r *APIRepository) fetch(ctx context.Context, path string, result interface{}) error {
	response, err := r.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("httpClient.Get(%s) > %w", path, err)
	}
	if response.IsError() {
		return &responseError{StatusCode: response.StatusCode(), Body: response.String()}
	}
	return nil
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var respErr *responseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode >= http.StatusInternalServerError ||
			respErr.StatusCode == http.StatusTooManyRequests
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
