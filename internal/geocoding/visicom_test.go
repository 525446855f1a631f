package geocoding_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/UnknownOlympus/meridian/internal/geocoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestVisicomProvider_Geocode(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()
	apiKey := "test-api-key"
	unlimited := rate.NewLimiter(rate.Inf, 0)

	t.Run("successful geocoding keeps longitude first", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodGet, req.Method)
				assert.Contains(t, req.URL.String(), geocoding.VisicomBaseURL)
				assert.Equal(t, "Lviv", req.URL.Query().Get("text"))
				assert.Equal(t, apiKey, req.URL.Query().Get("key"))
				assert.Equal(t, "1", req.URL.Query().Get("limit"))
				assert.Equal(t, "application/json", req.Header.Get("Accept"))

				return jsonResponse(http.StatusOK, `{"geo_centroid":{"coordinates":[24.0297,49.8397]}}`), nil
			},
		}

		provider := geocoding.NewVisicomProviderWithClient(mockClient, apiKey, unlimited, logger)
		point, err := provider.Geocode(ctx, "Lviv")

		require.NoError(t, err)
		require.NotNil(t, point)
		assert.InEpsilon(t, 24.0297, point.Longitude, 0.0001)
		assert.InEpsilon(t, 49.8397, point.Latitude, 0.0001)
	})

	t.Run("empty response", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{}`), nil
			},
		}

		provider := geocoding.NewVisicomProviderWithClient(mockClient, apiKey, unlimited, logger)
		point, err := provider.Geocode(ctx, "some address")

		assert.Nil(t, point)
		assert.ErrorIs(t, err, geocoding.ErrVisicomEmptyResponse)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"geo_centroid":{"coordinates":[30.5]}}`), nil
			},
		}

		provider := geocoding.NewVisicomProviderWithClient(mockClient, apiKey, unlimited, logger)
		point, err := provider.Geocode(ctx, "bad coords")

		assert.Nil(t, point)
		assert.ErrorIs(t, err, geocoding.ErrVisicomInvalidCoords)
	})

	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		t.Run("unauthorized "+http.StatusText(status), func(t *testing.T) {
			mockClient := &mockHTTPClient{
				doFunc: func(_ *http.Request) (*http.Response, error) {
					return jsonResponse(status, `unauthorized`), nil
				},
			}

			provider := geocoding.NewVisicomProviderWithClient(mockClient, apiKey, unlimited, logger)
			point, err := provider.Geocode(ctx, "some address")

			assert.Nil(t, point)
			assert.ErrorIs(t, err, geocoding.ErrVisicomUnauthorized)
		})
	}

	t.Run("server error", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusBadGateway, `upstream down`), nil
			},
		}

		provider := geocoding.NewVisicomProviderWithClient(mockClient, apiKey, unlimited, logger)
		point, err := provider.Geocode(ctx, "some address")

		assert.Nil(t, point)
		assert.ErrorContains(t, err, "visicom API returned status 502: upstream down")
	})

	t.Run("rate limit exceeded", func(t *testing.T) {
		rateCtx, cancel := context.WithCancel(context.Background())
		cancel()
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				t.Fatal("HTTP client should not be called when rate limit blocks")
				return nil, assert.AnError
			},
		}

		limiter := rate.NewLimiter(rate.Every(time.Second), 1)

		provider := geocoding.NewVisicomProviderWithClient(mockClient, apiKey, limiter, logger)
		point, err := provider.Geocode(rateCtx, "some address")

		assert.Nil(t, point)
		assert.ErrorContains(t, err, "rate limit exceeded")
	})

	t.Run("empty address", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				t.Fatal("HTTP client should not be called for an empty address")
				return nil, assert.AnError
			},
		}

		limiter := rate.NewLimiter(rate.Every(time.Minute), 1)
		provider := geocoding.NewVisicomProviderWithClient(mockClient, apiKey, limiter, logger)
		point, err := provider.Geocode(ctx, "")

		assert.Nil(t, point)
		assert.ErrorIs(t, err, geocoding.ErrVisicomEmptyAddress)
		assert.InDelta(t, 1.0, limiter.Tokens(), 0.01)
	})
}

func TestNewVisicomProvider(t *testing.T) {
	require.NotNil(t, geocoding.NewVisicomProvider("key", 5, slog.Default()))
}
