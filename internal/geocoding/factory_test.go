package geocoding_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/meridian/internal/geocoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	logger := slog.Default()

	tests := []struct {
		name    string
		config  geocoding.ProviderConfig
		wantErr string
		wantIs  error
		check   func(t *testing.T, p geocoding.Provider)
	}{
		{
			name:   "none disables address resolution",
			config: geocoding.ProviderConfig{Type: geocoding.ProviderTypeNone, Logger: logger},
			check: func(t *testing.T, p geocoding.Provider) {
				assert.Nil(t, p)
			},
		},
		{
			name: "google with key and rate limit",
			config: geocoding.ProviderConfig{
				Type: geocoding.ProviderTypeGoogle, APIKey: "test-api-key", RateLimit: 10, Logger: logger,
			},
			check: func(t *testing.T, p geocoding.Provider) {
				_, ok := p.(*geocoding.GoogleProvider)
				assert.True(t, ok, "expected provider to be *GoogleProvider")
			},
		},
		{
			name:   "google without rate limit",
			config: geocoding.ProviderConfig{Type: geocoding.ProviderTypeGoogle, APIKey: "test-api-key", Logger: logger},
			check: func(t *testing.T, p geocoding.Provider) {
				assert.NotNil(t, p)
			},
		},
		{
			name:    "google without API key",
			config:  geocoding.ProviderConfig{Type: geocoding.ProviderTypeGoogle, Logger: logger},
			wantErr: "API key is required for Google provider",
			wantIs:  geocoding.ErrMissingAPIKey,
		},
		{
			name:   "nominatim needs no key",
			config: geocoding.ProviderConfig{Type: geocoding.ProviderTypeNominatim, Logger: logger},
			check: func(t *testing.T, p geocoding.Provider) {
				_, ok := p.(*geocoding.NominatimProvider)
				assert.True(t, ok, "expected provider to be *NominatimProvider")
			},
		},
		{
			name:   "visicom falls back to default rate limit",
			config: geocoding.ProviderConfig{Type: geocoding.ProviderTypeVisicom, APIKey: "key", Logger: logger},
			check: func(t *testing.T, p geocoding.Provider) {
				_, ok := p.(*geocoding.VisicomProvider)
				assert.True(t, ok, "expected provider to be *VisicomProvider")
			},
		},
		{
			name:    "visicom without API key",
			config:  geocoding.ProviderConfig{Type: geocoding.ProviderTypeVisicom, Logger: logger},
			wantErr: "API key is required for Visicom provider",
			wantIs:  geocoding.ErrMissingAPIKey,
		},
		{
			name:    "unsupported provider type",
			config:  geocoding.ProviderConfig{Type: geocoding.ProviderType("unsupported"), Logger: logger},
			wantErr: "unsupported provider type: unsupported",
			wantIs:  geocoding.ErrUnsupportedProvider,
		},
		{
			name:    "empty provider type",
			config:  geocoding.ProviderConfig{Logger: logger},
			wantErr: "unsupported provider type",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider, err := geocoding.NewProvider(tc.config)

			if tc.wantErr != "" {
				require.Error(t, err)
				require.Nil(t, provider)
				assert.Contains(t, err.Error(), tc.wantErr)
				if tc.wantIs != nil {
					require.ErrorIs(t, err, tc.wantIs)
				}
				return
			}
			require.NoError(t, err)
			tc.check(t, provider)
		})
	}
}

func TestProviderType_Constants(t *testing.T) {
	assert.Equal(t, "none", string(geocoding.ProviderTypeNone))
	assert.Equal(t, "google", string(geocoding.ProviderTypeGoogle))
	assert.Equal(t, "nominatim", string(geocoding.ProviderTypeNominatim))
	assert.Equal(t, "visicom", string(geocoding.ProviderTypeVisicom))
}
