package geocoding

import (
	"errors"
	"fmt"
	"log/slog"

	"googlemaps.github.io/maps"
)

// ProviderType represents the type of geocoding provider.
type ProviderType string

const (
	// ProviderTypeNone disables address resolution.
	ProviderTypeNone ProviderType = "none"
	// ProviderTypeGoogle represents Google Maps geocoding provider.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeNominatim represents OpenStreetMap Nominatim geocoding provider.
	ProviderTypeNominatim ProviderType = "nominatim"
	// ProviderTypeVisicom represents Visicom Maps geocoding provider.
	ProviderTypeVisicom ProviderType = "visicom"
)

const defaultVisicomRateLimit = 5

var (
	// ErrUnsupportedProvider is returned for a provider type the factory does not know.
	ErrUnsupportedProvider = errors.New("unsupported provider type")
	// ErrMissingAPIKey is returned when a provider that needs a key is configured without one.
	ErrMissingAPIKey = errors.New("API key is required")
)

// ProviderConfig holds configuration for creating a geocoding provider.
type ProviderConfig struct {
	Type      ProviderType // Type of provider to create
	APIKey    string       // API key (Google and Visicom)
	RateLimit int          // Requests per second, 0 means provider default
	Logger    *slog.Logger // Logger for the provider
}

type constructor func(cfg ProviderConfig) (Provider, error)

var constructors = map[ProviderType]constructor{
	ProviderTypeNone:      func(ProviderConfig) (Provider, error) { return nil, nil },
	ProviderTypeGoogle:    buildGoogle,
	ProviderTypeNominatim: func(cfg ProviderConfig) (Provider, error) { return NewNominatimProvider(cfg.Logger), nil },
	ProviderTypeVisicom:   buildVisicom,
}

// NewProvider creates the geocoding provider named by config.Type.
// ProviderTypeNone returns a nil Provider and no error: address queries are then unavailable.
func NewProvider(config ProviderConfig) (Provider, error) {
	build, ok := constructors[config.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, config.Type)
	}

	return build(config)
}

func buildGoogle(cfg ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w for Google provider", ErrMissingAPIKey)
	}

	opts := []maps.ClientOption{maps.WithAPIKey(cfg.APIKey)}
	if cfg.RateLimit > 0 {
		opts = append(opts, maps.WithRateLimit(cfg.RateLimit))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, cfg.Logger), nil
}

func buildVisicom(cfg ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w for Visicom provider", ErrMissingAPIKey)
	}

	limit := cfg.RateLimit
	if limit <= 0 {
		limit = defaultVisicomRateLimit
		cfg.Logger.Warn("Visicom rate limit is not set, using the default", "value", limit)
	}

	return NewVisicomProvider(cfg.APIKey, limit, cfg.Logger), nil
}
