package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Database configuration
	DBHost     string `long:"db-host" env:"DB_HOST" default:"localhost" description:"Database host"`
	DBPort     string `long:"db-port" env:"DB_PORT" default:"5432" description:"Database port"`
	DBUser     string `long:"db-user" env:"DB_USER" default:"cms_user" description:"Database user"`
	DBPassword string `long:"db-password" env:"DB_PASSWORD" default:"cms_password" description:"Database password (required)" required:"true"`
	DBName     string `long:"db-name" env:"DB_NAME" default:"content_sync" description:"Database name"`

	// Application configuration
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	SyncSecret      string `long:"sync-secret" env:"SYNC_SECRET" description:"Shared secret required on sync endpoints"`
	UpstreamTimeout int    `long:"upstream-timeout" env:"UPSTREAM_TIMEOUT" default:"15" description:"Upstream API request timeout in seconds"`
	RedisAddr       string `long:"redis-addr" env:"REDIS_ADDR" description:"Redis address for the sync status cache (optional)"`

	// Upstream credentials
	InstagramAccessToken string `long:"instagram-token" env:"INSTAGRAM_ACCESS_TOKEN" description:"Instagram Graph API access token (optional)"`
	GooglePlacesAPIKey   string `long:"places-api-key" env:"GOOGLE_PLACES_API_KEY" description:"Google Places API key"`
	GooglePlaceID        string `long:"place-id" env:"GOOGLE_PLACE_ID" description:"Google Place ID override"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"ContentSync/1.0" description:"User agent string for upstream requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

func Load() (*Cfg, error) {
	_ = godotenv.Load()

	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		DBHost:               raw.DBHost,
		DBPort:               raw.DBPort,
		DBUser:               raw.DBUser,
		DBPassword:           raw.DBPassword,
		DBName:               raw.DBName,
		Port:                 raw.Port,
		SyncSecret:           raw.SyncSecret,
		UpstreamTimeout:      raw.UpstreamTimeout,
		RedisAddr:            raw.RedisAddr,
		InstagramAccessToken: raw.InstagramAccessToken,
		GooglePlacesAPIKey:   raw.GooglePlacesAPIKey,
		GooglePlaceID:        raw.GooglePlaceID,
		UserAgent:            raw.UserAgent,
		Debug:                raw.Debug,
		Version:              GetVersion(),
	}

	return cfg, nil
}
