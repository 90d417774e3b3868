package cfg

type Cfg struct {
	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Application configuration
	Port            string
	SyncSecret      string
	UpstreamTimeout int
	RedisAddr       string

	// Upstream credentials
	InstagramAccessToken string
	GooglePlacesAPIKey   string
	GooglePlaceID        string

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
