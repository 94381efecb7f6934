package constants

const (
	// Network constants (seconds)
	DefaultTimeout           = 10
	DefaultDiagnosticTimeout = 60

	// Cache constants (minutes)
	CacheExpiration      = 30
	CacheCleanupInterval = 10

	// Search constants
	DefaultSearchRadiusKm = 10
	MaxShopsShown         = 10
	MaxServicesShown      = 15
	MaxAddressLength      = 200
	MaxSearchTermLength   = 80

	// Support chat constants
	TranscriptTail       = 6
	MaxDescriptionLength = 2000

	// Account defaults
	DefaultClientID = 1
	DefaultShopID   = 1

	// QR constants
	QRCodeSize = 256

	// Formatting constants
	TimestampFormat   = "2006-01-02 15:04:05"
	DateFormat        = "2006-01-02"
	DisplayDateFormat = "02/01/2006"
	MonthFormat       = "2006-01"

	// Storage constants
	DefaultProfileFile = "data/profiles.json"
	RedisKeyPrefix     = "oficina:state:"
)
