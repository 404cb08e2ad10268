package models

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NATS         NATSConfig
	JWT          JWTConfig
	OpenPayments OpenPaymentsConfig
	Payments     PaymentsConfig
	Logger       LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// OpenPaymentsConfig contains the Open Payments gateway configuration
type OpenPaymentsConfig struct {
	WalletAddressURL string
	KeyID            string
	AccessToken      string
	RequestTimeout   int // in seconds
}

// PaymentsConfig contains payment lifecycle configuration
type PaymentsConfig struct {
	DefaultCurrency     string
	PaymentExpiryMins   int // online payment validity window
	OfflineExpiryHours  int // window for syncing offline transactions
	WalletCacheTTLMins  int // Redis TTL for cached wallet metadata
	TransactionPageSize int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
