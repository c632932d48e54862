package configs

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Parser    ParserConfig    `mapstructure:"parser" validate:"required"`
	Ingestion IngestionConfig `mapstructure:"ingestion" validate:"required"`
	LogSource LogSourceConfig `mapstructure:"log_source" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// ParserConfig holds log line parsing configuration.
type ParserConfig struct {
	Timezone string `mapstructure:"timezone" validate:"required,timezone"` // IANA name, timestamps carry no offset
}

// IngestionConfig holds ingestion limits.
type IngestionConfig struct {
	MaxBatchBytes int `mapstructure:"max_batch_bytes" validate:"required,min=1"`
}

// LogSourceConfig holds the read-only log file source used to seed the catalog at startup.
type LogSourceConfig struct {
	RootDir   string   `mapstructure:"root_dir" validate:"required"`
	SeedFiles []string `mapstructure:"seed_files" validate:"dive,required"`
}
