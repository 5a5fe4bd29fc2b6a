package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Storage    StorageConfig
	Extraction ExtractionConfig
	Pipeline   PipelineConfig
	Ingest     IngestConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr    string
	MetricsAddr string
}

// StorageConfig holds file-storage configuration
type StorageConfig struct {
	Bucket string
}

// ExtractionConfig holds extraction-service configuration
type ExtractionConfig struct {
	ProjectID   string
	Region      string
	Model       string
	TessdataDir string
}

// PipelineConfig holds the tuning knobs of the processing pipeline.
type PipelineConfig struct {
	MaxRetries         int
	RetryBaseDelay     time.Duration
	RetryBackoffFactor float64
	StuckThreshold     time.Duration
	BatchSize          int
	BatchPause         time.Duration
	OpTimeout          time.Duration
	WorkerInterval     time.Duration
	ReaperInterval     time.Duration
}

// IngestConfig holds drop-directory ingestion configuration
type IngestConfig struct {
	WatchRoot   string
	CaseID      string
	AutoEnqueue bool
	Debounce    time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:    getEnv("GRPC_ADDR", ":8080"),
			MetricsAddr: getEnv("METRICS_ADDR", ":9090"),
		},
		Storage: StorageConfig{
			Bucket: getEnv("DOCUMENTS_BUCKET", ""),
		},
		Extraction: ExtractionConfig{
			ProjectID:   getEnv("PROJECT_ID", ""),
			Region:      getEnv("VERTEX_REGION", "us-central1"),
			Model:       getEnv("VERTEX_MODEL", "gemini-1.5-pro"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
		},
		Pipeline: PipelineConfig{
			MaxRetries:         getEnvAsInt("PIPELINE_MAX_RETRIES", 3),
			RetryBaseDelay:     getEnvAsDuration("PIPELINE_RETRY_BASE_DELAY", 5*time.Minute),
			RetryBackoffFactor: getEnvAsFloat64("PIPELINE_RETRY_BACKOFF_FACTOR", 2.0),
			StuckThreshold:     getEnvAsDuration("PIPELINE_STUCK_THRESHOLD", 5*time.Minute),
			BatchSize:          getEnvAsInt("PIPELINE_BATCH_SIZE", 5),
			BatchPause:         getEnvAsDuration("PIPELINE_BATCH_PAUSE", 2*time.Second),
			OpTimeout:          getEnvAsDuration("PIPELINE_OP_TIMEOUT", 50*time.Second),
			WorkerInterval:     getEnvAsDuration("PIPELINE_WORKER_INTERVAL", time.Minute),
			ReaperInterval:     getEnvAsDuration("PIPELINE_REAPER_INTERVAL", time.Minute),
		},
		Ingest: IngestConfig{
			WatchRoot:   getEnv("INGEST_WATCH_ROOT", ""),
			CaseID:      getEnv("INGEST_CASE_ID", ""),
			AutoEnqueue: getEnvAsBool("INGEST_AUTO_ENQUEUE", false),
			Debounce:    getEnvAsDuration("INGEST_DEBOUNCE", 2*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.MaxRetries < 0 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_MAX_RETRIES must be non-negative", ErrInvalidInput)
	}
	if c.Pipeline.RetryBackoffFactor < 1.0 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_RETRY_BACKOFF_FACTOR must be >= 1.0", ErrInvalidInput)
	}
	if c.Pipeline.BatchSize <= 0 {
		return NewAppError("CONFIG_ERROR", "PIPELINE_BATCH_SIZE must be positive", ErrInvalidInput)
	}
	return nil
}
