package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig     `envconfig:"SERVER"`
	Log      LogConfig        `envconfig:"LOG"`
	Assembly AssemblyAIConfig `envconfig:"ASSEMBLYAI"`
	LLM      LLMConfig        `envconfig:"LLM"`
	Groq     GroqConfig       `envconfig:"GROQ"`
	Gemini   GeminiConfig     `envconfig:"GEMINI"`
	Pipeline PipelineConfig   `envconfig:"PIPELINE"`
	Store    StoreConfig      `envconfig:"STORE"`
	Redis    RedisConfig      `envconfig:"REDIS"`
	Storage  StorageConfig    `envconfig:"STORAGE"`
	Database DatabaseConfig   `envconfig:"DB"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `split_words:"true" default:"8080"`
	Host            string   `split_words:"true" default:"0.0.0.0"`
	Environment     string   `split_words:"true" default:"development"`
	AllowedOrigins  []string `split_words:"true" default:"http://localhost:3000"`
	ShutdownTimeout int      `split_words:"true" default:"10"`
	MaxUploadMB     int64    `split_words:"true" default:"200"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `split_words:"true" default:"info"`
}

// AssemblyAIConfig holds speech-to-text configuration
type AssemblyAIConfig struct {
	APIKey       string        `split_words:"true"`
	BaseURL      string        `split_words:"true"`
	PollInterval time.Duration `split_words:"true" default:"3s"`
}

// LLMConfig selects the text generation backend
type LLMConfig struct {
	Provider string `split_words:"true" default:"groq"`
}

// GroqConfig holds Groq API configuration
type GroqConfig struct {
	APIKey  string        `split_words:"true"`
	BaseURL string        `split_words:"true" default:"https://api.groq.com"`
	Model   string        `split_words:"true" default:"llama-3.1-8b-instant"`
	Timeout time.Duration `split_words:"true" default:"60s"`
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey string `split_words:"true"`
	Model  string `split_words:"true" default:"gemini-2.0-flash"`
}

// PipelineConfig holds the sizes used by each processing stage
type PipelineConfig struct {
	KeywordCount        int    `split_words:"true" default:"10"`
	TopicCount          int    `split_words:"true" default:"5"`
	MaxNoteSentences    int    `split_words:"true" default:"5"`
	FlashcardCount      int    `split_words:"true" default:"5"`
	QuizQuestions       int    `split_words:"true" default:"5"`
	SummaryChunkWords   int    `split_words:"true" default:"400"`
	FlashcardInputChars int    `split_words:"true" default:"1500"`
	OutputDir           string `split_words:"true" default:"outputs"`
	PDFFontPath         string `envconfig:"PDF_FONT_PATH"`
}

// StoreConfig selects where the latest result bundle per session lives
type StoreConfig struct {
	Backend string        `split_words:"true" default:"memory"`
	TTL     time.Duration `split_words:"true" default:"24h"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `split_words:"true" default:"localhost"`
	Port     string `split_words:"true" default:"6379"`
	Password string `split_words:"true"`
	DB       int    `split_words:"true" default:"0"`
}

// StorageConfig holds object storage configuration for exported reports
type StorageConfig struct {
	Enabled         bool          `split_words:"true" default:"false"`
	Endpoint        string        `split_words:"true" default:"localhost:9000"`
	AccessKeyID     string        `split_words:"true" default:"minioadmin"`
	SecretAccessKey string        `split_words:"true" default:"minioadmin"`
	BucketName      string        `split_words:"true" default:"voicenotes"`
	UseSSL          bool          `split_words:"true" default:"false"`
	PublicURL       string        `split_words:"true"`
	URLExpiry       time.Duration `split_words:"true" default:"1h"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Enabled     bool   `split_words:"true" default:"false"`
	Host        string `split_words:"true" default:"localhost"`
	Port        string `split_words:"true" default:"5432"`
	User        string `split_words:"true" default:"postgres"`
	Password    string `split_words:"true" default:"postgres"`
	Name        string `split_words:"true" default:"voicenotes"`
	SSLMode     string `split_words:"true" default:"disable"`
	MaxConns    int    `split_words:"true" default:"25"`
	MinConns    int    `split_words:"true" default:"5"`
	AutoMigrate bool   `split_words:"true" default:"false"`
}

// Load loads configuration from .env and environment variables
func Load() (*Config, error) {
	loadDotEnv()
	return FromEnv()
}

// LoadUnvalidated loads configuration without checking provider keys.
// Tools that only touch the database (migrations) use it.
func LoadUnvalidated() (*Config, error) {
	loadDotEnv()
	return parse()
}

func loadDotEnv() {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}
}

// FromEnv parses and validates configuration from the process environment only
func FromEnv() (*Config, error) {
	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parse() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "groq":
		if c.Groq.APIKey == "" {
			return fmt.Errorf("GROQ_API_KEY is required when LLM_PROVIDER=groq")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
		}
	default:
		return fmt.Errorf("LLM_PROVIDER must be groq or gemini, got %q", c.LLM.Provider)
	}

	if c.Assembly.APIKey == "" {
		return fmt.Errorf("ASSEMBLYAI_API_KEY is required")
	}

	switch c.Store.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("STORE_BACKEND must be memory or redis, got %q", c.Store.Backend)
	}

	p := c.Pipeline
	if p.KeywordCount <= 0 || p.TopicCount <= 0 || p.MaxNoteSentences <= 0 ||
		p.FlashcardCount <= 0 || p.QuizQuestions <= 0 || p.SummaryChunkWords <= 0 ||
		p.FlashcardInputChars <= 0 {
		return fmt.Errorf("pipeline sizes must be positive")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
