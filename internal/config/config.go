package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Deck    DeckConfig    `yaml:"deck"`
	Study   StudyConfig   `yaml:"study"`
	Speech  SpeechConfig  `yaml:"speech"`
	CORS    CORSConfig    `yaml:"cors"`
}

// ServerConfig holds HTTP server settings. The service binds to
// localhost by default: it is a single-user tool serving its own
// browser front-end.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"pretty"`
}

// StorageConfig selects where progress and theme state persist.
// Backend "file" keeps a JSON document under Dir; "postgres" stores
// ratings in the configured database (theme stays file-backed either
// way, as a purely local UI preference).
type StorageConfig struct {
	Backend  string         `yaml:"backend" env:"STORAGE_BACKEND" env-default:"file"`
	Dir      string         `yaml:"dir"     env:"STORAGE_DIR"     env-default:"./data"`
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection settings, used only when
// the postgres storage backend is selected.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// DeckConfig holds deck import settings.
type DeckConfig struct {
	// SampleSource is an HTTP(S) URL or a local file path the sample
	// deck is fetched from on demand.
	SampleSource   string        `yaml:"sample_source"   env:"DECK_SAMPLE_SOURCE"   env-default:"./sample.csv"`
	SampleTimeout  time.Duration `yaml:"sample_timeout"  env:"DECK_SAMPLE_TIMEOUT"  env-default:"10s"`
	MaxImportBytes int64         `yaml:"max_import_bytes" env:"DECK_MAX_IMPORT_BYTES" env-default:"10485760"`
}

// StudyConfig holds study session settings.
type StudyConfig struct {
	// FilterDebounce is the trailing quiet window applied to filter-text
	// edits before the view is rebuilt. Zero rebuilds synchronously.
	FilterDebounce time.Duration `yaml:"filter_debounce" env:"STUDY_FILTER_DEBOUNCE" env-default:"220ms"`
}

// SpeechConfig holds text-to-speech settings.
type SpeechConfig struct {
	Enabled bool   `yaml:"enabled" env:"SPEECH_ENABLED" env-default:"true"`
	// Command is the external synthesizer binary. Its absence at startup
	// disables speech rather than failing.
	Command      string `yaml:"command"       env:"SPEECH_COMMAND"       env-default:"espeak-ng"`
	DefaultVoice string `yaml:"default_voice" env:"SPEECH_DEFAULT_VOICE" env-default:"fr"`
}

// CORSConfig holds CORS settings for the browser front-end.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
