package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log         LogConfig         `yaml:"log"`
	Cache       CacheConfig       `yaml:"cache"`
	Batch       BatchConfig       `yaml:"batch"`
	Lexicon     LexiconConfig     `yaml:"lexicon"`
	Database    DatabaseConfig    `yaml:"database"`
	StaticCache StaticCacheConfig `yaml:"static_cache"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CacheConfig sizes the shared LRU tier and the per-worker write buffer.
type CacheConfig struct {
	L1InitialCapacity int `yaml:"l1_initial_capacity" env:"CACHE_L1_INITIAL_CAPACITY" env-default:"1000"`
	L1MaxCapacity     int `yaml:"l1_max_capacity"     env:"CACHE_L1_MAX_CAPACITY"     env-default:"100000"`
	L2FlushThreshold  int `yaml:"l2_flush_threshold"  env:"CACHE_L2_FLUSH_THRESHOLD"  env-default:"1500"`
}

// BatchConfig holds worker pool settings.
type BatchConfig struct {
	Workers    int           `yaml:"workers"     env:"BATCH_WORKERS"     env-default:"8"`
	BatchSize  int           `yaml:"batch_size"  env:"BATCH_SIZE"        env-default:"1500"`
	Mode       string        `yaml:"mode"        env:"BATCH_MODE"        env-default:"bulk"`
	LoaderWait time.Duration `yaml:"loader_wait" env:"BATCH_LOADER_WAIT" env-default:"2ms"`
}

// Lexicon sources.
const (
	LexiconSourceFile     = "file"
	LexiconSourcePostgres = "postgres"
)

// LexiconConfig selects where lexicon records come from.
type LexiconConfig struct {
	Source string `yaml:"source" env:"LEXICON_SOURCE" env-default:"file"`
	Path   string `yaml:"path"   env:"LEXICON_PATH"   env-default:"./data/lexicon.tsv"`
}

// DatabaseConfig holds PostgreSQL connection settings. The DSN is only
// required when the lexicon is read from Postgres.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// StaticCacheConfig controls the precomputed frequent-word tier.
type StaticCacheConfig struct {
	Enabled       bool    `yaml:"enabled"        env:"STATIC_CACHE_ENABLED"        env-default:"false"`
	CoverageRatio float64 `yaml:"coverage_ratio" env:"STATIC_CACHE_COVERAGE_RATIO" env-default:"0.75"`
}
