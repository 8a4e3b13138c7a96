package main

import (
	"flag"
	"fmt"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config is read from the environment (and a .env file when present);
// command-line flags override it.
type Config struct {
	Port             int           `env:"READABILITY_PORT,default=8080"`
	ReadTimeout      time.Duration `env:"READABILITY_READ_TIMEOUT,default=30s"`
	WriteTimeout     time.Duration `env:"READABILITY_WRITE_TIMEOUT,default=30s"`
	AnalysisTimeout  time.Duration `env:"READABILITY_ANALYSIS_TIMEOUT,default=30s"`
	MaxRequestSize   int           `env:"READABILITY_MAX_REQUEST_SIZE,default=10485760"`
	Concurrency      int           `env:"READABILITY_CONCURRENCY,default=0"`
	MinContentLength int           `env:"READABILITY_MIN_CONTENT_LENGTH,default=50"`
	WarmUp           bool          `env:"READABILITY_WARM_UP,default=true"`
	LogFile          string        `env:"READABILITY_LOG_FILE"`
}

func loadConfig(args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	fs.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "HTTP read timeout")
	fs.DurationVar(&cfg.WriteTimeout, "write-timeout", cfg.WriteTimeout, "HTTP write timeout")
	fs.DurationVar(&cfg.AnalysisTimeout, "analysis-timeout", cfg.AnalysisTimeout, "Per-request analysis timeout")
	fs.IntVar(&cfg.MaxRequestSize, "max-request-size", cfg.MaxRequestSize, "Maximum request size in bytes")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	fs.IntVar(&cfg.MinContentLength, "min-content-length", cfg.MinContentLength, "Minimum text length analysed")
	fs.BoolVar(&cfg.WarmUp, "warm-up", cfg.WarmUp, "Perform system warm-up on startup")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file path (empty = stdout)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
