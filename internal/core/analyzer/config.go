package analyzer

import (
	"fmt"

	"github.com/baditaflorin/go_readability/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// Config holds the tunables of the orchestrator.
type Config struct {
	// MinContentLength is the minimum trimmed rune count accepted for analysis.
	MinContentLength int `validate:"gte=1"`
	// MaxDisplayItems caps every list of offending sentences or paragraphs.
	MaxDisplayItems int `validate:"gte=1,lte=1000"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		MinContentLength: 50,
		MaxDisplayItems:  10,
	}
}

var validate = validator.New()

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}
