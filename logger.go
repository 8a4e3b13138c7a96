// logger.go
// Package readability provides shared utilities for the go_readability package.
package readability

import (
	"io"

	"github.com/baditaflorin/go_readability/internal/adapters/logger"
	"github.com/baditaflorin/l"
)

// NewLogger creates an l.Logger writing to w, as JSON when jsonFormat is set.
// Hosts use it to share one logger between the analyzer and their own output.
func NewLogger(w io.Writer, jsonFormat bool) (l.Logger, error) {
	config := logger.DefaultConfig()
	config.Output = w
	config.JsonFormat = jsonFormat
	return logger.Create(config)
}
