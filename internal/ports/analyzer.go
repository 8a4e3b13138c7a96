package ports

import (
	"context"

	"github.com/baditaflorin/go_readability/internal/core/domain"
)

// Analyzer defines the interface for producing a readability report from text.
type Analyzer interface {
	Analyze(ctx context.Context, req domain.Request) domain.Report
}
