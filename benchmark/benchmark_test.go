package benchmark

import (
	"context"
	"fmt"
	"strings"
	"testing"

	readability "github.com/baditaflorin/go_readability"
	"github.com/baditaflorin/go_readability/internal/adapters/normalizer"
	"github.com/baditaflorin/go_readability/internal/adapters/segmenter"
	"github.com/baditaflorin/go_readability/internal/core/pattern"
	"github.com/baditaflorin/go_readability/internal/warmup"
)

// Benchmark input sizes in bytes
var sizes = []int{1000, 10000, 100000}

func BenchmarkAnalyze(b *testing.B) {
	analyzer, err := readability.New(readability.WithoutLogging())
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	for _, size := range sizes {
		text := warmup.GenerateSampleText(size)
		b.Run(fmt.Sprintf("Size_%d", size), func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = analyzer.Analyze(ctx, text, readability.AudienceGeneral)
			}
		})
	}
}

func BenchmarkAnalyzeParallel(b *testing.B) {
	analyzer, err := readability.New(readability.WithoutLogging())
	if err != nil {
		b.Fatal(err)
	}
	text := warmup.GenerateSampleText(10000)
	ctx := context.Background()

	b.SetBytes(int64(len(text)))
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = analyzer.Analyze(ctx, text, readability.AudienceGeneral)
		}
	})
}

func BenchmarkSegmenter(b *testing.B) {
	seg := segmenter.NewUAX29Segmenter()
	for _, size := range sizes {
		text := warmup.GenerateSampleText(size)
		b.Run(fmt.Sprintf("Size_%d", size), func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = seg.Sentences(text)
				_ = seg.Words(text)
			}
		})
	}
}

// BenchmarkTransitionScan compares the automaton against scanning the
// dictionary phrase by phrase.
func BenchmarkTransitionScan(b *testing.B) {
	norm := normalizer.NewPhraseNormalizer()
	scanner, err := pattern.NewTransitionScanner(norm)
	if err != nil {
		b.Fatal(err)
	}
	text := warmup.GenerateSampleText(10000)
	phrases := pattern.TransitionDictionary()

	b.Run("AhoCorasick", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = scanner.Scan(text)
		}
	})

	b.Run("Naive", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			lower := norm.Normalize(text)
			count := 0
			for _, p := range phrases {
				count += strings.Count(lower, p)
			}
			_ = count
		}
	})
}
