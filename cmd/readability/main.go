package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	readability "github.com/baditaflorin/go_readability"
	"github.com/baditaflorin/go_readability/internal/adapters/htmltext"
	"github.com/gookit/color"
	"gopkg.in/yaml.v3"
)

// options are the parsed command-line flags.
type options struct {
	file     string
	text     string
	html     bool
	audience string
	keywords string
	output   string
	noColor  bool
	verbose  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if opts.noColor {
		color.Disable()
	}

	input, err := loadInput(opts, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading input: %v\n", err)
		return 1
	}

	anOpts := []readability.Option{readability.WithoutLogging()}
	if opts.verbose {
		logger, err := readability.NewLogger(stderr, false)
		if err != nil {
			fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
			return 1
		}
		anOpts = []readability.Option{readability.WithLogger(logger)}
	}
	analyzer, err := readability.New(anOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer analyzer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report := analyzer.AnalyzeReader(ctx, strings.NewReader(input), readability.Audience(opts.audience), splitKeywords(opts.keywords)...)

	switch opts.output {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		err = enc.Encode(report)
		if err == nil {
			err = enc.Close()
		}
	default:
		renderText(stdout, report, opts.verbose)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}

	if report.Error != "" {
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("readability", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.file, "file", "", "Path to the text file to analyse ('-' for stdin)")
	fs.StringVar(&opts.text, "text", "", "Text content to analyse")
	fs.BoolVar(&opts.html, "html", false, "Treat the input as HTML and extract its main content")
	fs.StringVar(&opts.audience, "audience", "general", "Audience: 'general', 'professional' or 'academic'")
	fs.StringVar(&opts.keywords, "keywords", "", "Comma-separated target keywords")
	fs.StringVar(&opts.output, "output", "text", "Output format: 'text', 'json' or 'yaml'")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose output and debug logging")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: readability [options]\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  readability --file=article.txt --audience=professional\n")
		fmt.Fprintf(stderr, "  readability --file=page.html --html --keywords=\"content marketing,seo\" --output=json\n")
		fmt.Fprintf(stderr, "  cat article.txt | readability --file=-\n")
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, validateOptions(opts)
}

func validateOptions(opts options) error {
	if opts.file == "" && opts.text == "" {
		return fmt.Errorf("must provide either -file or -text")
	}
	if opts.file != "" && opts.text != "" {
		return fmt.Errorf("-file and -text are mutually exclusive")
	}

	validAudience := false
	for _, a := range readability.Audiences() {
		if string(a) == opts.audience {
			validAudience = true
		}
	}
	if !validAudience {
		return fmt.Errorf("invalid audience: %s. Must be 'general', 'professional' or 'academic'", opts.audience)
	}

	switch opts.output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format: %s. Must be 'text', 'json' or 'yaml'", opts.output)
	}
	return nil
}

// loadInput reads the text from a file, stdin or the -text flag and reduces
// HTML to prose when asked to.
func loadInput(opts options, stdin io.Reader) (string, error) {
	var r io.Reader = strings.NewReader(opts.text)
	switch opts.file {
	case "":
	case "-":
		r = stdin
	default:
		f, err := os.Open(opts.file)
		if err != nil {
			return "", fmt.Errorf("error reading file: %w", err)
		}
		defer f.Close()
		r = f
	}

	if opts.html {
		return htmltext.NewExtractor().Extract(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, readability.MaxInputBytes+1))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
