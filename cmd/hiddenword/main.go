// Package main provides the CLI entry point for hiddenword.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	hiddenword "github.com/EgbieAndersonUku1/render-hidden-word"
	"github.com/EgbieAndersonUku1/render-hidden-word/cache"
	"github.com/EgbieAndersonUku1/render-hidden-word/config"
	"github.com/EgbieAndersonUku1/render-hidden-word/export"
)

var (
	configPath string
	format     string
	outputPath string
	timeout    time.Duration
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hiddenword [url]",
		Short: "Reveal the message hidden in an HTML coordinate table",
		Long: `hiddenword fetches an HTML document containing a table of
(x, character, y) rows, paints the characters onto a grid and prints
the revealed message.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "HCL configuration file")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, csv, xlsx")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout; required for xlsx)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "HTTP timeout (overrides the configuration file)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opts := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		opts = loaded
	}

	// Flags and the positional argument override the configuration file.
	if len(args) == 1 {
		opts.URL = args[0]
	}
	if opts.URL == "" {
		return fmt.Errorf("no url given: pass one as an argument or set url in the configuration file")
	}
	if format != "" {
		opts.Format = format
	}

	clientTimeout := timeout
	if clientTimeout == 0 {
		d, err := opts.TimeoutDuration()
		if err != nil {
			return err
		}
		clientTimeout = d
	}
	client := &http.Client{Timeout: clientTimeout}
	if opts.UserAgent != "" {
		client.Transport = &userAgentTransport{agent: opts.UserAgent, next: http.DefaultTransport}
	}

	grid, err := hiddenword.FromURL(opts.URL).
		WithClient(client).
		WithCache(cache.Memory()).
		Grid(cmd.Context())
	if err != nil {
		return err
	}

	switch opts.Format {
	case "", "text":
		msg, err := export.Text(grid)
		if err != nil {
			return err
		}
		return writeOut(msg + "\n")
	case "markdown":
		md, err := export.Markdown(grid)
		if err != nil {
			return err
		}
		return writeOut(md)
	case "csv":
		c, err := export.CSV(grid)
		if err != nil {
			return err
		}
		return writeOut(c)
	case "xlsx":
		if outputPath == "" {
			return fmt.Errorf("xlsx output requires --output")
		}
		return export.XLSX(grid, outputPath)
	default:
		return fmt.Errorf("invalid format: %s (must be text, markdown, csv, or xlsx)", opts.Format)
	}
}

// writeOut sends s to the output file, or stdout when none is set.
func writeOut(s string) error {
	if outputPath == "" {
		_, err := fmt.Fprint(os.Stdout, s)
		return err
	}
	return os.WriteFile(outputPath, []byte(s), 0o644)
}

// userAgentTransport stamps a User-Agent header on every request.
type userAgentTransport struct {
	agent string
	next  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", t.agent)
	return t.next.RoundTrip(req)
}
