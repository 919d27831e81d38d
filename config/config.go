// Package config loads CLI settings from an HCL configuration file.
package config

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/EgbieAndersonUku1/render-hidden-word/errkind"
)

// Options holds the settings the CLI accepts from a configuration file.
// Command-line flags override any value set here.
type Options struct {
	// URL of the document carrying the coordinate table.
	URL string `hcl:"url,optional"`

	// Format is one of text, markdown, csv, xlsx.
	Format string `hcl:"format,optional"`

	// Timeout is the HTTP timeout as a Go duration string.
	Timeout string `hcl:"timeout,optional"`

	// UserAgent is sent with the fetch request when set.
	UserAgent string `hcl:"user_agent,optional"`
}

// Default returns the options used when no configuration file is given.
func Default() *Options {
	return &Options{
		Format:  "text",
		Timeout: "30s",
	}
}

// Load reads an HCL configuration file over the defaults.
func Load(path string) (*Options, error) {
	const op = "config.Load"

	opts := Default()
	if err := hclsimple.DecodeFile(path, nil, opts); err != nil {
		return nil, errkind.Wrap(errkind.Value, op, err)
	}
	if _, err := opts.TimeoutDuration(); err != nil {
		return nil, errkind.Wrap(errkind.Value, op, err)
	}
	return opts, nil
}

// TimeoutDuration parses the timeout setting, defaulting to 30s when
// unset.
func (o *Options) TimeoutDuration() (time.Duration, error) {
	if o.Timeout == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(o.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", o.Timeout, err)
	}
	return d, nil
}
