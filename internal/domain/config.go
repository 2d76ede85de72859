package domain

import "fmt"

// Config is the on-disk govalet configuration (~/.config/govalet/config.yaml).
type Config struct {
	// TLD is the top-level domain served for local sites (e.g. "test").
	TLD string `yaml:"tld"`
	// Loopback is the address dnsmasq answers with for *.TLD queries.
	Loopback string `yaml:"loopback"`
	// Paths lists the directories scanned for servable sites.
	Paths []string `yaml:"paths"`
}

// Validate checks that the required keys are present.
func (c Config) Validate() error {
	if c.TLD == "" {
		return fmt.Errorf("config: missing required key %q", "tld")
	}
	if c.Loopback == "" {
		return fmt.Errorf("config: missing required key %q", "loopback")
	}
	if len(c.Paths) == 0 {
		return fmt.Errorf("config: missing required key %q", "paths")
	}
	return nil
}
