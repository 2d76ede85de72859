// Package doctor runs the environment diagnostic battery.
package doctor

import (
	"fmt"
	"path/filepath"

	"github.com/doeshing/govalet/internal/domain"
	"github.com/doeshing/govalet/internal/ports"
)

// Service declares and runs the ordered check battery. One instance serves
// one diagnostic run; the service keeps no state between runs.
type Service struct {
	Config  ports.ConfigSource
	Files   ports.Filesystem
	Backend ports.ServiceBackend
}

// Check runs every declared check unconditionally, in declaration order.
// There is no short-circuit: a broken DNS resolver must not hide an
// unrelated web-server finding. The report's Success is the AND of all
// results, and failing checks contribute their hints, exact-string
// deduplicated in first-seen order.
func (s *Service) Check() domain.HealthReport {
	report := domain.HealthReport{Success: true}
	seen := make(map[string]bool)

	for _, check := range s.Checks() {
		passed := check.Predicate()
		report.Results = append(report.Results, domain.CheckResult{
			Description: check.Description,
			Passed:      passed,
		})
		if passed {
			continue
		}
		report.Success = false
		if !seen[check.DebugHint] {
			seen[check.DebugHint] = true
			report.DebugInstructions = append(report.DebugInstructions, check.DebugHint)
		}
	}
	return report
}

// Checks builds the battery. Descriptions are computed eagerly, so the
// linked PHP lookup happens once here, before any predicate runs.
func (s *Service) Checks() []domain.Check {
	home := s.Config.HomePath()
	linkedPhp := s.Backend.LinkedPhpFormula()

	phpHint := fmt.Sprintf("Restart PHP FPM: run `govalet restart %s`.", linkedPhp)

	return []domain.Check{
		{
			Description: "Install directories and configuration file are present",
			Predicate:   s.installIntact,
			DebugHint:   "Run `govalet install` to rebuild the install directory.",
		},
		{
			Description: "Configuration file is valid",
			Predicate:   s.configValid,
			DebugHint:   "config.yaml is missing or malformed; run `govalet install` to regenerate it.",
		},
		{
			Description: "Package manager is installed",
			Predicate:   s.Backend.Available,
			DebugHint:   "Install Homebrew (macOS) or apt (Linux) before using govalet.",
		},
		{
			Description: "Dnsmasq is installed",
			Predicate:   func() bool { return s.Backend.Installed(domain.PackageDnsmasq) },
			DebugHint:   "Run `govalet install` to install dnsmasq.",
		},
		{
			Description: "Dnsmasq is running",
			Predicate:   func() bool { return s.Backend.IsServiceRunning(domain.PackageDnsmasq, true) },
			DebugHint:   "Restart dnsmasq: run `govalet restart dnsmasq`.",
		},
		{
			Description: "Dnsmasq is running as root",
			Predicate:   func() bool { return s.Backend.IsServiceRunningAsRoot(domain.PackageDnsmasq, true) },
			DebugHint:   "Restart dnsmasq: run `govalet restart dnsmasq`.",
		},
		{
			Description: "Nginx is installed",
			Predicate: func() bool {
				return s.Backend.Installed(domain.PackageNginx) || s.Backend.Installed(domain.PackageNginxAlt)
			},
			DebugHint: "Run `govalet install` to install nginx.",
		},
		{
			Description: "Nginx is running",
			Predicate:   func() bool { return s.Backend.IsServiceRunning(domain.PackageNginx, false) },
			DebugHint:   "Restart nginx: run `govalet restart nginx`.",
		},
		{
			Description: "Nginx is running as root",
			Predicate:   func() bool { return s.Backend.IsServiceRunningAsRoot(domain.PackageNginx, false) },
			DebugHint:   "Restart nginx: run `govalet restart nginx`.",
		},
		{
			Description: "PHP is installed",
			Predicate:   s.phpInstalled,
			DebugHint:   "Run `govalet install` to install PHP.",
		},
		{
			Description: fmt.Sprintf("Linked PHP (%s) is running", linkedPhp),
			Predicate:   func() bool { return s.Backend.IsServiceRunning(linkedPhp, false) },
			DebugHint:   phpHint,
		},
		{
			Description: fmt.Sprintf("Linked PHP (%s) is running as root", linkedPhp),
			Predicate:   func() bool { return s.Backend.IsServiceRunningAsRoot(linkedPhp, false) },
			DebugHint:   phpHint,
		},
		{
			Description: "Control socket is present",
			Predicate:   func() bool { return s.Files.Exists(filepath.Join(home, domain.SocketFileName)) },
			DebugHint:   "Start the govalet services: run `govalet restart`.",
		},
	}
}

func (s *Service) installIntact() bool {
	home := s.Config.HomePath()
	for _, dir := range domain.InstallDirectories {
		if !s.Files.IsDir(filepath.Join(home, dir)) {
			return false
		}
	}
	return s.Files.Exists(s.Config.Path())
}

// configValid reads configuration state but never mutates it; a parse
// failure counts as a failed check, not a fatal error.
func (s *Service) configValid() bool {
	cfg, err := s.Config.Read()
	if err != nil {
		return false
	}
	return cfg.Validate() == nil
}

func (s *Service) phpInstalled() bool {
	for _, version := range s.Backend.SupportedPhpVersions() {
		if s.Backend.Installed(version) {
			return true
		}
	}
	return false
}
