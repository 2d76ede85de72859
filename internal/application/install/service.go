// Package install drives the install and uninstall workflows.
package install

import (
	"github.com/doeshing/govalet/internal/domain"
	"github.com/doeshing/govalet/internal/ports"
)

// ConfigScaffolder extends the config source with the ability to scaffold
// the install home.
type ConfigScaffolder interface {
	ports.ConfigSource
	Ensure() error
}

// Service installs the managed packages and scaffolds the install home.
type Service struct {
	Config  ConfigScaffolder
	Backend ports.ServiceBackend
	Log     ports.Logger
}

// Install scaffolds the install home, installs the managed packages, and
// starts their services. A failed package install aborts the whole workflow.
func (s *Service) Install() error {
	if err := s.Config.Ensure(); err != nil {
		return err
	}

	if err := s.Backend.EnsureInstalled(domain.PackageDnsmasq, nil, nil); err != nil {
		return err
	}
	// Either nginx package name satisfies the web server requirement.
	if !s.Backend.Installed(domain.PackageNginxAlt) {
		if err := s.Backend.EnsureInstalled(domain.PackageNginx, nil, nil); err != nil {
			return err
		}
	}
	if err := s.ensurePhp(); err != nil {
		return err
	}

	s.Backend.StartService(domain.PackageDnsmasq)
	s.Backend.StartService(domain.PackageNginx)
	if err := s.Backend.RestartLinkedPhp(); err != nil {
		s.Log.Warn("linked PHP not restarted", map[string]interface{}{"error": err.Error()})
	}
	s.Backend.CleanupCache()
	return nil
}

// ensurePhp installs the default PHP package unless any supported version is
// already present.
func (s *Service) ensurePhp() error {
	for _, version := range s.Backend.SupportedPhpVersions() {
		if s.Backend.Installed(version) {
			return nil
		}
	}
	return s.Backend.EnsureInstalled("php", nil, nil)
}

// Uninstall stops the managed services and, when purge is set, removes the
// packages too. Package removal is best effort.
func (s *Service) Uninstall(purge bool) {
	if formula, err := s.Backend.LinkedPhp(); err == nil {
		s.Backend.StopService(formula)
	}
	s.Backend.StopService(domain.PackageNginx)
	s.Backend.StopService(domain.PackageDnsmasq)

	if !purge {
		return
	}
	s.Backend.Uninstall(domain.PackageNginx)
	s.Backend.Uninstall(domain.PackageDnsmasq)
	for _, version := range s.Backend.SupportedPhpVersions() {
		if s.Backend.Installed(version) {
			s.Backend.Uninstall(version)
		}
	}
	s.Backend.CleanupCache()
}
