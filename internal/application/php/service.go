// Package php switches the linked PHP version.
package php

import (
	"github.com/doeshing/govalet/internal/domain"
	"github.com/doeshing/govalet/internal/ports"
)

// Service switches which PHP version is linked system-wide.
type Service struct {
	Backend ports.ServiceBackend
	Log     ports.Logger
}

// Use resolves the requested version label ("8.2", "php8.2", "php@8.2" all
// denote the same release) against the supported versions, installs it when
// missing, relinks, and restarts its FPM service.
func (s *Service) Use(version string) (string, error) {
	target := ""
	for _, supported := range s.Backend.SupportedPhpVersions() {
		if domain.PhpVersionsEqual(supported, version) {
			target = supported
			break
		}
	}
	if target == "" {
		return "", &domain.PhpResolutionError{Input: version}
	}

	if err := s.Backend.EnsureInstalled(target, nil, nil); err != nil {
		return "", err
	}

	if current, err := s.Backend.LinkedPhp(); err == nil && current != target {
		if err := s.Backend.Unlink(current); err != nil {
			s.Log.Warn("could not unlink current PHP", map[string]interface{}{
				"formula": current,
				"error":   err.Error(),
			})
		}
	}
	if err := s.Backend.Link(target); err != nil {
		return "", err
	}
	if err := s.Backend.RestartLinkedPhp(); err != nil {
		return "", err
	}
	return target, nil
}
