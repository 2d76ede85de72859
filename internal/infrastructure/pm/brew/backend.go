// Package brew implements the macOS service backend on top of Homebrew.
// Unlike systemd, brew services keeps separate per-user and per-root service
// instances, so ownership comes straight from the listings.
package brew

import (
	"strings"

	"github.com/doeshing/govalet/internal/domain"
	"github.com/doeshing/govalet/internal/infrastructure/pm"
	"github.com/doeshing/govalet/internal/ports"
)

// phpTap carries PHP versions Homebrew no longer ships in core.
const phpTap = "shivammathur/php"

// phpVersions are the formulae this backend can manage, most recent first.
var phpVersions = []string{"php", "php@8.4", "php@8.3", "php@8.2", "php@8.1", "php@8.0", "php@7.4"}

// retiredPhpVersions need phpTap enabled before they can be installed.
var retiredPhpVersions = map[string]bool{"php@8.0": true, "php@7.4": true}

// Backend is the Homebrew implementation of ports.ServiceBackend.
type Backend struct {
	cli ports.CommandRunner
	log ports.Logger

	prefix   string
	services pm.ServiceSnapshot
}

// NewBackend builds a Homebrew backend.
func NewBackend(cli ports.CommandRunner, log ports.Logger) *Backend {
	return &Backend{cli: cli, log: log}
}

// Available reports whether brew is reachable on this host.
func (b *Backend) Available() bool {
	out := b.cli.Run("which brew", ports.RunOptions{OnFailure: swallow})
	return strings.TrimSpace(out) != ""
}

// Installed reports whether pkg appears in brew's installed formula list.
func (b *Backend) Installed(pkg string) bool {
	out := b.cli.Run("brew list --formula", ports.RunOptions{OnFailure: swallow})
	for _, token := range strings.Fields(out) {
		if token == pkg {
			return true
		}
	}
	return false
}

// EnsureInstalled installs pkg unless it is already present, tapping the
// given repositories first. Retired PHP versions pull in the supplemental
// PHP tap automatically.
func (b *Backend) EnsureInstalled(pkg string, installArgs []string, taps []string) error {
	if b.Installed(pkg) {
		b.log.Debug("formula already installed", map[string]interface{}{"formula": pkg})
		return nil
	}

	if retiredPhpVersions[pkg] {
		b.log.Warn("installing a PHP version Homebrew no longer ships", map[string]interface{}{
			"formula": pkg,
			"tap":     phpTap,
		})
		taps = append(append([]string{}, taps...), phpTap)
	}
	for _, tap := range taps {
		b.log.Info("tapping repository", map[string]interface{}{"tap": tap})
		b.cli.Run("brew tap "+tap, ports.RunOptions{OnFailure: b.warnFailure("brew tap " + tap)})
	}

	b.log.Info("installing formula", map[string]interface{}{"formula": pkg})
	var installErr error
	cmd := strings.Join(append([]string{"brew install", pkg}, installArgs...), " ")
	b.cli.Run(cmd, ports.RunOptions{
		OnFailure: func(_ int, errorOutput string) {
			installErr = &domain.InstallError{Package: pkg, Output: strings.TrimSpace(errorOutput)}
		},
	})
	return installErr
}

// Uninstall removes pkg. Best effort; failures are logged.
func (b *Backend) Uninstall(pkg string) {
	b.cli.Run("brew uninstall --force "+pkg, ports.RunOptions{OnFailure: b.warnFailure("brew uninstall")})
}

// CleanupCache removes stale downloads and outdated kegs. Best effort.
func (b *Backend) CleanupCache() {
	b.cli.Run("brew cleanup", ports.RunOptions{OnFailure: b.warnFailure("brew cleanup")})
}

// IsServiceRunning reports whether a matching service is started, under
// either the invoking user or root.
func (b *Backend) IsServiceRunning(name string, exact bool) bool {
	return pm.IsRunning(b.serviceList(), name, exact)
}

// IsServiceRunningAsRoot restricts IsServiceRunning to root daemons.
func (b *Backend) IsServiceRunningAsRoot(name string, exact bool) bool {
	return pm.IsRunningAsRoot(b.serviceList(), name, exact)
}

// IsServiceRunningAsUser restricts IsServiceRunning to the invoking user's
// service instances.
func (b *Backend) IsServiceRunningAsUser(name string, exact bool) bool {
	return pm.IsRunningAsUser(b.serviceList(), name, exact)
}

// StartService starts a brew-managed service as a root daemon.
func (b *Backend) StartService(name string) {
	b.cli.Run("brew services start "+name, ports.RunOptions{Sudo: true, OnFailure: b.warnFailure("brew services start " + name)})
}

// StopService stops a brew-managed service.
func (b *Backend) StopService(name string) {
	b.cli.Run("brew services stop "+name, ports.RunOptions{Sudo: true, OnFailure: b.warnFailure("brew services stop " + name)})
}

// RestartService restarts a brew-managed service.
func (b *Backend) RestartService(name string) {
	b.cli.Run("brew services restart "+name, ports.RunOptions{Sudo: true, OnFailure: b.warnFailure("brew services restart " + name)})
}

// Services returns the normalized service snapshot across both scopes.
func (b *Backend) Services() []domain.ServiceRecord {
	return append([]domain.ServiceRecord{}, b.serviceList()...)
}

// SupportedPhpVersions lists the manageable PHP formulae, most recent first.
func (b *Backend) SupportedPhpVersions() []string {
	return append([]string{}, phpVersions...)
}

// LinkedPhp resolves the brew-linked php executable and matches it against
// the supported formulae by digit projection.
func (b *Backend) LinkedPhp() (string, error) {
	identity, target := b.linkedIdentity()
	if identity.IsZero() {
		return "", &domain.PhpResolutionError{Input: target}
	}
	for _, version := range phpVersions {
		if domain.PhpVersionsEqual(version, identity.Formula()) {
			return version, nil
		}
	}
	return "", &domain.PhpResolutionError{Input: target}
}

// LinkedPhpFormula returns the linked PHP in brew's own formula spelling
// ("php@8.2"), which is also the name of its service. Falls back to the
// generic "php" when nothing resolvable is linked.
func (b *Backend) LinkedPhpFormula() string {
	formula, err := b.LinkedPhp()
	if err != nil {
		return "php"
	}
	return formula
}

// linkedIdentity resolves BREW_PREFIX/bin/php through its symlink chain,
// landing on a Cellar path like .../Cellar/php@8.2/8.2.10/bin/php.
func (b *Backend) linkedIdentity() (domain.PhpIdentity, string) {
	target := strings.TrimSpace(b.cli.Run("readlink -f "+b.brewPrefix()+"/bin/php", ports.RunOptions{OnFailure: swallow}))
	return domain.ParsePhpPath(target), target
}

func (b *Backend) brewPrefix() string {
	if b.prefix == "" {
		b.prefix = strings.TrimSpace(b.cli.Run("brew --prefix", ports.RunOptions{OnFailure: swallow}))
		if b.prefix == "" {
			b.prefix = "/usr/local"
		}
	}
	return b.prefix
}

// Link makes pkg's executables the linked ones under BREW_PREFIX/bin.
func (b *Backend) Link(pkg string) error {
	var linkErr error
	b.cli.Run("brew link --force --overwrite "+pkg, ports.RunOptions{
		OnFailure: func(_ int, errorOutput string) {
			linkErr = &domain.LinkError{Package: pkg, Output: strings.TrimSpace(errorOutput)}
		},
	})
	return linkErr
}

// Unlink removes pkg's links from BREW_PREFIX/bin.
func (b *Backend) Unlink(pkg string) error {
	var linkErr error
	b.cli.Run("brew unlink "+pkg, ports.RunOptions{
		OnFailure: func(_ int, errorOutput string) {
			linkErr = &domain.LinkError{Package: pkg, Output: strings.TrimSpace(errorOutput)}
		},
	})
	return linkErr
}

// RestartLinkedPhp restarts the linked PHP's service; brew names the FPM
// service after the formula itself.
func (b *Backend) RestartLinkedPhp() error {
	formula, err := b.LinkedPhp()
	if err != nil {
		return err
	}
	b.RestartService(formula)
	return nil
}

func (b *Backend) serviceList() []domain.ServiceRecord {
	return b.services.Get(b.fetchServices)
}

func (b *Backend) warnFailure(what string) func(int, string) {
	return func(exitCode int, errorOutput string) {
		b.log.Warn("command failed", map[string]interface{}{
			"command":   what,
			"exit_code": exitCode,
			"stderr":    strings.TrimSpace(errorOutput),
		})
	}
}

func swallow(int, string) {}

var _ ports.ServiceBackend = (*Backend)(nil)
