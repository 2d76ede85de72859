// Package aptsysd implements the Linux service backend: packages come from
// apt/dpkg and services from systemd. systemd has no per-user service
// concept here, so every normalized record is root-owned and user-scoped
// queries always answer false.
package aptsysd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/doeshing/govalet/internal/domain"
	"github.com/doeshing/govalet/internal/infrastructure/pm"
	"github.com/doeshing/govalet/internal/ports"
)

const (
	// binDirectory is where the managed php symlink lives.
	binDirectory = "/usr/bin"
	// phpBinary is the well-known linked PHP executable.
	phpBinary = "/usr/bin/php"
	// phpRepository carries PHP versions past their distribution support.
	phpRepository = "ppa:ondrej/php"
)

// phpVersions are the packages this backend can manage, most recent first.
var phpVersions = []string{"php", "php8.4", "php8.3", "php8.2", "php8.1", "php8.0", "php7.4"}

// retiredPhpVersions need phpRepository enabled before they can be installed.
var retiredPhpVersions = map[string]bool{"php8.0": true, "php7.4": true}

// Backend is the apt/systemd implementation of ports.ServiceBackend.
type Backend struct {
	cli ports.CommandRunner
	log ports.Logger

	services pm.ServiceSnapshot
}

// NewBackend builds an apt/systemd backend.
func NewBackend(cli ports.CommandRunner, log ports.Logger) *Backend {
	return &Backend{cli: cli, log: log}
}

// Available reports whether apt is reachable on this host.
func (b *Backend) Available() bool {
	out := b.cli.Run("which apt-get", ports.RunOptions{OnFailure: swallow})
	return strings.TrimSpace(out) != ""
}

// Installed reports whether pkg is installed according to dpkg.
func (b *Backend) Installed(pkg string) bool {
	out := b.cli.Run(
		fmt.Sprintf("dpkg-query -W -f='${db:Status-Status}' %s", pkg),
		ports.RunOptions{OnFailure: swallow},
	)
	return strings.TrimSpace(out) == "installed"
}

// EnsureInstalled installs pkg unless it is already present. Repositories
// are enabled first; retired PHP versions pull in the supplemental PHP
// repository automatically.
func (b *Backend) EnsureInstalled(pkg string, installArgs []string, repos []string) error {
	if b.Installed(pkg) {
		b.log.Debug("package already installed", map[string]interface{}{"package": pkg})
		return nil
	}

	if retiredPhpVersions[pkg] {
		b.log.Warn("installing a PHP version past distribution support", map[string]interface{}{
			"package":    pkg,
			"repository": phpRepository,
		})
		repos = append(append([]string{}, repos...), phpRepository)
	}
	for _, repo := range repos {
		b.enableRepository(repo)
	}

	b.log.Info("installing package", map[string]interface{}{"package": pkg})
	var installErr error
	cmd := strings.Join(append([]string{"apt-get install -y", pkg}, installArgs...), " ")
	b.cli.Run(cmd, ports.RunOptions{
		Sudo: true,
		OnFailure: func(_ int, errorOutput string) {
			installErr = &domain.InstallError{Package: pkg, Output: strings.TrimSpace(errorOutput)}
		},
	})
	return installErr
}

func (b *Backend) enableRepository(repo string) {
	b.log.Info("enabling repository", map[string]interface{}{"repository": repo})
	b.cli.Run("add-apt-repository -y "+repo, ports.RunOptions{Sudo: true, OnFailure: b.warnFailure("add-apt-repository")})
	b.cli.Run("apt-get update", ports.RunOptions{Sudo: true, OnFailure: b.warnFailure("apt-get update")})
}

// Uninstall purges pkg. Best effort; failures are logged.
func (b *Backend) Uninstall(pkg string) {
	b.cli.Run("apt-get purge -y "+pkg, ports.RunOptions{Sudo: true, OnFailure: b.warnFailure("apt-get purge")})
}

// CleanupCache drops unused packages and the apt archive cache. Best effort.
func (b *Backend) CleanupCache() {
	b.cli.Run("apt-get autoremove -y", ports.RunOptions{Sudo: true, OnFailure: b.warnFailure("apt-get autoremove")})
	b.cli.Run("apt-get clean", ports.RunOptions{Sudo: true, OnFailure: b.warnFailure("apt-get clean")})
}

// IsServiceRunning reports whether a matching service unit is active.
func (b *Backend) IsServiceRunning(name string, exact bool) bool {
	return pm.IsRunning(b.serviceList(), name, exact)
}

// IsServiceRunningAsRoot reports whether a matching active unit is
// root-owned, which on systemd is every active unit.
func (b *Backend) IsServiceRunningAsRoot(name string, exact bool) bool {
	return pm.IsRunningAsRoot(b.serviceList(), name, exact)
}

// IsServiceRunningAsUser always answers false: systemd system units have no
// current-user instance.
func (b *Backend) IsServiceRunningAsUser(string, bool) bool {
	return false
}

// StartService starts a unit. Outcome is reported through the logger.
func (b *Backend) StartService(name string) {
	name = unitName(name)
	b.cli.Run("systemctl start "+name, ports.RunOptions{Sudo: true, OnFailure: b.warnFailure("systemctl start " + name)})
}

// StopService stops a unit.
func (b *Backend) StopService(name string) {
	name = unitName(name)
	b.cli.Run("systemctl stop "+name, ports.RunOptions{Sudo: true, OnFailure: b.warnFailure("systemctl stop " + name)})
}

// RestartService restarts a unit.
func (b *Backend) RestartService(name string) {
	name = unitName(name)
	b.cli.Run("systemctl restart "+name, ports.RunOptions{Sudo: true, OnFailure: b.warnFailure("systemctl restart " + name)})
}

// unitName maps a managed PHP package to its FPM unit; the bare package has
// no systemd unit of its own.
func unitName(name string) string {
	for _, version := range phpVersions {
		if name == version {
			return fpmServiceName(name)
		}
	}
	return name
}

// Services returns the normalized unit snapshot.
func (b *Backend) Services() []domain.ServiceRecord {
	return append([]domain.ServiceRecord{}, b.serviceList()...)
}

// SupportedPhpVersions lists the manageable PHP packages, most recent first.
func (b *Backend) SupportedPhpVersions() []string {
	return append([]string{}, phpVersions...)
}

// LinkedPhp resolves /usr/bin/php and matches it against the supported
// versions by digit projection.
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

// LinkedPhpFormula returns the linked executable's base-plus-version label,
// falling back to the generic "php" when nothing parseable is linked.
func (b *Backend) LinkedPhpFormula() string {
	identity, _ := b.linkedIdentity()
	if identity.IsZero() {
		return "php"
	}
	return identity.Formula()
}

func (b *Backend) linkedIdentity() (domain.PhpIdentity, string) {
	target := strings.TrimSpace(b.cli.Run("readlink -f "+phpBinary, ports.RunOptions{OnFailure: swallow}))
	return domain.ParsePhpPath(target), target
}

// Link points the php alternative at pkg's executable (e.g. /usr/bin/php8.2).
func (b *Backend) Link(pkg string) error {
	var linkErr error
	path := filepath.Join(binDirectory, pkg)
	b.cli.Run("update-alternatives --set php "+path, ports.RunOptions{
		Sudo: true,
		OnFailure: func(_ int, errorOutput string) {
			linkErr = &domain.LinkError{Package: pkg, Output: strings.TrimSpace(errorOutput)}
		},
	})
	return linkErr
}

// Unlink returns the php alternative to automatic selection.
func (b *Backend) Unlink(pkg string) error {
	var linkErr error
	b.cli.Run("update-alternatives --auto php", ports.RunOptions{
		Sudo: true,
		OnFailure: func(_ int, errorOutput string) {
			linkErr = &domain.LinkError{Package: pkg, Output: strings.TrimSpace(errorOutput)}
		},
	})
	return linkErr
}

// RestartLinkedPhp restarts the FPM companion of the linked PHP version
// (php8.2 -> php8.2-fpm).
func (b *Backend) RestartLinkedPhp() error {
	formula, err := b.LinkedPhp()
	if err != nil {
		return err
	}
	b.RestartService(formula)
	return nil
}

func fpmServiceName(formula string) string {
	return formula + "-fpm"
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
