package install_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/govalet/internal/application/install"
	"github.com/doeshing/govalet/internal/domain"
)

type fakeConfig struct {
	ensureErr   error
	ensureCalls int
}

func (f *fakeConfig) Read() (domain.Config, error) { return domain.Config{}, nil }
func (f *fakeConfig) Path() string                 { return "/tmp/config.yaml" }
func (f *fakeConfig) HomePath() string             { return "/tmp" }

func (f *fakeConfig) Ensure() error {
	f.ensureCalls++
	return f.ensureErr
}

// fakeBackend records package and service operations in order.
type fakeBackend struct {
	installed  map[string]bool
	installErr map[string]error
	linked     string
	linkedErr  error

	log []string
}

func (f *fakeBackend) Available() bool { return true }

func (f *fakeBackend) Installed(pkg string) bool { return f.installed[pkg] }

func (f *fakeBackend) EnsureInstalled(pkg string, _ []string, _ []string) error {
	f.log = append(f.log, "install "+pkg)
	return f.installErr[pkg]
}

func (f *fakeBackend) Uninstall(pkg string) { f.log = append(f.log, "uninstall "+pkg) }
func (f *fakeBackend) CleanupCache()        { f.log = append(f.log, "cleanup") }

func (f *fakeBackend) IsServiceRunning(string, bool) bool       { return false }
func (f *fakeBackend) IsServiceRunningAsRoot(string, bool) bool { return false }
func (f *fakeBackend) IsServiceRunningAsUser(string, bool) bool { return false }

func (f *fakeBackend) StartService(name string)   { f.log = append(f.log, "start "+name) }
func (f *fakeBackend) StopService(name string)    { f.log = append(f.log, "stop "+name) }
func (f *fakeBackend) RestartService(name string) { f.log = append(f.log, "restart "+name) }

func (f *fakeBackend) Services() []domain.ServiceRecord { return nil }
func (f *fakeBackend) SupportedPhpVersions() []string   { return []string{"php", "php8.2", "php7.4"} }
func (f *fakeBackend) LinkedPhp() (string, error)       { return f.linked, f.linkedErr }
func (f *fakeBackend) LinkedPhpFormula() string         { return f.linked }
func (f *fakeBackend) Link(string) error                { return nil }
func (f *fakeBackend) Unlink(string) error              { return nil }

func (f *fakeBackend) RestartLinkedPhp() error {
	f.log = append(f.log, "restart-linked-php")
	return f.linkedErr
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}

func newService(cfg *fakeConfig, backend *fakeBackend) *install.Service {
	return &install.Service{Config: cfg, Backend: backend, Log: nopLogger{}}
}

func TestInstall_FreshHost(t *testing.T) {
	cfg := &fakeConfig{}
	backend := &fakeBackend{installed: map[string]bool{}, linked: "php8.2"}

	err := newService(cfg, backend).Install()

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.ensureCalls)
	assert.Equal(t, []string{
		"install dnsmasq",
		"install nginx",
		"install php",
		"start dnsmasq",
		"start nginx",
		"restart-linked-php",
		"cleanup",
	}, backend.log)
}

func TestInstall_SkipsPresentPackages(t *testing.T) {
	cfg := &fakeConfig{}
	backend := &fakeBackend{
		installed: map[string]bool{"nginx-full": true, "php8.2": true},
		linked:    "php8.2",
	}

	err := newService(cfg, backend).Install()

	require.NoError(t, err)
	assert.NotContains(t, backend.log, "install nginx")
	assert.NotContains(t, backend.log, "install php")
}

func TestInstall_PackageFailureAborts(t *testing.T) {
	cfg := &fakeConfig{}
	backend := &fakeBackend{
		installed:  map[string]bool{},
		installErr: map[string]error{"dnsmasq": &domain.InstallError{Package: "dnsmasq"}},
	}

	err := newService(cfg, backend).Install()

	var installErr *domain.InstallError
	require.True(t, errors.As(err, &installErr))
	assert.NotContains(t, backend.log, "start dnsmasq")
}

func TestInstall_ScaffoldFailureAborts(t *testing.T) {
	cfg := &fakeConfig{ensureErr: errors.New("mkdir: permission denied")}
	backend := &fakeBackend{}

	err := newService(cfg, backend).Install()

	require.Error(t, err)
	assert.Empty(t, backend.log)
}

func TestInstall_UnresolvablePhpIsSoft(t *testing.T) {
	cfg := &fakeConfig{}
	backend := &fakeBackend{
		installed: map[string]bool{"php8.2": true},
		linkedErr: &domain.PhpResolutionError{Input: "/usr/bin/hhvm"},
	}

	err := newService(cfg, backend).Install()

	require.NoError(t, err)
	assert.Contains(t, backend.log, "cleanup")
}

func TestUninstall_StopsWithoutPurge(t *testing.T) {
	backend := &fakeBackend{linked: "php8.2"}
	svc := newService(&fakeConfig{}, backend)

	svc.Uninstall(false)

	assert.Equal(t, []string{"stop php8.2", "stop nginx", "stop dnsmasq"}, backend.log)
}

func TestUninstall_PurgeRemovesInstalledPackages(t *testing.T) {
	backend := &fakeBackend{
		linked:    "php8.2",
		installed: map[string]bool{"php8.2": true},
	}
	svc := newService(&fakeConfig{}, backend)

	svc.Uninstall(true)

	assert.Contains(t, backend.log, "uninstall nginx")
	assert.Contains(t, backend.log, "uninstall dnsmasq")
	assert.Contains(t, backend.log, "uninstall php8.2")
	assert.NotContains(t, backend.log, "uninstall php7.4")
	assert.Equal(t, "cleanup", backend.log[len(backend.log)-1])
}
