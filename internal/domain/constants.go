package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// ConfigFilePermissions is the permission for the configuration file (rw-r--r--)
	ConfigFilePermissions = 0o644
)

// Install home layout. Every entry lives directly under the home path
// returned by the config source.
const (
	// ConfigFileName is the configuration file inside the install home.
	ConfigFileName = "config.yaml"
	// SocketFileName is the control socket inside the install home.
	SocketFileName = "govalet.sock"
)

// InstallDirectories are the subdirectories scaffolded under the install home.
var InstallDirectories = []string{"Drivers", "Sites", "Log", "Certificates"}

// Managed packages.
const (
	// PackageDnsmasq is the DNS resolver package.
	PackageDnsmasq = "dnsmasq"
	// PackageNginx is the web server package.
	PackageNginx = "nginx"
	// PackageNginxAlt is the alternative web server package name some
	// distributions ship instead of plain nginx.
	PackageNginxAlt = "nginx-full"
)

// History constants
const (
	// DefaultHistoryLimit is the default number of doctor runs to display.
	DefaultHistoryLimit = 20
)
