package domain_test

import (
	"testing"

	"github.com/doeshing/govalet/internal/domain"
)

// TestParsePhpPath tests PHP executable path parsing
func TestParsePhpPath(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantPrefix  string
		wantBase    string
		wantVersion string
	}{
		{
			name:        "versioned executable",
			path:        "/usr/bin/php8.2",
			wantPrefix:  "/usr/bin",
			wantBase:    "php",
			wantVersion: "8.2",
		},
		{
			name:        "at-versioned formula path",
			path:        "/opt/homebrew/opt/php@8.2",
			wantPrefix:  "/opt/homebrew/opt",
			wantBase:    "php",
			wantVersion: "8.2",
		},
		{
			name:        "cellar path with trailing segments",
			path:        "/opt/homebrew/Cellar/php@8.1/8.1.27/bin/php",
			wantPrefix:  "/opt/homebrew/Cellar",
			wantBase:    "php",
			wantVersion: "8.1",
		},
		{
			name:       "generic executable",
			path:       "/usr/bin/php",
			wantPrefix: "/usr/bin",
			wantBase:   "php",
		},
		{
			name: "not a php executable",
			path: "/usr/bin/ruby",
		},
		{
			name: "php only as part of another word",
			path: "/home/phpuser/bin/ruby",
		},
		{
			name: "empty path",
			path: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := domain.ParsePhpPath(tt.path)

			if identity.Prefix != tt.wantPrefix {
				t.Errorf("got prefix %q, want %q", identity.Prefix, tt.wantPrefix)
			}
			if identity.Base != tt.wantBase {
				t.Errorf("got base %q, want %q", identity.Base, tt.wantBase)
			}
			if identity.Version != tt.wantVersion {
				t.Errorf("got version %q, want %q", identity.Version, tt.wantVersion)
			}
			if tt.wantBase == "" && !identity.IsZero() {
				t.Errorf("expected zero identity for %q", tt.path)
			}
		})
	}
}

// TestPhpIdentity_Formula tests the base-plus-version label
func TestPhpIdentity_Formula(t *testing.T) {
	tests := []struct {
		name     string
		identity domain.PhpIdentity
		want     string
	}{
		{
			name:     "versioned",
			identity: domain.PhpIdentity{Prefix: "/usr/bin", Base: "php", Version: "8.2"},
			want:     "php8.2",
		},
		{
			name:     "generic",
			identity: domain.PhpIdentity{Prefix: "/usr/bin", Base: "php"},
			want:     "php",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.identity.Formula(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// TestPhpVersionsEqual tests digit-projection equality
func TestPhpVersionsEqual(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{name: "dotted vs prefixed", a: "8.2", b: "php8.2", want: true},
		{name: "at-form vs bare digits", a: "php@8.2", b: "82", want: true},
		{name: "full digit run differs", a: "php@8.2", b: "828", want: false},
		{name: "no numeric conflation", a: "php8.2", b: "php8.20", want: false},
		{name: "same label", a: "php7.4", b: "php7.4", want: true},
		{name: "both versionless", a: "php", b: "php", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain.PhpVersionsEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("PhpVersionsEqual(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestVersionDigits tests the digit-only projection
func TestVersionDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "php@8.2", want: "82"},
		{in: "8.2", want: "82"},
		{in: "php", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := domain.VersionDigits(tt.in); got != tt.want {
			t.Errorf("VersionDigits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestHealthReport_InstructionBlock tests instruction rendering
func TestHealthReport_InstructionBlock(t *testing.T) {
	report := domain.HealthReport{
		DebugInstructions: []string{"first hint", "second hint"},
	}
	want := "first hint\nsecond hint"
	if got := report.InstructionBlock(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// TestConfig_Validate tests required-key validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		config    domain.Config
		wantError bool
	}{
		{
			name:   "complete config",
			config: domain.Config{TLD: "test", Loopback: "127.0.0.1", Paths: []string{"/home/u/Sites"}},
		},
		{
			name:      "missing tld",
			config:    domain.Config{Loopback: "127.0.0.1", Paths: []string{"/home/u/Sites"}},
			wantError: true,
		},
		{
			name:      "missing loopback",
			config:    domain.Config{TLD: "test", Paths: []string{"/home/u/Sites"}},
			wantError: true,
		},
		{
			name:      "missing paths",
			config:    domain.Config{TLD: "test", Loopback: "127.0.0.1"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
