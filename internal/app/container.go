package app

import (
	"runtime"

	"github.com/doeshing/govalet/internal/application/doctor"
	"github.com/doeshing/govalet/internal/application/install"
	"github.com/doeshing/govalet/internal/application/php"
	"github.com/doeshing/govalet/internal/infrastructure/config"
	"github.com/doeshing/govalet/internal/infrastructure/executor"
	"github.com/doeshing/govalet/internal/infrastructure/history"
	"github.com/doeshing/govalet/internal/infrastructure/pm/aptsysd"
	"github.com/doeshing/govalet/internal/infrastructure/pm/brew"
	"github.com/doeshing/govalet/internal/pkg/filesystem"
	"github.com/doeshing/govalet/internal/pkg/logger"
	"github.com/doeshing/govalet/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config    *config.FileSource
	Files     ports.Filesystem
	Runner    ports.CommandRunner
	Backend   ports.ServiceBackend
	Doctor    *doctor.Service
	Installer *install.Service
	Php       *php.Service
	History   ports.DoctorHistory
	Log       ports.Logger
}

// BuildContainer constructs the dependency graph. The service backend is
// picked by host OS: Homebrew on darwin, apt/systemd everywhere else.
func BuildContainer(verbose bool) *Container {
	log := logger.NewStd(verbose)
	cfg := config.NewFileSource("")
	files := filesystem.Disk{}
	runner := executor.NewShellRunner("", log)

	var backend ports.ServiceBackend
	if runtime.GOOS == "darwin" {
		backend = brew.NewBackend(runner, log)
	} else {
		backend = aptsysd.NewBackend(runner, log)
	}

	return &Container{
		Config:    cfg,
		Files:     files,
		Runner:    runner,
		Backend:   backend,
		Doctor:    &doctor.Service{Config: cfg, Files: files, Backend: backend},
		Installer: &install.Service{Config: cfg, Backend: backend, Log: log},
		Php:       &php.Service{Backend: backend, Log: log},
		History:   history.NewSQLiteStore(cfg.HomePath()),
		Log:       log,
	}
}
