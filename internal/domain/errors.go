package domain

import "fmt"

// InstallError reports a failed package installation. It aborts the install
// workflow; callers must not retry.
type InstallError struct {
	Package string
	Output  string
}

func (e *InstallError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("unable to install %s", e.Package)
	}
	return fmt.Sprintf("unable to install %s: %s", e.Package, e.Output)
}

// LinkError reports a failed symbolic-link creation or removal for a package.
type LinkError struct {
	Package string
	Output  string
}

func (e *LinkError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("unable to link %s", e.Package)
	}
	return fmt.Sprintf("unable to link %s: %s", e.Package, e.Output)
}

// PhpResolutionError reports that the linked PHP version could not be matched
// against the supported versions. Downstream link/restart operations depend
// on a valid identity, so this is never silently swallowed.
type PhpResolutionError struct {
	Input string
}

func (e *PhpResolutionError) Error() string {
	return fmt.Sprintf("unable to determine linked PHP from %q", e.Input)
}
