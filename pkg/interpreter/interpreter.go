// Package interpreter probes a Python executable for the details a CI
// indexer needs before analysis starts.
package interpreter

import (
	"fmt"
	"strings"

	"github.com/lgtm-ci/python-setup/pkg/pyexec"
)

// One-line programs passed to the interpreter via `-c`. The import path is
// the directory two levels above pip's own install location, which for a
// standard layout is the root that packages are imported relative to.
const (
	importPathProgram = "import os; import pip; print(os.path.dirname(os.path.dirname(pip.__file__)))"
	versionProgram    = "import sys; print(sys.version_info[0])"
)

// Details holds what a single probe run learns about an interpreter.
type Details struct {
	// Version is the interpreter's major version number, e.g. "3".
	Version string
	// ImportPath is the directory two levels above pip's install location.
	ImportPath string
}

// GetDetails runs pythonPath twice to read the pip-derived import path and
// the major version. Both values are returned with surrounding whitespace
// stripped. Any failure, including pip not being importable in the target
// environment, aborts the whole probe.
func GetDetails(pythonPath string) (Details, error) {
	importPath, err := pyexec.RunCommand(pythonPath, "-c", importPathProgram)
	if err != nil {
		return Details{}, fmt.Errorf("failed probing pip location: %w", err)
	}

	version, err := pyexec.RunCommand(pythonPath, "-c", versionProgram)
	if err != nil {
		return Details{}, fmt.Errorf("failed probing interpreter version: %w", err)
	}

	return Details{
		Version:    strings.TrimSpace(version),
		ImportPath: strings.TrimSpace(importPath),
	}, nil
}
