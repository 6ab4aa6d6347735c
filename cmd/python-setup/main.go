package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/lgtm-ci/python-setup/internal/cli"
	"github.com/lgtm-ci/python-setup/pkg/log"
)

func init() {
	log.SetDefault("warn", "auto")
}

const (
	cmdName = "python-setup"

	shortDesc = "Probe a Python interpreter for CI setup."
	longDesc  = `Probe a Python interpreter for CI setup.

Given the path to a Python executable, python-setup asks it for its major
version and for the directory two levels above pip's install location, then
prints both values as ::set-env marker lines for the CI host to register as
LGTM_PYTHON_SETUP_VERSION and LGTM_INDEX_IMPORT_PATH.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
