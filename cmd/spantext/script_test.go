package main

import (
	"os"
	"testing"

	"github.com/getmockd/spantext/pkg/cli"
	"github.com/rogpeppe/go-internal/testscript"
)

func TestCLIScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
	})
}

// TestMain acts as the main entrypoint. Testscript requires its own Main wrapper.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		// Each script invocation of spantext re-execs this test binary and
		// dispatches here, so no separately built CLI binary is needed.
		"spantext": func() int {
			cli.Execute()
			return 0
		},
	}))
}
