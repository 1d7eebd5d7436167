package main

import (
	"bytes"
	"testing"
)

// runLibman executes the CLI against the given libs directory, capturing
// stdout and stderr.
func runLibman(t *testing.T, libsDir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--libs", libsDir}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}
