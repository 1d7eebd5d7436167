// Package git provides a wrapper around Git CLI commands used by libman.
// It handles clone, pull, remote inspection, and dirty-state detection
// without depending on other internal packages.
package git
