// Package library resolves the framework's local library directory and the
// per-library destination paths inside it, and discovers which libraries are
// currently integrated. The directory itself is the registry: every
// subdirectory of the libs directory counts as an integrated library.
package library
