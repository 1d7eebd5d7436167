// Package properties parses Arduino library.properties metadata files:
// line-oriented key=value pairs describing a library's name, version,
// author, and similar fields.
package properties
