// Package lock handles parsing and writing of libs.lock.yaml files.
// Lock files record the origin URL and exact commit of each integrated
// library, so an integration state can be reviewed and reproduced.
package lock
