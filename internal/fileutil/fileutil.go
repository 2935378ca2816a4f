// Package fileutil provides file permissions and XML corpus discovery.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for result output files
// (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// ReadableByAll is the file permission mode for files intended to be
// read by other tools and users.
const ReadableByAll os.FileMode = 0o644
