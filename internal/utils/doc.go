// Package utils holds small helpers shared by the gkms packages: XDG-aware
// config and data directories, sibling file lookup for .kms discovery,
// terminal detection for the progress spinner, and user and host names for
// the audit log.
package utils
