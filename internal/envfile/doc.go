// Package envfile loads the optional .kms dotenv file.
//
// At most one file is read per invocation. The explicit --env path wins,
// then a .kms file next to the target file, then .kms in the working
// directory. Values already present in the process environment are never
// overridden by the file.
//
// The result is an Environment value that is passed to option resolution.
// The process environment itself is never modified.
package envfile
