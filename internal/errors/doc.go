// Package errors declares the sentinel errors gkms returns.
//
// The CLI matches them with errors.Is to pick a message and a hint. A gcloud
// process that exits non-zero is reported as *gcloud.ExitError instead; the
// sentinels here may wrap one, as in
//
//	fmt.Errorf("%w %s: %w", kerrors.ErrKeyringProbeFailed, keyring, exitErr)
//
// so errors.As still reaches the exit code and stderr.
package errors
