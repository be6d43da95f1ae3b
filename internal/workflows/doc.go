// Package workflows implements the gkms operations on top of gcloud.Client.
//
// Encrypt and Decrypt derive the missing file name from the other one and run
// gcloud kms encrypt or decrypt. Create probes the keyring with
// `gcloud kms keyrings describe`, creates it only on NOT_FOUND, then runs
// `gcloud kms keys create`.
//
// Every workflow runs inside Client.WithProject, so a project option that
// differs from the active gcloud project is switched to and restored on
// every exit path, including failures.
//
// A failing gcloud process surfaces as *gcloud.ExitError so the CLI can exit
// with gcloud's status:
//
//	result, err := workflows.Create(ctx, client, opts)
//	if errors.Is(err, kerrors.ErrKeyringProbeFailed) {
//	    // describe failed for a reason other than NOT_FOUND
//	}
package workflows
