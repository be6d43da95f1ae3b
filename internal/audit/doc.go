// Package audit records the gcloud operations gkms performs.
//
// Every encrypt, decrypt and create invocation appends one JSON line to
// $XDG_DATA_HOME/gkms/audit.jsonl. Each entry carries a timestamp, an
// invocation UUID, the user and host, the KMS coordinates, the gcloud
// command lines in order and the error text when the operation failed.
//
//	entry := audit.NewEntry("encrypt")
//	entry.Files = []string{"a.txt", "a.txt.enc"}
//	audit.Log(entry)
//
// Audit logging is best-effort. Operations never fail because logging
// failed. Malformed lines are skipped when reading the log back.
package audit
