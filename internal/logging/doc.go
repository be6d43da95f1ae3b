// Package logger writes leveled, color-prefixed diagnostics for gkms.
//
// The root command builds one Logger per invocation from --verbose and
// --debug and hands it to the gcloud client. Command output proper (echoed
// gcloud command lines, results) does not go through the logger.
//
//	Infof, Warnf     --verbose or --debug
//	Debugf, Errorf   --debug only
//	WarnfAlways      always, on stderr
package logger
