// Package ui renders gkms terminal output.
//
// Styles colorize text through fatih/color. With NO_COLOR set, or when stdout
// is not a terminal, they fall back to plain decorations instead:
//
//	ui.Command.Sprint("gcloud kms encrypt")   // `gcloud kms encrypt`
//	ui.Value.Sprint("my-project")             // 'my-project'
//	ui.Muted.Sprint("dry-run")                // (dry-run)
//
// Done, Failed, Caution, Note and Hint prefix a message with a status mark.
package ui
