package main

import (
	"os"

	"github.com/PolarWolf314/gkms/cmd"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "gkms",
	Short: "gkms - run gcloud kms with options from flags, env vars and .kms files.",
	Long: `gkms wraps gcloud kms to encrypt and decrypt files and to create keys.

Options are taken from flags first, then from prefixed environment variables
(KMS_PROJECT, KMS_LOCATION, KMS_KEYRING, KMS_KEY, ...), which may be defined
in a .kms file next to the target file or in the current directory.

Usage:
  gkms <command> [flags]

Available Commands:
  encrypt    Encrypt a file with a Cloud KMS key
  decrypt    Decrypt a file with a Cloud KMS key
  create     Create a key, and its keyring if needed
  log        View the audit log
  config     Manage gkms configuration

Run 'gkms help <command>' for more details on a specific command.
`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(c *cobra.Command, args []string) {
		cmd.PrintBanner(c.OutOrStdout())
	},
}

func init() {
	cmd.Register(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cmd.ReportError(rootCmd.ErrOrStderr(), err)
		os.Exit(cmd.ExitCode(err))
	}
}
