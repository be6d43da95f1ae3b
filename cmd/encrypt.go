package cmd

import (
	"github.com/spf13/cobra"
)

func newEncryptCmd() *cobra.Command {
	return newCryptCmd(encryptOp,
		"encrypt [plaintext-file]",
		"Encrypt a file with a Cloud KMS key",
		`Encrypts a file by running gcloud kms encrypt.

Options come from flags, then from environment variables named after the
option with the KMS_ prefix (KMS_KEY, KMS_KEYRING, ...), which may be set in
a .kms file next to the plaintext file or in the current directory.

When no ciphertext file is given, it is the plaintext file with the
ciphertext file extension appended ("enc" by default).

If --project differs from the active gcloud project, gkms switches to it
for the duration of the command and switches back afterwards.

Examples:
  gkms encrypt secrets.json                       # writes secrets.json.enc
  gkms encrypt -r my-ring -k my-key -l global secrets.json
  gkms encrypt --env ./prod.kms secrets.json      # use a specific env file
  gkms encrypt --dry-run secrets.json             # print the gcloud commands`)
}
