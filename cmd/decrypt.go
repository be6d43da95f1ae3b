package cmd

import (
	"github.com/spf13/cobra"
)

func newDecryptCmd() *cobra.Command {
	return newCryptCmd(decryptOp,
		"decrypt [ciphertext-file]",
		"Decrypt a file with a Cloud KMS key",
		`Decrypts a file by running gcloud kms decrypt.

Options are resolved exactly as for encrypt. When no plaintext file is
given and the ciphertext file ends with the ciphertext file extension, the
plaintext file is the ciphertext file without that extension.

Examples:
  gkms decrypt secrets.json.enc                   # writes secrets.json
  gkms decrypt -x gpg secrets.json.gpg            # custom extension
  gkms decrypt -c data.bin -p data.txt
  gkms decrypt --prefix APP secrets.json.enc      # read APP_KEY, APP_KEYRING, ...`)
}
