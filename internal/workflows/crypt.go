package workflows

import (
	"context"
	"strings"

	"github.com/PolarWolf314/gkms/internal/gcloud"
	"github.com/PolarWolf314/gkms/internal/options"
)

// DefaultExtension is appended to plaintext file names when neither the
// options nor the user config name an extension.
const DefaultExtension = "enc"

// cryptArgs are the options passed through to gcloud kms encrypt/decrypt.
var cryptArgs = []options.Name{
	options.Location,
	options.Key,
	options.Keyring,
	options.PlaintextFile,
	options.CiphertextFile,
	options.Version,
}

// CryptOptions configures the encrypt and decrypt workflows.
type CryptOptions struct {
	// Options is the resolved option set.
	Options options.Set

	// File is the positional argument. It overrides the flag and env value
	// of plaintext-file (encrypt) or ciphertext-file (decrypt).
	File string

	// DefaultExtension is used when ciphertext-file-extension is absent.
	// Empty means DefaultExtension.
	DefaultExtension string
}

// CryptResult contains the outcome of an encrypt or decrypt operation.
type CryptResult struct {
	// Options is the option set after derivation.
	Options options.Set

	// Command is the main gcloud command.
	Command gcloud.Command

	// Commands lists every mutating gcloud command in order, including
	// project switches.
	Commands []gcloud.Command

	// DryRun indicates nothing was executed.
	DryRun bool
}

func extension(set options.Set, fallback string) string {
	if ext := set.Get(options.CiphertextFileExtension); ext != "" {
		return ext
	}
	if fallback != "" {
		return fallback
	}
	return DefaultExtension
}

// DeriveEncrypt applies the encrypt rules to a copy of set: the positional
// file replaces plaintext-file, and an absent ciphertext-file becomes
// plaintext-file + "." + extension.
func DeriveEncrypt(set options.Set, file, defaultExt string) options.Set {
	out := set.Clone()
	if file != "" {
		out.Put(options.PlaintextFile, file)
	}
	if !out.Has(options.CiphertextFile) && out.Has(options.PlaintextFile) {
		out.Put(options.CiphertextFile, out.Get(options.PlaintextFile)+"."+extension(out, defaultExt))
	}
	return out
}

// DeriveDecrypt applies the decrypt rules to a copy of set: the positional
// file replaces ciphertext-file, and an absent plaintext-file is derived by
// stripping "." + extension. A ciphertext name without that suffix leaves
// plaintext-file absent.
func DeriveDecrypt(set options.Set, file, defaultExt string) options.Set {
	out := set.Clone()
	if file != "" {
		out.Put(options.CiphertextFile, file)
	}
	if !out.Has(options.PlaintextFile) && out.Has(options.CiphertextFile) {
		ciphertext := out.Get(options.CiphertextFile)
		if plaintext, ok := strings.CutSuffix(ciphertext, "."+extension(out, defaultExt)); ok && plaintext != "" {
			out.Put(options.PlaintextFile, plaintext)
		}
	}
	return out
}

// CryptCommand builds `gcloud kms <op>` with the present pass-through options.
func CryptCommand(op string, set options.Set) gcloud.Command {
	return gcloud.KMS(append([]string{op}, set.Args(cryptArgs...)...)...)
}

// Encrypt runs gcloud kms encrypt.
func Encrypt(ctx context.Context, client *gcloud.Client, opts CryptOptions) (*CryptResult, error) {
	set := DeriveEncrypt(opts.Options, opts.File, opts.DefaultExtension)
	return runCrypt(ctx, client, "encrypt", set)
}

// Decrypt runs gcloud kms decrypt.
func Decrypt(ctx context.Context, client *gcloud.Client, opts CryptOptions) (*CryptResult, error) {
	set := DeriveDecrypt(opts.Options, opts.File, opts.DefaultExtension)
	return runCrypt(ctx, client, "decrypt", set)
}

func runCrypt(ctx context.Context, client *gcloud.Client, op string, set options.Set) (*CryptResult, error) {
	result := &CryptResult{
		Options: set,
		Command: CryptCommand(op, set),
		DryRun:  client.DryRun,
	}

	client.Logger.Debugf("Running %s with options %v", op, set)
	err := client.WithProject(ctx, set.Get(options.Project), func(ctx context.Context) error {
		client.Logger.Infof("Executing %s", op)
		return client.Exec(ctx, result.Command)
	})
	result.Commands = client.Planned()
	return result, err
}
