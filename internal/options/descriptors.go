package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Descriptor binds an option name to its command-line flag.
type Descriptor struct {
	Name      Name
	Shorthand string
	Usage     string
	// Default is applied after resolution, so it never beats an env value.
	Default string
}

// EnvName returns the environment variable for d under prefix.
func (d Descriptor) EnvName(prefix string) string {
	return EnvName(prefix, d.Name)
}

// HelpText returns the flag help text. The env variable is shown under a
// <PREFIX> placeholder because --prefix and the user config can change it.
func (d Descriptor) HelpText() string {
	return fmt.Sprintf("%s. Env: %s (default prefix %s)", d.Usage, d.EnvName("<PREFIX>"), DefaultPrefix)
}

// Register adds d to fs as a string flag.
func (d Descriptor) Register(fs *pflag.FlagSet) {
	usage := d.HelpText()
	fs.StringP(string(d.Name), d.Shorthand, d.Default, usage)
}

var (
	projectDescriptor = Descriptor{
		Name: Project, Shorthand: "P",
		Usage: "Google Cloud project to use",
	}
	locationDescriptor = Descriptor{
		Name: Location, Shorthand: "l",
		Usage: "Location of the keyring",
	}
	keyDescriptor = Descriptor{
		Name: Key, Shorthand: "k",
		Usage: "The key to use",
	}
	keyringDescriptor = Descriptor{
		Name: Keyring, Shorthand: "r",
		Usage: "Key ring of the key",
	}
	versionDescriptor = Descriptor{
		Name: Version, Shorthand: "v",
		Usage: "Version of the key to use for encryption",
	}
	plaintextFileDescriptor = Descriptor{
		Name: PlaintextFile, Shorthand: "p",
		Usage: "File path of the plaintext file",
	}
	ciphertextFileDescriptor = Descriptor{
		Name: CiphertextFile, Shorthand: "c",
		Usage: "File path of the ciphertext file",
	}
	ciphertextFileExtensionDescriptor = Descriptor{
		Name: CiphertextFileExtension, Shorthand: "x",
		Usage: `Extension of the ciphertext file (default "enc")`,
	}
	purposeDescriptor = Descriptor{
		Name: Purpose, Shorthand: "d",
		Usage:   "The purpose of the key: asymmetric-encryption, asymmetric-signing or encryption",
		Default: "encryption",
	}
	labelsDescriptor = Descriptor{
		Name: Labels, Shorthand: "b",
		Usage: "List of label KEY=VALUE pairs to add",
	}
	nextRotationTimeDescriptor = Descriptor{
		Name: NextRotationTime, Shorthand: "t",
		Usage: "Next automatic rotation time of the key",
	}
	// -r belongs to --keyring.
	rotationPeriodDescriptor = Descriptor{
		Name:  RotationPeriod,
		Usage: "Automatic rotation period of the key",
	}
)

// CryptDescriptors are the options of encrypt and decrypt.
var CryptDescriptors = []Descriptor{
	projectDescriptor,
	locationDescriptor,
	keyDescriptor,
	keyringDescriptor,
	versionDescriptor,
	plaintextFileDescriptor,
	ciphertextFileDescriptor,
	ciphertextFileExtensionDescriptor,
}

// CreateDescriptors are the options of create.
var CreateDescriptors = []Descriptor{
	projectDescriptor,
	locationDescriptor,
	keyDescriptor,
	keyringDescriptor,
	purposeDescriptor,
	labelsDescriptor,
	nextRotationTimeDescriptor,
	rotationPeriodDescriptor,
}

// RegisterAll adds every descriptor to fs.
func RegisterAll(fs *pflag.FlagSet, descriptors []Descriptor) {
	for _, d := range descriptors {
		d.Register(fs)
	}
}

// ApplyDefaults fills absent options that have a descriptor default.
func ApplyDefaults(s Set, descriptors []Descriptor) {
	for _, d := range descriptors {
		if d.Default != "" && !s.Has(d.Name) {
			s.Put(d.Name, d.Default)
		}
	}
}
