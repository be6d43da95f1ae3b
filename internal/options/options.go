package options

import (
	"github.com/PolarWolf314/gkms/internal/utils"
)

// DefaultPrefix is the environment variable prefix used when neither
// --prefix nor the user config name one.
const DefaultPrefix = "KMS"

// Name is the canonical kebab-case name of an option.
type Name string

const (
	Project                 Name = "project"
	Location                Name = "location"
	Key                     Name = "key"
	Keyring                 Name = "keyring"
	Version                 Name = "version"
	PlaintextFile           Name = "plaintext-file"
	CiphertextFile          Name = "ciphertext-file"
	CiphertextFileExtension Name = "ciphertext-file-extension"
	Purpose                 Name = "purpose"
	Labels                  Name = "labels"
	NextRotationTime        Name = "next-rotation-time"
	RotationPeriod          Name = "rotation-period"
)

// Vocabulary lists every option name a Set can hold.
var Vocabulary = []Name{
	Project,
	Location,
	Key,
	Keyring,
	Version,
	PlaintextFile,
	CiphertextFile,
	CiphertextFileExtension,
	Purpose,
	Labels,
	NextRotationTime,
	RotationPeriod,
}

var known = func() map[Name]bool {
	m := make(map[Name]bool, len(Vocabulary))
	for _, n := range Vocabulary {
		m[n] = true
	}
	return m
}()

// Known reports whether n belongs to the vocabulary.
func Known(n Name) bool {
	return known[n]
}

// EnvName returns the environment variable consulted for n, e.g. KMS_PLAINTEXT_FILE.
func EnvName(prefix string, n Name) string {
	return prefix + "_" + utils.UpperSnake(string(n))
}

// ResolvePrefix returns the first non-empty candidate, or DefaultPrefix.
func ResolvePrefix(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return DefaultPrefix
}

// Set holds one value per vocabulary name. The empty string means absent.
type Set map[Name]string

// NewSet returns a Set with every vocabulary name present and absent.
func NewSet() Set {
	s := make(Set, len(Vocabulary))
	for _, n := range Vocabulary {
		s[n] = ""
	}
	return s
}

// Get returns the value for n, or "" when absent.
func (s Set) Get(n Name) string {
	return s[n]
}

// Has reports whether n has a value.
func (s Set) Has(n Name) bool {
	return s[n] != ""
}

// Put stores v under n. Names outside the vocabulary are ignored.
func (s Set) Put(n Name, v string) {
	if !Known(n) {
		return
	}
	s[n] = v
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Args renders the present options among names as gcloud arguments,
// `--name value`, in the order of names.
func (s Set) Args(names ...Name) []string {
	var args []string
	for _, n := range names {
		if v := s.Get(n); v != "" {
			args = append(args, "--"+string(n), v)
		}
	}
	return args
}
