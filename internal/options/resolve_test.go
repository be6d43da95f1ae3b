package options

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCryptFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("encrypt", pflag.ContinueOnError)
	RegisterAll(fs, CryptDescriptors)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "KMS_PROJECT", EnvName("KMS", Project))
	assert.Equal(t, "KMS_CIPHERTEXT_FILE_EXTENSION", EnvName("KMS", CiphertextFileExtension))
	assert.Equal(t, "GCLOUD_KMS_NEXT_ROTATION_TIME", EnvName("GCLOUD_KMS", NextRotationTime))
}

func TestFlagUsageShowsPrefixPlaceholder(t *testing.T) {
	fs := newCryptFlagSet(t)

	usage := fs.Lookup(string(Key)).Usage
	assert.Equal(t, "The key to use. Env: <PREFIX>_KEY (default prefix KMS)", usage)
	assert.NotContains(t, fs.Lookup(string(Keyring)).Usage, "KMS_KEYRING")
}

func TestResolveFlagBeatsEnv(t *testing.T) {
	for _, n := range Vocabulary {
		t.Run(string(n), func(t *testing.T) {
			flags := Flags{n: "from-flag"}
			env := Env{EnvName("KMS", n): "from-env"}

			set := Resolve(flags, env, "KMS")
			assert.Equal(t, "from-flag", set.Get(n))
		})
	}
}

func TestResolveFallsBackToEnv(t *testing.T) {
	env := Env{
		"KMS_KEY":      "env-key",
		"KMS_KEYRING":  "env-ring",
		"KMS_LOCATION": "global",
	}
	set := Resolve(Flags{Key: "flag-key"}, env, "KMS")

	assert.Equal(t, "flag-key", set.Get(Key))
	assert.Equal(t, "env-ring", set.Get(Keyring))
	assert.Equal(t, "global", set.Get(Location))
	assert.False(t, set.Has(Project))
}

func TestResolveHonoursPrefix(t *testing.T) {
	env := Env{
		"KMS_KEY":        "plain-prefix",
		"GCLOUD_KMS_KEY": "gcloud-prefix",
	}
	assert.Equal(t, "gcloud-prefix", Resolve(nil, env, "GCLOUD_KMS").Get(Key))
	assert.Equal(t, "plain-prefix", Resolve(nil, env, "KMS").Get(Key))
}

func TestResolveEmptyValuesAreAbsent(t *testing.T) {
	env := Env{"KMS_KEY": "env-key", "KMS_KEYRING": ""}
	set := Resolve(Flags{Key: ""}, env, "KMS")

	assert.Equal(t, "env-key", set.Get(Key))
	assert.False(t, set.Has(Keyring))
}

func TestResolveClosure(t *testing.T) {
	env := Env{
		"KMS_PREFIX":  "ignored",
		"KMS_ENV":     "ignored",
		"KMS_UNKNOWN": "ignored",
		"KMS_KEY":     "k",
	}
	set := Resolve(Flags{"unknown": "x", "prefix": "y"}, env, "KMS")

	require.Len(t, set, len(Vocabulary))
	for _, n := range Vocabulary {
		_, ok := set[n]
		assert.True(t, ok, "missing %s", n)
	}
	_, ok := set["unknown"]
	assert.False(t, ok)
	_, ok = set["prefix"]
	assert.False(t, ok)
}

func TestFromFlagSetOnlyReportsChangedFlags(t *testing.T) {
	fs := newCryptFlagSet(t, "--key", "flag-key", "-v", "3")
	env := Env{"KMS_KEY": "env-key", "KMS_KEYRING": "env-ring"}

	set := Resolve(FromFlagSet(fs), env, "KMS")
	assert.Equal(t, "flag-key", set.Get(Key))
	assert.Equal(t, "3", set.Get(Version))
	assert.Equal(t, "env-ring", set.Get(Keyring))
}

func TestFromFlagSetIgnoresNonStringVersionFlag(t *testing.T) {
	fs := pflag.NewFlagSet("root", pflag.ContinueOnError)
	fs.Bool("version", false, "print the tool version")
	require.NoError(t, fs.Parse([]string{"--version"}))

	set := Resolve(FromFlagSet(fs), Env{}, "KMS")
	assert.False(t, set.Has(Version))

	set = Resolve(FromFlagSet(fs), Env{"KMS_VERSION": "2"}, "KMS")
	assert.Equal(t, "2", set.Get(Version))
}

func TestApplyDefaultsNeverBeatsEnv(t *testing.T) {
	fs := pflag.NewFlagSet("create", pflag.ContinueOnError)
	RegisterAll(fs, CreateDescriptors)
	require.NoError(t, fs.Parse(nil))

	set := Resolve(FromFlagSet(fs), Env{"KMS_PURPOSE": "asymmetric-signing"}, "KMS")
	ApplyDefaults(set, CreateDescriptors)
	assert.Equal(t, "asymmetric-signing", set.Get(Purpose))

	set = Resolve(FromFlagSet(fs), Env{}, "KMS")
	ApplyDefaults(set, CreateDescriptors)
	assert.Equal(t, "encryption", set.Get(Purpose))
}

func TestSetPutIgnoresUnknownNames(t *testing.T) {
	set := NewSet()
	set.Put("bogus", "x")
	set.Put(Key, "k")

	assert.Len(t, set, len(Vocabulary))
	assert.Equal(t, "k", set.Get(Key))
}

func TestSetArgs(t *testing.T) {
	set := NewSet()
	set.Put(Location, "global")
	set.Put(Key, "k")
	set.Put(Project, "p")

	args := set.Args(Location, Key, Keyring, Version)
	assert.Equal(t, []string{"--location", "global", "--key", "k"}, args)
}

func TestResolvePrefix(t *testing.T) {
	assert.Equal(t, "KMS", ResolvePrefix())
	assert.Equal(t, "KMS", ResolvePrefix("", ""))
	assert.Equal(t, "CFG", ResolvePrefix("", "CFG"))
	assert.Equal(t, "FLAG", ResolvePrefix("FLAG", "CFG"))
}
