// Package options resolves the option set handed to gcloud.
//
// Every option is described once by a Descriptor that pairs its canonical
// kebab-case name with its flag binding. The environment variable for an
// option is derived from the name and a prefix:
//
//	EnvName("KMS", PlaintextFile) // KMS_PLAINTEXT_FILE
//
// Resolve merges two sources per name, the explicitly supplied flag first
// and the environment second:
//
//	set := options.Resolve(options.FromFlagSet(cmd.Flags()), env, "KMS")
//	set.Get(options.Keyring)
//
// The meta flags --prefix and --env configure the resolver and are not part
// of the vocabulary.
package options
