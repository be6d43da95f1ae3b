// Package configs manages the gkms user configuration.
//
// The configuration lives in a TOML file under the user's config
// directory ($XDG_CONFIG_HOME/gkms/config.toml):
//
//	[defaults]
//	prefix = "KMS"
//	gcloud = "gcloud"
//	extension = "enc"
//
//	[audit]
//	enabled = true
//
// Every key is optional. A missing file yields DefaultUserConfig.
// UserGkmsSettings holds the resolved directories and may be replaced in
// tests.
package configs
