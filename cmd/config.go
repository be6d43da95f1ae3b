package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PolarWolf314/gkms/internal/audit"
	"github.com/PolarWolf314/gkms/internal/configs"
	"github.com/PolarWolf314/gkms/internal/ui"
	"github.com/PolarWolf314/gkms/internal/utils"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage gkms configuration",
		Long: `Provides commands for managing the user configuration in
$XDG_CONFIG_HOME/gkms/config.toml (~/.config/gkms/config.toml by default).

Examples:
  gkms config show
  gkms config init --prefix APP --extension kms`,
	}
	c.AddCommand(newConfigShowCmd())
	c.AddCommand(newConfigInitCmd())
	return c
}

func newConfigShowCmd() *cobra.Command {
	var asJSON bool
	c := &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting config show command")
			config, err := configs.LoadUserConfig()
			if err != nil {
				return err
			}
			if asJSON {
				return outputConfigJSON(cmd.OutOrStdout(), config)
			}
			outputConfigText(cmd.OutOrStdout(), config)
			return nil
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return c
}

func outputConfigJSON(out io.Writer, config *configs.UserConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to marshal config to JSON: %v", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func outputConfigText(out io.Writer, config *configs.UserConfig) {
	path := configs.UserConfigPath()
	fmt.Fprintln(out, ui.Info.Sprint("User Configuration"))
	if !utils.FileExists(path) {
		fmt.Fprintln(out, ui.Muted.Sprint("no config file, showing defaults"))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-12s %s\n", "Prefix:", ui.Value.Sprint(config.Defaults.Prefix))
	fmt.Fprintf(out, "  %-12s %s\n", "gcloud:", ui.Value.Sprint(config.Defaults.Gcloud))
	fmt.Fprintf(out, "  %-12s %s\n", "Extension:", ui.Value.Sprint(config.Defaults.Extension))
	fmt.Fprintf(out, "  %-12s %t\n", "Audit:", config.Audit.Enabled)
	fmt.Fprintln(out)
	fmt.Fprint(out, "Files:"+utils.FormatPaths([]string{path, audit.LogPath()}))
}

type configInitFlags struct {
	prefix    string
	gcloud    string
	extension string
	noAudit   bool
	force     bool
}

func newConfigInitCmd() *cobra.Command {
	var flags configInitFlags
	c := &cobra.Command{
		Use:   "init",
		Short: "Write a user configuration file",
		Long: `Writes the user configuration file with the given defaults.

An existing file is left untouched unless --force is given.

Examples:
  gkms config init
  gkms config init --prefix APP
  gkms config init --gcloud /opt/google-cloud-sdk/bin/gcloud --no-audit
  gkms config init --extension kms --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigInit(cmd.OutOrStdout(), flags)
		},
	}
	c.Flags().StringVar(&flags.prefix, "prefix", "", "default prefix of environment variables")
	c.Flags().StringVar(&flags.gcloud, "gcloud", "", "gcloud executable name or path")
	c.Flags().StringVar(&flags.extension, "extension", "", "default ciphertext file extension, without the dot")
	c.Flags().BoolVar(&flags.noAudit, "no-audit", false, "disable the audit log")
	c.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing config file")
	return c
}

func runConfigInit(out io.Writer, flags configInitFlags) error {
	Logger.Infof("Starting config init command")
	path := configs.UserConfigPath()

	if utils.FileExists(path) && !flags.force {
		fmt.Fprintln(out, ui.Caution("Config file already exists at "+ui.Path.Sprint(path)))
		fmt.Fprintln(out, ui.Hint("Run "+ui.Command.Sprint("gkms config init --force")+" to overwrite it"))
		return nil
	}

	config := configs.DefaultUserConfig()
	if flags.prefix != "" {
		config.Defaults.Prefix = flags.prefix
	}
	if flags.gcloud != "" {
		config.Defaults.Gcloud = flags.gcloud
	}
	if flags.extension != "" {
		config.Defaults.Extension = flags.extension
	}
	config.Audit.Enabled = !flags.noAudit

	Logger.Debugf("Writing config to %s", path)
	if err := configs.SaveUserConfig(config); err != nil {
		return err
	}

	fmt.Fprintln(out, ui.Done("Wrote "+ui.Path.Sprint(path)))
	return nil
}
