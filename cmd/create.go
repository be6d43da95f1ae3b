package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/gkms/internal/options"
	"github.com/PolarWolf314/gkms/internal/ui"
	"github.com/PolarWolf314/gkms/internal/workflows"
	"github.com/spf13/cobra"
)

func newCreateCmd() *cobra.Command {
	var flags commonFlags
	c := &cobra.Command{
		Use:   "create [keyring] [key]",
		Short: "Create a Cloud KMS key, and its keyring if needed",
		Long: `Creates a key by running gcloud kms keys create.

The keyring is looked up first with gcloud kms keyrings describe and created
only when gcloud reports it does not exist. Any other lookup failure aborts
before anything is created.

Examples:
  gkms create my-ring my-key -l global
  gkms create -r my-ring -k my-key -l europe-west1 --rotation-period 90d -t 2030-01-01T00:00:00Z
  gkms create my-ring my-key -d asymmetric-signing
  KMS_LOCATION=global gkms create my-ring my-key --dry-run`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var keyring, key string
			if len(args) > 0 {
				keyring = args[0]
			}
			if len(args) > 1 {
				key = args[1]
			}
			return runCreate(cmd, &flags, keyring, key)
		},
	}
	flags.register(c.Flags())
	options.RegisterAll(c.Flags(), options.CreateDescriptors)
	return c
}

func runCreate(cmd *cobra.Command, flags *commonFlags, keyring, key string) error {
	Logger.Infof("Starting create command")

	inv, err := prepare(cmd, flags, "")
	if err != nil {
		return err
	}
	options.ApplyDefaults(inv.set, options.CreateDescriptors)

	result, err := workflows.Create(context.Background(), inv.client, workflows.CreateOptions{
		Options: inv.set,
		Keyring: keyring,
		Key:     key,
	})
	if result == nil {
		return err
	}

	inv.record("create", result.Options, result.Commands, nil, err)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.DryRun {
		fmt.Fprintln(out, ui.Caution("Dry run: no keyring or key was created"))
		return nil
	}
	fmt.Fprintln(out, ui.Done(fmt.Sprintf("Created key %s in keyring %s",
		ui.Value.Sprint(result.Options.Get(options.Key)),
		ui.Value.Sprint(result.Options.Get(options.Keyring)))))
	return nil
}
