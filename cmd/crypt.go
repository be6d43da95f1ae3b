package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/gkms/internal/gcloud"
	"github.com/PolarWolf314/gkms/internal/options"
	"github.com/PolarWolf314/gkms/internal/ui"
	"github.com/PolarWolf314/gkms/internal/workflows"
	"github.com/spf13/cobra"
)

// cryptOp describes what differs between encrypt and decrypt.
type cryptOp struct {
	name string
	// input is the option the positional argument replaces.
	input options.Name
	run   func(context.Context, *gcloud.Client, workflows.CryptOptions) (*workflows.CryptResult, error)
}

var (
	encryptOp = cryptOp{name: "encrypt", input: options.PlaintextFile, run: workflows.Encrypt}
	decryptOp = cryptOp{name: "decrypt", input: options.CiphertextFile, run: workflows.Decrypt}
)

func newCryptCmd(op cryptOp, use, short, long string) *cobra.Command {
	var flags commonFlags
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrypt(cmd, &flags, op, firstArg(args))
		},
	}
	flags.register(c.Flags())
	options.RegisterAll(c.Flags(), options.CryptDescriptors)
	return c
}

func runCrypt(cmd *cobra.Command, flags *commonFlags, op cryptOp, file string) error {
	Logger.Infof("Starting %s command", op.name)

	// The .kms lookup follows the file being processed.
	target := file
	if target == "" {
		target = changedFlag(cmd, op.input)
	}
	Logger.Debugf("Env file target: %q, explicit env file: %q", target, flags.envFile)

	inv, err := prepare(cmd, flags, target)
	if err != nil {
		return err
	}

	opts := workflows.CryptOptions{
		Options:          inv.set,
		File:             file,
		DefaultExtension: inv.config.Defaults.Extension,
	}
	result, err := op.run(context.Background(), inv.client, opts)
	if result == nil {
		return err
	}

	files := []string{result.Options.Get(options.PlaintextFile), result.Options.Get(options.CiphertextFile)}
	inv.record(op.name, result.Options, result.Commands, files, err)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.DryRun {
		fmt.Fprintln(out, ui.Caution("Dry run: no "+op.name+" was performed"))
		return nil
	}
	fmt.Fprintln(out, ui.Done(cryptSummary(op, result.Options)))
	return nil
}

func cryptSummary(op cryptOp, set options.Set) string {
	from, to := set.Get(options.PlaintextFile), set.Get(options.CiphertextFile)
	verb := "Encrypted"
	if op.name == decryptOp.name {
		from, to = to, from
		verb = "Decrypted"
	}
	if from == "" || to == "" {
		return verb
	}
	return fmt.Sprintf("%s %s → %s", verb, ui.Path.Sprint(from), ui.Path.Sprint(to))
}
