package workflows

import (
	"context"
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/gkms/internal/errors"
	"github.com/PolarWolf314/gkms/internal/gcloud"
	"github.com/PolarWolf314/gkms/internal/options"
	"github.com/PolarWolf314/gkms/internal/ui"
)

// keyArgs are the options passed through to gcloud kms keys create.
var keyArgs = []options.Name{
	options.Location,
	options.Keyring,
	options.Purpose,
	options.Labels,
	options.NextRotationTime,
	options.RotationPeriod,
}

// CreateOptions configures the create workflow.
type CreateOptions struct {
	// Options is the resolved option set.
	Options options.Set

	// Keyring and Key are the positional arguments. They override the
	// flag and env values when set.
	Keyring string
	Key     string
}

// CreateResult contains the outcome of a create operation.
type CreateResult struct {
	// Options is the option set after positional overrides.
	Options options.Set

	// KeyringCreated is true when the keyring did not exist and was created
	// (or would be, in dry-run mode).
	KeyringCreated bool

	// Commands lists every mutating gcloud command in order.
	Commands []gcloud.Command

	// DryRun indicates nothing was executed.
	DryRun bool
}

// DescribeKeyringCommand builds `gcloud kms keyrings describe`.
func DescribeKeyringCommand(set options.Set) gcloud.Command {
	args := []string{"keyrings", "describe", set.Get(options.Keyring)}
	return gcloud.KMS(append(args, set.Args(options.Location)...)...)
}

// CreateKeyringCommand builds `gcloud kms keyrings create`.
func CreateKeyringCommand(set options.Set) gcloud.Command {
	args := []string{"keyrings", "create", set.Get(options.Keyring)}
	return gcloud.KMS(append(args, set.Args(options.Location)...)...)
}

// CreateKeyCommand builds `gcloud kms keys create` with the present
// pass-through options.
func CreateKeyCommand(set options.Set) gcloud.Command {
	args := []string{"keys", "create", set.Get(options.Key)}
	return gcloud.KMS(append(args, set.Args(keyArgs...)...)...)
}

// Create ensures the keyring exists and creates the key inside it.
//
// The keyring is created only when `keyrings describe` fails with NOT_FOUND.
// Any other describe failure aborts before anything is created and returns
// ErrKeyringProbeFailed. Returns ErrMissingOption when keyring or key is absent.
func Create(ctx context.Context, client *gcloud.Client, opts CreateOptions) (*CreateResult, error) {
	set := opts.Options.Clone()
	if opts.Keyring != "" {
		set.Put(options.Keyring, opts.Keyring)
	}
	if opts.Key != "" {
		set.Put(options.Key, opts.Key)
	}

	for _, n := range []options.Name{options.Keyring, options.Key} {
		if !set.Has(n) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrMissingOption, n)
		}
	}

	result := &CreateResult{
		Options: set,
		DryRun:  client.DryRun,
	}

	err := client.WithProject(ctx, set.Get(options.Project), func(ctx context.Context) error {
		exists, err := keyringExists(ctx, client, set)
		if err != nil {
			return err
		}

		if !exists {
			client.Say("Creating %s keyring...", ui.Value.Sprint(set.Get(options.Keyring)))
			if err := client.Exec(ctx, CreateKeyringCommand(set)); err != nil {
				return err
			}
			result.KeyringCreated = true
		} else {
			client.Logger.Infof("Keyring %s already exists", set.Get(options.Keyring))
		}

		client.Say("Creating %s key...", ui.Value.Sprint(set.Get(options.Key)))
		return client.Exec(ctx, CreateKeyCommand(set))
	})
	result.Commands = client.Planned()
	return result, err
}

// keyringExists probes the keyring. NOT_FOUND means false; any other
// failure is returned.
func keyringExists(ctx context.Context, client *gcloud.Client, set options.Set) (bool, error) {
	_, err := client.Query(ctx, "Checking keyring...", DescribeKeyringCommand(set))
	if err == nil {
		return true, nil
	}

	var exitErr *gcloud.ExitError
	if errors.As(err, &exitErr) && exitErr.NotFound() {
		client.Logger.Debugf("Keyring %s not found", set.Get(options.Keyring))
		return false, nil
	}
	return false, fmt.Errorf("%w %s: %w", kerrors.ErrKeyringProbeFailed, set.Get(options.Keyring), err)
}
