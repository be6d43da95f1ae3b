package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/PolarWolf314/gkms/internal/audit"
	"github.com/PolarWolf314/gkms/internal/configs"
	"github.com/PolarWolf314/gkms/internal/envfile"
	kerrors "github.com/PolarWolf314/gkms/internal/errors"
	"github.com/PolarWolf314/gkms/internal/gcloud"
	"github.com/PolarWolf314/gkms/internal/options"
	"github.com/PolarWolf314/gkms/internal/ui"
	"github.com/PolarWolf314/gkms/internal/utils"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Hooks replaced in tests.
var (
	lookPath  = gcloud.LookPath
	newRunner = func(binary string) gcloud.Runner { return gcloud.NewExec(binary) }
	environ   = os.Environ
)

func resetHooks() {
	lookPath = gcloud.LookPath
	newRunner = func(binary string) gcloud.Runner { return gcloud.NewExec(binary) }
	environ = os.Environ
}

// commonFlags are the meta-options shared by encrypt, decrypt and create.
// They steer resolution and are never part of the option set.
type commonFlags struct {
	prefix  string
	envFile string
	dryRun  bool
}

func (f *commonFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.prefix, "prefix", "", fmt.Sprintf("Prefix of environment variables (default %q)", options.DefaultPrefix))
	fs.StringVarP(&f.envFile, "env", "n", "", "Path of env file")
	fs.BoolVar(&f.dryRun, "dry-run", false, "print the gcloud commands without running the mutating ones")
}

// invocation carries everything resolved before a workflow runs.
type invocation struct {
	config *configs.UserConfig
	set    options.Set
	client *gcloud.Client
}

// prepare runs the preflight check, loads the user config and the env file,
// resolves the options of cmd and builds a gcloud client.
func prepare(cmd *cobra.Command, flags *commonFlags, target string) (*invocation, error) {
	Logger.Debugf("Loading user config from %s", configs.UserConfigPath())
	config, err := configs.LoadUserConfig()
	if err != nil {
		return nil, err
	}

	path, err := lookPath(config.Defaults.Gcloud)
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Using gcloud at %s", path)

	env, err := envfile.Load(target, flags.envFile, environ())
	if err != nil {
		if !errors.Is(err, kerrors.ErrEnvFileNotFound) || env == nil {
			return nil, err
		}
		Logger.WarnfAlways("Env file %s not found, using the process environment only", flags.envFile)
	}
	if env.Source() != "" {
		Logger.Infof("Loaded env file %s", env.Source())
	}

	prefix := options.ResolvePrefix(flags.prefix, config.Defaults.Prefix)
	Logger.Debugf("Resolving options with prefix %s", prefix)
	set := options.Resolve(options.FromFlagSet(cmd.Flags()), env, prefix)

	client := gcloud.NewClient(newRunner(config.Defaults.Gcloud), Logger, flags.dryRun)
	client.Out = cmd.OutOrStdout()
	client.Progress = progress()

	return &invocation{
		config: config,
		set:    set,
		client: client,
	}, nil
}

// progress returns a spinner starter for read-only gcloud queries, or nil
// when output is not a terminal or verbose logging would interleave with it.
func progress() func(msg string) func() {
	if verbose || debug || !utils.IsTerminal(os.Stdout) {
		return nil
	}
	return func(msg string) func() {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(os.Stdout))
		s.Suffix = " " + msg
		if err := s.Color("cyan"); err != nil {
			Logger.Warnf("Failed to set spinner color: %v", err)
		}
		s.Start()
		return s.Stop
	}
}

// record appends an audit entry when auditing is enabled.
func (inv *invocation) record(op string, set options.Set, commands []gcloud.Command, files []string, opErr error) {
	if !inv.config.Audit.Enabled {
		return
	}

	entry := audit.NewEntry(op)
	entry.Project = set.Get(options.Project)
	entry.Location = set.Get(options.Location)
	entry.Keyring = set.Get(options.Keyring)
	entry.Key = set.Get(options.Key)
	entry.Files = files
	entry.DryRun = inv.client.DryRun
	for _, c := range commands {
		entry.Commands = append(entry.Commands, c.String())
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}

	Logger.Debugf("Writing audit entry %s to %s", entry.ID, audit.LogPath())
	audit.Log(entry)
}

func firstArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// changedFlag returns the value of a flag the user set explicitly.
func changedFlag(cmd *cobra.Command, name options.Name) string {
	f := cmd.Flags().Lookup(string(name))
	if f == nil || !f.Changed {
		return ""
	}
	return f.Value.String()
}

// ReportError prints err the way gkms reports failures.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var exitErr *gcloud.ExitError
	switch {
	case errors.Is(err, kerrors.ErrGcloudNotFound):
		fmt.Fprintln(w, ui.Failed("Please install gcloud command."))
		fmt.Fprintln(w, ui.Hint("See "+ui.Path.Sprint("https://cloud.google.com/sdk/docs/install")))

	case errors.Is(err, kerrors.ErrMissingOption):
		fmt.Fprintln(w, ui.Failed(err.Error()))
		fmt.Fprintln(w, ui.Hint("Pass it as an argument, a flag, or an environment variable such as "+ui.Command.Sprint(options.EnvName(options.DefaultPrefix, options.Keyring))))

	case errors.Is(err, kerrors.ErrInvalidUserConfig):
		fmt.Fprintln(w, ui.Failed(err.Error()))
		fmt.Fprintln(w, ui.Hint("Fix "+ui.Path.Sprint(configs.UserConfigPath())+" or run "+ui.Command.Sprint("gkms config init --force")))

	case errors.As(err, &exitErr) && !errors.Is(err, kerrors.ErrKeyringProbeFailed) && !errors.Is(err, kerrors.ErrProjectSwitchFailed):
		// gcloud already wrote its own stderr to the terminal.
		line := gcloud.Command{Args: exitErr.Args}.String()
		fmt.Fprintln(w, ui.Failed(fmt.Sprintf("%s exited with status %d", ui.Command.Sprint(line), exitErr.Code)))

	default:
		fmt.Fprintln(w, ui.Failed(err.Error()))
	}
}

// ExitCode maps err to the process exit status: the gcloud status when a
// gcloud command failed, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return gcloud.ExitCode(err)
}
