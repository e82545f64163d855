package cmd

import (
	"os/signal"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/sys/unix"

	"github.com/Iron-Ham/ptree/internal/config"
	"github.com/Iron-Ham/ptree/internal/errors"
	"github.com/Iron-Ham/ptree/internal/render"
	"github.com/Iron-Ham/ptree/internal/tree"
)

// procFs is the filesystem process records are read from.
var procFs afero.Fs = afero.NewOsFs()

// currentUID returns the uid whose processes are shown without --all.
var currentUID = func() uint32 { return uint32(unix.Geteuid()) }

var rootCmd = newRootCmd()

// flagKeys maps flags onto configuration keys.
var flagKeys = map[string]string{
	"config":      "config",
	"proc":        "proc.root",
	"log-level":   "logging.level",
	"all":         "filter.all_users",
	"root-policy": "tree.root_policy",
	"width":       "render.width",
	"color":       "render.color",
	"output":      "render.output",
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ptree [filter]",
		Short: "Show running processes as a tree",
		Long: `ptree prints the process hierarchy as an ASCII-art tree.

With a filter argument only processes whose command line contains it are
shown, each together with its whole subtree. By default only processes
owned by the current user are considered; use --all to include everyone.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initConfig,
		RunE:              runTree,
	}

	pf := cmd.PersistentFlags()
	pf.StringP("config", "c", "", "config file (default is $HOME/.config/ptree/config.yaml)")
	pf.String("proc", "/proc", "proc filesystem mount point")
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")

	f := cmd.Flags()
	f.BoolP("all", "a", false, "show processes of all users")
	f.String("root-policy", "zero-parent",
		"which processes start a tree ("+strings.Join(tree.ValidRootPolicies(), ", ")+")")
	f.IntP("width", "w", 0, "terminal width in columns (0 = detect)")
	f.Bool("glob", false, "match the filter as a glob pattern")
	f.Bool("no-wrap", false, "truncate long command lines instead of wrapping them")
	f.String("color", "never", "color output ("+strings.Join(render.ValidColorModes(), ", ")+")")
	f.StringP("output", "o", "tree", "output format ("+strings.Join(render.ValidOutputs(), ", ")+")")

	cmd.AddCommand(newConfigCmd())
	return cmd
}

// Execute runs the root command
func Execute() error {
	// Without this a closed stdout kills the process with SIGPIPE before
	// runTree sees the EPIPE it treats as a clean exit.
	signal.Ignore(unix.SIGPIPE)
	return rootCmd.Execute()
}

func initConfig(cmd *cobra.Command, args []string) error {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	for name, key := range flagKeys {
		if flag := lookupFlag(cmd, name); flag != nil {
			if err := viper.BindPFlag(key, flag); err != nil {
				return err
			}
		}
	}
	if flag := lookupFlag(cmd, "glob"); flag != nil && flag.Changed && flag.Value.String() == "true" {
		viper.Set("filter.mode", "glob")
	}
	if flag := lookupFlag(cmd, "no-wrap"); flag != nil && flag.Changed && flag.Value.String() == "true" {
		viper.Set("render.wrap", false)
	}

	viper.SetEnvPrefix("PTREE")
	// e.g., PTREE_RENDER_WIDTH for render.width
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cfgFile := viper.GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "failed to read config file")
		}
	}
	return nil
}

// lookupFlag finds name among the flags of cmd, falling back to the root
// command's own flags when cmd is a subcommand.
func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag
	}
	return cmd.Root().Flags().Lookup(name)
}
