// Package cli implements the vss-go command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hsiuhsiu/vss-go/pkg/vss/groups"
	"github.com/hsiuhsiu/vss-go/pkg/vss/logging"
	"github.com/hsiuhsiu/vss-go/pkg/vss/wire"
)

// envPrefix scopes environment overrides, e.g. VSS_GROUP or VSS_THRESHOLD.
const envPrefix = "VSS"

// Settings is the resolved configuration shared by every subcommand.
type Settings struct {
	Group     string
	Threshold int
	Shares    int
	Verbose   bool
	Format    wire.Format
}

type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	logger logging.Logger
}

// NewRootCommand builds the command tree. Output goes to out, diagnostics and
// logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut, logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "vss-go",
		Short: "Feldman verifiable secret sharing",
		Long: `vss-go splits a secret into threshold shares with Feldman commitments,
verifies shares against the commitments, and recovers the secret from any
threshold of them.

Supported groups: ` + strings.Join(groups.Names(), ", "),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (YAML)")
	pf.String("group", groups.Default, "group backend ("+strings.Join(groups.Names(), ", ")+")")
	pf.Int("threshold", 0, "shares needed to recover the secret")
	pf.Int("shares", 0, "number of shares to produce")
	pf.String("format", string(wire.JSON), "document format for written files (json, yaml)")
	pf.BoolP("verbose", "v", false, "debug logging on stderr")
	_ = a.v.BindPFlags(pf) // flags are defined above

	root.AddCommand(
		a.splitCommand(),
		a.verifyCommand(),
		a.recoverCommand(),
		a.deriveCommand(),
		a.groupsCommand(),
		a.versionCommand(),
	)
	return root
}

// Execute runs the command line with the given arguments.
func Execute(args []string, out, errOut io.Writer) error {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)
	return root.Execute()
}

func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	level := slog.LevelWarn
	if a.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	a.logger = logging.New(slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level})))
	return nil
}

func (a *app) settings() (Settings, error) {
	f, err := wire.ParseFormat(a.v.GetString("format"))
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Group:     a.v.GetString("group"),
		Threshold: a.v.GetInt("threshold"),
		Shares:    a.v.GetInt("shares"),
		Verbose:   a.v.GetBool("verbose"),
		Format:    f,
	}, nil
}

// wantGroup returns the group documents must belong to, or "" when the user
// did not name one and the documents decide.
func (a *app) wantGroup() string {
	if a.v.IsSet("group") {
		return a.v.GetString("group")
	}
	return ""
}
