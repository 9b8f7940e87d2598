// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"enigma-core/cipher"
	"enigma-core/validator"
	"enigma/internal/cmdutil"
	"enigma/internal/config"
	"enigma/internal/secretio"
	"enigma/internal/server"
	"enigma/internal/version"
	"enigma/internal/writers"
	"enigma/pkg/api"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitReject = 1 // only with --exit-code, or an encrypt input error
	ExitUsage  = 2
	ExitIO     = 3
)

// exitError carries an exit code through cobra's error return.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func fail(code int, err error) error { return &exitError{code: code, err: err} }

type globalOptions struct {
	LogLevel string
	Quiet    bool
	log      *slog.Logger
}

type inputOptions struct {
	KeepNewline bool
	PassThrough bool
	MaxBytes    int64
}

func (o inputOptions) policy() cipher.Policy {
	if o.PassThrough {
		return cipher.PolicyPassThrough
	}
	return cipher.PolicyReject
}

func (o inputOptions) read(r io.Reader) ([]byte, error) {
	data, err := secretio.ReadAll(r, secretio.Options{KeepNewline: o.KeepNewline, MaxBytes: o.MaxBytes})
	if err != nil {
		return nil, fail(ExitIO, err)
	}
	return data, nil
}

func addInputFlags(cmd *cobra.Command, o *inputOptions) {
	f := cmd.Flags()
	f.BoolVar(&o.KeepNewline, "keep-newline", false, "do not strip one trailing newline from stdin")
	f.BoolVar(&o.PassThrough, "pass-through", false, "pass bytes outside '!'..'~' through unchanged instead of rejecting")
	f.Int64Var(&o.MaxBytes, "max-bytes", 1<<20, "refuse inputs larger than this (0 = unlimited)")
}

type checkOptions struct {
	inputOptions
	Output   string
	ExitCode bool
}

// NewRootCommand builds the command tree. The root command itself runs check.
func NewRootCommand() *cobra.Command {
	g := &globalOptions{}
	chk := &checkOptions{}

	root := &cobra.Command{
		Use:   "enigma",
		Short: "Check a secret read from stdin against a rotor-machine ciphertext",
		Long: `enigma reads a candidate secret from standard input, runs it through a
three-rotor machine with reflector and plugboard, and prints OK! when the
result matches the stored ciphertext, ERR otherwise.

Usage examples:
  printf 'secret' | enigma
  enigma check --keep-newline < secret.txt
  enigma encrypt < secret.txt
  enigma serve --port 8080`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := cmdutil.ParseLevel(levelOrEnv(cmd, g.LogLevel))
			if err != nil {
				return fail(ExitUsage, err)
			}
			g.log = cmdutil.NewLogger(cmd.ErrOrStderr(), lvl, cmd.Name())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error { return runCheck(cmd, g, chk) },
	}
	root.SetVersionTemplate("enigma version {{.Version}}\n")
	pf := root.PersistentFlags()
	pf.StringVar(&g.LogLevel, "log-level", "", "log level: debug | info | warn | error [$"+config.EnvLogLevel+", info]")
	pf.BoolVarP(&g.Quiet, "quiet", "q", false, "suppress non-essential warnings")
	addCheckFlags(root, chk)

	root.AddCommand(newCheckCommand(g), newEncryptCommand(g), newServeCommand(g), newVersionCommand())
	return root
}

func addCheckFlags(cmd *cobra.Command, o *checkOptions) {
	addInputFlags(cmd, &o.inputOptions)
	cmd.Flags().StringVarP(&o.Output, "output", "o", "text", "output format: "+strings.Join(writers.Formats(), " | "))
	cmd.Flags().BoolVar(&o.ExitCode, "exit-code", false, "exit 1 when the secret is rejected")
}

func levelOrEnv(cmd *cobra.Command, flagVal string) string {
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		return flagVal
	}
	return os.Getenv(config.EnvLogLevel)
}

func newCheckCommand(g *globalOptions) *cobra.Command {
	o := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate stdin and print OK! or ERR (default command)",
		Args:  cobra.NoArgs,
		RunE:  func(cmd *cobra.Command, _ []string) error { return runCheck(cmd, g, o) },
	}
	addCheckFlags(cmd, o)
	return cmd
}

func runCheck(cmd *cobra.Command, g *globalOptions, o *checkOptions) error {
	if _, ok := writers.VerdictWriters[o.Output]; !ok {
		return fail(ExitUsage, fmt.Errorf("invalid --output %q", o.Output))
	}
	data, err := o.read(cmd.InOrStdin())
	if err != nil {
		return err
	}
	val, err := validator.Default(validator.WithPolicy(o.policy()))
	if err != nil {
		return err
	}

	res := val.Check(data)
	if res.Err != nil {
		cmdutil.Warnf(cmd.ErrOrStderr(), g.Quiet, "%v", res.Err)
	}
	g.log.Debug("checked input",
		"length", res.InputLen,
		"expected_length", res.ExpectedLen,
		"verdict", res.Verdict.String(),
		"policy", o.policy().String(),
	)

	outw := bufio.NewWriter(cmd.OutOrStdout())
	if err := writers.WriteVerdict(o.Output, outw, api.FromResult(res, o.policy().String())); err != nil {
		return fail(ExitIO, err)
	}
	if err := outw.Flush(); err != nil {
		return fail(ExitIO, err)
	}
	if o.ExitCode && res.Verdict != validator.Accept {
		return fail(ExitReject, nil)
	}
	return nil
}

func newEncryptCommand(g *globalOptions) *cobra.Command {
	o := &inputOptions{}
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Print stdin as transformed by the standard machine",
		Long: `encrypt prints stdin as transformed by the standard machine from its start
positions. The machine is reciprocal: encrypting a ciphertext returns the
plaintext, so this is also how the stored ciphertext is regenerated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := o.read(cmd.InOrStdin())
			if err != nil {
				return err
			}
			val, err := validator.Default(validator.WithPolicy(o.policy()))
			if err != nil {
				return err
			}
			out, err := val.Encrypt(data)
			if err != nil {
				return fail(ExitReject, err)
			}
			g.log.Debug("encrypted input", "length", len(out))
			outw := bufio.NewWriter(cmd.OutOrStdout())
			_, _ = outw.Write(out)
			_ = outw.WriteByte('\n')
			if err := outw.Flush(); err != nil {
				return fail(ExitIO, err)
			}
			return nil
		},
	}
	addInputFlags(cmd, o)
	return cmd
}

func newServeCommand(g *globalOptions) *cobra.Command {
	var (
		host        string
		port        int
		passThrough bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /v1/validate and /v1/encrypt over HTTP",
		Long: `serve starts an HTTP server. Settings come from ENIGMA_* environment
variables; flags given on the command line win.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return fail(ExitUsage, err)
			}
			f := cmd.Flags()
			if f.Changed("host") {
				cfg.Host = host
			}
			if f.Changed("port") {
				cfg.Port = port
			}
			if f.Changed("pass-through") {
				cfg.PassThrough = passThrough
			}
			if pf := cmd.Flags().Lookup("log-level"); pf != nil && pf.Changed {
				cfg.LogLevel = g.LogLevel
			}
			if err := cfg.Validate(); err != nil {
				return fail(ExitUsage, err)
			}
			lvl, _ := cmdutil.ParseLevel(cfg.LogLevel)
			log := cmdutil.NewLogger(cmd.ErrOrStderr(), lvl, "serve")

			policy := cipher.PolicyReject
			if cfg.PassThrough {
				policy = cipher.PolicyPassThrough
			}
			val, err := validator.Default(validator.WithPolicy(policy))
			if err != nil {
				return err
			}
			if err := server.New(cfg, val, log).Start(cmd.Context()); err != nil {
				return fail(ExitIO, err)
			}
			return nil
		},
	}
	d := config.Default()
	cmd.Flags().StringVar(&host, "host", d.Host, "listen host [$"+config.EnvHost+"]")
	cmd.Flags().IntVar(&port, "port", d.Port, "listen port [$"+config.EnvPort+"]")
	cmd.Flags().BoolVar(&passThrough, "pass-through", d.PassThrough, "pass bytes outside the alphabet through [$"+config.EnvPassThrough+"]")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "enigma version %s\n", version.Version)
		},
	}
}

// RunContext executes argv and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(argv)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(parent)
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.code == ExitIO && writers.IsBrokenPipe(ee.err) {
			return ExitOK
		}
		if ee.err != nil {
			_, _ = fmt.Fprintln(stderr, ee.err)
		}
		return ee.code
	}
	// Anything cobra reports itself (unknown flag, stray argument) is usage.
	_, _ = fmt.Fprintln(stderr, err)
	_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", root.Name())
	return ExitUsage
}

// Run is RunContext with a background context.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}
