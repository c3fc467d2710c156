package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/five82/reposearch/internal/app"
	"github.com/five82/reposearch/internal/github"
	"github.com/five82/reposearch/internal/render"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals are flags shared by every command.
type Globals struct {
	Config   string `help:"Override config path." type:"path" placeholder:"PATH"`
	Prefs    string `help:"Override preferences path." type:"path" placeholder:"PATH"`
	LogLevel string `help:"Log level (trace, debug, info, warn, error)." placeholder:"LEVEL"`
}

func (g *Globals) options() app.Options {
	return app.Options{ConfigPath: g.Config, PrefsPath: g.Prefs, LogLevel: g.LogLevel}
}

// CLI is the top-level command structure for reposearch.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`
	TUI     TUICmd           `cmd:"" name:"tui" default:"1" help:"Open the interactive search (default)."`
	Search  SearchCmd        `cmd:"" help:"Run one search and print the results."`
	Show    ShowCmd          `cmd:"" help:"Run one search and print one repository."`
}

// TUICmd opens the interactive search.
type TUICmd struct{}

// Run launches the TUI.
func (c *TUICmd) Run(ctx context.Context, g *Globals) error {
	if !isTerminal(os.Stdout) || !isTerminal(os.Stdin) {
		return fmt.Errorf("tui: requires a terminal (TTY); use 'reposearch search' for scripted use")
	}
	return app.Run(ctx, g.options())
}

// SearchCmd prints the result list for one query.
type SearchCmd struct {
	Query  string `arg:"" help:"Search query, passed to the endpoint as typed."`
	Format string `help:"Output format (${formats})." enum:"${formats}" default:"text" short:"f"`
}

// Run executes the search command.
func (c *SearchCmd) Run(ctx context.Context, g *Globals) error {
	return app.SearchOnce(ctx, app.OnceOptions{
		Options: g.options(),
		Query:   c.Query,
		Format:  c.Format,
		Out:     stdout,
		ErrOut:  stderr,
	})
}

// ShowCmd prints the details of one record of a search.
type ShowCmd struct {
	Query  string `arg:"" help:"Search query, passed to the endpoint as typed."`
	Index  int    `arg:"" help:"Zero-based position of the repository in the results."`
	Format string `help:"Output format (${formats})." enum:"${formats}" default:"text" short:"f"`
}

// Run executes the show command.
func (c *ShowCmd) Run(ctx context.Context, g *Globals) error {
	return app.ShowOnce(ctx, app.OnceOptions{
		Options: g.options(),
		Query:   c.Query,
		Format:  c.Format,
		Out:     stdout,
		ErrOut:  stderr,
	}, c.Index)
}

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

const (
	exitSuccess = 0
	exitSearch  = 1
	exitSetup   = 2
)

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if github.IsNetworkError(err) {
		return exitSearch
	}
	return exitSetup
}

func vars() kong.Vars {
	formats := ""
	for i, f := range render.Formats() {
		if i > 0 {
			formats += ","
		}
		formats += string(f)
	}
	return kong.Vars{
		"version": version + " " + commit + " " + date,
		"formats": formats,
	}
}

func newParser(cli *CLI, extra ...kong.Option) (*kong.Kong, error) {
	opts := append([]kong.Option{
		kong.Name("reposearch"),
		kong.Description("Search repositories from the terminal."),
		kong.Writers(stdout, stderr),
		vars(),
	}, extra...)
	return kong.New(cli, opts...)
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		fmt.Fprintf(stderr, "reposearch: %v\n", err)
		return exitSetup
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		var perr *kong.ParseError
		if errors.As(err, &perr) {
			_ = perr.Context.PrintUsage(false)
		}
		fmt.Fprintf(stderr, "reposearch: %v\n", err)
		return exitSetup
	}

	kctx.BindTo(ctx, (*context.Context)(nil))
	if err := kctx.Run(&cli.Globals); err != nil {
		fmt.Fprintf(stderr, "reposearch: %v\n", err)
		return exitCode(err)
	}
	return exitSuccess
}
