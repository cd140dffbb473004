package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"envprof/internal/inject"
	"envprof/internal/logging"
	"envprof/internal/model"
	"envprof/internal/profile"
	"envprof/internal/report"
	"envprof/internal/resolve"
	"envprof/internal/sysenv"
	"envprof/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

// Release coordinates for --update, set at build time with
// -ldflags "-X main.repoOwner=OWNER -X main.repoName=REPO".
var (
	repoOwner string
	repoName  string
)

func checkUpdate(w io.Writer, currentVer string) {
	if repoOwner == "" || repoName == "" {
		log.Debug().Msg("no release repository configured, skipping update check")
		fmt.Fprintf(w, "Update checks are not available in this build (envprof %s).\n", currentVer)
		return
	}

	githubTag := &latest.GithubTag{
		Owner:      repoOwner,
		Repository: repoName,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		log.Debug().Err(err).Msg("update check failed")
		return // Silently fail
	}

	if res.Outdated {
		fmt.Fprintf(w, "\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Fprintf(w, "👉 Download it from https://github.com/%s/%s/releases\n", repoOwner, repoName)
	} else {
		fmt.Fprintf(w, "✅ You are using the latest version: %s\n", currentVer)
	}
}

// options carries the flags every command shares.
type options struct {
	config  string
	verbose bool
	shell   string
	json    bool
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: envprof [options] <command> [profile...]\n\n")
		fmt.Fprintf(os.Stderr, "envprof switches PATH-like environment variables between named profiles\n")
		fmt.Fprintf(os.Stderr, "declared in Profiles.toml.\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  set NAME...            Print shell statements applying the profiles\n")
		fmt.Fprintf(os.Stderr, "  plan NAME...           Show the variables the profiles would set\n")
		fmt.Fprintf(os.Stderr, "  list                   List the declared profiles\n")
		fmt.Fprintf(os.Stderr, "  pick                   Choose profiles interactively\n")
		fmt.Fprintf(os.Stderr, "  run NAME... -- CMD     Run CMD with the profiles applied\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  eval \"$(envprof set dev)\"      # Apply the dev profile to this shell\n")
		fmt.Fprintf(os.Stderr, "  envprof -v plan dev rust         # Show every value that changes\n")
		fmt.Fprintf(os.Stderr, "  envprof run rust -- cargo build  # One-off command under a profile\n")
	}

	var opts options
	pflag.StringVarP(&opts.config, "config", "c", "", "Read profiles from this file instead of searching for "+profile.FileName)
	pflag.BoolVarP(&opts.verbose, "verbose", "v", false, "Report every value and enable debug logging")
	pflag.StringVarP(&opts.shell, "shell", "s", "", "Shell syntax for set/pick output (default: detected from $SHELL)")
	pflag.BoolVarP(&opts.json, "json", "j", false, "Print the plan as JSON (plan command)")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for a newer release (builds made with -ldflags \"-X main.repoOwner=... -X main.repoName=...\")")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	logging.Setup(os.Stderr, opts.verbose)

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("envprof version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(os.Stderr, model.Version)
		return
	}

	args := pflag.Args()
	if len(args) == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	var err error
	switch command, names := args[0], args[1:]; command {
	case "set":
		err = runSetMode(opts, names)
	case "plan":
		err = runPlanMode(opts, names)
	case "list":
		err = runListMode(opts)
	case "pick":
		err = runPickMode(opts)
	case "run":
		var code int
		code, err = runRunMode(opts, args, pflag.CommandLine.ArgsLenAtDash())
		if err == nil {
			os.Exit(code)
		}
	default:
		err = errors.Errorf("unknown command %q", command)
	}

	if err != nil {
		log.Error().Err(err).Msg("envprof failed")
		os.Exit(1)
	}
}

func loadTable(opts options) (*profile.Table, error) {
	loc, err := profile.Locate(opts.config)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", loc.Path).Str("source", string(loc.Source)).Msg("using profiles")

	table, err := profile.LoadFile(loc.Path)
	if err != nil {
		return nil, err
	}
	logging.Warnings(log.Logger, table)
	return table, nil
}

// buildPlan loads the profiles, captures the environment and computes the
// plan for names.
func buildPlan(opts options, names []string) (*model.UpdatePlan, *model.EnvMap, error) {
	table, err := loadTable(opts)
	if err != nil {
		return nil, nil, err
	}
	system, err := sysenv.Capture()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read the environment")
	}
	plan, err := resolve.Plan(table, names, system)
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Strs("profiles", names).Int("variables", plan.Len()).Msg("resolved")
	return plan, system, nil
}

func selectShell(opts options) (inject.Shell, error) {
	if opts.shell != "" {
		return inject.ShellByName(opts.shell)
	}
	return inject.DetectShell(os.Getenv("SHELL")), nil
}

// writeScript reports the plan on stderr and writes the shell statements
// applying it on stdout.
func writeScript(opts options, plan *model.UpdatePlan, system *model.EnvMap) error {
	shell, err := selectShell(opts)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stderr, report.Render(resolve.Explain(plan, system), opts.verbose))
	return inject.Apply(plan, inject.NewScriptInjector(os.Stdout, shell))
}

func runSetMode(opts options, names []string) error {
	if len(names) == 0 {
		return errors.New("set needs at least one profile name")
	}
	plan, system, err := buildPlan(opts, names)
	if err != nil {
		return err
	}
	return writeScript(opts, plan, system)
}

func runPlanMode(opts options, names []string) error {
	plan, system, err := buildPlan(opts, names)
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(plan.Strings()), "failed to encode plan")
	}

	fmt.Print(report.Render(resolve.Explain(plan, system), true))
	return nil
}

func runListMode(opts options) error {
	table, err := loadTable(opts)
	if err != nil {
		return err
	}
	fmt.Print(report.RenderProfiles(table))
	return nil
}

func runPickMode(opts options) error {
	table, err := loadTable(opts)
	if err != nil {
		return err
	}

	m := tui.InitialModel(table)
	// stdout carries the script, so the picker draws on stderr.
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return errors.Wrap(err, "picker failed")
	}

	picked, ok := final.(tui.AppModel)
	if !ok || !picked.Confirmed {
		log.Info().Msg("nothing applied")
		return nil
	}
	log.Debug().Strs("profiles", picked.Selection).Msg("picked")
	return writeScript(opts, picked.Plan, picked.System)
}

// runRunMode applies the profiles before "--" and runs the command after
// it, returning the command's exit status.
func runRunMode(opts options, args []string, dash int) (int, error) {
	if dash < 1 || dash >= len(args) {
		return 0, errors.New("usage: envprof run NAME... -- CMD [ARGS...]")
	}
	names, argv := args[1:dash], args[dash:]

	plan, system, err := buildPlan(opts, names)
	if err != nil {
		return 0, err
	}
	if opts.verbose {
		fmt.Fprint(os.Stderr, report.Render(resolve.Explain(plan, system), true))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd, err := inject.Command(ctx, plan, argv)
	if err != nil {
		return 0, err
	}
	log.Debug().Strs("argv", argv).Msg("running")
	return inject.ExitCode(cmd.Run()), nil
}
