package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/perf-dashboard/internal/adapter"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
)

type command struct {
	usage string
	// authed commands need a token before the request is sent
	authed bool
	run    func(ctx context.Context, a *App, args []string) error
}

var commands = map[string]command{
	"version":        {usage: "version", run: runVersion},
	"login":          {usage: "login -identifier <username|email> -password <password> [-role admin|analyst]", run: runLogin},
	"me":             {usage: "me", authed: true, run: runMe},
	"upload":         {usage: "upload <file.csv> [more.csv ...]", authed: true, run: runUpload},
	"list":           {usage: "list [-mimetype text/csv,image/png]", authed: true, run: runList},
	"delete":         {usage: "delete <file id>", authed: true, run: runDelete},
	"summary":        {usage: "summary <file id>", authed: true, run: runSummary},
	"analysts":       {usage: "analysts", authed: true, run: runAnalysts},
	"create-analyst": {usage: "create-analyst -username <name> -password <password>", authed: true, run: runCreateAnalyst},
	"delete-analyst": {usage: "delete-analyst <analyst id>", authed: true, run: runDeleteAnalyst},
}

// App runs one dashctl command per call of Run.
type App struct {
	adapter adapter.DashboardAdapter
	out     io.Writer

	logger *logger.Logger
}

func NewApp(dashboardAdapter adapter.DashboardAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if dashboardAdapter == nil {
		return nil, errors.New("client app requires an adapter")
	}

	return &App{adapter: dashboardAdapter, out: out, logger: logger}, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, Usage())
	}

	name, rest := args[0], args[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, name, Usage())
	}

	if cmd.authed && a.adapter.Token() == "" {
		return ErrNotLoggedIn
	}

	a.logger.Debug().Str("func", "*App.Run").Str("command", name).Msg("running command")

	if err := cmd.run(ctx, a, rest); err != nil {
		if errors.Is(err, ErrUsage) {
			return fmt.Errorf("%w: %s", err, cmd.usage)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Usage lists the available commands.
func Usage() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: dashctl <command> [flags]\n\ncommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", commands[name].usage)
	}
	return b.String()
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// idArg parses the single positional id of delete, summary and
// delete-analyst.
func idArg(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected one id", ErrUsage)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a positive id", ErrUsage, args[0])
	}
	return id, nil
}
