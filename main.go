package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/ashmitb/unistory/infra/auth"
	"github.com/ashmitb/unistory/infra/config"
	"github.com/ashmitb/unistory/infra/unilife"
	"github.com/ashmitb/unistory/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: unistory [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

// newLogger opens the debug log file, or a disabled logger when no path
// is configured. The TUI owns the terminal, so stderr is never an option.
func newLogger(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("opening debug log: %w", err)
	}
	log := zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return log, func() { f.Close() }, nil
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("unistory %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(2)
	}

	// 1. Load config: a local .env feeds the same variables.
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, closeLog, err := newLogger(cfg.DebugLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// 2. Build infrastructure.
	tokenProvider := auth.NewFileTokenProvider(cfg.TokenPath)
	httpClient := unilife.NewClient(cfg.APIBaseURL, tokenProvider, log)

	// 3. Build services (concrete types satisfy app.* interfaces).
	accountSvc := unilife.NewAccountService(httpClient)
	sessionOwnerID, err := accountSvc.CurrentAccountID(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "account: %v\n", err)
		os.Exit(1)
	}

	storySvc := unilife.NewStoryService(httpClient)
	convSvc := unilife.NewConversationService(httpClient)
	mediaSvc := unilife.NewMediaService(httpClient)

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Story:          storySvc,
		Conversation:   convSvc,
		Media:          mediaSvc,
		SessionOwnerID: sessionOwnerID,
	})

	// 5. Run. Mouse mode enables press-and-hold and the tap zones.
	p := tea.NewProgram(rootModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "unistory: %v\n", err)
		os.Exit(1)
	}
}
