package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/linesmerrill/invite-inspector/assets"
	"github.com/linesmerrill/invite-inspector/cli"
	"github.com/linesmerrill/invite-inspector/config"
	"github.com/linesmerrill/invite-inspector/discord"
	"github.com/linesmerrill/invite-inspector/inspect"
)

// Set via -ldflags at build time.
var version = "dev"

const (
	exitOK          = 0
	exitUsage       = 1
	exitLookupError = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "", "lookup":
	case "version":
		fmt.Printf("invite-inspector %s\n", version)
		return exitOK
	case "--help", "-h", "help":
		printUsage()
		return exitOK
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		printUsage()
		return exitUsage
	}
	if cmd == "lookup" && len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: invite-inspector lookup <code|url>...")
		return exitUsage
	}

	conf, err := config.New()
	if err != nil {
		var credErr *config.CredentialLoadError
		if errors.As(err, &credErr) {
			fmt.Fprintf(os.Stderr, "error: no bot token: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return exitUsage
	}
	defer zap.L().Sync()

	discord.UserAgent = fmt.Sprintf("DiscordBot (https://github.com/linesmerrill/invite-inspector, %s)", version)
	httpClient := &http.Client{Timeout: conf.HTTPTimeout}
	inspector := &inspect.Inspector{
		Fetcher:  discord.NewInviteClient(conf, httpClient),
		Resolver: assets.NewResolver(conf, discord.NewProber(httpClient)),
	}
	zap.S().Infow("invite-inspector is up and running",
		"version", version,
		"api", conf.APIBaseURL,
		"env", conf.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := &cli.Loop{
		Inspector:   inspector,
		Out:         os.Stdout,
		Err:         os.Stderr,
		ExitOnError: conf.ExitOnError,
	}

	if cmd == "lookup" {
		if err := loop.RunCodes(ctx, args[1:]); err != nil {
			return exitLookupError
		}
		return exitOK
	}

	reader, err := cli.NewPrompt()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: open terminal: %v\n", err)
		return exitUsage
	}
	defer reader.Close()
	loop.Reader = reader

	if err := loop.Run(ctx); err != nil {
		zap.S().With(err).Error("invite loop stopped")
		return exitLookupError
	}
	return exitOK
}

func printUsage() {
	fmt.Println("Usage: invite-inspector [command]")
	fmt.Println()
	fmt.Println("With no command, prompts for invite links and prints a report for each.")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  lookup <code|url>...  Print reports for the given invites and exit")
	fmt.Println("  version               Print version info")
	fmt.Println("  help                  Show this help")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  INVITE_CONFIG    path of the JSON config holding {\"token\": ...} (default: config.json)")
	fmt.Println("  DISCORD_TOKEN    bot token, overrides the config file")
	fmt.Println("  DISCORD_API_URL  API base URL (default: https://discord.com/api/v10)")
	fmt.Println("  DISCORD_CDN_URL  CDN base URL (default: https://cdn.discordapp.com)")
	fmt.Println("  HTTP_TIMEOUT     per request timeout (default: 15s)")
	fmt.Println("  EXIT_ON_ERROR    stop at the first failed lookup (default: false)")
	fmt.Println("  ENV              local, development or production log level")
	fmt.Println("  LOG_FILE         rotating log file, empty to disable (default: logs/invite-inspector.log)")
}
