// Command cash-stuffing is the command line frontend of the budget.
//
// Without a command, it starts an interactive shell. Otherwise the command
// is run against the current period and the program exits.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kdennisod/cash-stuffing/internal/client"
	"github.com/kdennisod/cash-stuffing/internal/controller"
	"github.com/kdennisod/cash-stuffing/internal/types"
	"github.com/kdennisod/cash-stuffing/internal/view"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
	"golang.org/x/text/language"
)

type options struct {
	server   string
	username string
	password string
	register bool
	period   string
	lang     string
	timeout  time.Duration
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	var o options

	fs := flag.NewFlagSet("cash-stuffing", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Everything after the command name is passed to the command
	fs.SetInterspersed(false)
	fs.StringVarP(&o.server, "server", "s", env("CASH_STUFFING_SERVER", "http://localhost:8080"), "URL of the API")
	fs.StringVarP(&o.username, "user", "u", os.Getenv("CASH_STUFFING_USER"), "user name")
	fs.StringVarP(&o.password, "password", "p", "", "password, defaults to $CASH_STUFFING_PASSWORD")
	fs.BoolVar(&o.register, "register", false, "register the user before logging in")
	fs.StringVar(&o.period, "period", "", "period to open as YEAR-MONTH with zero based month, defaults to the current month")
	fs.StringVar(&o.lang, "lang", "de", "language for amounts")
	fs.DurationVar(&o.timeout, "timeout", client.DefaultTimeout, "timeout for API requests")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log API requests")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: cash-stuffing [flags] [command [arguments]]\n\nFlags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nCommands:\n")
		printCommands(stderr)
	}

	if err := fs.Parse(args); err != nil {
		return o, nil, err
	}

	if o.password == "" {
		o.password = os.Getenv("CASH_STUFFING_PASSWORD")
	}

	if o.username == "" {
		return o, nil, fmt.Errorf("a user name is required, use --user or $CASH_STUFFING_USER")
	}

	return o, fs.Args(), nil
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, rest, err := parseFlags(args, stderr)
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(stderr, err)
			return 2
		}
		return 0
	}

	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	if o.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen})

	tag, err := language.Parse(o.lang)
	if err != nil {
		fmt.Fprintf(stderr, "invalid language '%s': %v\n", o.lang, err)
		return 2
	}

	api, err := client.New(o.server, o.timeout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if o.register {
		if err := api.Register(ctx, o.username, o.password); err != nil {
			fmt.Fprintf(stderr, "registration failed: %v\n", err)
			return 1
		}
	}

	if err := api.Login(ctx, o.username, o.password); err != nil {
		fmt.Fprintf(stderr, "login failed: %v\n", err)
		if client.IsStatus(err, http.StatusUnauthorized) && !o.register {
			fmt.Fprintln(stderr, "new users can be created with --register")
		}
		return 1
	}
	defer func() {
		if err := api.Logout(context.WithoutCancel(ctx)); err != nil {
			log.Warn().Err(err).Msg("logout")
		}
	}()

	alerter := controller.AlertFunc(func(message string) {
		fmt.Fprintln(stderr, alertStyle.Render("! "+message))
	})

	c := controller.New(api, alerter, stdout, controller.WithFormatter(view.NewFormatter(tag, "€")))
	if err := c.Init(ctx, time.Now()); err != nil {
		return 1
	}

	if o.period != "" {
		period, err := types.ParsePeriod(o.period)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}

		if err := c.ChangePeriod(ctx, period); err != nil {
			return 1
		}
	}

	sh := &shell{c: c, out: stdout, errOut: stderr}

	if len(rest) > 0 {
		if err := sh.exec(ctx, rest); err != nil {
			return 1
		}
		return 0
	}

	sh.interactive(ctx, stdin)
	return 0
}

// fields splits a command line at whitespace. Double quotes group words.
func fields(line string) []string {
	var (
		out     []string
		current strings.Builder
		quoted  bool
		inField bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			inField = true
		case !quoted && (r == ' ' || r == '\t'):
			if inField {
				out = append(out, current.String())
				current.Reset()
				inField = false
			}
		default:
			current.WriteRune(r)
			inField = true
		}
	}

	if inField {
		out = append(out, current.String())
	}

	return out
}
