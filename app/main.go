package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/themetoggle/app/notify"
	"github.com/umputun/themetoggle/app/store"
	"github.com/umputun/themetoggle/app/toggler"
)

type options struct {
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version and exit"`
}

var opts options

var revision = "unknown"

const description = "A simple tool for Windows (14393 or above) to switch between light and dark themes"

func main() {
	p := newParser(&opts)
	args, err := p.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument %q\n", args[0])
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("themetoggle %s\n", revision)
		os.Exit(0)
	}

	setupLogs(opts.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if err := run(store.NewRegistry(), notify.New(notify.DefaultTimeout), os.Stdout); err != nil {
		log.Printf("[DEBUG] failed: %v", err)
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

func newParser(o *options) *flags.Parser {
	p := flags.NewParser(o, flags.PassDoubleDash|flags.HelpFlag)
	p.Name = "themetoggle"
	p.ShortDescription = description
	p.LongDescription = description
	return p
}

// run performs a single toggle and writes status lines to out
func run(st toggler.PrefStore, n toggler.Notifier, out io.Writer) error {
	log.Printf("[DEBUG] themetoggle %s", revision)
	if _, err := toggler.New(st, n, out).Toggle(); err != nil {
		return fmt.Errorf("toggle theme: %w", err)
	}
	return nil
}

// userMessage collapses every platform failure to one message, the cause is only logged in debug mode
func userMessage(err error) string {
	if errors.Is(err, toggler.ErrUnsupportedPlatform) {
		return toggler.ErrUnsupportedPlatform.Error()
	}
	return err.Error()
}

func setupLogs(dbg bool) {
	log.Setup(log.Msec, log.Out(os.Stderr), log.Err(os.Stderr))
	if dbg {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile, log.Out(os.Stderr), log.Err(os.Stderr))
	}
}
