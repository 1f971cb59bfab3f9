package app

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/mtdrworkshop/todolist/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	BuildVersion = "n/a"
	BuildTime    = "n/a"
	BuildCommit  = "n/a"
)

// Run разбирает аргументы, вычисляет адрес API и печатает его в out.
// lookup позволяет подменить окружение в тестах, nil - окружение процесса.
func Run(args []string, out io.Writer, lookup config.EnvLookup) error {
	fs := flag.NewFlagSet(progName(args), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	verbose := fs.Bool("v", false, "debug logging")
	version := fs.Bool("version", false, "print build info and exit")
	if len(args) > 0 {
		args = args[1:]
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return printUsage(fs, out)
		}
		return &UsageError{Err: err}
	}
	if fs.NArg() > 0 {
		return &UsageError{Err: fmt.Errorf("unexpected arguments: %v", fs.Args())}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *version {
		return printBuildInfo(out)
	}
	log.Debug().
		Str("version", BuildVersion).
		Str("commit", BuildCommit).
		Msg("starting")

	cfg := config.Load(lookup)
	log.Info().Str("source", cfg.Source.String()).Msgf("app cfg: %+v", *cfg)

	if _, err := fmt.Fprintln(out, cfg.APIURL); err != nil {
		return fmt.Errorf("write api url: %w", err)
	}
	return nil
}

// UsageError ошибка разбора аргументов командной строки
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// printUsage печатает справку по флагам в out. -h не считается ошибкой.
func printUsage(fs *flag.FlagSet, out io.Writer) error {
	if _, err := fmt.Fprintf(out, "Usage of %s:\n", fs.Name()); err != nil {
		return fmt.Errorf("write usage: %w", err)
	}
	fs.SetOutput(out)
	fs.PrintDefaults()
	return nil
}

func progName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "apiurl"
}

func printBuildInfo(out io.Writer) error {
	_, err := fmt.Fprintf(out, "Build version: %s\nBuild date: %s\nBuild commit: %s\n", BuildVersion, BuildTime, BuildCommit)
	if err != nil {
		return fmt.Errorf("write build info: %w", err)
	}
	return nil
}
