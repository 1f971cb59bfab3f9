package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mtdrworkshop/todolist/internal/app"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	os.Exit(CLI(os.Args, os.Stdout, os.Stderr))
}

// CLI запускает приложение и возвращает код выхода:
// 0 - успех, 1 - ошибка выполнения, 2 - неверные аргументы.
func CLI(args []string, stdout, stderr io.Writer) int {
	if err := app.Run(args, stdout, nil); err != nil {
		var usageErr *app.UsageError
		if errors.As(err, &usageErr) {
			_, _ = fmt.Fprintf(stderr, "%v\nusage: %s [-v] [-version]\n", err, progName(args))
			return 2
		}
		_, _ = fmt.Fprintf(stderr, "Runtime error: %v\n", err)
		return 1
	}
	return 0
}

func progName(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "apiurl"
}
