// Package commands implements the pagecalc command line.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxviazov/paging-service/internal/service"
	"github.com/maxviazov/paging-service/pkg/paging"
)

// NewRootCmd creates the root command. Failures are returned, not printed;
// the caller decides how to report them.
func NewRootCmd(logger zerolog.Logger) *cobra.Command {
	var maxPages int

	rootCmd := &cobra.Command{
		Use:           "pagecalc",
		Short:         "Compute pagination metadata",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().IntVar(&maxPages, "max-pages", 1000, "largest page enumeration allowed with --pages")

	svc := func() service.PagingService {
		return service.NewPagingService(service.Options{MaxEnumeratedPages: maxPages}, logger)
	}

	rootCmd.AddCommand(
		newCalcCommand(svc),
		newRestoreCommand(svc),
		newTurnCommand(svc),
	)
	return rootCmd
}

type serviceFactory func() service.PagingService

func writeInfo(w io.Writer, info paging.Info) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

// readInput reads the file named by args[0], or standard input when no
// argument or "-" is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	return b, nil
}

// describe flattens aggregated field errors into the message.
func describe(err error) error {
	fields := service.FieldErrors(err)
	if len(fields) == 0 {
		return err
	}
	msg := err.Error() + ":"
	for _, f := range fields {
		msg += fmt.Sprintf(" %s %s;", f.Field, f.Message)
	}
	return fmt.Errorf("%s %w", msg[:len(msg)-1], service.ErrInvalidInput)
}
