// Package cli parses the command line and dispatches to the
// backend.
//
// Every command initializes the schema first. Flags are parsed and
// checked before the backend is opened, so argument errors never
// reach configuration loading or the database.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/deppfellow/products/internal/errs"
	"github.com/deppfellow/products/internal/model"
	"github.com/deppfellow/products/internal/service"
	"github.com/deppfellow/products/internal/version"
)

// Backend is what the commands need from the application.
type Backend interface {
	EnsureSchema(ctx context.Context) error
	AddProduct(ctx context.Context, in service.AddProductInput) error
	ListProducts(ctx context.Context) ([]model.Record, error)
	FindProducts(ctx context.Context, name string) ([]model.Record, error)
}

// Opener builds the backend. It is called at most once per command,
// after argument parsing succeeded.
type Opener func() (Backend, error)

// NewRootCommand builds the `products` command tree.
func NewRootCommand(open Opener) *cobra.Command {
	root := &cobra.Command{
		Use:   "products",
		Short: "Record products and the markets that sell them",
		Long: `products stores products and their markets in PostgreSQL
and lists or filters them as a table.

Without a command it only makes sure the database schema exists.`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := openWithSchema(cmd.Context(), open)
			return err
		},
	}

	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errs.NewArgumentError(err.Error(), nil, err)
	})

	root.AddCommand(
		newAddCommand(open),
		newDisplayCommand(open),
		newSelectCommand(open),
	)

	return root
}

// openWithSchema opens the backend and runs schema initialization.
func openWithSchema(ctx context.Context, open Opener) (Backend, error) {
	backend, err := open()
	if err != nil {
		return nil, err
	}
	if err := backend.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return backend, nil
}

// Execute runs root and converts the outcome into an exit status.
//
// Argument errors print the message and the failing command's usage.
// Every other error prints its code and its stack trace.
func Execute(ctx context.Context, root *cobra.Command, stderr io.Writer) int {
	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return errs.ExitOK
	}

	// Anything cobra rejected itself (required flags, unknown
	// commands, extra args) is an argument error.
	var appErr *errs.Error
	if !errors.As(err, &appErr) {
		err = errs.NewArgumentError(err.Error(), nil, nil)
	}

	if errs.KindOf(err) == errs.KindArgument {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if cmd != nil {
			fmt.Fprint(stderr, cmd.UsageString())
		}
		return errs.ExitArgument
	}

	// Other errors carry a machine-readable code (STORE_UNAVAILABLE,
	// PRODUCT_NOT_FOUND, ...) ahead of the message and stack.
	fmt.Fprintf(stderr, "Error [%s]: %+v\n", appErr.Code, err)
	return errs.ExitCode(err)
}
