package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/deppfellow/products/internal/errs"
	"github.com/deppfellow/products/internal/model"
	"github.com/deppfellow/products/internal/render"
	"github.com/deppfellow/products/internal/service"
	"github.com/deppfellow/products/internal/validation"
)

func newAddCommand(open Opener) *cobra.Command {
	var in service.AddProductInput

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a new product",
		Example: `  products add -n Bread -m CornerShop -c 5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.Validate(&in); err != nil {
				return err
			}

			backend, err := openWithSchema(cmd.Context(), open)
			if err != nil {
				return err
			}
			return backend.AddProduct(cmd.Context(), in)
		},
	}

	cmd.Flags().StringVarP(&in.Name, "name", "n", "", "The product's name")
	cmd.Flags().StringVarP(&in.Market, "market", "m", "", "The market's name")
	cmd.Flags().IntVarP(&in.Count, "count", "c", 0, "The count")
	for _, name := range []string{"name", "market", "count"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newDisplayCommand(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "display",
		Short: "Display all products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := openWithSchema(cmd.Context(), open)
			if err != nil {
				return err
			}

			records, err := backend.ListProducts(cmd.Context())
			if err != nil {
				return err
			}
			return printRecords(cmd, records)
		},
	}
}

func newSelectCommand(open Opener) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:     "select",
		Short:   "Select the products with a given name",
		Example: `  products select --sp Bread`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := openWithSchema(cmd.Context(), open)
			if err != nil {
				return err
			}

			records, err := backend.FindProducts(cmd.Context(), name)
			if err != nil {
				return err
			}
			return printRecords(cmd, records)
		},
	}

	cmd.Flags().StringVar(&name, "sp", "", "The required name of the product")
	_ = cmd.MarkFlagRequired("sp")

	return cmd
}

func printRecords(cmd *cobra.Command, records []model.Record) error {
	if err := render.Products(cmd.OutOrStdout(), records); err != nil {
		return errs.NewInternalError(errors.Wrap(err, "write table"))
	}
	return nil
}
