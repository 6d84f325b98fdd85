package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/lending-catalog-go/lending/catalog"
	"github.com/AntonStoeckl/lending-catalog-go/lending/seed"
)

type inspectOptions struct {
	seedPath    string
	searchField string
	searchValue string
	patronID    string
}

func newInspectCmd(opts *rootOptions) *cobra.Command {
	inspect := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Load a YAML seed into a fresh catalog and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx := cmd.Context()

			s, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := s.close(ctx); err == nil {
					err = closeErr
				}
			}()

			return runInspect(cmd, s, inspect)
		},
	}

	cmd.Flags().StringVar(&inspect.seedPath, "seed", "", "YAML seed file with books, patrons and loans")
	cmd.Flags().StringVar(&inspect.searchField, "search-field", "", "search by title, author or category")
	cmd.Flags().StringVar(&inspect.searchValue, "search-value", "", "value to search for")
	cmd.Flags().StringVar(&inspect.patronID, "patron", "", "list the books held by this patron")
	_ = cmd.MarkFlagRequired("seed")
	cmd.MarkFlagsRequiredTogether("search-field", "search-value")

	return cmd
}

func runInspect(cmd *cobra.Command, s *session, opts *inspectOptions) error {
	ctx := cmd.Context()

	loaded, err := seed.LoadFile(opts.seedPath)
	if err != nil {
		return err
	}

	if err := loaded.Apply(ctx, s.catalog); err != nil {
		return err
	}

	s.printBooks("Books:", s.catalog.Books())

	s.printf("\nPatrons:\n")
	for _, patron := range s.catalog.Patrons() {
		s.printf("  %s\n", patron)
	}

	if opts.searchField != "" {
		field := catalog.ParseSearchField(opts.searchField)
		s.printBooks("Search by "+string(field)+" '"+opts.searchValue+"':", s.catalog.Search(ctx, field, opts.searchValue))
	}

	if opts.patronID != "" {
		held, err := s.catalog.ListHeldBooks(ctx, opts.patronID)
		switch {
		case errors.Is(err, catalog.ErrPatronNotFound):
			s.printf("\nPatron %s is not registered.\n", opts.patronID)
		case err != nil:
			return err
		default:
			s.printBooks("Books lent to "+opts.patronID+":", held)
		}
	}

	return s.printHistory(ctx)
}
