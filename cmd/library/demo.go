package main

import (
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/lending-catalog-go/lending/catalog"
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the scripted lending scenario",
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

			return runDemo(cmd, s)
		},
	}
}

// runDemo adds two books and two patrons, lends both books, lists and searches, then returns
// one book and deregisters the other patron. Every step must succeed.
func runDemo(cmd *cobra.Command, s *session) error {
	ctx := cmd.Context()
	c := s.catalog

	lotr := catalog.NewBook("The Lord of the Rings", "J.R.R. Tolkien", "Fantasy", "978-84-01-01303-3")
	hp := catalog.NewBook("Harry Potter and the Philosopher's Stone", "J.K. Rowling", "Fantasy", "978-84-01-01304-0")
	rogelio := catalog.NewPatron("Rogelio Alvarado", "U001")
	mariana := catalog.NewPatron("Mariana Leiva", "U002")

	steps := []struct {
		description string
		run         func() error
	}{
		{"add " + lotr.Title(), func() error { return c.AddBook(ctx, lotr) }},
		{"add " + hp.Title(), func() error { return c.AddBook(ctx, hp) }},
		{"register " + rogelio.Name(), func() error { return c.RegisterPatron(ctx, rogelio) }},
		{"register " + mariana.Name(), func() error { return c.RegisterPatron(ctx, mariana) }},
		{"lend " + lotr.ISBN() + " to " + rogelio.ID(), func() error { return c.Borrow(ctx, lotr.ISBN(), rogelio.ID()) }},
		{"lend " + hp.ISBN() + " to " + mariana.ID(), func() error { return c.Borrow(ctx, hp.ISBN(), mariana.ID()) }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			return err
		}
		s.printf("%s: ok\n", step.description)
	}

	held, err := c.ListHeldBooks(ctx, rogelio.ID())
	if err != nil {
		return err
	}
	s.printBooks("Books lent to "+rogelio.Name()+":", held)

	s.printBooks("Search by author 'J.K. Rowling':", c.Search(ctx, catalog.SearchByAuthor, "J.K. Rowling"))

	if err := c.ReturnBook(ctx, lotr.ISBN(), rogelio.ID()); err != nil {
		return err
	}
	s.printf("\nreturn %s from %s: ok\n", lotr.ISBN(), rogelio.ID())

	if err := c.DeregisterPatron(ctx, mariana.ID()); err != nil {
		return err
	}
	s.printf("deregister %s: ok\n", mariana.ID())

	return s.printHistory(ctx)
}
