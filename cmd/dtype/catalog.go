// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtype/catalog"
	"github.com/katalvlaran/lvtype/datatype"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the schema catalog of named descriptors",
	}

	cmd.AddCommand(newCatalogPutCmd(a))
	cmd.AddCommand(newCatalogGetCmd(a))
	cmd.AddCommand(newCatalogListCmd(a))
	cmd.AddCommand(newCatalogCheckCmd(a))
	cmd.AddCommand(newCatalogDeleteCmd(a))

	return cmd
}

// withCatalog opens the catalog, runs fn and closes it.
func (a *app) withCatalog(cmd *cobra.Command, fn func(*catalog.Catalog) error) error {
	c, err := a.openCatalog(cmd.Context())
	if err != nil {
		return err
	}
	defer c.Close()

	return fn(c)
}

// parseWithLengths parses tag and attaches the --ly/--lx lengths.
func parseWithLengths(cmd *cobra.Command, lf *lengthFlags, tag string) (datatype.Descriptor, error) {
	d, err := datatype.Parse(tag)
	if err != nil {
		return datatype.Descriptor{}, err
	}

	return lf.apply(cmd, d), nil
}

func newCatalogPutCmd(a *app) *cobra.Command {
	var lf lengthFlags

	cmd := &cobra.Command{
		Use:   "put <name> <tag>",
		Short: "Store a descriptor under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseWithLengths(cmd, &lf, args[1])
			if err != nil {
				return err
			}
			return a.withCatalog(cmd, func(c *catalog.Catalog) error {
				e, err := c.Put(cmd.Context(), args[0], d)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", e.ID, e.Name, e.Tag)
				return nil
			})
		},
	}
	lf.register(cmd)

	return cmd
}

// entryJSON is the JSON form printed by "catalog get".
type entryJSON struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Tag         string          `json:"tag"`
	LengthY     *datatype.Index `json:"length_y,omitempty"`
	LengthX     *datatype.Index `json:"length_x,omitempty"`
	Fingerprint string          `json:"fingerprint"`
	CreatedAt   string          `json:"created_at"`
}

func newCatalogGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Print a stored descriptor as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(cmd, func(c *catalog.Catalog) error {
				e, err := c.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entryJSON{
					ID:          e.ID,
					Name:        e.Name,
					Tag:         e.Tag,
					LengthY:     e.LengthY,
					LengthX:     e.LengthX,
					Fingerprint: e.Fingerprint,
					CreatedAt:   e.CreatedAt.Format(time.RFC3339),
				})
			})
		},
	}
}

func newCatalogListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(cmd, func(c *catalog.Catalog) error {
				entries, err := c.List(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tTAG\tLY\tLX")
				for _, e := range entries {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Tag, lengthCell(e.LengthY), lengthCell(e.LengthX))
				}
				return w.Flush()
			})
		},
	}
}

func lengthCell(ref *datatype.Index) string {
	if ref == nil {
		return "-"
	}
	return fmt.Sprint(*ref)
}

func newCatalogCheckCmd(a *app) *cobra.Command {
	var lf lengthFlags

	cmd := &cobra.Command{
		Use:   "check <name> <tag>",
		Short: "Check a descriptor against the stored schema",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseWithLengths(cmd, &lf, args[1])
			if err != nil {
				return err
			}
			return a.withCatalog(cmd, func(c *catalog.Catalog) error {
				if err := c.Check(cmd.Context(), args[0], d); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "compatible")
				return nil
			})
		},
	}
	lf.register(cmd)

	return cmd
}

func newCatalogDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(cmd, func(c *catalog.Catalog) error {
				return c.Delete(cmd.Context(), args[0])
			})
		},
	}
}
