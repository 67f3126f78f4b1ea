// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtype/datatype"
)

// lengthFlags holds the optional --ly / --lx dimension flags. A flag that was
// not given leaves the corresponding reference absent.
type lengthFlags struct {
	y, x int32
}

func (f *lengthFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int32Var(&f.y, "ly", 0, "row length (matrix-like containers)")
	cmd.Flags().Int32Var(&f.x, "lx", 0, "column length, or the vector length")
}

// apply attaches the given lengths to d. The returned descriptor borrows f.
func (f *lengthFlags) apply(cmd *cobra.Command, d datatype.Descriptor) datatype.Descriptor {
	var y, x *datatype.Index
	if cmd.Flags().Changed("ly") {
		y = &f.y
	}
	if cmd.Flags().Changed("lx") {
		x = &f.x
	}

	return datatype.NewWithLengths(d.Container(), d.Structure(), d.Primitive(), y, x)
}

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List primitive names with their dense and sparse sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tSPARSE")
			for _, p := range datatype.Primitives() {
				fmt.Fprintf(w, "%s\t%d\t%d\n", p, datatype.SizeOfPrimitive(p), datatype.SizeOfSparseEntry(p))
			}
			return w.Flush()
		},
	}
}

func newSizeCmd() *cobra.Command {
	var lf lengthFlags

	cmd := &cobra.Command{
		Use:   "size <tag>",
		Short: "Print element size, element count and total bytes of a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := datatype.Parse(args[0])
			if err != nil {
				return err
			}
			if err := d.Validate(); err != nil {
				return err
			}
			d = lf.apply(cmd, d)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tag:      %s\n", d)
			fmt.Fprintf(out, "element:  %d bytes\n", d.Size())
			if d.Structure() == datatype.Sparse {
				fmt.Fprintf(out, "offset:   %d\n", datatype.OffsetSparseEntry(d.Primitive()))
			}

			n, err := d.NumElements()
			if errors.Is(err, datatype.ErrMissingDimension) {
				fmt.Fprintln(out, "elements: unknown (pass --ly/--lx)")
				return nil
			}
			if err != nil {
				return err
			}
			total, err := d.ByteSize()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "elements: %d\n", n)
			fmt.Fprintf(out, "total:    %d bytes\n", total)

			return nil
		},
	}
	lf.register(cmd)

	return cmd
}

func newRenderCmd() *cobra.Command {
	var capacity int

	cmd := &cobra.Command{
		Use:   "render <container> <structure> <primitive>",
		Short: "Render a tag into a bounded buffer",
		Long: `Render builds a descriptor from its three names and writes its tag into a
buffer of --cap bytes. structure is "dense" or "sparse".`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := datatype.ParseContainer(args[0])
			if !ok {
				return fmt.Errorf("container %q: %w", args[0], datatype.ErrUnknownName)
			}
			var s datatype.Structure
			switch args[1] {
			case "dense":
				s = datatype.Dense
			case "sparse":
				s = datatype.Sparse
			default:
				return fmt.Errorf("structure %q: %w", args[1], datatype.ErrUnknownName)
			}
			var p datatype.Primitive
			if !datatype.StringToPrimitive(&p, args[2]) {
				return fmt.Errorf("primitive %q: %w", args[2], datatype.ErrUnknownName)
			}
			if capacity < 0 {
				return fmt.Errorf("--cap must be non-negative, got %d", capacity)
			}

			buf := make([]byte, capacity)
			n, truncated := datatype.New(c, s, p).Render(buf)
			suffix := ""
			if truncated {
				suffix = " (truncated)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", buf[:n], suffix)

			return nil
		},
	}
	cmd.Flags().IntVar(&capacity, "cap", 64, "buffer capacity in bytes")

	return cmd
}
