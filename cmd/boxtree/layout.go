package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/grindlemire/go-boxtree"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

// nodeReport is one row of `boxtree layout` output.
type nodeReport struct {
	ID     string        `json:"id,omitempty"`
	Depth  int           `json:"depth"`
	X      int           `json:"x"`
	Y      int           `json:"y"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Style  boxtree.Style `json:"style"`
	Text   string        `json:"text,omitempty"`
}

func newLayoutCmd(a *app) *cobra.Command {
	var (
		text   textFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Lay out a document and print every node's rectangle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := text.resolveMode(a)
			if err != nil {
				return err
			}
			opts, err := text.buildOptions(mode)
			if err != nil {
				return err
			}
			root, err := loadTree(args[0], opts)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), root, format)
		},
	}
	text.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: table or json")
	return cmd
}

func report(root *boxtree.Node) []nodeReport {
	var rows []nodeReport
	root.Walk(func(n *boxtree.Node, depth int) bool {
		r := n.Rect()
		rows = append(rows, nodeReport{
			ID:     n.ID(),
			Depth:  depth,
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
			Style:  n.Style(),
			Text:   n.Text(),
		})
		return true
	})
	return rows
}

func writeReport(w io.Writer, root *boxtree.Node, format string) error {
	rows := report(root)

	switch format {
	case "json":
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NODE\tX\tY\tWIDTH\tHEIGHT\tPOLICY\tAXIS")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s/%s\t%s\n",
				label(r), r.X, r.Y, r.Width, r.Height,
				r.Style.WidthPolicy, r.Style.HeightPolicy, r.Style.MainAxis)
		}
		return tw.Flush()
	}
	return fmt.Errorf("unknown format %q, want table or json", format)
}

// label indents a row by its depth and names it by id, text or position.
func label(r nodeReport) string {
	name := r.ID
	switch {
	case name != "":
	case r.Text != "":
		name = fmt.Sprintf("%q", r.Text)
	default:
		name = "-"
	}
	return strings.Repeat("  ", r.Depth) + name
}
