package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/agiangrant/togglepass/theme"
)

// PrintTheme writes every key of d with its class string and resolved value.
func PrintTheme(w io.Writer, d *theme.Defaults) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "KEY\tCLASSES\tFONT\tCOLOR\n")
	for _, key := range d.Keys() {
		classes, _ := d.Get(key)

		font := "-"
		if f, ok := d.Font(key); ok {
			font = f.String()
		}
		color := "-"
		if c, ok := d.Color(key); ok {
			color = c.String()
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", key, classes, font, color)
	}

	return tw.Flush()
}
