package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/linkedin-cv/internal/template"
)

var templatesCommand = &cobra.Command{
	Use:   "templates",
	Short: "List the available resume templates",
	RunE:  runTemplatesCmd,
}

func init() {
	rootCmd.AddCommand(templatesCommand)
}

func runTemplatesCmd(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDEFAULT COLOR")
	for _, tmpl := range template.List() {
		name := tmpl.Name
		if tmpl.ID == template.DefaultID {
			name += " (default)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", tmpl.ID, name, tmpl.DefaultPrimaryColor)
	}
	return w.Flush()
}
