package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTemplatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List loaded templates per subdirectory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kit, err := a.newKit(cmd)
			if err != nil {
				return err
			}
			tpls := kit.Templates()
			w := cmd.OutOrStdout()
			for _, subdir := range tpls.Subdirs() {
				fmt.Fprintf(w, "%s:\n", subdir)
				for _, key := range tpls.Keys(subdir) {
					fmt.Fprintf(w, "  %s\n", key)
				}
			}
			return nil
		},
	}
}
