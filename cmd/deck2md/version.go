package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of deck2md",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "deck2md %s\n", version)
		},
	}
}
