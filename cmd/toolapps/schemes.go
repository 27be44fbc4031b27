package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"toolapps/convert"
	"toolapps/decode"
	"toolapps/encode"
)

func newSchemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List converters, decoders and encoders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, group := range []struct {
				title string
				names []string
			}{
				{"converters", convert.Names()},
				{"decoders", decode.Names()},
				{"encoders", encode.Names()},
			} {
				if _, err := fmt.Fprintf(out, "%s: %s\n", group.title, strings.Join(group.names, " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
