package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"modelscore/internal/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest>",
	Short: "Parse a manifest and report its groups without evaluating",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	groups, err := manifest.ParseFile(args[0])
	if err != nil {
		return err
	}

	models := 0
	for _, g := range groups {
		if g.Model != nil {
			models++
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d groups, %d with a model\n", args[0], len(groups), models)
	for i, g := range groups {
		switch {
		case g.Model != nil:
			id := g.Model.Identity
			fmt.Fprintf(cmd.OutOrStdout(), "  %2d. %s/%s@%s\n", i+1, id.Namespace, id.Repo, id.Revision)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "  %2d. (no model, skipped during scoring)\n", i+1)
		}
	}
	return nil
}
