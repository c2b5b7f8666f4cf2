package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List models available in the Ollama library",
	Long:  "Fetch the public Ollama model library and list the models that can be pulled.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Fetching available models...")

	models, err := newCatalog().Fetch(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Available models:")
	for _, m := range models {
		fmt.Fprintf(out, "- %s\n", m)
	}
	return nil
}
