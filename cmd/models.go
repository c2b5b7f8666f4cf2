package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var installedCmd = &cobra.Command{
	Use:   "installed",
	Short: "List locally installed models",
	Args:  cobra.NoArgs,
	RunE:  runInstalled,
}

var pullCmd = &cobra.Command{
	Use:   "pull <model>",
	Short: "Pull a model from the Ollama library",
	Args:  cobra.ExactArgs(1),
	RunE:  runPull,
}

var removeCmd = &cobra.Command{
	Use:     "remove <model>",
	Aliases: []string{"rm"},
	Short:   "Remove a locally installed model",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func runInstalled(cmd *cobra.Command, _ []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), "Listing installed models...")
	return newEngine(cmd).List(cmd.Context())
}

func runPull(cmd *cobra.Command, args []string) error {
	model := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Pulling model: %s\n", model)
	if err := newEngine(cmd).Pull(cmd.Context(), model); err != nil {
		return err
	}
	fmt.Fprintf(out, "Model %s pulled successfully.\n", model)
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	model := args[0]
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Removing model: %s\n", model)
	if err := newEngine(cmd).Remove(cmd.Context(), model); err != nil {
		return err
	}
	fmt.Fprintf(out, "Model %s removed.\n", model)
	return nil
}
