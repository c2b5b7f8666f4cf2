package cmd

import (
	"fmt"
	"strings"

	"github.com/cloudchase/ollama-tool/api"
	"github.com/spf13/cobra"
)

var generateSystem string

var generateCmd = &cobra.Command{
	Use:   "generate <model> <prompt>",
	Short: "Generate a single response through the Ollama API",
	Long: `Send one prompt to the local Ollama API and print the response.
Words after the model name are joined into the prompt.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateSystem, "system", "s", "", "System prompt (defaults to a built-in prompt)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	model := args[0]
	prompt := strings.Join(args[1:], " ")

	// An explicit --system "" sends an empty system prompt.
	system := api.DefaultSystemPrompt
	if cmd.Flags().Changed("system") {
		system = generateSystem
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generating response with model: %s\n", model)

	resp, err := newClient().Generate(cmd.Context(), model, prompt, system)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, resp.Response)
	return nil
}
