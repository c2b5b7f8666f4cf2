package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cloudchase/ollama-tool/api"
	"github.com/spf13/cobra"
)

var runSystem string

var runCmd = &cobra.Command{
	Use:   "run <model>",
	Short: "Chat with a model interactively",
	Long: `Start an interactive session with a model.

Without --system this hands the terminal to 'ollama run <model>'. With
--system, a line-oriented prompt is served here instead and every line is
sent through the Ollama API with the given system prompt.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runSystem, "system", "s", "", "System prompt for the session")
}

func runRun(cmd *cobra.Command, args []string) error {
	model := args[0]
	fmt.Fprintf(cmd.OutOrStdout(), "Running model: %s\n", model)

	if !cmd.Flags().Changed("system") {
		return newEngine(cmd).Run(cmd.Context(), model)
	}
	return repl(cmd, newClient(), model, runSystem)
}

func repl(cmd *cobra.Command, client *api.Client, model, system string) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	fmt.Fprint(out, ">>> ")

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprint(out, ">>> ")
			continue
		}

		switch strings.ToLower(line) {
		case "/exit", "/quit", "/bye":
			fmt.Fprintln(out, "Goodbye.")
			return nil
		case "/help":
			printReplHelp(out)
			fmt.Fprint(out, ">>> ")
			continue
		}

		resp, err := client.Generate(cmd.Context(), model, line, system)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Generation error: %v\n", err)
		} else {
			fmt.Fprintln(out, resp.Response)
		}
		if cmd.Context().Err() != nil {
			return cmd.Context().Err()
		}
		fmt.Fprint(out, ">>> ")
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	fmt.Fprintln(out)
	return nil
}

func printReplHelp(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  /exit, /quit, /bye  - Exit the session")
	fmt.Fprintln(w, "  /help               - Show this help")
	fmt.Fprintln(w, "  <text>              - Generate a response")
}
