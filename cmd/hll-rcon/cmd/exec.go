package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var execVersion uint32

var execCmd = &cobra.Command{
	Use:   "exec <command> [body]",
	Short: "Execute a raw RCON command",
	Long: `Execute a raw RCON command and print the response content body.

The optional body argument is sent as the request content body. A body that
parses as a JSON object is sent structured; anything else is sent as a plain
string.

Examples:
  hll-rcon exec ServerInformation '{"Name":"session","Value":""}'
  hll-rcon exec DisplayableCommands`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runExec,
}

func init() {
	execCmd.Flags().Uint32Var(&execVersion, "version", 2, "protocol version of the command")
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()

	var body any = ""
	if len(args) == 2 {
		body = parseBody(args[1])
	}

	out, err := client.Execute(cmd.Context(), args[0], execVersion, body)
	if err != nil {
		return err
	}
	fmt.Println(formatContentBody(out))
	return nil
}

// parseBody sends JSON objects structured and everything else verbatim.
func parseBody(arg string) any {
	var decoded map[string]any
	if err := json.Unmarshal([]byte(arg), &decoded); err == nil {
		return decoded
	}
	return arg
}

// formatContentBody pretty-prints JSON content bodies and passes everything
// else through.
func formatContentBody(body string) string {
	var decoded any
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return body
	}
	pretty, err := json.MarshalIndent(decoded, "", "  ")
	if err != nil {
		return body
	}
	return string(pretty)
}
