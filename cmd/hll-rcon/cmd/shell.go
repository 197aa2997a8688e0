package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hlladmin/rcon/protocol"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open an interactive RCON shell",
	Long: `Open an interactive shell against the RCON server.

Each line is a raw command, optionally followed by a JSON body:

  > ServerInformation {"Name":"session","Value":""}
  > DisplayableCommands

Type "exit" or press Ctrl-D to leave.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()

	fmt.Printf("Connecting to %s:%d...\n", cfg.Host, cfg.Port)
	if err := client.WaitUntilConnected(cmd.Context()); err != nil {
		return fmt.Errorf("failed to connect to %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	fmt.Println("Connected. Type a command, or \"exit\" to leave.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		name, rest, _ := strings.Cut(line, " ")
		var body any = ""
		if rest = strings.TrimSpace(rest); rest != "" {
			body = parseBody(rest)
		}

		out, err := client.Execute(cmd.Context(), name, 2, body)
		if err != nil {
			var cmdErr *protocol.CommandError
			if errors.As(err, &cmdErr) {
				fmt.Printf("error: %v\n", cmdErr)
				continue
			}
			if errors.Is(err, protocol.ErrTimeout) {
				fmt.Printf("error: %v\n", err)
				continue
			}
			return err
		}
		fmt.Println(formatContentBody(out))
	}
}
