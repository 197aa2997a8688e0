package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hlladmin/rcon"
	"github.com/hlladmin/rcon/data"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the server session and configuration",
	Long:  `Fetch and print the current session and the static server configuration.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}
	defer client.Disconnect()

	var (
		session *rcon.SessionResponse
		config  *rcon.ServerConfigResponse
	)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		session, err = client.GetServerSession(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		config, err = client.GetServerConfig(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	mapName := session.MapName
	if layer, ok := data.LayerByID(session.MapName); ok {
		mapName = layer.PrettyName()
	}

	fmt.Printf("%s (build %s.%s)\n", config.ServerName, config.BuildNumber, config.BuildRevision)
	fmt.Printf("  Map:     %s [%s]\n", mapName, session.GameMode)
	fmt.Printf("  Players: %d/%d (queue %d/%d, VIP queue %d/%d)\n",
		session.PlayerCount, session.MaxPlayerCount,
		session.QueueCount, session.MaxQueueCount,
		session.VIPQueueCount, session.MaxVIPQueueCount)
	fmt.Printf("  Password protected: %v\n", config.PasswordProtected)
	return nil
}
