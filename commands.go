package rcon

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hlladmin/rcon/protocol"
)

// Commands is the command surface of the RCON server. Every method is a thin
// wrapper over Execute with the wire-level command name and body keys. It is
// embedded by all client flavours.
type Commands struct {
	exec Executor
}

// NewCommands builds a command surface on top of an arbitrary executor.
// Client implementations outside this package embed the result.
func NewCommands(exec Executor) Commands {
	return Commands{exec: exec}
}

// decodeResponse unmarshals a response content body into a typed view. The
// server answering with a shape the view cannot hold is a message error.
func decodeResponse[T any](command, body string) (*T, error) {
	out := new(T)
	if err := json.Unmarshal([]byte(body), out); err != nil {
		return nil, &protocol.MessageError{
			Reason: fmt.Sprintf("%s response content body is not valid JSON: %v", command, err),
		}
	}
	return out, nil
}

// AddAdmin adds a player to an admin group.
func (c Commands) AddAdmin(ctx context.Context, playerID, adminGroup, comment string) error {
	_, err := c.exec.Execute(ctx, "AddAdmin", 2, map[string]any{
		"PlayerId":   playerID,
		"AdminGroup": adminGroup,
		"Comment":    comment,
	})
	return err
}

// RemoveAdmin removes a player from their admin group.
func (c Commands) RemoveAdmin(ctx context.Context, playerID string) error {
	_, err := c.exec.Execute(ctx, "RemoveAdmin", 2, map[string]any{
		"PlayerId": playerID,
	})
	return err
}

// AdminLog fetches admin log entries from the last secondsSpan seconds,
// optionally filtered. secondsSpan must be non-negative.
func (c Commands) AdminLog(ctx context.Context, secondsSpan int, filter string) (*AdminLogResponse, error) {
	if secondsSpan < 0 {
		return nil, fmt.Errorf("seconds span must be a non-negative integer, got %d", secondsSpan)
	}
	body, err := c.exec.Execute(ctx, "AdminLog", 2, map[string]any{
		"LogBackTrackTime": secondsSpan,
		"Filters":          filter,
	})
	if err != nil {
		return nil, err
	}
	return decodeResponse[AdminLogResponse]("AdminLog", body)
}

// ChangeMap immediately switches the server to the given map.
func (c Commands) ChangeMap(ctx context.Context, mapName string) error {
	_, err := c.exec.Execute(ctx, "ChangeMap", 2, map[string]any{
		"MapName": mapName,
	})
	return err
}

// ChangeSectorLayout sets the active strongpoint of each of the five
// sectors.
func (c Commands) ChangeSectorLayout(ctx context.Context, sector1, sector2, sector3, sector4, sector5 string) error {
	_, err := c.exec.Execute(ctx, "ChangeSectorLayout", 2, map[string]any{
		"Sector_1": sector1,
		"Sector_2": sector2,
		"Sector_3": sector3,
		"Sector_4": sector4,
		"Sector_5": sector5,
	})
	return err
}

// AddMapToRotation inserts a map into the rotation at the given index.
func (c Commands) AddMapToRotation(ctx context.Context, mapName string, index int) error {
	_, err := c.exec.Execute(ctx, "AddMapToRotation", 2, map[string]any{
		"MapName": mapName,
		"Index":   index,
	})
	return err
}

// RemoveMapFromRotation removes the map at the given index from the
// rotation.
func (c Commands) RemoveMapFromRotation(ctx context.Context, index int) error {
	_, err := c.exec.Execute(ctx, "RemoveMapFromRotation", 2, map[string]any{
		"Index": index,
	})
	return err
}

// AddMapToSequence inserts a map into the sequence at the given index.
func (c Commands) AddMapToSequence(ctx context.Context, mapName string, index int) error {
	_, err := c.exec.Execute(ctx, "AddMapToSequence", 2, map[string]any{
		"MapName": mapName,
		"Index":   index,
	})
	return err
}

// RemoveMapFromSequence removes the map at the given index from the
// sequence.
func (c Commands) RemoveMapFromSequence(ctx context.Context, index int) error {
	_, err := c.exec.Execute(ctx, "RemoveMapFromSequence", 2, map[string]any{
		"Index": index,
	})
	return err
}

// SetMapShuffleEnabled toggles shuffling of the map sequence.
func (c Commands) SetMapShuffleEnabled(ctx context.Context, enabled bool) error {
	_, err := c.exec.Execute(ctx, "ShuffleMapSequence", 2, map[string]any{
		"Enable": enabled,
	})
	return err
}

// MoveMapFromSequence moves a map within the sequence.
func (c Commands) MoveMapFromSequence(ctx context.Context, oldIndex, newIndex int) error {
	_, err := c.exec.Execute(ctx, "MoveMapFromSequence", 2, map[string]any{
		"CurrentIndex": oldIndex,
		"NewIndex":     newIndex,
	})
	return err
}

// GetAllCommands lists the commands the server exposes.
func (c Commands) GetAllCommands(ctx context.Context) (*CommandsResponse, error) {
	body, err := c.exec.Execute(ctx, "DisplayableCommands", 2, "")
	if err != nil {
		return nil, err
	}
	return decodeResponse[CommandsResponse]("DisplayableCommands", body)
}

// SetTeamSwitchCooldown sets the cooldown between team switches, in minutes.
func (c Commands) SetTeamSwitchCooldown(ctx context.Context, minutes int) error {
	_, err := c.exec.Execute(ctx, "SetTeamSwitchCooldown", 2, map[string]any{
		"TeamSwitchTimer": minutes,
	})
	return err
}

// SetMaxQueuedPlayers sets the maximum size of the join queue.
func (c Commands) SetMaxQueuedPlayers(ctx context.Context, num int) error {
	_, err := c.exec.Execute(ctx, "SetMaxQueuedPlayers", 2, map[string]any{
		"MaxQueuedPlayers": num,
	})
	return err
}

// SetIdleKickDuration sets after how many idle minutes players are kicked.
func (c Commands) SetIdleKickDuration(ctx context.Context, minutes int) error {
	_, err := c.exec.Execute(ctx, "SetIdleKickDuration", 2, map[string]any{
		"IdleTimeoutMinutes": minutes,
	})
	return err
}

// MessageAllPlayers sends a message to every player on the server.
func (c Commands) MessageAllPlayers(ctx context.Context, message string) error {
	_, err := c.exec.Execute(ctx, "SendServerMessage", 2, map[string]any{
		"Message": message,
	})
	return err
}

// GetPlayer fetches detailed information about a single player.
func (c Commands) GetPlayer(ctx context.Context, playerID string) (*PlayerResponse, error) {
	body, err := c.exec.Execute(ctx, "ServerInformation", 2, map[string]any{
		"Name":  "player",
		"Value": playerID,
	})
	if err != nil {
		return nil, err
	}
	return decodeResponse[PlayerResponse]("ServerInformation", body)
}

// GetPlayers fetches information about all players on the server.
func (c Commands) GetPlayers(ctx context.Context) (*PlayersResponse, error) {
	body, err := c.exec.Execute(ctx, "ServerInformation", 2, map[string]any{
		"Name":  "players",
		"Value": "",
	})
	if err != nil {
		return nil, err
	}
	return decodeResponse[PlayersResponse]("ServerInformation", body)
}

// GetMapRotation fetches the current map rotation.
func (c Commands) GetMapRotation(ctx context.Context) (*MapRotationResponse, error) {
	body, err := c.exec.Execute(ctx, "ServerInformation", 2, map[string]any{
		"Name":  "maprotation",
		"Value": "",
	})
	if err != nil {
		return nil, err
	}
	return decodeResponse[MapRotationResponse]("ServerInformation", body)
}

// GetMapSequence fetches the current map sequence.
func (c Commands) GetMapSequence(ctx context.Context) (*MapRotationResponse, error) {
	body, err := c.exec.Execute(ctx, "ServerInformation", 2, map[string]any{
		"Name":  "mapsequence",
		"Value": "",
	})
	if err != nil {
		return nil, err
	}
	return decodeResponse[MapRotationResponse]("ServerInformation", body)
}

// GetServerSession fetches the state of the running session.
func (c Commands) GetServerSession(ctx context.Context) (*SessionResponse, error) {
	body, err := c.exec.Execute(ctx, "ServerInformation", 2, map[string]any{
		"Name":  "session",
		"Value": "",
	})
	if err != nil {
		return nil, err
	}
	return decodeResponse[SessionResponse]("ServerInformation", body)
}

// GetServerConfig fetches the static server configuration.
func (c Commands) GetServerConfig(ctx context.Context) (*ServerConfigResponse, error) {
	body, err := c.exec.Execute(ctx, "ServerInformation", 2, map[string]any{
		"Name":  "serverconfig",
		"Value": "",
	})
	if err != nil {
		return nil, err
	}
	return decodeResponse[ServerConfigResponse]("ServerInformation", body)
}

// Broadcast shows a message in the top-left broadcast area.
func (c Commands) Broadcast(ctx context.Context, message string) error {
	_, err := c.exec.Execute(ctx, "ServerBroadcast", 2, map[string]any{
		"Message": message,
	})
	return err
}

// SetHighPingThreshold sets the ping above which players are kicked, in
// milliseconds.
func (c Commands) SetHighPingThreshold(ctx context.Context, ms int) error {
	_, err := c.exec.Execute(ctx, "SetHighPingThreshold", 2, map[string]any{
		"HighPingThresholdMs": ms,
	})
	return err
}

// GetCommandDetails describes a command and its dialogue parameters.
func (c Commands) GetCommandDetails(ctx context.Context, command string) (*CommandDetailsResponse, error) {
	body, err := c.exec.Execute(ctx, "ClientReferenceData", 2, command)
	if err != nil {
		return nil, err
	}
	return decodeResponse[CommandDetailsResponse]("ClientReferenceData", body)
}

// MessagePlayer sends a message to a single player.
func (c Commands) MessagePlayer(ctx context.Context, playerID, message string) error {
	_, err := c.exec.Execute(ctx, "SendServerMessage", 2, map[string]any{
		"Message":  message,
		"PlayerId": playerID,
	})
	return err
}

// KillPlayer kills a player in-game, showing them the given message.
func (c Commands) KillPlayer(ctx context.Context, playerID, message string) error {
	_, err := c.exec.Execute(ctx, "PunishPlayer", 2, map[string]any{
		"PlayerId": playerID,
		"Reason":   message,
	})
	return err
}

// KickPlayer removes a player from the server, showing them the given
// message.
func (c Commands) KickPlayer(ctx context.Context, playerID, message string) error {
	_, err := c.exec.Execute(ctx, "Kick", 2, map[string]any{
		"PlayerId": playerID,
		"Reason":   message,
	})
	return err
}

// BanPlayer bans a player. A positive durationHours issues a temporary ban;
// zero issues a permanent one.
func (c Commands) BanPlayer(ctx context.Context, playerID, reason, adminName string, durationHours int) error {
	if durationHours > 0 {
		_, err := c.exec.Execute(ctx, "TemporaryBan", 2, map[string]any{
			"PlayerId":  playerID,
			"Duration":  durationHours,
			"Reason":    reason,
			"AdminName": adminName,
		})
		return err
	}
	_, err := c.exec.Execute(ctx, "PermanentBan", 2, map[string]any{
		"PlayerId":  playerID,
		"Reason":    reason,
		"AdminName": adminName,
	})
	return err
}

// RemoveTempBan lifts a temporary ban.
func (c Commands) RemoveTempBan(ctx context.Context, playerID string) error {
	_, err := c.exec.Execute(ctx, "RemoveTempBan", 2, map[string]any{
		"PlayerId": playerID,
	})
	return err
}

// RemovePermanentBan lifts a permanent ban.
func (c Commands) RemovePermanentBan(ctx context.Context, playerID string) error {
	_, err := c.exec.Execute(ctx, "RemovePermanentBan", 2, map[string]any{
		"PlayerId": playerID,
	})
	return err
}

// RemoveBan lifts both the temporary and the permanent ban of a player,
// whichever exists. Both removals always run; the first failure is surfaced.
func (c Commands) RemoveBan(ctx context.Context, playerID string) error {
	var g errgroup.Group
	g.Go(func() error {
		return c.RemoveTempBan(ctx, playerID)
	})
	g.Go(func() error {
		return c.RemovePermanentBan(ctx, playerID)
	})
	return g.Wait()
}

// SetAutoBalanceEnabled toggles automatic team balancing.
func (c Commands) SetAutoBalanceEnabled(ctx context.Context, enabled bool) error {
	_, err := c.exec.Execute(ctx, "SetAutoBalance", 2, map[string]any{
		"EnableAutoBalance": enabled,
	})
	return err
}

// SetAutoBalanceThreshold sets the player-count difference that triggers
// auto-balance.
func (c Commands) SetAutoBalanceThreshold(ctx context.Context, playerThreshold int) error {
	_, err := c.exec.Execute(ctx, "AutoBalanceThreshold", 2, map[string]any{
		"AutoBalanceThreshold": playerThreshold,
	})
	return err
}

// SetVoteKickEnabled toggles vote kicks.
func (c Commands) SetVoteKickEnabled(ctx context.Context, enabled bool) error {
	_, err := c.exec.Execute(ctx, "EnableVoteToKick", 2, map[string]any{
		"Enabled": enabled,
	})
	return err
}

// ResetVoteKickThresholds restores the default vote kick thresholds.
func (c Commands) ResetVoteKickThresholds(ctx context.Context) error {
	_, err := c.exec.Execute(ctx, "ResetVoteToKickThreshold", 2, "")
	return err
}

// VoteKickThreshold pairs a player count with the number of votes required
// at that count.
type VoteKickThreshold struct {
	PlayerCount int
	Votes       int
}

// SetVoteKickThresholds sets the vote kick thresholds.
func (c Commands) SetVoteKickThresholds(ctx context.Context, thresholds []VoteKickThreshold) error {
	pairs := make([]string, 0, len(thresholds))
	for _, t := range thresholds {
		pairs = append(pairs, fmt.Sprintf("%d,%d", t.PlayerCount, t.Votes))
	}
	_, err := c.exec.Execute(ctx, "SetVoteToKickThreshold", 2, map[string]any{
		"ThresholdValue": strings.Join(pairs, ","),
	})
	return err
}
