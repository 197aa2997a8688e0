package rcon

// Typed views over the JSON content bodies returned by the game server. The
// JSON tags reproduce the server's exact key casing, quirks included.

// PlayerPlatform identifies the platform a player is connected from.
type PlayerPlatform string

// Platforms a player may connect from.
const (
	PlatformSteam PlayerPlatform = "steam"
	PlatformEpic  PlayerPlatform = "epic"
	PlatformXbox  PlayerPlatform = "xbl"
)

// SupportedPlatform identifies a platform the server accepts connections
// from. Note the casing differs from PlayerPlatform.
type SupportedPlatform string

// Platforms a server may support.
const (
	SupportedPlatformSteam  SupportedPlatform = "Steam"
	SupportedPlatformPCXbox SupportedPlatform = "WinGDK"
	SupportedPlatformEpic   SupportedPlatform = "eos"
)

// AdminLogEntry is one entry of the admin log.
type AdminLogEntry struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// AdminLogResponse is the payload of the AdminLog command.
type AdminLogResponse struct {
	Entries []AdminLogEntry `json:"entries"`
}

// CommandEntry describes one command the server exposes.
type CommandEntry struct {
	ID                string `json:"iD"`
	FriendlyName      string `json:"friendlyName"`
	IsClientSupported bool   `json:"isClientSupported"`
}

// CommandsResponse is the payload of the DisplayableCommands command.
type CommandsResponse struct {
	Entries []CommandEntry `json:"entries"`
}

// ScoreData is a player's score breakdown.
type ScoreData struct {
	Combat  int `json:"cOMBAT"`
	Offense int `json:"offense"`
	Defense int `json:"defense"`
	Support int `json:"support"`
}

// WorldPosition is a player's position in centimeters.
type WorldPosition struct {
	// X is the east-west horizontal axis. Between -100000 and 100000.
	X float64 `json:"x"`
	// Y is the north-south horizontal axis. Between -100000 and 100000.
	Y float64 `json:"y"`
	// Z is the vertical axis.
	Z float64 `json:"z"`
}

// PlayerResponse is the payload of the ServerInformation "player" view.
type PlayerResponse struct {
	// Name is the player's name.
	Name string `json:"name"`
	// ClanTag is the player's clan tag. Empty string if none.
	ClanTag string `json:"clanTag"`
	// ID is the player's ID.
	ID string `json:"iD"`
	// Platform is the player's platform.
	Platform PlayerPlatform `json:"platform"`
	// EosID is the player's Epic Online Services ID.
	EosID string `json:"eosId"`
	// Level is the player's level.
	Level int `json:"level"`
	// Team is the numeric team the player is assigned to.
	Team int `json:"team"`
	// Role is the numeric role the player fulfils; see data.RoleByID.
	Role int `json:"role"`
	// Platoon is the name of the player's squad. Empty string if not in a squad.
	Platoon string `json:"platoon"`
	// Loadout is the player's current loadout. Might not be accurate if not
	// spawned in.
	Loadout string `json:"loadout"`
	// Kills is the player's kills.
	Kills int `json:"kills"`
	// Deaths is the player's deaths.
	Deaths int `json:"deaths"`
	// ScoreData is the player's score.
	ScoreData ScoreData `json:"scoreData"`
	// WorldPosition is the player's position in centimeters.
	WorldPosition WorldPosition `json:"worldPosition"`
}

// PlayersResponse is the payload of the ServerInformation "players" view.
type PlayersResponse struct {
	Players []PlayerResponse `json:"players"`
}

// MapRotationEntry is one entry of the map rotation or sequence.
type MapRotationEntry struct {
	Name      string `json:"name"`
	GameMode  string `json:"gameMode"`
	TimeOfDay string `json:"timeOfDay"`
	ID        string `json:"iD"`
	Position  int    `json:"position"`
}

// MapRotationResponse is the payload of the ServerInformation "maprotation"
// and "mapsequence" views.
type MapRotationResponse struct {
	Maps []MapRotationEntry `json:"mAPS"`
}

// SessionResponse is the payload of the ServerInformation "session" view.
type SessionResponse struct {
	ServerName       string `json:"serverName"`
	MapName          string `json:"mapName"`
	GameMode         string `json:"gameMode"`
	PlayerCount      int    `json:"playerCount"`
	MaxPlayerCount   int    `json:"maxPlayerCount"`
	QueueCount       int    `json:"queueCount"`
	MaxQueueCount    int    `json:"maxQueueCount"`
	VIPQueueCount    int    `json:"vipQueueCount"`
	MaxVIPQueueCount int    `json:"maxVipQueueCount"`
}

// ServerConfigResponse is the payload of the ServerInformation
// "serverconfig" view.
type ServerConfigResponse struct {
	ServerName         string              `json:"serverName"`
	BuildNumber        string              `json:"buildNumber"`
	BuildRevision      string              `json:"buildRevision"`
	SupportedPlatforms []SupportedPlatform `json:"supportedPlatforms"`
	PasswordProtected  bool                `json:"passwordProtected"`
}

// CommandParameter describes one dialogue parameter of a command. For
// parameters of type "Combo", DisplayMember and ValueMember carry
// comma-separated lists; for "Text" and "Number" they are empty.
type CommandParameter struct {
	// Type is "Combo", "Text" or "Number".
	Type string `json:"type"`
	// Name is the user-friendly name of the parameter.
	Name string `json:"name"`
	// ID is the name of the parameter.
	ID string `json:"iD"`
	// DisplayMember is a comma-separated list of user-friendly values.
	DisplayMember string `json:"displayMember"`
	// ValueMember is a comma-separated list of values.
	ValueMember string `json:"valueMember"`
}

// CommandDetailsResponse is the payload of the ClientReferenceData command.
type CommandDetailsResponse struct {
	// Name is the name of the command.
	Name string `json:"name"`
	// Text is the user-friendly name of the command.
	Text string `json:"text"`
	// Description describes the command.
	Description string `json:"description"`
	// DialogueParameters lists the parameters of the command.
	DialogueParameters []CommandParameter `json:"dialogueParameters"`
}

// BannedWordsResponse is the payload of the banned words view.
type BannedWordsResponse struct {
	BannedWords []string `json:"bannedWords"`
}
