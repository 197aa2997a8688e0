package data

// GameModeScale is the player scale a game mode is played at.
type GameModeScale string

// Game mode scales.
const (
	ScaleLarge GameModeScale = "large"
	ScaleSmall GameModeScale = "small"
)

// GameMode is a way a layer can be played.
type GameMode struct {
	ID    string
	Scale GameModeScale
}

// IsLarge reports whether the mode is played at full scale.
func (g GameMode) IsLarge() bool {
	return g.Scale == ScaleLarge
}

// IsSmall reports whether the mode is played at reduced scale.
func (g GameMode) IsSmall() bool {
	return g.Scale == ScaleSmall
}

// All game modes.
var (
	GameModeWarfare   = GameMode{ID: "warfare", Scale: ScaleLarge}
	GameModeOffensive = GameMode{ID: "offensive", Scale: ScaleLarge}
	GameModeSkirmish  = GameMode{ID: "skirmish", Scale: ScaleSmall}
)

var gameModes = indexByID([]GameMode{
	GameModeWarfare, GameModeOffensive, GameModeSkirmish,
}, func(g GameMode) string { return g.ID })

// GameModeByID looks up a game mode by its id.
func GameModeByID(id string) (GameMode, bool) {
	g, ok := gameModes[id]
	return g, ok
}
