package data

import "strings"

// TimeOfDay is the lighting condition of a layer.
type TimeOfDay string

// Times of day.
const (
	TimeOfDayDawn  TimeOfDay = "dawn"
	TimeOfDayDay   TimeOfDay = "day"
	TimeOfDayDusk  TimeOfDay = "dusk"
	TimeOfDayNight TimeOfDay = "night"
)

// Weather is the weather condition of a layer.
type Weather string

// Weather conditions.
const (
	WeatherClear    Weather = "clear"
	WeatherOvercast Weather = "overcast"
	WeatherRain     Weather = "rain"
	WeatherSnow     Weather = "snow"
)

// Layer is one playable variant of a map: a map, a game mode, and an
// environment, plus the attacking team for offensive modes.
type Layer struct {
	ID            string
	Map           *Map
	GameMode      GameMode
	TimeOfDay     TimeOfDay
	Weather       Weather
	AttackingTeam *Team
}

// String returns the layer's id.
func (l *Layer) String() string {
	return l.ID
}

// AttackingFaction returns the faction on the attacking side, or nil for
// modes without a fixed attacker.
func (l *Layer) AttackingFaction() *Faction {
	if l.AttackingTeam == nil {
		return nil
	}
	switch l.AttackingTeam.ID {
	case TeamAllies.ID:
		f := l.Map.Allies
		return &f
	case TeamAxis.ID:
		f := l.Map.Axis
		return &f
	}
	return nil
}

// PrettyName composes a human-readable name from the layer's map, mode, and
// environment.
func (l *Layer) PrettyName() string {
	var b strings.Builder
	b.WriteString(l.Map.PrettyName)
	if l.GameMode.ID == GameModeOffensive.ID {
		b.WriteString(" Off.")
		if f := l.AttackingFaction(); f != nil {
			b.WriteString(" " + f.ShortName)
		}
	} else {
		b.WriteString(" " + title(l.GameMode.ID))
	}

	var environment []string
	if l.TimeOfDay != TimeOfDayDay {
		environment = append(environment, title(string(l.TimeOfDay)))
	}
	if l.Weather != WeatherClear {
		environment = append(environment, title(string(l.Weather)))
	}
	if len(environment) > 0 {
		b.WriteString(" (" + strings.Join(environment, ", ") + ")")
	}
	return b.String()
}

// title upper-cases the first letter of an ASCII word.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// LayerByID looks up a layer by its id.
func LayerByID(id string) (*Layer, bool) {
	l, ok := layersByID[id]
	return l, ok
}

// Layers returns all layers.
func Layers() []*Layer {
	out := make([]*Layer, len(allLayers))
	copy(out, allLayers)
	return out
}

var layersByID = indexByID(allLayers, func(l *Layer) string { return l.ID })

// allLayers lists every playable layer, ids wire-verbatim.
var allLayers = []*Layer{
	{ID: "stmereeglise_warfare", Map: MapStMereEglise, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "stmereeglise_warfare_night", Map: MapStMereEglise, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "stmereeglise_offensive_us", Map: MapStMereEglise, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "stmereeglise_offensive_ger", Map: MapStMereEglise, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "SME_S_1944_Day_P_Skirmish", Map: MapStMereEglise, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "SME_S_1944_Morning_P_Skirmish", Map: MapStMereEglise, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDawn, Weather: WeatherClear},
	{ID: "SME_S_1944_Night_P_Skirmish", Map: MapStMereEglise, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "stmariedumont_warfare", Map: MapStMarieDuMont, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "stmariedumont_warfare_night", Map: MapStMarieDuMont, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "stmariedumont_off_us", Map: MapStMarieDuMont, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "stmariedumont_off_ger", Map: MapStMarieDuMont, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "utahbeach_warfare", Map: MapUtahBeach, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "utahbeach_warfare_night", Map: MapUtahBeach, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "utahbeach_offensive_us", Map: MapUtahBeach, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "utahbeach_offensive_ger", Map: MapUtahBeach, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "omahabeach_warfare", Map: MapOmahaBeach, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "omahabeach_warfare_night", Map: MapOmahaBeach, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDusk, Weather: WeatherClear},
	{ID: "omahabeach_offensive_us", Map: MapOmahaBeach, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "omahabeach_offensive_ger", Map: MapOmahaBeach, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "PHL_L_1944_Warfare", Map: MapPurpleHeartLane, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "PHL_L_1944_Warfare_Night", Map: MapPurpleHeartLane, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "PHL_L_1944_OffensiveUS", Map: MapPurpleHeartLane, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "PHL_L_1944_OffensiveGER", Map: MapPurpleHeartLane, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "PHL_S_1944_Rain_P_Skirmish", Map: MapPurpleHeartLane, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherRain},
	{ID: "PHL_S_1944_Morning_P_Skirmish", Map: MapPurpleHeartLane, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDawn, Weather: WeatherClear},
	{ID: "PHL_S_1944_Night_P_Skirmish", Map: MapPurpleHeartLane, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "carentan_warfare", Map: MapCarentan, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "carentan_warfare_night", Map: MapCarentan, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "carentan_offensive_us", Map: MapCarentan, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "carentan_offensive_ger", Map: MapCarentan, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "CAR_S_1944_Day_P_Skirmish", Map: MapCarentan, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "CAR_S_1944_Rain_P_Skirmish", Map: MapCarentan, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherRain},
	{ID: "CAR_S_1944_Dusk_P_Skirmish", Map: MapCarentan, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDusk, Weather: WeatherClear},
	{ID: "hurtgenforest_warfare_V2", Map: MapHurtgenForest, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "hurtgenforest_warfare_V2_night", Map: MapHurtgenForest, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "hurtgenforest_offensive_US", Map: MapHurtgenForest, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "hurtgenforest_offensive_ger", Map: MapHurtgenForest, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "hill400_warfare", Map: MapHill400, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "hill400_warfare_night", Map: MapHill400, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "hill400_offensive_US", Map: MapHill400, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "hill400_offensive_ger", Map: MapHill400, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "HIL_S_1944_Day_P_Skirmish", Map: MapHill400, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "HIL_S_1944_Dusk_P_Skirmish", Map: MapHill400, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDusk, Weather: WeatherClear},
	{ID: "HIL_S_1944_Night_P_Skirmish", Map: MapHill400, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "foy_warfare", Map: MapFoy, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "foy_warfare_night", Map: MapFoy, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "foy_offensive_us", Map: MapFoy, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "foy_offensive_ger", Map: MapFoy, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "FOY_S_1944_P_Skirmish", Map: MapFoy, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "FOY_S_1944_Night_P_Skirmish", Map: MapFoy, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "kursk_warfare", Map: MapKursk, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "kursk_warfare_night", Map: MapKursk, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "kursk_offensive_rus", Map: MapKursk, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "kursk_offensive_ger", Map: MapKursk, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "stalingrad_warfare", Map: MapStalingrad, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "stalingrad_warfare_night", Map: MapStalingrad, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "stalingrad_offensive_rus", Map: MapStalingrad, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "stalingrad_offensive_ger", Map: MapStalingrad, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "remagen_warfare", Map: MapRemagen, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "remagen_warfare_night", Map: MapRemagen, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "remagen_offensive_us", Map: MapRemagen, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "remagen_offensive_ger", Map: MapRemagen, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "kharkov_warfare", Map: MapKharkov, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "kharkov_warfare_night", Map: MapKharkov, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "kharkov_offensive_rus", Map: MapKharkov, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "kharkov_offensive_ger", Map: MapKharkov, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "KHA_S_1944_P_Skirmish", Map: MapKharkov, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "KHA_S_1944_Night_P_Skirmish", Map: MapKharkov, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "driel_warfare", Map: MapDriel, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "driel_warfare_night", Map: MapDriel, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "driel_offensive_us", Map: MapDriel, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "driel_offensive_ger", Map: MapDriel, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "DRL_S_1944_P_Skirmish", Map: MapDriel, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDawn, Weather: WeatherClear},
	{ID: "DRL_S_1944_Night_P_Skirmish", Map: MapDriel, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "DRL_S_1944_Day_P_Skirmish", Map: MapDriel, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "elalamein_warfare", Map: MapElAlamein, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "elalamein_warfare_night", Map: MapElAlamein, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDusk, Weather: WeatherClear},
	{ID: "elalamein_offensive_CW", Map: MapElAlamein, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "elalamein_offensive_ger", Map: MapElAlamein, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "ELA_S_1942_P_Skirmish", Map: MapElAlamein, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "ELA_S_1942_Night_P_Skirmish", Map: MapElAlamein, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDusk, Weather: WeatherClear},
	{ID: "SMDM_S_1944_Day_P_Skirmish", Map: MapStMarieDuMont, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "SMDM_S_1944_Night_P_Skirmish", Map: MapStMarieDuMont, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "SMDM_S_1944_Rain_P_Skirmish", Map: MapStMarieDuMont, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherRain},
	{ID: "mortain_warfare_day", Map: MapMortain, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "mortain_warfare_dusk", Map: MapMortain, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDusk, Weather: WeatherClear},
	{ID: "mortain_warfare_overcast", Map: MapMortain, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherOvercast},
	{ID: "mortain_warfare_night", Map: MapMortain, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "mortain_offensiveUS_day", Map: MapMortain, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "mortain_offensiveUS_overcast", Map: MapMortain, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherOvercast, AttackingTeam: &TeamAllies},
	{ID: "mortain_offensiveUS_dusk", Map: MapMortain, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDusk, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "mortain_offensiveUS_night", Map: MapMortain, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayNight, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "mortain_offensiveger_day", Map: MapMortain, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "mortain_offensiveger_overcast", Map: MapMortain, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherOvercast, AttackingTeam: &TeamAxis},
	{ID: "mortain_offensiveger_dusk", Map: MapMortain, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDusk, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "mortain_offensiveger_night", Map: MapMortain, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayNight, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "mortain_skirmish_day", Map: MapMortain, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "mortain_skirmish_overcast", Map: MapMortain, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherOvercast},
	{ID: "mortain_skirmish_dusk", Map: MapMortain, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDusk, Weather: WeatherClear},
	{ID: "mortain_skirmish_night", Map: MapMortain, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayNight, Weather: WeatherClear},
	{ID: "elsenbornridge_warfare_day", Map: MapElsenbornRidge, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherSnow},
	{ID: "elsenbornridge_warfare_morning", Map: MapElsenbornRidge, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDawn, Weather: WeatherSnow},
	{ID: "elsenbornridge_warfare_evening", Map: MapElsenbornRidge, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDusk, Weather: WeatherSnow},
	{ID: "elsenbornridge_warfare_night", Map: MapElsenbornRidge, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayNight, Weather: WeatherSnow},
	{ID: "elsenbornridge_offensiveUS_day", Map: MapElsenbornRidge, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherSnow, AttackingTeam: &TeamAllies},
	{ID: "elsenbornridge_offensiveUS_morning", Map: MapElsenbornRidge, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDawn, Weather: WeatherSnow, AttackingTeam: &TeamAllies},
	{ID: "elsenbornridge_offensiveUS_evening", Map: MapElsenbornRidge, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDusk, Weather: WeatherSnow, AttackingTeam: &TeamAllies},
	{ID: "elsenbornridge_offensiveUS_night", Map: MapElsenbornRidge, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayNight, Weather: WeatherSnow, AttackingTeam: &TeamAllies},
	{ID: "elsenbornridge_offensiveger_day", Map: MapElsenbornRidge, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherSnow, AttackingTeam: &TeamAxis},
	{ID: "elsenbornridge_offensiveger_morning", Map: MapElsenbornRidge, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDawn, Weather: WeatherSnow, AttackingTeam: &TeamAxis},
	{ID: "elsenbornridge_offensiveger_evening", Map: MapElsenbornRidge, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDusk, Weather: WeatherSnow, AttackingTeam: &TeamAxis},
	{ID: "elsenbornridge_offensiveger_night", Map: MapElsenbornRidge, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayNight, Weather: WeatherSnow, AttackingTeam: &TeamAxis},
	{ID: "elsenbornridge_skirmish_day", Map: MapElsenbornRidge, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherSnow},
	{ID: "elsenbornridge_skirmish_morning", Map: MapElsenbornRidge, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDawn, Weather: WeatherSnow},
	{ID: "elsenbornridge_skirmish_evening", Map: MapElsenbornRidge, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDusk, Weather: WeatherSnow},
	{ID: "elsenbornridge_skirmish_night", Map: MapElsenbornRidge, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayNight, Weather: WeatherSnow},
	{ID: "tobruk_warfare_day", Map: MapTobruk, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "tobruk_warfare_dusk", Map: MapTobruk, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDusk, Weather: WeatherClear},
	{ID: "tobruk_warfare_morning", Map: MapTobruk, GameMode: GameModeWarfare, TimeOfDay: TimeOfDayDawn, Weather: WeatherClear},
	{ID: "tobruk_offensivebritish_day", Map: MapTobruk, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "tobruk_offensiveger_day", Map: MapTobruk, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDay, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "tobruk_offensivebritish_dusk", Map: MapTobruk, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDusk, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "tobruk_offensiveger_dusk", Map: MapTobruk, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDusk, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "tobruk_offensivebritish_morning", Map: MapTobruk, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDawn, Weather: WeatherClear, AttackingTeam: &TeamAllies},
	{ID: "tobruk_offensiveger_morning", Map: MapTobruk, GameMode: GameModeOffensive, TimeOfDay: TimeOfDayDawn, Weather: WeatherClear, AttackingTeam: &TeamAxis},
	{ID: "tobruk_skirmish_day", Map: MapTobruk, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDay, Weather: WeatherClear},
	{ID: "tobruk_skirmish_dusk", Map: MapTobruk, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDusk, Weather: WeatherClear},
	{ID: "tobruk_skirmish_morning", Map: MapTobruk, GameMode: GameModeSkirmish, TimeOfDay: TimeOfDayDawn, Weather: WeatherClear},
}
