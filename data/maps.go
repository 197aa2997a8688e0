package data

// Orientation is the axis along which a map's frontline moves.
type Orientation string

// Map orientations.
const (
	OrientationHorizontal Orientation = "horizontal"
	OrientationVertical   Orientation = "vertical"
)

// Map is a playable map.
type Map struct {
	ID          string
	Name        string
	Tag         string
	PrettyName  string
	ShortName   string
	Allies      Faction
	Axis        Faction
	Orientation Orientation
	// Mirrored reports whether the side each faction starts at is mirrored.
	// By default, Allies spawn left/top, Axis spawn right/bottom.
	Mirrored bool
}

// String returns the map's id.
func (m *Map) String() string {
	return m.ID
}

// All playable maps.
var (
	MapStMereEglise = &Map{
		ID:          "stmereeglise",
		Name:        "SAINTE-MÈRE-ÉGLISE",
		Tag:         "SME",
		PrettyName:  "St. Mere Eglise",
		ShortName:   "SME",
		Allies:      FactionUS,
		Axis:        FactionGER,
		Orientation: OrientationHorizontal,
		Mirrored:    true,
	}
	MapStMarieDuMont = &Map{
		ID:          "stmariedumont",
		Name:        "ST MARIE DU MONT",
		Tag:         "SMDM",
		PrettyName:  "St. Marie Du Mont",
		ShortName:   "SMDM",
		Allies:      FactionUS,
		Axis:        FactionGER,
		Orientation: OrientationVertical,
	}
	MapUtahBeach = &Map{
		ID:          "utahbeach",
		Name:        "UTAH BEACH",
		Tag:         "UTA",
		PrettyName:  "Utah Beach",
		ShortName:   "Utah",
		Allies:      FactionUS,
		Axis:        FactionGER,
		Orientation: OrientationHorizontal,
		Mirrored:    true,
	}
	MapOmahaBeach = &Map{
		ID:          "omahabeach",
		Name:        "OMAHA BEACH",
		Tag:         "OMA",
		PrettyName:  "Omaha Beach",
		ShortName:   "Omaha",
		Allies:      FactionUS,
		Axis:        FactionGER,
		Orientation: OrientationHorizontal,
		Mirrored:    true,
	}
	MapPurpleHeartLane = &Map{
		ID:          "purpleheartlane",
		Name:        "PURPLE HEART LANE",
		Tag:         "PHL",
		PrettyName:  "Purple Heart Lane",
		ShortName:   "PHL",
		Allies:      FactionUS,
		Axis:        FactionGER,
		Orientation: OrientationVertical,
	}
	MapCarentan = &Map{
		ID:          "carentan",
		Name:        "CARENTAN",
		Tag:         "CAR",
		PrettyName:  "Carentan",
		ShortName:   "Carentan",
		Allies:      FactionUS,
		Axis:        FactionGER,
		Orientation: OrientationHorizontal,
	}
	MapHurtgenForest = &Map{
		ID:          "hurtgenforest",
		Name:        "HÜRTGEN FOREST",
		Tag:         "HUR",
		PrettyName:  "Hurtgen Forest",
		ShortName:   "Hurtgen",
		Allies:      FactionUS,
		Axis:        FactionGER,
		Orientation: OrientationHorizontal,
	}
	MapHill400 = &Map{
		ID:          "hill400",
		Name:        "HILL 400",
		Tag:         "HIL",
		PrettyName:  "Hill 400",
		ShortName:   "Hill 400",
		Allies:      FactionUS,
		Axis:        FactionGER,
		Orientation: OrientationHorizontal,
	}
	MapFoy = &Map{
		ID:          "foy",
		Name:        "FOY",
		Tag:         "FOY",
		PrettyName:  "Foy",
		ShortName:   "Foy",
		Allies:      FactionUS,
		Axis:        FactionGER,
		Orientation: OrientationVertical,
		Mirrored:    true,
	}
	MapKursk = &Map{
		ID:          "kursk",
		Name:        "KURSK",
		Tag:         "KUR",
		PrettyName:  "Kursk",
		ShortName:   "Kursk",
		Allies:      FactionSOV,
		Axis:        FactionGER,
		Orientation: OrientationVertical,
	}
	MapStalingrad = &Map{
		ID:          "stalingrad",
		Name:        "STALINGRAD",
		Tag:         "STA",
		PrettyName:  "Stalingrad",
		ShortName:   "Stalingrad",
		Allies:      FactionSOV,
		Axis:        FactionGER,
		Orientation: OrientationHorizontal,
		Mirrored:    true,
	}
	MapRemagen = &Map{
		ID:          "remagen",
		Name:        "REMAGEN",
		Tag:         "REM",
		PrettyName:  "Remagen",
		ShortName:   "Remagen",
		Allies:      FactionUS,
		Axis:        FactionGER,
		Orientation: OrientationVertical,
		Mirrored:    true,
	}
	MapKharkov = &Map{
		ID:          "kharkov",
		Name:        "Kharkov",
		Tag:         "KHA",
		PrettyName:  "Kharkov",
		ShortName:   "Kharkov",
		Allies:      FactionSOV,
		Axis:        FactionGER,
		Orientation: OrientationVertical,
	}
	MapDriel = &Map{
		ID:          "driel",
		Name:        "DRIEL",
		Tag:         "DRL",
		PrettyName:  "Driel",
		ShortName:   "Driel",
		Allies:      FactionCW,
		Axis:        FactionGER,
		Orientation: OrientationVertical,
		Mirrored:    true,
	}
	MapElAlamein = &Map{
		ID:          "elalamein",
		Name:        "EL ALAMEIN",
		Tag:         "ELA",
		PrettyName:  "El Alamein",
		ShortName:   "Alamein",
		Allies:      FactionB8A,
		Axis:        FactionDAK,
		Orientation: OrientationHorizontal,
		Mirrored:    true,
	}
	MapMortain = &Map{
		ID:          "mortain",
		Name:        "MORTAIN",
		Tag:         "MOR",
		PrettyName:  "Mortain",
		ShortName:   "Mortain",
		Allies:      FactionUS,
		Axis:        FactionGER,
		Orientation: OrientationHorizontal,
	}
	MapElsenbornRidge = &Map{
		ID:          "elsenbornridge",
		Name:        "ELSENBORN RIDGE",
		Tag:         "EBR",
		PrettyName:  "Elsenborn Ridge",
		ShortName:   "Elsenborn",
		Allies:      FactionUS,
		Axis:        FactionGER,
		Orientation: OrientationVertical,
	}
	MapTobruk = &Map{
		ID:          "tobruk",
		Name:        "TOBRUK",
		Tag:         "TBK",
		PrettyName:  "Tobruk",
		ShortName:   "Tobruk",
		Allies:      FactionB8A,
		Axis:        FactionDAK,
		Orientation: OrientationHorizontal,
		Mirrored:    true,
	}
)

var allMaps = []*Map{
	MapStMereEglise, MapStMarieDuMont, MapUtahBeach, MapOmahaBeach,
	MapPurpleHeartLane, MapCarentan, MapHurtgenForest, MapHill400, MapFoy,
	MapKursk, MapStalingrad, MapRemagen, MapKharkov, MapDriel, MapElAlamein,
	MapMortain, MapElsenbornRidge, MapTobruk,
}

var mapsByID = indexByID(allMaps, func(m *Map) string { return m.ID })

// MapByID looks up a map by its id.
func MapByID(id string) (*Map, bool) {
	m, ok := mapsByID[id]
	return m, ok
}

// Maps returns all maps.
func Maps() []*Map {
	out := make([]*Map, len(allMaps))
	copy(out, allMaps)
	return out
}
