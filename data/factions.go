package data

// Faction is a playable army.
type Faction struct {
	ID        int
	Name      string
	ShortName string
	Team      Team
}

// All playable factions.
var (
	FactionGER = Faction{ID: 0, Name: "Germany", ShortName: "GER", Team: TeamAxis}
	FactionUS  = Faction{ID: 1, Name: "United States", ShortName: "US", Team: TeamAllies}
	FactionSOV = Faction{ID: 2, Name: "Soviet Union", ShortName: "SOV", Team: TeamAxis}
	FactionCW  = Faction{ID: 3, Name: "Allies", ShortName: "CW", Team: TeamAllies}
	FactionDAK = Faction{ID: 4, Name: "German Africa Corps", ShortName: "DAK", Team: TeamAxis}
	FactionB8A = Faction{ID: 5, Name: "British Eighth Army", ShortName: "B8A", Team: TeamAllies}
)

var factions = indexByID([]Faction{
	FactionGER, FactionUS, FactionSOV, FactionCW, FactionDAK, FactionB8A,
}, func(f Faction) int { return f.ID })

// FactionByID looks up a faction by its numeric id.
func FactionByID(id int) (Faction, bool) {
	f, ok := factions[id]
	return f, ok
}

// Factions returns all factions in id order.
func Factions() []Faction {
	return []Faction{FactionGER, FactionUS, FactionSOV, FactionCW, FactionDAK, FactionB8A}
}
