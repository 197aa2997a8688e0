package data

// RoleType groups roles by the kind of squad they belong to.
type RoleType string

// Role types.
const (
	RoleTypeInfantry  RoleType = "Infantry"
	RoleTypeArmor     RoleType = "Armor"
	RoleTypeRecon     RoleType = "Recon"
	RoleTypeCommander RoleType = "Commander"
)

// Role is a player role within a squad.
type Role struct {
	ID         int
	Name       string
	PrettyName string
	Type       RoleType
	// IsSquadLeader reports whether the role leads its squad. This also
	// includes the Commander.
	IsSquadLeader bool
}

// All player roles.
var (
	RoleRifleman          = Role{ID: 0, Name: "Rifleman", PrettyName: "Rifleman", Type: RoleTypeInfantry}
	RoleAssault           = Role{ID: 1, Name: "Assault", PrettyName: "Assault", Type: RoleTypeInfantry}
	RoleAutomaticRifleman = Role{ID: 2, Name: "AutomaticRifleman", PrettyName: "Automatic Rifleman", Type: RoleTypeInfantry}
	RoleMedic             = Role{ID: 3, Name: "Medic", PrettyName: "Medic", Type: RoleTypeInfantry}
	RoleSpotter           = Role{ID: 4, Name: "Spotter", PrettyName: "Spotter", Type: RoleTypeRecon, IsSquadLeader: true}
	RoleSupport           = Role{ID: 5, Name: "Support", PrettyName: "Support", Type: RoleTypeInfantry}
	RoleMachineGunner     = Role{ID: 6, Name: "HeavyMachineGunner", PrettyName: "Machine Gunner", Type: RoleTypeInfantry}
	RoleAntiTank          = Role{ID: 7, Name: "AntiTank", PrettyName: "Anti-Tank", Type: RoleTypeInfantry}
	RoleEngineer          = Role{ID: 8, Name: "Engineer", PrettyName: "Engineer", Type: RoleTypeInfantry}
	RoleOfficer           = Role{ID: 9, Name: "Officer", PrettyName: "Officer", Type: RoleTypeInfantry, IsSquadLeader: true}
	RoleSniper            = Role{ID: 10, Name: "Sniper", PrettyName: "Sniper", Type: RoleTypeRecon}
	RoleCrewman           = Role{ID: 11, Name: "Crewman", PrettyName: "Crewman", Type: RoleTypeArmor}
	RoleTankCommander     = Role{ID: 12, Name: "TankCommander", PrettyName: "Tank Commander", Type: RoleTypeArmor, IsSquadLeader: true}
	RoleCommander         = Role{ID: 13, Name: "ArmyCommander", PrettyName: "Army Commander", Type: RoleTypeCommander, IsSquadLeader: true}
)

var allRoles = []Role{
	RoleRifleman, RoleAssault, RoleAutomaticRifleman, RoleMedic, RoleSpotter,
	RoleSupport, RoleMachineGunner, RoleAntiTank, RoleEngineer, RoleOfficer,
	RoleSniper, RoleCrewman, RoleTankCommander, RoleCommander,
}

var roles = indexByID(allRoles, func(r Role) int { return r.ID })

// RoleByID looks up a role by its numeric id.
func RoleByID(id int) (Role, bool) {
	r, ok := roles[id]
	return r, ok
}

// Roles returns all roles in id order.
func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}
