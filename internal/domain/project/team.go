package project

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role enum for team assignments
type Role string

const (
	RoleProjectManager Role = "projectManager"
	RoleTeamLead       Role = "teamLead"
	RoleDeveloper      Role = "developer"
	RoleDesigner       Role = "designer"
	RoleTester         Role = "tester"
)

var Roles = []Role{RoleProjectManager, RoleTeamLead, RoleDeveloper, RoleDesigner, RoleTester}

func (r Role) IsValid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// TeamMembers maps each role to an ordered list of plain names. Members
// have no identity beyond their name.
type TeamMembers map[Role][]string

// Add appends a name under role, ignoring blanks.
func (t TeamMembers) Add(role Role, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	t[role] = append(t[role], name)
}

// Size counts all assigned names.
func (t TeamMembers) Size() int {
	n := 0
	for _, names := range t {
		n += len(names)
	}
	return n
}

func (t *TeamMembers) UnmarshalJSON(data []byte) error {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	members := make(TeamMembers, len(raw))
	for key, names := range raw {
		role := Role(key)
		if !role.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownRole, key)
		}
		for _, name := range names {
			members.Add(role, name)
		}
	}
	*t = members
	return nil
}
