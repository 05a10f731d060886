package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// Role is the closed set of user roles.
type Role int

const (
	RoleMember Role = iota // Browses, searches and saves events (default)
	RoleHost               // Creates and manages own events
	RoleAdmin              // Reserved; grants no extra permissions
)

// String returns the canonical role name.
func (r Role) String() string {
	switch r {
	case RoleMember:
		return "Member"
	case RoleHost:
		return "Host"
	case RoleAdmin:
		return "Admin"
	default:
		return "Role(" + strconv.Itoa(int(r)) + ")"
	}
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleHost, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole converts a canonical role name into a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "Member":
		return RoleMember, nil
	case "Host":
		return RoleHost, nil
	case "Admin":
		return RoleAdmin, nil
	default:
		return RoleMember, fmt.Errorf("unknown role %q", s)
	}
}

// MarshalJSON encodes the role by name.
func (r Role) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", int(r))
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts either the role name ("Host") or its ordinal (1).
func (r *Role) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		role, err := ParseRole(s)
		if err != nil {
			return err
		}
		*r = role
		return nil
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid role %s", data)
	}
	role := Role(n)
	if !role.Valid() {
		return fmt.Errorf("invalid role %d", n)
	}
	*r = role
	return nil
}

// Value stores the role by name.
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", int(r))
	}
	return r.String(), nil
}

// Scan reads a role stored by name.
func (r *Role) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Role", src)
	}
	role, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = role
	return nil
}
