package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Role determines what a user may do in the procurement workflow.
// It is fixed at account creation and never changes.
type Role int16

const (
	RoleInitiator         Role = 1
	RolePurchasingManager Role = 2
	RoleAccountingManager Role = 3
)

var roleTokens = map[Role]string{
	RoleInitiator:         "INITIATOR",
	RolePurchasingManager: "PURCHASING_MANAGER",
	RoleAccountingManager: "ACCOUNTING_MANAGER",
}

// RoleFromCode converts a persisted integer code into a Role.
func RoleFromCode(code int16) (Role, error) {
	role := Role(code)
	if _, ok := roleTokens[role]; !ok {
		return 0, fmt.Errorf("invalid role code %d", code)
	}
	return role, nil
}

// ParseRole converts a wire token into a Role.
func ParseRole(token string) (Role, error) {
	for role, t := range roleTokens {
		if t == token {
			return role, nil
		}
	}
	return 0, fmt.Errorf("invalid role %q", token)
}

// Code returns the integer code stored in the database.
func (r Role) Code() int16 {
	return int16(r)
}

func (r Role) String() string {
	if token, ok := roleTokens[r]; ok {
		return token
	}
	return fmt.Sprintf("Role(%d)", int16(r))
}

// MarshalJSON emits the wire token.
func (r Role) MarshalJSON() ([]byte, error) {
	token, ok := roleTokens[r]
	if !ok {
		return nil, fmt.Errorf("invalid role code %d", int16(r))
	}
	return json.Marshal(token)
}

// UnmarshalJSON accepts the wire token.
func (r *Role) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}
	role, err := ParseRole(token)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// User is an account in the credential store. Login and PasswordHash are
// used by authentication only and never appear in ticket views.
type User struct {
	ID           uuid.UUID
	Name         string
	Login        string
	PasswordHash string
	Role         Role
}
