package user

import (
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

func ParseRole(raw string) Role {
	if strings.EqualFold(strings.TrimSpace(raw), string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleStandard
}

// Principal is the authenticated identity handed to the core by the auth collaborator.
type Principal struct {
	UserID   string
	Username string
	Email    string
	Role     Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Account holds a user's budget; roster holdings live in the fantasy package.
type Account struct {
	ID        string
	Username  string
	Email     string
	Role      Role
	Budget    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a Account) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("account id is required")
	}
	if strings.TrimSpace(a.Username) == "" {
		return fmt.Errorf("account username is required")
	}
	if a.Budget < 0 {
		return fmt.Errorf("account budget must be >= 0")
	}
	return nil
}
