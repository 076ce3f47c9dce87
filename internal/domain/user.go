package domain

import (
	"fmt"
	"strconv"
)

// UserID is the chat platform's numeric user identifier
type UserID uint64

func (u UserID) String() string {
	return strconv.FormatUint(uint64(u), 10)
}

// ParseUserID parses a decimal user ID
func ParseUserID(s string) (UserID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: %w", s, err)
	}
	if id == 0 {
		return 0, fmt.Errorf("invalid user id %q", s)
	}
	return UserID(id), nil
}

// Counterparty is the receiving side of a ledger log entry: either a user or the system
type Counterparty struct {
	user   UserID
	system bool
}

// SystemCounterparty is the counterparty of recycling
var SystemCounterparty = Counterparty{system: true}

// UserCounterparty returns a counterparty for the given user
func UserCounterparty(id UserID) Counterparty {
	return Counterparty{user: id}
}

// IsSystem reports whether the counterparty is the system
func (c Counterparty) IsSystem() bool {
	return c.system
}

// User returns the counterparty user and false for the system counterparty
func (c Counterparty) User() (UserID, bool) {
	if c.system {
		return 0, false
	}
	return c.user, true
}

func (c Counterparty) String() string {
	if c.system {
		return "system"
	}
	return c.user.String()
}
