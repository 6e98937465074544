// Package schema maps arbitrary bank CSV header names to canonical column
// roles using case-insensitive substring heuristics.
package schema

import (
	"fmt"
	"strings"
)

// Role is a canonical column role in an uploaded CSV.
type Role string

const (
	RoleDate      Role = "Date"
	RoleDetails   Role = "Details"
	RoleAmount    Role = "Amount"
	RoleDirection Role = "Debit/Credit"
)

var roleKeywords = map[Role][]string{
	RoleDate:      {"date"},
	RoleDetails:   {"detail", "description", "narration"},
	RoleAmount:    {"amount", "amt", "value"},
	RoleDirection: {"debit", "credit", "type"},
}

// Error reports a required column that could not be resolved.
type Error struct {
	Role Role
}

func (e *Error) Error() string {
	return fmt.Sprintf("missing required %s column", e.Role)
}

// Mapping holds the header index resolved for each role, -1 when absent.
// Details and Amount are always resolved; Date and Direction are optional.
type Mapping struct {
	Date      int
	Details   int
	Amount    int
	Direction int
}

// Detect resolves each role against the header. For every role the first
// column (left to right) whose name contains one of the role's keywords
// wins. A column may serve more than one role; roles are resolved
// independently. Returns an Error if Details or Amount cannot be resolved.
func Detect(header []string) (Mapping, error) {
	m := Mapping{
		Date:      findCol(header, roleKeywords[RoleDate]),
		Details:   findCol(header, roleKeywords[RoleDetails]),
		Amount:    findCol(header, roleKeywords[RoleAmount]),
		Direction: findCol(header, roleKeywords[RoleDirection]),
	}

	if m.Details == -1 {
		return Mapping{}, &Error{Role: RoleDetails}
	}
	if m.Amount == -1 {
		return Mapping{}, &Error{Role: RoleAmount}
	}
	return m, nil
}

func findCol(header []string, keywords []string) int {
	for i, name := range header {
		n := strings.ToLower(strings.TrimSpace(name))
		for _, kw := range keywords {
			if strings.Contains(n, kw) {
				return i
			}
		}
	}
	return -1
}
