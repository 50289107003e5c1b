package stack

import (
	"strings"
	"unicode"

	ldoterrors "ldot.dev/ldot/internal/errors"
)

// Validate checks the structural rules a usable stack document must satisfy and
// returns the document unchanged. The first violation found is returned:
// stack name, then projects in declaration order, then scripts.
// Stage names and prerequisites are not checked.
func Validate(doc *Document) (*Document, error) {
	if err := checkName("Stack", doc.StackName); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(doc.Projects))
	for _, p := range doc.Projects {
		if err := checkUniqueName("Project", p.Name, seen); err != nil {
			return nil, err
		}
	}

	seen = make(map[string]struct{}, len(doc.Scripts))
	for _, s := range doc.Scripts {
		if err := checkUniqueName("Script", s.Name, seen); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func checkName(field, name string) error {
	if name == "" {
		return ldoterrors.NewNameError(field, name, ldoterrors.ErrEmptyName)
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return ldoterrors.NewNameError(field, name, ldoterrors.ErrNameHasSpace)
	}
	return nil
}

func checkUniqueName(field, name string, seen map[string]struct{}) error {
	if err := checkName(field, name); err != nil {
		return err
	}
	if _, ok := seen[name]; ok {
		return ldoterrors.NewNameError(field, name, ldoterrors.ErrDuplicateName)
	}
	seen[name] = struct{}{}
	return nil
}

// CheckStackName applies the stack name rules on their own
func CheckStackName(name string) error {
	return checkName("Stack", name)
}

// ValidName reports whether name would pass the stack name rules
func ValidName(name string) bool {
	return CheckStackName(name) == nil
}
