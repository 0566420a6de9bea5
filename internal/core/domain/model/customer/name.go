package customer

import (
	"errors"
	"fmt"
	"strings"

	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/pkg/guard"
)

var (
	ErrFirstNameIsRequired  = errs.NewValueIsRequiredError("firstName")
	ErrLastNameIsRequired   = errs.NewValueIsRequiredError("lastName")
	ErrNameIsNotConstructed = errors.New("Name must be created via NewName constructor")
)

// Name is the (first, last) pair the desk uses to look a customer up.
// Surrounding whitespace is trimmed; case is preserved.
type Name struct { //nolint:recvcheck //using for validation
	first string
	last  string
	guard guard.ConstructorGuard
}

// NewName trims both parts and requires them to be non-empty.
func NewName(first, last string) (Name, error) {
	name := Name{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(name.setFirst(first), name.setLast(last)); err != nil {
		return Name{}, err
	}

	return name, nil
}

func (n Name) Validate() error {
	return n.guard.Validate(ErrNameIsNotConstructed)
}

func (n Name) First() string {
	return n.first
}

func (n Name) Last() string {
	return n.last
}

func (n Name) String() string {
	return fmt.Sprintf("%s %s", n.first, n.last)
}

func (n *Name) setFirst(first string) error {
	first = strings.TrimSpace(first)
	if first == "" {
		return ErrFirstNameIsRequired
	}
	n.first = first
	return nil
}

func (n *Name) setLast(last string) error {
	last = strings.TrimSpace(last)
	if last == "" {
		return ErrLastNameIsRequired
	}
	n.last = last
	return nil
}
