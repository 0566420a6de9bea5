package storage

import (
	"fmt"
	"strings"

	"frontdesk/internal/pkg/errs"
)

// Size is a box size. The numeric values are persisted; do not reorder.
type Size int

const (
	Unknown Size = iota
	Small
	Medium
	Large
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		Unknown: "Unknown",
		Small:   "Small",
		Medium:  "Medium",
		Large:   "Large",
	}
}

// AllSizes returns the valid sizes in ascending order.
func AllSizes() []Size {
	return []Size{Small, Medium, Large}
}

// ParseSize maps a size name to a Size. Matching ignores case and surrounding
// spaces, so "small" and " Small " both yield Small.
func ParseSize(name string) (Size, error) {
	trimmed := strings.TrimSpace(name)
	for _, s := range AllSizes() {
		if strings.EqualFold(trimmed, s.String()) {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%q is not a box size", name))
}

func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return fmt.Sprintf("Size(%d)", int(s))
}

func (s Size) Validate() error {
	if s < Small || s > Large {
		return errs.NewValueIsInvalidErrorWithCause("size", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}
