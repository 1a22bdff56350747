package recolor

import (
	"errors"
	"fmt"
)

var ErrDuplicateName = errors.New("duplicate resource name")

// Group is a literal list of resource names sharing a Category.
type Group struct {
	Category Category
	Names    []string
}

// Assignment maps resource names onto exactly one Category.
// It is immutable once constructed.
type Assignment struct {
	categories map[string]Category
}

// NewAssignment builds an Assignment from groups. A name
// appearing more than once, whether in the same group or
// in two different ones, is an error.
func NewAssignment(groups ...Group) (*Assignment, error) {
	a := &Assignment{categories: map[string]Category{}}

	for _, group := range groups {
		for _, name := range group.Names {
			if existing, ok := a.categories[name]; ok {
				return nil, fmt.Errorf("%w %s: assigned to both %s and %s", ErrDuplicateName, name, existing, group.Category)
			}

			a.categories[name] = group.Category
		}
	}

	return a, nil
}

// MustNewAssignment is like NewAssignment but panics on error.
// It is meant for package-level tables.
func MustNewAssignment(groups ...Group) *Assignment {
	a, err := NewAssignment(groups...)
	if err != nil {
		panic(err)
	}

	return a
}

// Lookup returns the Category of the resource with the exact given name.
func (a *Assignment) Lookup(name string) (Category, bool) {
	category, ok := a.categories[name]
	return category, ok
}

func (a *Assignment) Len() int {
	return len(a.categories)
}
