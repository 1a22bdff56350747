package recolor

import "fmt"

// Category is the semantic role a color resource plays in a theme.
type Category int

const (
	PrimaryBackground Category = iota
	SecondaryBackground
	Accent
	AccentSecondary
	AccentPressed
)

// Categories lists every Category in declaration order.
var Categories = []Category{
	PrimaryBackground,
	SecondaryBackground,
	Accent,
	AccentSecondary,
	AccentPressed,
}

func (c Category) String() string {
	switch c {
	case PrimaryBackground:
		return "primaryBackground"
	case SecondaryBackground:
		return "secondaryBackground"
	case Accent:
		return "accent"
	case AccentSecondary:
		return "accentSecondary"
	case AccentPressed:
		return "accentPressed"
	}

	return fmt.Sprintf("Category(%d)", int(c))
}
