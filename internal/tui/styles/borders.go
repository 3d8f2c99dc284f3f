package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dallionking/stepline/internal/stepper"
)

// RoundedBorder uses rounded corners for circle indicators and panels.
var RoundedBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "╰",
	BottomRight: "╯",
}

// DoubleBorder is used for the current step when its border is wider than
// one cell.
var DoubleBorder = lipgloss.Border{
	Top:         "═",
	Bottom:      "═",
	Left:        "║",
	Right:       "║",
	TopLeft:     "╔",
	TopRight:    "╗",
	BottomLeft:  "╚",
	BottomRight: "╝",
}

// ThinBorder is used for square indicators.
var ThinBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      "─",
	Left:        "│",
	Right:       "│",
	TopLeft:     "┌",
	TopRight:    "┐",
	BottomLeft:  "└",
	BottomRight: "┘",
}

// TabBorder draws an open-bottomed tab.
var TabBorder = lipgloss.Border{
	Top:         "─",
	Bottom:      " ",
	Left:        "│",
	Right:       "│",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "┘",
	BottomRight: "└",
}

// ShapeBorder picks the border drawn for an indicator border style.
func ShapeBorder(b stepper.BorderStyle) lipgloss.Border {
	if b.Width > 1 {
		return DoubleBorder
	}
	switch b.Shape {
	case stepper.ShapeSquare, stepper.ShapeDiamond:
		return ThinBorder
	case stepper.ShapeTab:
		return TabBorder
	default:
		return RoundedBorder
	}
}
