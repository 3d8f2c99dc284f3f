package stepper

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a hex color string such as "#4fc1ff".
type Color string

// Length is a distance measured in terminal cells.
type Length int

// Shape is the outline drawn around a step indicator.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeDiamond
	ShapeTab
)

var shapeNames = map[Shape]string{
	ShapeCircle:  "circle",
	ShapeSquare:  "square",
	ShapeDiamond: "diamond",
	ShapeTab:     "tab",
}

func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape parses a shape name; the empty string yields ShapeCircle.
func ParseShape(s string) (Shape, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ShapeCircle, nil
	}
	for k, v := range shapeNames {
		if v == s {
			return k, nil
		}
	}
	return ShapeCircle, fmt.Errorf("unknown shape %q", s)
}

// StrokeCap controls how the ends of a line segment are drawn.
type StrokeCap int

const (
	CapButt StrokeCap = iota
	CapRound
	CapSquare
)

// ParseStrokeCap parses "butt", "round" or "square"; empty yields CapButt.
func ParseStrokeCap(s string) (StrokeCap, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "butt":
		return CapButt, nil
	case "round":
		return CapRound, nil
	case "square":
		return CapSquare, nil
	}
	return CapButt, fmt.Errorf("unknown stroke cap %q", s)
}

func (c StrokeCap) String() string {
	switch c {
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return "butt"
	}
}

// LineKind tags the variant held by a LineType.
type LineKind int

const (
	LineSolid LineKind = iota
	LineDashed
	LineDotted
)

// LineType is a line pattern. Dashed lines carry an on and gap length,
// dotted lines carry only the gap between single-cell dots.
type LineType struct {
	Kind LineKind
	On   Length
	Gap  Length
}

// Solid returns a continuous line.
func Solid() LineType { return LineType{Kind: LineSolid} }

// Dashed returns a dashed line with on-cell dashes separated by gap cells.
func Dashed(on, gap Length) LineType {
	if on < 1 {
		on = 1
	}
	if gap < 1 {
		gap = 1
	}
	return LineType{Kind: LineDashed, On: on, Gap: gap}
}

// Dotted returns single-cell dots separated by gap cells.
func Dotted(gap Length) LineType {
	if gap < 1 {
		gap = 1
	}
	return LineType{Kind: LineDotted, On: 1, Gap: gap}
}

// Pattern expands the line type into an on/off mask covering n cells.
func (l LineType) Pattern(n int) []bool {
	if n <= 0 {
		return nil
	}
	mask := make([]bool, n)
	if l.Kind == LineSolid {
		for i := range mask {
			mask[i] = true
		}
		return mask
	}
	on, gap := int(l.On), int(l.Gap)
	if on < 1 {
		on = 1
	}
	if gap < 1 {
		gap = 1
	}
	period := on + gap
	for i := range mask {
		mask[i] = i%period < on
	}
	return mask
}

// String renders the type in the form accepted by ParseLineType.
func (l LineType) String() string {
	switch l.Kind {
	case LineDashed:
		return fmt.Sprintf("dashed:%d:%d", l.On, l.Gap)
	case LineDotted:
		return fmt.Sprintf("dotted:%d", l.Gap)
	default:
		return "solid"
	}
}

// ParseLineType parses "solid", "dashed[:on[:gap]]" or "dotted[:gap]".
func ParseLineType(s string) (LineType, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), ":")
	nums := make([]Length, 0, len(parts)-1)
	for _, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Solid(), fmt.Errorf("line type %q: bad parameter %q", s, p)
		}
		nums = append(nums, Length(n))
	}

	switch parts[0] {
	case "", "solid":
		return Solid(), nil
	case "dashed":
		on, gap := Length(2), Length(1)
		if len(nums) > 0 {
			on = nums[0]
		}
		if len(nums) > 1 {
			gap = nums[1]
		}
		return Dashed(on, gap), nil
	case "dotted":
		gap := Length(1)
		if len(nums) > 0 {
			gap = nums[0]
		}
		return Dotted(gap), nil
	}
	return Solid(), fmt.Errorf("unknown line type %q", s)
}

// TextStyle styles the title text drawn inside or beside an indicator.
type TextStyle struct {
	Color Color
	Bold  bool
}

// IconStyle styles an icon glyph. Size should stay within about 0.75x the
// step size; this is not enforced.
type IconStyle struct {
	Tint Color
	Size Length
}

// BorderStyle describes the optional border around an indicator.
type BorderStyle struct {
	Width Length
	Color Color
	Shape Shape
}

// StepVisualStyle is the look of a step indicator in one state.
type StepVisualStyle struct {
	Color  Color
	Size   Length
	Shape  Shape
	Text   TextStyle
	Icon   IconStyle
	Border BorderStyle
}

// LineVisualStyle is the look of a connector line in one state.
type LineVisualStyle struct {
	TrackColor    Color
	ProgressColor Color
	Length        Length
	Thickness     Length
	Padding       Length
	TrackCap      StrokeCap
	ProgressCap   StrokeCap
	TrackType     LineType
	ProgressType  LineType
}

// StyleSet holds one value per StepState. All three are always populated.
type StyleSet[T any] struct {
	OnTodo    T
	OnCurrent T
	OnDone    T
}

// NewStyleSet returns a set using v for every state.
func NewStyleSet[T any](v T) StyleSet[T] {
	return StyleSet[T]{OnTodo: v, OnCurrent: v, OnDone: v}
}

// Resolve returns the value for state. Unknown states resolve like Todo.
func (s StyleSet[T]) Resolve(state StepState) T {
	switch state {
	case Current:
		return s.OnCurrent
	case Done:
		return s.OnDone
	default:
		return s.OnTodo
	}
}

// With returns a copy of the set with the value for state replaced.
func (s StyleSet[T]) With(state StepState, v T) StyleSet[T] {
	switch state {
	case Current:
		s.OnCurrent = v
	case Done:
		s.OnDone = v
	default:
		s.OnTodo = v
	}
	return s
}

// Update returns a copy of the set with fn applied to every state's value.
func (s StyleSet[T]) Update(fn func(StepState, T) T) StyleSet[T] {
	return StyleSet[T]{
		OnTodo:    fn(Todo, s.OnTodo),
		OnCurrent: fn(Current, s.OnCurrent),
		OnDone:    fn(Done, s.OnDone),
	}
}

// ResolveStyle is the free-function form of StyleSet.Resolve.
func ResolveStyle[T any](set StyleSet[T], state StepState) T {
	return set.Resolve(state)
}

// ResolveColor returns the indicator color for state.
func ResolveColor(set StyleSet[StepVisualStyle], state StepState) Color {
	return set.Resolve(state).Color
}

// ResolveSize returns the indicator size for state.
func ResolveSize(set StyleSet[StepVisualStyle], state StepState) Length {
	return set.Resolve(state).Size
}

// ResolveBorder returns the indicator border for state.
func ResolveBorder(set StyleSet[StepVisualStyle], state StepState) BorderStyle {
	return set.Resolve(state).Border
}

// ResolveLineStyle returns the connector style for state.
func ResolveLineStyle(set StyleSet[LineVisualStyle], state StepState) LineVisualStyle {
	return set.Resolve(state)
}

// MaxSize is the largest indicator size across all states. Layout reserves
// this much room so a step does not shift while its size animates.
func MaxSize(set StyleSet[StepVisualStyle]) Length {
	return max(set.OnTodo.Size, set.OnCurrent.Size, set.OnDone.Size)
}

// MaxThickness is the thickest connector across all states.
func MaxThickness(set StyleSet[LineVisualStyle]) Length {
	return max(set.OnTodo.Thickness, set.OnCurrent.Thickness, set.OnDone.Thickness)
}

// Default palette, kept in sync with the TUI theme.
const (
	colorTodo    Color = "#64748b"
	colorCurrent Color = "#4fc1ff"
	colorDone    Color = "#22c55e"
	colorTrack   Color = "#2d3748"
	colorText    Color = "#0a0e14"
)

// DefaultStepStyles returns the stock indicator styles: small muted todo
// steps, a wider cyan current step and green done steps.
func DefaultStepStyles() StyleSet[StepVisualStyle] {
	base := func(c Color, size Length) StepVisualStyle {
		return StepVisualStyle{
			Color: c,
			Size:  size,
			Shape: ShapeCircle,
			Text:  TextStyle{Color: colorText},
			Icon:  IconStyle{Tint: c, Size: 1},
		}
	}
	set := StyleSet[StepVisualStyle]{
		OnTodo:    base(colorTodo, 1),
		OnCurrent: base(colorCurrent, 3),
		OnDone:    base(colorDone, 1),
	}
	set.OnCurrent.Text.Bold = true
	return set
}

// DefaultLineStyles returns the stock connector styles.
func DefaultLineStyles() StyleSet[LineVisualStyle] {
	base := func(progress Color) LineVisualStyle {
		return LineVisualStyle{
			TrackColor:    colorTrack,
			ProgressColor: progress,
			Length:        6,
			Thickness:     1,
			Padding:       1,
			TrackCap:      CapButt,
			ProgressCap:   CapButt,
			TrackType:     Solid(),
			ProgressType:  Solid(),
		}
	}
	return StyleSet[LineVisualStyle]{
		OnTodo:    base(colorTodo),
		OnCurrent: base(colorCurrent),
		OnDone:    base(colorDone),
	}
}
