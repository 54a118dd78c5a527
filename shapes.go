package graphik

// Rect describes an axis-aligned filled rectangle. The origin (X0, Y0) is
// its top-left corner. When Center is set, the origin is recomputed from the
// canvas dimensions before filling so the rectangle is centered on both
// axes; see Canvas.FillRect.
type Rect struct {
	X0, Y0        int
	Width, Height int
	Color         Color
	Center        bool
}

// Circle describes a filled circle centered on (X0, Y0). When Center is
// set, the center is moved to the canvas midpoint; the radius plays no part
// in that adjustment.
type Circle struct {
	X0, Y0 int
	Radius int
	Color  Color
	Center bool
}

// Triangle describes a filled triangle. Vertices may be given in any order.
type Triangle struct {
	X1, Y1 int
	X2, Y2 int
	X3, Y3 int
	Color  Color
}

// Line describes a one pixel wide line segment from (X0, Y0) to (X1, Y1),
// both endpoints included. When Center is set, Vertical pins both x
// coordinates to the canvas's vertical centerline; otherwise Horizontal
// pins both y coordinates to the horizontal centerline. Vertical takes
// precedence when both are set.
type Line struct {
	X0, Y0 int
	X1, Y1 int
	Color  Color

	Center     bool
	Vertical   bool
	Horizontal bool
}
