package window

// Rect is a window rectangle in pixels, right and bottom exclusive.
type Rect struct {
	Left   int32 `json:"left" yaml:"left"`
	Top    int32 `json:"top" yaml:"top"`
	Right  int32 `json:"right" yaml:"right"`
	Bottom int32 `json:"bottom" yaml:"bottom"`
}

func (r Rect) Width() int32  { return r.Right - r.Left }
func (r Rect) Height() int32 { return r.Bottom - r.Top }

type Point struct {
	X int32
	Y int32
}

// CenterRect returns the top-left corner that centres inner within outer.
// An inner rectangle larger than outer overhangs it equally on both sides.
func CenterRect(inner, outer Rect) Point {
	return Point{
		X: outer.Left + (outer.Width()-inner.Width())/2,
		Y: outer.Top + (outer.Height()-inner.Height())/2,
	}
}

// ApplyBits sets or clears bits in current.
func ApplyBits(current uint32, enable bool, bits uint32) uint32 {
	if enable {
		return current | bits
	}

	return current &^ bits
}
