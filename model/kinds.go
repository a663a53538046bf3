package model

import "fmt"

// SubpageKind tells a physical page apart from the halves of a split page
type SubpageKind int

const (
	SubpageNone SubpageKind = iota
	SubpageLeft
	SubpageRight
)

func (k SubpageKind) String() string {
	switch k {
	case SubpageLeft:
		return "left"
	case SubpageRight:
		return "right"
	default:
		return "none"
	}
}

// Corner names one of the four corners of a text box or page
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// Corners lists the corners in the order used by corner searches
var Corners = [4]Corner{TopLeft, TopRight, BottomRight, BottomLeft}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "topleft"
	case TopRight:
		return "topright"
	case BottomRight:
		return "bottomright"
	case BottomLeft:
		return "bottomleft"
	default:
		return fmt.Sprintf("Corner(%d)", int(c))
	}
}

// Attribute names a numeric field of a Text
type Attribute int

const (
	AttrTop Attribute = iota
	AttrLeft
	AttrBottom
	AttrRight
	AttrWidth
	AttrHeight
)

var attributeNames = map[Attribute]string{
	AttrTop:    "top",
	AttrLeft:   "left",
	AttrBottom: "bottom",
	AttrRight:  "right",
	AttrWidth:  "width",
	AttrHeight: "height",
}

func (a Attribute) String() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// ParseAttribute returns the Attribute with the given name
func ParseAttribute(name string) (Attribute, error) {
	for a, n := range attributeNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown text attribute %q", name)
}
