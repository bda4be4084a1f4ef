package components

import (
	"image/color"
	"strings"
)

// Face is one of the six fixed positions on a die
type Face uint8

const (
	FaceTop Face = iota
	FaceBottom
	FaceNorth
	FaceSouth
	FaceEast
	FaceWest
	faceCount
)

// AllFaces lists the six positions in declaration order
var AllFaces = [faceCount]Face{FaceTop, FaceBottom, FaceNorth, FaceSouth, FaceEast, FaceWest}

var faceNames = [faceCount]string{"top", "bottom", "north", "south", "east", "west"}

func (f Face) String() string {
	if f >= faceCount {
		return "unknown"
	}
	return faceNames[f]
}

// ParseFace maps a face name to its position. The lookup is case-insensitive.
func ParseFace(name string) (Face, bool) {
	for i, n := range faceNames {
		if strings.EqualFold(n, name) {
			return Face(i), true
		}
	}
	return 0, false
}

// DieSide is the identity and colour of one physical side of a die
type DieSide struct {
	FaceID string
	Color  color.RGBA
}

// Sides holds one DieSide per Face position
type Sides [faceCount]DieSide

// DieFacesComponent stores which physical side currently sits at each face
// position. Sides are only ever permuted, never created or dropped.
type DieFacesComponent struct {
	Sides Sides
}

// NewDieFacesComponent builds a die from its sides in Face order
func NewDieFacesComponent(top, bottom, north, south, east, west DieSide) *DieFacesComponent {
	return &DieFacesComponent{Sides: Sides{top, bottom, north, south, east, west}}
}

// Side returns the side at a face position
func (d *DieFacesComponent) Side(f Face) DieSide {
	return d.Sides[f]
}

// Top returns the side currently facing up
func (d *DieFacesComponent) Top() DieSide {
	return d.Sides[FaceTop]
}

// Tumble rotates the die in place for a one-tile roll along (di, dj).
// It returns false and leaves the die alone when neither axis is set.
func (d *DieFacesComponent) Tumble(di, dj int) bool {
	next, ok := d.Sides.Tumbled(di, dj)
	if ok {
		d.Sides = next
	}
	return ok
}

// Tumbled returns the arrangement after rolling one tile along (di, dj).
// The i axis is checked first; diagonal rolls are not modelled.
func (s Sides) Tumbled(di, dj int) (Sides, bool) {
	out := s
	switch {
	case di == 1:
		out[FaceTop], out[FaceEast], out[FaceBottom], out[FaceWest] = s[FaceWest], s[FaceTop], s[FaceEast], s[FaceBottom]
	case di == -1:
		out[FaceTop], out[FaceWest], out[FaceBottom], out[FaceEast] = s[FaceEast], s[FaceTop], s[FaceWest], s[FaceBottom]
	case dj == 1:
		out[FaceTop], out[FaceNorth], out[FaceBottom], out[FaceSouth] = s[FaceSouth], s[FaceTop], s[FaceNorth], s[FaceBottom]
	case dj == -1:
		out[FaceTop], out[FaceSouth], out[FaceBottom], out[FaceNorth] = s[FaceNorth], s[FaceTop], s[FaceSouth], s[FaceBottom]
	default:
		return s, false
	}
	return out, true
}
