// Package entity contains the core shape entities of the domain layer.
//
// SOLID Principles applied:
//   - Interface Segregation: Shape and Solid are separate capabilities.
//     Not every shape has a volume.
//   - Liskov Substitution: a Solid can be used wherever a Shape is expected.
//   - Single Responsibility: each variant holds its dimensions and computes
//     its own measurements.
package entity

// Pi is the approximation of π used by every shape computation.
const Pi = 3.14

// Kind identifies a shape variant.
type Kind string

const (
	KindSquare    Kind = "square"    // 2-D, side²
	KindCircle    Kind = "circle"    // 2-D, π·r²
	KindRectangle Kind = "rectangle" // 2-D, length×width
	KindSphere    Kind = "sphere"    // 3-D, surface area and volume
	KindUnknown   Kind = "unknown"   // Not a known variant
)

// Shape is the capability of computing an area.
type Shape interface {
	// Area returns the area of the shape (surface area for solids).
	Area() float64
}

// Solid is the capability of computing both an area and a volume.
// A type must declare the capability explicitly by embedding Volumetric;
// exposing a Volume method alone is not enough.
type Solid interface {
	Shape

	// Volume returns the volume enclosed by the shape.
	Volume() float64

	volumetric()
}

// Volumetric marks a shape as a Solid when embedded in it.
type Volumetric struct{}

func (Volumetric) volumetric() {}

// Square is a 2-D shape with four equal sides.
type Square struct {
	// Side is the length of one side.
	Side float64 `json:"side"`
}

// NewSquare creates a new Square with the given side length.
func NewSquare(side float64) Square {
	return Square{Side: side}
}

// Area returns side².
func (s Square) Area() float64 {
	return s.Side * s.Side
}

// Circle is a 2-D round shape.
type Circle struct {
	// Radius of the circle.
	Radius float64 `json:"radius"`
}

// NewCircle creates a new Circle with the given radius.
func NewCircle(radius float64) Circle {
	return Circle{Radius: radius}
}

// Area returns π·r².
func (c Circle) Area() float64 {
	return Pi * (c.Radius * c.Radius)
}

// Rectangle is a 2-D shape with a length and a width.
type Rectangle struct {
	// Length of the rectangle.
	Length float64 `json:"length"`

	// Width of the rectangle.
	Width float64 `json:"width"`
}

// NewRectangle creates a new Rectangle.
//
// Parameters:
//   - length: Length of the rectangle
//   - width: Width of the rectangle
//
// Returns:
//   - Rectangle: the created Rectangle
func NewRectangle(length, width float64) Rectangle {
	return Rectangle{Length: length, Width: width}
}

// Area returns length×width.
func (r Rectangle) Area() float64 {
	return r.Length * r.Width
}

// Sphere is a 3-D shape. It is both a Shape and a Solid.
type Sphere struct {
	Volumetric

	// Radius of the sphere.
	Radius float64 `json:"radius"`
}

// NewSphere creates a new Sphere with the given radius.
func NewSphere(radius float64) Sphere {
	return Sphere{Radius: radius}
}

// Area returns the surface area, 4·π·r².
func (s Sphere) Area() float64 {
	return 4 * Pi * (s.Radius * s.Radius)
}

// Volume returns 4/3·π·r³.
func (s Sphere) Volume() float64 {
	return 4.0 / 3.0 * Pi * (s.Radius * s.Radius * s.Radius)
}

// KindOf returns the Kind of a known shape variant, or KindUnknown.
//
// Parameters:
//   - v: any value
//
// Returns:
//   - Kind: the variant tag
func KindOf(v any) Kind {
	switch v.(type) {
	case Square, *Square:
		return KindSquare
	case Circle, *Circle:
		return KindCircle
	case Rectangle, *Rectangle:
		return KindRectangle
	case Sphere, *Sphere:
		return KindSphere
	default:
		return KindUnknown
	}
}

// IsShape reports whether v has the Shape capability.
func IsShape(v any) bool {
	_, ok := v.(Shape)
	return ok
}

// IsSolid reports whether v has the Solid capability.
func IsSolid(v any) bool {
	_, ok := v.(Solid)
	return ok
}
