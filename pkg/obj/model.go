package obj

import "fmt"

// Vertex is a geometric vertex. W defaults to 1. A vertex may carry an
// optional RGBA color; HasColor distinguishes "no color" from a black
// color, the components are never inspected to infer presence.
type Vertex struct {
	X, Y, Z, W float64
	R, G, B, A float64
	HasColor   bool
}

// TextureVertex is a texture coordinate. V and W default to 0.
type TextureVertex struct {
	U, V, W float64
}

// Normal is a vertex normal. All three components are required.
type Normal struct {
	X, Y, Z float64
}

// ParameterVertex is a point in the parameter space of a curve or
// surface. V defaults to 0 and W to 1.
type ParameterVertex struct {
	U, V, W float64
}

// Triplet references a vertex with optional texture and normal
// components. All indices are absolute and 1-based; a Texture or
// Normal of 0 means the component is absent.
type Triplet struct {
	Vertex  int
	Texture int
	Normal  int
}

// Attributes is the snapshot of parser state stamped onto an element
// when it is created. The parsing context keeps mutating afterwards,
// so elements hold copies, never references to live state.
type Attributes struct {
	Groups         []string
	SmoothingGroup int
	MergingGroup   int
	Material       string
	Map            string
	Object         string
	LOD            int
}

// ElementKind identifies the geometry of an Element.
type ElementKind int

// Element kinds.
const (
	ElementPoint ElementKind = iota
	ElementLine
	ElementFace
)

// String returns a human-readable element kind name.
func (k ElementKind) String() string {
	switch k {
	case ElementPoint:
		return "point"
	case ElementLine:
		return "line"
	case ElementFace:
		return "face"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Element is a point, line or face: an ordered list of triplets plus
// the attribute snapshot taken at creation time.
type Element struct {
	Kind     ElementKind
	Triplets []Triplet
	Attributes
}

// GeometryType is the free-form curve/surface type set by cstype.
type GeometryType int

// Free-form geometry types.
const (
	GeometryNone GeometryType = iota
	GeometryBasisMatrix
	GeometryBezier
	GeometryBSpline
	GeometryCardinal
	GeometryTaylor
)

// String returns the cstype keyword for the geometry type.
func (t GeometryType) String() string {
	switch t {
	case GeometryNone:
		return "none"
	case GeometryBasisMatrix:
		return "bmatrix"
	case GeometryBezier:
		return "bezier"
	case GeometryBSpline:
		return "bspline"
	case GeometryCardinal:
		return "cardinal"
	case GeometryTaylor:
		return "taylor"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// CurveIndex ties a parameter interval to a 2D curve. Curve2D is an
// absolute 1-based index into the model's Curves2D list.
type CurveIndex struct {
	Start   float64
	End     float64
	Curve2D int
}

// TechniqueKind identifies a curve/surface approximation technique.
type TechniqueKind int

// Approximation technique kinds.
const (
	TechniqueNone TechniqueKind = iota
	// TechniqueConstantParametric subdivides at a constant parametric
	// resolution, uniform for curves (cparm) or split into independent
	// U and V resolutions for surfaces (cparma).
	TechniqueConstantParametric
	// TechniqueConstantParametricBounded uses a single resolution bound
	// for both directions (cparmb).
	TechniqueConstantParametricBounded
	// TechniqueConstantSpatial bounds the length of each segment (cspace).
	TechniqueConstantSpatial
	// TechniqueCurvatureDependent bounds distance and angle deviation
	// from the true curve (curv).
	TechniqueCurvatureDependent
)

// Technique is a curve or surface approximation technique plus its
// arguments. Only the fields relevant to Kind are meaningful.
type Technique struct {
	Kind        TechniqueKind
	ResolutionU float64
	ResolutionV float64
	MaxLength   float64
	MaxDistance float64
	MaxAngle    float64
}

// FreeForm carries the free-form attribute snapshot taken when a
// curve/curve2/surface is created, plus the parametric data attached by
// parm/trim/hole/scrv/sp statements while the element is open.
type FreeForm struct {
	Type      GeometryType
	Rational  bool
	DegreeU   int
	DegreeV   int
	BasisU    []float64
	BasisV    []float64
	StepU     int
	StepV     int
	Technique Technique

	UParams        []float64
	VParams        []float64
	Trims          []CurveIndex
	Holes          []CurveIndex
	SequenceCurves []CurveIndex
	SpecialPoints  []int
}

// Curve is a free-form curve: a parameter interval over a list of
// absolute control vertex indices.
type Curve struct {
	Start    float64
	End      float64
	Vertices []int
	Attributes
	FreeForm
}

// Curve2D is a free-form curve in parameter space, defined over
// absolute parameter-space vertex indices.
type Curve2D struct {
	Vertices []int
	Attributes
	FreeForm
}

// Surface is a free-form surface: U and V parameter intervals over a
// list of control triplets.
type Surface struct {
	StartU, EndU float64
	StartV, EndV float64
	Triplets     []Triplet
	Attributes
	FreeForm
}

// Connection joins two surfaces along a shared parameter-space curve
// interval. Surface indices are absolute into the model's Surfaces.
type Connection struct {
	SurfaceA int
	CurveA   CurveIndex
	SurfaceB int
	CurveB   CurveIndex
}

// Group collects, per element kind, the indices (0-based, into the
// model's global lists) of every element created while the group name
// was active. Elements are owned by the global lists; groups only
// reference them.
type Group struct {
	Name     string
	Points   []int
	Lines    []int
	Faces    []int
	Curves   []int
	Curves2D []int
	Surfaces []int
}

// Empty reports whether no element was registered into the group.
func (g *Group) Empty() bool {
	return len(g.Points) == 0 && len(g.Lines) == 0 && len(g.Faces) == 0 &&
		len(g.Curves) == 0 && len(g.Curves2D) == 0 && len(g.Surfaces) == 0
}

// Model is the scene produced by one parse. All collections are
// append-only and ordered as encountered in the input.
type Model struct {
	// Comments is the newline-joined block of comment lines leading the
	// file, with the comment markers stripped.
	Comments string

	Vertices          []Vertex
	TextureVertices   []TextureVertex
	Normals           []Normal
	ParameterVertices []ParameterVertex

	Points []*Element
	Lines  []*Element
	Faces  []*Element

	Curves   []*Curve
	Curves2D []*Curve2D
	Surfaces []*Surface

	Groups      []*Group
	Connections []*Connection

	// Referenced external libraries, recorded verbatim and never opened.
	MaterialLibraries []string
	MapLibraries      []string
	ShadowObject      string
	TraceObject       string

	// MergingResolutions maps each merging group number seen in an mg
	// statement to the resolution it was declared with.
	MergingResolutions map[int]float64
}

func newModel() *Model {
	return &Model{
		MergingResolutions: make(map[int]float64),
	}
}

// GroupByName returns the named group, or nil if no element ever
// referenced it.
func (m *Model) GroupByName(name string) *Group {
	for _, g := range m.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// ElementCount returns the total number of points, lines and faces.
func (m *Model) ElementCount() int {
	return len(m.Points) + len(m.Lines) + len(m.Faces)
}

// FreeFormCount returns the total number of curves, 2D curves and
// surfaces.
func (m *Model) FreeFormCount() int {
	return len(m.Curves) + len(m.Curves2D) + len(m.Surfaces)
}

// HasFreeFormGeometry reports whether the model contains any free-form
// element or surface connection.
func (m *Model) HasFreeFormGeometry() bool {
	return m.FreeFormCount() > 0 || len(m.Connections) > 0
}
