package obj

// openKind tags the context's open free-form element handle.
type openKind int

const (
	openNone openKind = iota
	openCurve
	openCurve2D
	openSurface
)

// openHandle identifies the currently open free-form element by kind
// and position in the model's per-kind list. At most one element is
// open at a time; a new curv/curv2/surf replaces the handle and only an
// explicit end statement clears it.
type openHandle struct {
	kind  openKind
	index int
}

// context is the mutable state carried across statements. It is
// threaded explicitly through the statement handlers and discarded when
// the parse finishes; its only lasting effect is the snapshots and the
// merging resolutions it stamps into the model.
type context struct {
	groups []string

	smoothing int
	merging   int

	object   string
	material string
	mapName  string
	lod      int

	bevel          bool
	colorInterp    bool
	dissolveInterp bool

	geometry GeometryType
	rational bool
	degreeU  int
	degreeV  int
	basisU   []float64
	basisV   []float64
	stepU    int
	stepV    int

	curveTechnique   Technique
	surfaceTechnique Technique

	open openHandle
}

func newContext() *context {
	return &context{
		stepU: 1,
		stepV: 1,
	}
}

// snapshot copies the element attributes out of the context. The copy
// is what gets stamped onto elements; the context keeps mutating.
func (c *context) snapshot() Attributes {
	groups := make([]string, len(c.groups))
	copy(groups, c.groups)
	return Attributes{
		Groups:         groups,
		SmoothingGroup: c.smoothing,
		MergingGroup:   c.merging,
		Material:       c.material,
		Map:            c.mapName,
		Object:         c.object,
		LOD:            c.lod,
	}
}

// freeFormSnapshot copies the free-form attributes for a newly created
// curve or surface. The technique is the one matching the element kind,
// ctech for curves and stech for surfaces. The parametric lists start
// empty and accumulate while the element stays open.
func (c *context) freeFormSnapshot(technique Technique) FreeForm {
	ff := FreeForm{
		Type:      c.geometry,
		Rational:  c.rational,
		DegreeU:   c.degreeU,
		DegreeV:   c.degreeV,
		StepU:     c.stepU,
		StepV:     c.stepV,
		Technique: technique,
	}
	if len(c.basisU) > 0 {
		ff.BasisU = append([]float64(nil), c.basisU...)
	}
	if len(c.basisV) > 0 {
		ff.BasisV = append([]float64(nil), c.basisV...)
	}
	return ff
}

// openBody resolves the open handle to the free-form data of the
// element it points at, or nil when no element is open.
func (c *context) openBody(m *Model) *FreeForm {
	switch c.open.kind {
	case openCurve:
		return &m.Curves[c.open.index].FreeForm
	case openCurve2D:
		return &m.Curves2D[c.open.index].FreeForm
	case openSurface:
		return &m.Surfaces[c.open.index].FreeForm
	default:
		return nil
	}
}
