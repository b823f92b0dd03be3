package obj

import (
	"fmt"
	"path/filepath"
	"strings"
)

// parser drives one parse invocation: it routes statements by keyword,
// checks arity before touching any value, and mutates the model and
// context. Statements must be dispatched in textual order because
// negative references resolve against "elements defined so far".
type parser struct {
	model *Model
	ctx   *context
	num   *numberParser

	groupIndex map[string]*Group
}

func newParser(model *Model, num *numberParser) *parser {
	return &parser{
		model:      model,
		ctx:        newContext(),
		num:        num,
		groupIndex: make(map[string]*Group),
	}
}

// dispatch routes a single statement. Unknown keywords are skipped for
// forward compatibility; only the superseded legacy free-form keywords
// are a hard error.
func (p *parser) dispatch(st Statement) error {
	switch st.Keyword {
	case "v":
		return p.geometricVertex(st)
	case "vt":
		return p.textureVertex(st)
	case "vn":
		return p.vertexNormal(st)
	case "vp":
		return p.parameterVertex(st)
	case "cstype":
		return p.curveSurfaceType(st)
	case "deg":
		return p.degree(st)
	case "bmat":
		return p.basisMatrix(st)
	case "step":
		return p.stepSize(st)
	case "p":
		return p.element(st, ElementPoint, 1)
	case "l":
		return p.element(st, ElementLine, 2)
	case "f", "fo":
		return p.element(st, ElementFace, 3)
	case "curv":
		return p.curve(st)
	case "curv2":
		return p.curve2D(st)
	case "surf":
		return p.surface(st)
	case "parm":
		return p.parameters(st)
	case "trim", "hole", "scrv":
		return p.trimmingCurves(st)
	case "sp":
		return p.specialPoints(st)
	case "end":
		return p.endFreeForm(st)
	case "con":
		return p.connection(st)
	case "g":
		return p.groupNames(st)
	case "s":
		return p.smoothingGroup(st)
	case "mg":
		return p.mergingGroup(st)
	case "o":
		return p.objectName(st)
	case "bevel":
		return p.interpolationFlag(st, &p.ctx.bevel)
	case "c_interp":
		return p.interpolationFlag(st, &p.ctx.colorInterp)
	case "d_interp":
		return p.interpolationFlag(st, &p.ctx.dissolveInterp)
	case "lod":
		return p.levelOfDetail(st)
	case "usemtl":
		return p.useMaterial(st)
	case "usemap":
		return p.useMap(st)
	case "mtllib", "maplib":
		return p.libraries(st)
	case "shadow_obj", "trace_obj":
		return p.externalObject(st)
	case "ctech":
		return p.curveTechnique(st)
	case "stech":
		return p.surfaceTechnique(st)
	case "bsp", "bzp", "cdc", "cdp", "res":
		return fmt.Errorf("%w: %q was superseded by the free-form geometry statements", ErrUnsupported, st.Keyword)
	default:
		// Unknown keywords from newer OBJ drafts are skipped.
		return nil
	}
}

// group returns the named group, creating and registering it on first
// use.
func (p *parser) group(name string) *Group {
	if g, ok := p.groupIndex[name]; ok {
		return g
	}
	g := &Group{Name: name}
	p.groupIndex[name] = g
	p.model.Groups = append(p.model.Groups, g)
	return g
}

// --- vertex data -----------------------------------------------------

func (p *parser) geometricVertex(st Statement) error {
	n := len(st.Values)
	if n != 3 && n != 4 && n != 6 && n != 7 {
		return fmt.Errorf("%w: v expects 3, 4, 6 or 7 values, got %d", ErrArity, n)
	}
	vals, err := p.floats(st.Values)
	if err != nil {
		return err
	}

	v := Vertex{X: vals[0], Y: vals[1], Z: vals[2], W: 1}
	switch n {
	case 4:
		v.W = vals[3]
	case 6:
		v.HasColor = true
		v.R, v.G, v.B, v.A = vals[3], vals[4], vals[5], 1
	case 7:
		v.HasColor = true
		v.R, v.G, v.B, v.A = vals[3], vals[4], vals[5], vals[6]
	}
	p.model.Vertices = append(p.model.Vertices, v)
	return nil
}

func (p *parser) textureVertex(st Statement) error {
	if len(st.Values) < 1 || len(st.Values) > 3 {
		return fmt.Errorf("%w: vt expects 1 to 3 values, got %d", ErrArity, len(st.Values))
	}
	vals, err := p.floats(st.Values)
	if err != nil {
		return err
	}
	vt := TextureVertex{U: vals[0]}
	if len(vals) > 1 {
		vt.V = vals[1]
	}
	if len(vals) > 2 {
		vt.W = vals[2]
	}
	p.model.TextureVertices = append(p.model.TextureVertices, vt)
	return nil
}

func (p *parser) vertexNormal(st Statement) error {
	if len(st.Values) != 3 {
		return fmt.Errorf("%w: vn expects exactly 3 values, got %d", ErrArity, len(st.Values))
	}
	vals, err := p.floats(st.Values)
	if err != nil {
		return err
	}
	p.model.Normals = append(p.model.Normals, Normal{X: vals[0], Y: vals[1], Z: vals[2]})
	return nil
}

func (p *parser) parameterVertex(st Statement) error {
	if len(st.Values) < 1 || len(st.Values) > 3 {
		return fmt.Errorf("%w: vp expects 1 to 3 values, got %d", ErrArity, len(st.Values))
	}
	vals, err := p.floats(st.Values)
	if err != nil {
		return err
	}
	vp := ParameterVertex{U: vals[0], W: 1}
	if len(vals) > 1 {
		vp.V = vals[1]
	}
	if len(vals) > 2 {
		vp.W = vals[2]
	}
	p.model.ParameterVertices = append(p.model.ParameterVertices, vp)
	return nil
}

// --- elements --------------------------------------------------------

func (p *parser) element(st Statement, kind ElementKind, minTriplets int) error {
	if len(st.Values) < minTriplets {
		return fmt.Errorf("%w: %s expects at least %d vertex reference(s), got %d", ErrArity, st.Keyword, minTriplets, len(st.Values))
	}

	triplets := make([]Triplet, 0, len(st.Values))
	for _, token := range st.Values {
		t, err := p.triplet(token)
		if err != nil {
			return err
		}
		triplets = append(triplets, t)
	}

	el := &Element{Kind: kind, Triplets: triplets, Attributes: p.ctx.snapshot()}

	var index int
	switch kind {
	case ElementPoint:
		p.model.Points = append(p.model.Points, el)
		index = len(p.model.Points) - 1
	case ElementLine:
		p.model.Lines = append(p.model.Lines, el)
		index = len(p.model.Lines) - 1
	case ElementFace:
		p.model.Faces = append(p.model.Faces, el)
		index = len(p.model.Faces) - 1
	}

	for _, name := range p.ctx.groups {
		g := p.group(name)
		switch kind {
		case ElementPoint:
			g.Points = append(g.Points, index)
		case ElementLine:
			g.Lines = append(g.Lines, index)
		case ElementFace:
			g.Faces = append(g.Faces, index)
		}
	}
	return nil
}

// triplet parses one v[/vt[/vn]] token. Texture and normal components
// may be empty; the vertex component is mandatory. Every present
// component is resolved to an absolute index immediately.
func (p *parser) triplet(token string) (Triplet, error) {
	parts := strings.Split(token, "/")
	if len(parts) > 3 {
		return Triplet{}, fmt.Errorf("%w: vertex reference %q has more than three components", ErrFormat, token)
	}
	if parts[0] == "" {
		return Triplet{}, fmt.Errorf("%w: vertex reference %q is missing its vertex index", ErrFormat, token)
	}

	var t Triplet
	raw, err := p.num.integer(parts[0])
	if err != nil {
		return Triplet{}, err
	}
	if t.Vertex, err = resolveIndex(raw, len(p.model.Vertices)); err != nil {
		return Triplet{}, err
	}

	if len(parts) > 1 && parts[1] != "" {
		if raw, err = p.num.integer(parts[1]); err != nil {
			return Triplet{}, err
		}
		if t.Texture, err = resolveIndex(raw, len(p.model.TextureVertices)); err != nil {
			return Triplet{}, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if raw, err = p.num.integer(parts[2]); err != nil {
			return Triplet{}, err
		}
		if t.Normal, err = resolveIndex(raw, len(p.model.Normals)); err != nil {
			return Triplet{}, err
		}
	}
	return t, nil
}

// --- free-form elements ----------------------------------------------

func (p *parser) curve(st Statement) error {
	if len(st.Values) < 4 {
		return fmt.Errorf("%w: curv expects start, end and at least 2 control vertices, got %d values", ErrArity, len(st.Values))
	}
	start, err := p.num.float(st.Values[0])
	if err != nil {
		return err
	}
	end, err := p.num.float(st.Values[1])
	if err != nil {
		return err
	}

	vertices, err := p.resolveList(st.Values[2:], len(p.model.Vertices))
	if err != nil {
		return err
	}

	c := &Curve{
		Start:      start,
		End:        end,
		Vertices:   vertices,
		Attributes: p.ctx.snapshot(),
		FreeForm:   p.ctx.freeFormSnapshot(p.ctx.curveTechnique),
	}
	p.model.Curves = append(p.model.Curves, c)
	index := len(p.model.Curves) - 1
	for _, name := range p.ctx.groups {
		g := p.group(name)
		g.Curves = append(g.Curves, index)
	}
	p.ctx.open = openHandle{kind: openCurve, index: index}
	return nil
}

func (p *parser) curve2D(st Statement) error {
	if len(st.Values) < 2 {
		return fmt.Errorf("%w: curv2 expects at least 2 parameter vertices, got %d", ErrArity, len(st.Values))
	}
	vertices, err := p.resolveList(st.Values, len(p.model.ParameterVertices))
	if err != nil {
		return err
	}

	c := &Curve2D{
		Vertices:   vertices,
		Attributes: p.ctx.snapshot(),
		FreeForm:   p.ctx.freeFormSnapshot(p.ctx.curveTechnique),
	}
	p.model.Curves2D = append(p.model.Curves2D, c)
	index := len(p.model.Curves2D) - 1
	for _, name := range p.ctx.groups {
		g := p.group(name)
		g.Curves2D = append(g.Curves2D, index)
	}
	p.ctx.open = openHandle{kind: openCurve2D, index: index}
	return nil
}

func (p *parser) surface(st Statement) error {
	if len(st.Values) < 5 {
		return fmt.Errorf("%w: surf expects 4 parameter bounds and at least 1 control vertex, got %d values", ErrArity, len(st.Values))
	}
	bounds, err := p.floats(st.Values[:4])
	if err != nil {
		return err
	}

	triplets := make([]Triplet, 0, len(st.Values)-4)
	for _, token := range st.Values[4:] {
		t, err := p.triplet(token)
		if err != nil {
			return err
		}
		triplets = append(triplets, t)
	}

	s := &Surface{
		StartU:     bounds[0],
		EndU:       bounds[1],
		StartV:     bounds[2],
		EndV:       bounds[3],
		Triplets:   triplets,
		Attributes: p.ctx.snapshot(),
		FreeForm:   p.ctx.freeFormSnapshot(p.ctx.surfaceTechnique),
	}
	p.model.Surfaces = append(p.model.Surfaces, s)
	index := len(p.model.Surfaces) - 1
	for _, name := range p.ctx.groups {
		g := p.group(name)
		g.Surfaces = append(g.Surfaces, index)
	}
	p.ctx.open = openHandle{kind: openSurface, index: index}
	return nil
}

// --- free-form body statements ---------------------------------------
//
// These statements attach data to the open free-form element. Without
// an open element they are skipped silently; only curv/curv2/surf open
// one and only end closes it.

func (p *parser) parameters(st Statement) error {
	if len(st.Values) < 3 {
		return fmt.Errorf("%w: parm expects a direction and at least 2 parameter values, got %d values", ErrArity, len(st.Values))
	}
	body := p.ctx.openBody(p.model)
	if body == nil {
		return nil
	}

	direction := st.Values[0]
	if direction != "u" && direction != "v" {
		return fmt.Errorf("%w: parm direction must be \"u\" or \"v\", got %q", ErrFormat, direction)
	}
	vals, err := p.floats(st.Values[1:])
	if err != nil {
		return err
	}
	if direction == "u" {
		body.UParams = append(body.UParams, vals...)
	} else {
		body.VParams = append(body.VParams, vals...)
	}
	return nil
}

func (p *parser) trimmingCurves(st Statement) error {
	if len(st.Values) < 3 || len(st.Values)%3 != 0 {
		return fmt.Errorf("%w: %s expects groups of 3 values (start, end, curv2 reference), got %d", ErrArity, st.Keyword, len(st.Values))
	}
	body := p.ctx.openBody(p.model)
	if body == nil {
		return nil
	}

	triples, err := p.curveIndexTriples(st.Values)
	if err != nil {
		return err
	}
	switch st.Keyword {
	case "trim":
		body.Trims = append(body.Trims, triples...)
	case "hole":
		body.Holes = append(body.Holes, triples...)
	case "scrv":
		body.SequenceCurves = append(body.SequenceCurves, triples...)
	}
	return nil
}

func (p *parser) specialPoints(st Statement) error {
	if len(st.Values) < 1 {
		return fmt.Errorf("%w: sp expects at least 1 parameter vertex reference", ErrArity)
	}
	body := p.ctx.openBody(p.model)
	if body == nil {
		return nil
	}

	points, err := p.resolveList(st.Values, len(p.model.ParameterVertices))
	if err != nil {
		return err
	}
	body.SpecialPoints = append(body.SpecialPoints, points...)
	return nil
}

func (p *parser) endFreeForm(st Statement) error {
	if len(st.Values) != 0 {
		return fmt.Errorf("%w: end expects no values, got %d", ErrArity, len(st.Values))
	}
	p.ctx.open = openHandle{}
	return nil
}

// --- connectivity ----------------------------------------------------

func (p *parser) connection(st Statement) error {
	if len(st.Values) != 8 {
		return fmt.Errorf("%w: con expects exactly 8 values, got %d", ErrArity, len(st.Values))
	}

	surfaceA, err := p.surfaceRef(st.Values[0])
	if err != nil {
		return err
	}
	curveA, err := p.curveIndexTriples(st.Values[1:4])
	if err != nil {
		return err
	}
	surfaceB, err := p.surfaceRef(st.Values[4])
	if err != nil {
		return err
	}
	curveB, err := p.curveIndexTriples(st.Values[5:8])
	if err != nil {
		return err
	}

	p.model.Connections = append(p.model.Connections, &Connection{
		SurfaceA: surfaceA,
		CurveA:   curveA[0],
		SurfaceB: surfaceB,
		CurveB:   curveB[0],
	})
	return nil
}

func (p *parser) surfaceRef(token string) (int, error) {
	raw, err := p.num.integer(token)
	if err != nil {
		return 0, err
	}
	return resolveIndex(raw, len(p.model.Surfaces))
}

// --- grouping and state ----------------------------------------------

func (p *parser) groupNames(st Statement) error {
	if len(st.Values) == 0 || (len(st.Values) == 1 && st.Values[0] == "default") {
		p.ctx.groups = nil
		return nil
	}
	p.ctx.groups = append([]string(nil), st.Values...)
	for _, name := range st.Values {
		p.group(name)
	}
	return nil
}

func (p *parser) smoothingGroup(st Statement) error {
	if len(st.Values) != 1 {
		return fmt.Errorf("%w: s expects exactly 1 value, got %d", ErrArity, len(st.Values))
	}
	if st.Values[0] == "off" {
		p.ctx.smoothing = 0
		return nil
	}
	n, err := p.num.integer(st.Values[0])
	if err != nil {
		return err
	}
	p.ctx.smoothing = n
	return nil
}

func (p *parser) mergingGroup(st Statement) error {
	if len(st.Values) < 1 || len(st.Values) > 2 {
		return fmt.Errorf("%w: mg expects a group number and resolution, got %d values", ErrArity, len(st.Values))
	}

	group := 0
	if st.Values[0] != "off" {
		n, err := p.num.integer(st.Values[0])
		if err != nil {
			return err
		}
		group = n
	}

	if group == 0 {
		// The resolution only means something while a merging group is
		// active; a superfluous trailing token is tolerated here.
		p.ctx.merging = 0
		return nil
	}

	if len(st.Values) != 2 {
		return fmt.Errorf("%w: mg with a nonzero group expects exactly 2 values, got %d", ErrArity, len(st.Values))
	}
	res, err := p.num.float(st.Values[1])
	if err != nil {
		return err
	}
	p.ctx.merging = group
	p.model.MergingResolutions[group] = res
	return nil
}

func (p *parser) objectName(st Statement) error {
	if len(st.Values) != 1 {
		return fmt.Errorf("%w: o expects exactly 1 value, got %d", ErrArity, len(st.Values))
	}
	p.ctx.object = st.Values[0]
	return nil
}

func (p *parser) interpolationFlag(st Statement, target *bool) error {
	if len(st.Values) != 1 {
		return fmt.Errorf("%w: %s expects exactly 1 value, got %d", ErrArity, st.Keyword, len(st.Values))
	}
	switch st.Values[0] {
	case "on":
		*target = true
	case "off":
		*target = false
	default:
		return fmt.Errorf("%w: %s expects \"on\" or \"off\", got %q", ErrFormat, st.Keyword, st.Values[0])
	}
	return nil
}

func (p *parser) levelOfDetail(st Statement) error {
	if len(st.Values) != 1 {
		return fmt.Errorf("%w: lod expects exactly 1 value, got %d", ErrArity, len(st.Values))
	}
	n, err := p.num.integer(st.Values[0])
	if err != nil {
		return err
	}
	p.ctx.lod = n
	return nil
}

func (p *parser) useMaterial(st Statement) error {
	if len(st.Values) != 1 {
		return fmt.Errorf("%w: usemtl expects exactly 1 value, got %d", ErrArity, len(st.Values))
	}
	if st.Values[0] == "off" {
		p.ctx.material = ""
	} else {
		p.ctx.material = st.Values[0]
	}
	return nil
}

func (p *parser) useMap(st Statement) error {
	if len(st.Values) != 1 {
		return fmt.Errorf("%w: usemap expects exactly 1 value, got %d", ErrArity, len(st.Values))
	}
	if st.Values[0] == "off" {
		p.ctx.mapName = ""
	} else {
		p.ctx.mapName = st.Values[0]
	}
	return nil
}

// --- external files --------------------------------------------------
//
// Library statements only record file names; loading is delegated to an
// external collaborator. The sole validation is that the name carries
// an extension.

func (p *parser) libraries(st Statement) error {
	if len(st.Values) < 1 {
		return fmt.Errorf("%w: %s expects at least 1 file name", ErrArity, st.Keyword)
	}
	for _, name := range st.Values {
		if filepath.Ext(name) == "" {
			return fmt.Errorf("%w: %s file name %q has no extension", ErrFormat, st.Keyword, name)
		}
	}
	switch st.Keyword {
	case "mtllib":
		p.model.MaterialLibraries = append(p.model.MaterialLibraries, st.Values...)
	case "maplib":
		p.model.MapLibraries = append(p.model.MapLibraries, st.Values...)
	}
	return nil
}

func (p *parser) externalObject(st Statement) error {
	if len(st.Values) != 1 {
		return fmt.Errorf("%w: %s expects exactly 1 file name, got %d", ErrArity, st.Keyword, len(st.Values))
	}
	name := st.Values[0]
	if filepath.Ext(name) == "" {
		return fmt.Errorf("%w: %s file name %q has no extension", ErrFormat, st.Keyword, name)
	}
	switch st.Keyword {
	case "shadow_obj":
		p.model.ShadowObject = name
	case "trace_obj":
		p.model.TraceObject = name
	}
	return nil
}

// --- free-form attribute state ---------------------------------------

func (p *parser) curveSurfaceType(st Statement) error {
	values := st.Values
	rational := false
	if len(values) == 2 && values[0] == "rat" {
		rational = true
		values = values[1:]
	}
	if len(values) != 1 {
		return fmt.Errorf("%w: cstype expects an optional \"rat\" followed by a type name, got %d values", ErrArity, len(st.Values))
	}

	var t GeometryType
	switch values[0] {
	case "bmatrix":
		t = GeometryBasisMatrix
	case "bezier":
		t = GeometryBezier
	case "bspline":
		t = GeometryBSpline
	case "cardinal":
		t = GeometryCardinal
	case "taylor":
		t = GeometryTaylor
	default:
		return fmt.Errorf("%w: unknown free-form type %q", ErrFormat, values[0])
	}
	p.ctx.geometry = t
	p.ctx.rational = rational
	return nil
}

func (p *parser) degree(st Statement) error {
	if len(st.Values) < 1 || len(st.Values) > 2 {
		return fmt.Errorf("%w: deg expects 1 or 2 values, got %d", ErrArity, len(st.Values))
	}
	u, err := p.num.integer(st.Values[0])
	if err != nil {
		return err
	}
	v := 0
	if len(st.Values) == 2 {
		if v, err = p.num.integer(st.Values[1]); err != nil {
			return err
		}
	}
	p.ctx.degreeU = u
	p.ctx.degreeV = v
	return nil
}

func (p *parser) basisMatrix(st Statement) error {
	if len(st.Values) < 1 {
		return fmt.Errorf("%w: bmat expects a direction and basis values", ErrArity)
	}
	need := (p.ctx.degreeU + 1) * (p.ctx.degreeV + 1)
	if len(st.Values)-1 != need {
		return fmt.Errorf("%w: bmat expects %d basis values for degrees (%d, %d), got %d",
			ErrArity, need, p.ctx.degreeU, p.ctx.degreeV, len(st.Values)-1)
	}

	direction := st.Values[0]
	if direction != "u" && direction != "v" {
		return fmt.Errorf("%w: bmat direction must be \"u\" or \"v\", got %q", ErrFormat, direction)
	}
	vals, err := p.floats(st.Values[1:])
	if err != nil {
		return err
	}
	if direction == "u" {
		p.ctx.basisU = vals
	} else {
		p.ctx.basisV = vals
	}
	return nil
}

func (p *parser) stepSize(st Statement) error {
	if len(st.Values) < 1 || len(st.Values) > 2 {
		return fmt.Errorf("%w: step expects 1 or 2 values, got %d", ErrArity, len(st.Values))
	}
	u, err := p.num.integer(st.Values[0])
	if err != nil {
		return err
	}
	v := 1
	if len(st.Values) == 2 {
		if v, err = p.num.integer(st.Values[1]); err != nil {
			return err
		}
	}
	p.ctx.stepU = u
	p.ctx.stepV = v
	return nil
}

func (p *parser) curveTechnique(st Statement) error {
	t, err := p.technique(st, false)
	if err != nil {
		return err
	}
	p.ctx.curveTechnique = t
	return nil
}

func (p *parser) surfaceTechnique(st Statement) error {
	t, err := p.technique(st, true)
	if err != nil {
		return err
	}
	p.ctx.surfaceTechnique = t
	return nil
}

// technique parses the ctech/stech argument list. Curves use cparm for
// constant-parametric subdivision, surfaces split it into cparma
// (independent U/V) and cparmb (bounded); cspace and curv are shared.
func (p *parser) technique(st Statement, surface bool) (Technique, error) {
	if len(st.Values) < 1 {
		return Technique{}, fmt.Errorf("%w: %s expects a technique name", ErrArity, st.Keyword)
	}
	name := st.Values[0]
	args := st.Values[1:]

	needArgs := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s %s expects %d value(s), got %d", ErrArity, st.Keyword, name, n, len(args))
		}
		return nil
	}

	switch {
	case !surface && name == "cparm":
		if err := needArgs(1); err != nil {
			return Technique{}, err
		}
		res, err := p.num.float(args[0])
		if err != nil {
			return Technique{}, err
		}
		return Technique{Kind: TechniqueConstantParametric, ResolutionU: res, ResolutionV: res}, nil

	case surface && name == "cparma":
		if err := needArgs(2); err != nil {
			return Technique{}, err
		}
		vals, err := p.floats(args)
		if err != nil {
			return Technique{}, err
		}
		return Technique{Kind: TechniqueConstantParametric, ResolutionU: vals[0], ResolutionV: vals[1]}, nil

	case surface && name == "cparmb":
		if err := needArgs(1); err != nil {
			return Technique{}, err
		}
		res, err := p.num.float(args[0])
		if err != nil {
			return Technique{}, err
		}
		return Technique{Kind: TechniqueConstantParametricBounded, ResolutionU: res}, nil

	case name == "cspace":
		if err := needArgs(1); err != nil {
			return Technique{}, err
		}
		length, err := p.num.float(args[0])
		if err != nil {
			return Technique{}, err
		}
		return Technique{Kind: TechniqueConstantSpatial, MaxLength: length}, nil

	case name == "curv":
		if err := needArgs(2); err != nil {
			return Technique{}, err
		}
		vals, err := p.floats(args)
		if err != nil {
			return Technique{}, err
		}
		return Technique{Kind: TechniqueCurvatureDependent, MaxDistance: vals[0], MaxAngle: vals[1]}, nil

	default:
		return Technique{}, fmt.Errorf("%w: unknown %s technique %q", ErrFormat, st.Keyword, name)
	}
}

// --- shared value helpers --------------------------------------------

// floats parses every token as a float.
func (p *parser) floats(tokens []string) ([]float64, error) {
	vals := make([]float64, len(tokens))
	for i, token := range tokens {
		v, err := p.num.float(token)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// resolveList parses every token as a raw reference and resolves it
// against a list of count elements.
func (p *parser) resolveList(tokens []string, count int) ([]int, error) {
	indices := make([]int, 0, len(tokens))
	for _, token := range tokens {
		raw, err := p.num.integer(token)
		if err != nil {
			return nil, err
		}
		index, err := resolveIndex(raw, count)
		if err != nil {
			return nil, err
		}
		indices = append(indices, index)
	}
	return indices, nil
}

// curveIndexTriples parses (start, end, curv2 reference) triples. The
// caller guarantees len(tokens) is a multiple of 3.
func (p *parser) curveIndexTriples(tokens []string) ([]CurveIndex, error) {
	triples := make([]CurveIndex, 0, len(tokens)/3)
	for i := 0; i+2 < len(tokens); i += 3 {
		start, err := p.num.float(tokens[i])
		if err != nil {
			return nil, err
		}
		end, err := p.num.float(tokens[i+1])
		if err != nil {
			return nil, err
		}
		raw, err := p.num.integer(tokens[i+2])
		if err != nil {
			return nil, err
		}
		index, err := resolveIndex(raw, len(p.model.Curves2D))
		if err != nil {
			return nil, err
		}
		triples = append(triples, CurveIndex{Start: start, End: end, Curve2D: index})
	}
	return triples, nil
}
