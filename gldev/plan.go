// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldev

import (
	"image"

	"cogentcore.org/gdevice/glapi"
	"github.com/chewxy/math32"
)

// stateOp is one native state change. call is nil for ops that only
// record a value the driver is known to hold already. commit, when
// non-nil, records the effect of call in the cache and must only run
// after call succeeded.
type stateOp struct {
	aspect string
	call   func(f glapi.Functions)
	commit func(s *stateCache)
}

// planner accumulates the ops moving the driver from a cached state,
// tracking the state the driver will be in once they all succeed.
type planner struct {
	ops  []stateOp
	next stateCache
	caps *Caps
}

func newPlanner(cur stateCache, caps *Caps) *planner {
	return &planner{next: cur, caps: caps}
}

func (p *planner) add(aspect string, call func(glapi.Functions), commit func(*stateCache)) {
	p.ops = append(p.ops, stateOp{aspect: aspect, call: call, commit: commit})
	if commit != nil {
		commit(&p.next)
	}
}

// set adds call unless the field selected by field is known to hold v.
func set[T comparable](p *planner, aspect string, field func(*stateCache) *cached[T], v T, call func(glapi.Functions)) {
	if field(&p.next).is(v) {
		return
	}
	p.add(aspect, call, func(s *stateCache) { *field(s) = known(v) })
}

func (p *planner) enable(aspect string, cap glapi.Enum, field func(*stateCache) *cached[bool], on bool) {
	set(p, aspect, field, on, func(f glapi.Functions) {
		if on {
			f.Enable(cap)
		} else {
			f.Disable(cap)
		}
	})
}

// planState returns the ops that move the driver from cur to req, in
// application order, and the cache once they have all been applied.
// It makes no native calls; an invalid or unsupported request is
// reported before any op is planned.
func planState(cur stateCache, req DrawState, caps *Caps) ([]stateOp, stateCache, error) {
	if err := validateState(req, caps); err != nil {
		return nil, cur, err
	}
	p := newPlanner(cur, caps)
	p.depth(req.DepthWrite, req.DepthFunc)
	p.enable("depth clamp", glapi.DEPTH_CLAMP, depthClamp, req.DepthClamp)
	p.colorMask(req.ColorMask)
	p.blend(req.Blend)
	p.cull(req.CullFace)
	p.scissor(req.Scissor)
	p.polygonMode(req.PolygonMode)
	p.pointSize(req.PointSize)
	p.clipDistances(req.ClipDistances)
	p.clipControl(req.ClipOrigin, req.ClipDepth)
	return p.ops, p.next, nil
}

func validateState(req DrawState, caps *Caps) error {
	const op = "apply"
	if req.PointSize < 0 || math32.IsNaN(req.PointSize) || math32.IsInf(req.PointSize, 0) {
		return argErrorf(op, "point size must be a finite number of 0 or more, got %v", req.PointSize)
	}
	if req.ClipDistances < 0 || req.ClipDistances > caps.MaxClipDistances {
		return argErrorf(op, "clip distance count %d out of range [0, %d]", req.ClipDistances, caps.MaxClipDistances)
	}
	if r := req.Scissor; r != nil && (r.Dx() < 0 || r.Dy() < 0) {
		return argErrorf(op, "scissor rectangle %v has a negative size", *r)
	}
	origin, depth := clipConvention(req.ClipOrigin, req.ClipDepth)
	if (origin != glapi.LOWER_LEFT || depth != glapi.NEGATIVE_ONE_TO_ONE) && !caps.Features.Has(FeatureClipControl) {
		return &UnsupportedFeatureError{Op: "clip control", Feature: FeatureClipControl}
	}
	return nil
}

func (p *planner) depth(write bool, fn glapi.Enum) {
	if fn == 0 {
		fn = glapi.ALWAYS
	}
	if !write && fn == glapi.ALWAYS {
		p.enable("depth test", glapi.DEPTH_TEST, depthTest, false)
		return
	}
	p.enable("depth test", glapi.DEPTH_TEST, depthTest, true)
	p.depthMask(write)
	set(p, "depth func", func(s *stateCache) *cached[glapi.Enum] { return &s.depthFunc }, fn,
		func(f glapi.Functions) { f.DepthFunc(fn) })
}

func (p *planner) depthMask(write bool) {
	set(p, "depth mask", func(s *stateCache) *cached[bool] { return &s.depthMask }, write,
		func(f glapi.Functions) { f.DepthMask(write) })
}

func (p *planner) colorMask(m [4]bool) {
	set(p, "color mask", func(s *stateCache) *cached[[4]bool] { return &s.colorMask }, m,
		func(f glapi.Functions) { f.ColorMask(m[0], m[1], m[2], m[3]) })
}

var white = [4]float32{1, 1, 1, 1}

func (p *planner) blend(b *BlendState) {
	if b.IsIdentity() {
		p.enable("blend", glapi.BLEND, blendEnabled, false)
		return
	}
	p.enable("blend", glapi.BLEND, blendEnabled, true)
	fn := [4]glapi.Enum{b.Src, b.Dst, b.SrcAlpha, b.DstAlpha}
	set(p, "blend func", func(s *stateCache) *cached[[4]glapi.Enum] { return &s.blendFunc }, fn,
		func(f glapi.Functions) { f.BlendFuncSeparate(fn[0], fn[1], fn[2], fn[3]) })
	eq := b.Equation
	if eq == 0 {
		eq = glapi.FUNC_ADD
	}
	set(p, "blend equation", func(s *stateCache) *cached[glapi.Enum] { return &s.blendEquation }, eq,
		func(f glapi.Functions) { f.BlendEquation(eq) })
	c := white
	if b.Color != nil {
		c = *b.Color
	}
	set(p, "blend color", func(s *stateCache) *cached[[4]float32] { return &s.blendColor }, c,
		func(f glapi.Functions) { f.BlendColor(c[0], c[1], c[2], c[3]) })
}

func (p *planner) cull(face glapi.Enum) {
	if face == 0 {
		p.enable("cull", glapi.CULL_FACE, cullEnabled, false)
		return
	}
	p.enable("cull", glapi.CULL_FACE, cullEnabled, true)
	set(p, "cull face", func(s *stateCache) *cached[glapi.Enum] { return &s.cullFace }, face,
		func(f glapi.Functions) { f.CullFace(face) })
}

func (p *planner) scissor(r *image.Rectangle) {
	if r == nil {
		p.enable("scissor test", glapi.SCISSOR_TEST, scissorTest, false)
		return
	}
	p.enable("scissor test", glapi.SCISSOR_TEST, scissorTest, true)
	rect := [4]int{r.Min.X, r.Min.Y, r.Dx(), r.Dy()}
	set(p, "scissor", func(s *stateCache) *cached[[4]int] { return &s.scissor }, rect,
		func(f glapi.Functions) { f.Scissor(rect[0], rect[1], rect[2], rect[3]) })
}

func (p *planner) polygonMode(mode glapi.Enum) {
	if mode == 0 {
		mode = glapi.FILL
	}
	set(p, "polygon mode", func(s *stateCache) *cached[glapi.Enum] { return &s.polygonMode }, mode,
		func(f glapi.Functions) { f.PolygonMode(glapi.FRONT_AND_BACK, mode) })
}

func (p *planner) pointSize(size float32) {
	if size == 0 {
		size = 1
	}
	set(p, "point size", func(s *stateCache) *cached[float32] { return &s.pointSize }, size,
		func(f glapi.Functions) { f.PointSize(size) })
}

func clipDistance(i int, on bool) func(glapi.Functions) {
	cap := glapi.CLIP_DISTANCE0 + glapi.Enum(i)
	return func(f glapi.Functions) {
		if on {
			f.Enable(cap)
		} else {
			f.Disable(cap)
		}
	}
}

func commitClipDistances(n int) func(*stateCache) {
	return func(s *stateCache) { s.clipDistances = known(n) }
}

// clipDistances toggles clip distance slots one index at a time. From
// a known count only the slots between the old and new counts are
// touched; from an unknown count every slot is set.
func (p *planner) clipDistances(n int) {
	const aspect = "clip distances"
	cur := p.next.clipDistances
	if cur.is(n) {
		return
	}
	if cur.ok {
		for i := cur.v; i < n; i++ {
			p.add(aspect, clipDistance(i, true), commitClipDistances(i+1))
		}
		for i := cur.v - 1; i >= n; i-- {
			p.add(aspect, clipDistance(i, false), commitClipDistances(i))
		}
		return
	}
	limit := p.caps.MaxClipDistances
	if limit == 0 {
		p.add(aspect, nil, commitClipDistances(n))
		return
	}
	for i := range limit {
		var commit func(*stateCache)
		if i == limit-1 {
			commit = commitClipDistances(n)
		}
		p.add(aspect, clipDistance(i, i < n), commit)
	}
}

// clipConvention returns origin and depth with zero values replaced
// by the defaults of a context without clip control.
func clipConvention(origin, depth glapi.Enum) (glapi.Enum, glapi.Enum) {
	if origin == 0 {
		origin = glapi.LOWER_LEFT
	}
	if depth == 0 {
		depth = glapi.NEGATIVE_ONE_TO_ONE
	}
	return origin, depth
}

func (p *planner) clipControl(origin, depth glapi.Enum) {
	origin, depth = clipConvention(origin, depth)
	cc := [2]glapi.Enum{origin, depth}
	field := func(s *stateCache) *cached[[2]glapi.Enum] { return &s.clipControl }
	if !p.caps.Features.Has(FeatureClipControl) {
		// the defaults are always in effect without clip control
		if !field(&p.next).is(cc) {
			p.add("clip control", nil, func(s *stateCache) { s.clipControl = known(cc) })
		}
		return
	}
	set(p, "clip control", field, cc, func(f glapi.Functions) { f.ClipControl(origin, depth) })
}

func depthTest(s *stateCache) *cached[bool]    { return &s.depthTest }
func depthClamp(s *stateCache) *cached[bool]   { return &s.depthClamp }
func blendEnabled(s *stateCache) *cached[bool] { return &s.blend }
func cullEnabled(s *stateCache) *cached[bool]  { return &s.cull }
func scissorTest(s *stateCache) *cached[bool]  { return &s.scissorTest }
