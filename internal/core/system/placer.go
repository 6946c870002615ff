package system

// Placer routes auto-included candidates into a runtime's phase groups. The
// composition engine delegates to it once per build, after groups exist and
// before any manual appends; it does not compute phase routing itself.
type Placer interface {
	Place(rt *Runtime, d Descriptor)
}

// Driver is the external per-frame loop. It receives a finished runtime at
// the end of a build and owns its ticking thereafter; once attached, groups
// are stable and safe to iterate repeatedly.
type Driver interface {
	Attach(rt *Runtime)
}

// AffinityPlacer places each candidate into the group of its declared phase.
// Candidates whose phase was not requested stay root-only.
type AffinityPlacer struct{}

func (AffinityPlacer) Place(rt *Runtime, d Descriptor) {
	g := rt.Group(d.Phase)
	if g == nil {
		return
	}
	g.Append(rt.Instance(d))
}
