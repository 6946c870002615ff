package system

// Rules is the three-set filter configuration for automatic inclusion:
// categories opted in, names excluded exactly, and descriptor references
// excluded. The exclusion sets only narrow an already-opted-in set; a
// category never opted in is never auto-included. A category absent from
// the catalog matches nothing and is not an error — catalogs vary across
// host configurations.
type Rules struct {
	categories   map[string]struct{}
	ignoredNames map[string]struct{}
	ignoredRefs  map[string]struct{}
}

func (r *Rules) IncludeCategory(name string) {
	if r.categories == nil {
		r.categories = make(map[string]struct{}, 4)
	}
	r.categories[name] = struct{}{}
}

func (r *Rules) ExcludeName(name string) {
	if r.ignoredNames == nil {
		r.ignoredNames = make(map[string]struct{}, 4)
	}
	r.ignoredNames[name] = struct{}{}
}

func (r *Rules) ExcludeDescriptor(d Descriptor) {
	if r.ignoredRefs == nil {
		r.ignoredRefs = make(map[string]struct{}, 4)
	}
	r.ignoredRefs[d.Name] = struct{}{}
}

func (r Rules) admits(d Descriptor) bool {
	if _, ok := r.categories[d.Category]; !ok {
		return false
	}
	if _, ok := r.ignoredNames[d.Name]; ok {
		return false
	}
	if _, ok := r.ignoredRefs[d.Name]; ok {
		return false
	}
	return true
}

// Select returns, in catalog order, the descriptors admitted by the rules.
// Pure: the input is never mutated, and two calls with the same inputs
// return the same subset. An empty category set selects nothing — callers
// opt in to every category they want.
func Select(catalog []Descriptor, r Rules) []Descriptor {
	if len(r.categories) == 0 {
		return nil
	}
	var out []Descriptor
	for _, d := range catalog {
		if r.admits(d) {
			out = append(out, d)
		}
	}
	return out
}
