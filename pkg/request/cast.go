package request

// castPath addresses a param location for id reduction. The canonical
// representation is always a path: a top-level cast key is stored as a
// one-element path, so SimpleKey("x") and the path ["x"] are the same
// target and dedupe against each other.
type castPath []string

func (p castPath) equal(o castPath) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

func (p castPath) clone() castPath {
	out := make(castPath, len(p))
	copy(out, p)
	return out
}

// applyCasts rewrites params so every cast target holding a structured
// reference is reduced to its plain id. It is total: a missing or
// non-mapping step along a path makes that target a no-op, a leaf that is
// neither a string nor a recognizable reference is left unchanged, and the
// result is always a complete params mapping. Input maps are never mutated;
// copies are made only along rewritten paths.
func applyCasts(params Params, casts []castPath) Params {
	for _, p := range casts {
		params, _ = castAt(params, p)
	}
	return params
}

// castAt applies a single cast target, reporting whether anything changed.
func castAt(params Params, path castPath) (Params, bool) {
	head := path[0]
	v, ok := params[head]
	if !ok {
		return params, false
	}

	if len(path) == 1 {
		if _, already := v.(string); already {
			return params, false
		}
		id, ok := idOf(v)
		if !ok {
			return params, false
		}
		out := cloneParams(params)
		out[head] = id
		return out, true
	}

	child, ok := asParams(v)
	if !ok {
		return params, false
	}
	rewritten, changed := castAt(child, path[1:])
	if !changed {
		return params, false
	}
	out := cloneParams(params)
	out[head] = rewritten
	return out, true
}

// asParams views a value as a params mapping when it is one.
func asParams(v any) (Params, bool) {
	switch t := v.(type) {
	case Params:
		return t, true
	case map[string]any:
		return Params(t), true
	}
	return nil, false
}

func cloneParams(p Params) Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
