package brainmem

import "strconv"

// buildNested wraps value in one single-key map per segment, the last segment
// innermost. An empty segment stops the wrapping (malformed path guard).
func buildNested(segments []string, value any) any {
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == "" {
			break
		}
		value = map[string]any{segments[i]: value}
	}
	return value
}

// setPath assigns value at segments inside root, mutating root in place.
// Missing intermediate containers are created as maps.
func setPath(root any, key string, segments []string, value any) (any, error) {
	node := root
	last := len(segments) - 1
	for _, seg := range segments[:last] {
		if seg == "" {
			break
		}
		child, err := descend(node, key, seg)
		if err != nil {
			return nil, err
		}
		node = child
	}
	if err := assign(node, key, segments[last], value); err != nil {
		return nil, err
	}
	return root, nil
}

// lookupPath mirrors setPath's walk for reads.
func lookupPath(root any, segments []string) (any, bool) {
	node := root
	last := len(segments) - 1
	for _, seg := range segments[:last] {
		if seg == "" {
			break
		}
		next, ok := child(node, seg)
		if !ok {
			return nil, false
		}
		node = next
	}
	return child(node, segments[last])
}

func child(node any, seg string) (any, bool) {
	switch n := node.(type) {
	case map[string]any:
		v, ok := n[seg]
		return v, ok
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(n) {
			return nil, false
		}
		return n[i], true
	}
	return nil, false
}

func descend(node any, key, seg string) (any, error) {
	switch n := node.(type) {
	case map[string]any:
		next, ok := n[seg]
		if !ok || next == nil {
			m := map[string]any{}
			n[seg] = m
			return m, nil
		}
		if !isContainer(next) {
			return nil, &PathError{Key: key, Segment: seg, Reason: "value is not a mapping"}
		}
		return next, nil
	case []any:
		i, err := index(n, key, seg)
		if err != nil {
			return nil, err
		}
		if n[i] == nil {
			m := map[string]any{}
			n[i] = m
			return m, nil
		}
		if !isContainer(n[i]) {
			return nil, &PathError{Key: key, Segment: seg, Reason: "value is not a mapping"}
		}
		return n[i], nil
	}
	return nil, &PathError{Key: key, Segment: seg, Reason: "stored record is not a mapping"}
}

func assign(node any, key, seg string, value any) error {
	switch n := node.(type) {
	case map[string]any:
		n[seg] = value
		return nil
	case []any:
		i, err := index(n, key, seg)
		if err != nil {
			return err
		}
		n[i] = value
		return nil
	}
	return &PathError{Key: key, Segment: seg, Reason: "stored record is not a mapping"}
}

func index(list []any, key, seg string) (int, error) {
	i, err := strconv.Atoi(seg)
	if err != nil {
		return 0, &PathError{Key: key, Segment: seg, Reason: "list index is not a number"}
	}
	if i < 0 || i >= len(list) {
		return 0, &PathError{Key: key, Segment: seg, Reason: "list index out of range"}
	}
	return i, nil
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}
