package i18n

// DeepMerge returns a new Messages containing dst overlaid with src.
// Colliding leaves take the value from src; colliding nested maps are merged
// recursively; non-colliding keys from both sides are kept. Neither input is
// mutated and the result shares no nested maps with them.
func DeepMerge(dst, src Messages) Messages {
	result := dst.Clone()
	if result == nil {
		result = make(Messages, len(src))
	}
	mergeInto(result, src)
	return result
}

// mergeInto overlays src onto dst in place. Nested values from src are copied.
func mergeInto(dst, src Messages) {
	for key, srcVal := range src {
		srcMap, srcIsMap := asMessages(srcVal)
		if !srcIsMap {
			dst[key] = cloneValue(srcVal)
			continue
		}

		if dstMap, ok := asMessages(dst[key]); ok {
			mergeInto(dstMap, srcMap)
			dst[key] = dstMap
			continue
		}

		dst[key] = srcMap.Clone()
	}
}

// Clone returns a deep copy of m. Nested maps and slices are copied, leaves are shared.
func (m Messages) Clone() Messages {
	if m == nil {
		return nil
	}
	out := make(Messages, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case Messages:
		return val.Clone()
	case map[string]any:
		return Messages(val).Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// asMessages reports whether v is a nested message map and returns it typed.
func asMessages(v any) (Messages, bool) {
	switch val := v.(type) {
	case Messages:
		return val, true
	case map[string]any:
		return Messages(val), true
	default:
		return nil, false
	}
}
