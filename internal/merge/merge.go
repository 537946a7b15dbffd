// Package merge folds untyped configuration trees.
//
// [Deep] is the configuration merge: nested mappings are merged key by key,
// sequences found at the same key are concatenated and any other value from
// a later source replaces the earlier one. It is deliberately different from
// the one-level overlay [Shallow] used for settings, where a nested mapping
// set by the later source replaces the earlier mapping wholesale.
package merge

import (
	"fmt"
	"maps"

	"dario.cat/mergo"
)

// Deep merges srcs into a fresh map in order and returns it. The inputs are
// copied first, so neither they nor anything reachable from them is
// modified.
func Deep(srcs ...map[string]any) (map[string]any, error) {
	acc := map[string]any{}

	for i, src := range srcs {
		if err := Into(acc, src); err != nil {
			return nil, fmt.Errorf("error merging source %d: %w", i, err)
		}
	}

	return acc, nil
}

// Into deep-merges a normalized copy of src into dst, which must not be
// nil.
func Into(dst, src map[string]any) error {
	if src == nil {
		return nil
	}

	src = NormalizeMap(src)
	replaceWithSequences(dst, src)

	return mergo.Merge(&dst, src, mergo.WithOverride, mergo.WithAppendSlice)
}

// replaceWithSequences sets dst[k] to src[k] wherever src holds a sequence
// and dst holds something else, at any depth. mergo only appends a sequence
// to a sequence, so a later sequence must replace a scalar or mapping first.
func replaceWithSequences(dst, src map[string]any) {
	for k, sv := range src {
		dv, ok := dst[k]
		if !ok {
			continue
		}

		switch sv := sv.(type) {
		case []any:
			if _, isSeq := dv.([]any); !isSeq {
				dst[k] = sv
				delete(src, k)
			}
		case map[string]any:
			if dm, isMap := dv.(map[string]any); isMap {
				replaceWithSequences(dm, sv)
			}
		}
	}
}

// Shallow overlays srcs onto a fresh map one level deep: keys from later
// maps replace keys from earlier ones, nested values are not merged.
func Shallow(srcs ...map[string]any) map[string]any {
	out := map[string]any{}
	for _, src := range srcs {
		maps.Copy(out, src)
	}

	return out
}
