package arr

// Extend copies every key of each source onto target, in source order.
// Later sources overwrite earlier ones and keys already on target. The same
// target map is returned, never a copy.
//
//	conf := map[string]any{"retries": 1}
//	arr.Extend(conf, map[string]any{"retries": 3}, map[string]any{"verbose": true})
//	// conf → {retries: 3, verbose: true}
//
// A nil target cannot be written to and is returned unchanged.
func Extend[K comparable, V any](target map[K]V, sources ...map[K]V) map[K]V {
	if target == nil {
		return target
	}
	for _, src := range sources {
		for k, v := range src {
			target[k] = v
		}
	}
	return target
}

// Defaults fills in keys of target that are absent, taking values from the
// sources in order: the first source that supplies a missing key wins. A key
// present on target is never overwritten, even when its value is the zero
// value. Returns target.
func Defaults[K comparable, V any](target map[K]V, sources ...map[K]V) map[K]V {
	if target == nil {
		return target
	}
	for _, src := range sources {
		for k, v := range src {
			if _, ok := target[k]; !ok {
				target[k] = v
			}
		}
	}
	return target
}
