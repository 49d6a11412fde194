package admin

// Normalize substitutes fallback when raw is semantically empty: the nil
// value, or an object with no fields. Anything else passes through
// unchanged. Which fields compose the fallback is per-operation knowledge
// owned by the caller.
func Normalize(raw, fallback any) any {
	if raw == nil {
		return fallback
	}
	if obj, ok := raw.(map[string]any); ok && len(obj) == 0 {
		return fallback
	}
	return raw
}
