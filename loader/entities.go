package loader

// Entities normalizes the output of an external JSON-LD expansion step
// (typically []interface{} of map[string]interface{}, as produced by
// json-gold's Expand) into the flat []map[string]any Load expects,
// unwrapping any number of nested "@graph" wrappers along the way.
func Entities(raw any) ([]map[string]any, error) {
	switch v := raw.(type) {
	case []map[string]any:
		return v, nil
	case []interface{}:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			m, ok := item.(map[string]interface{})
			if !ok {
				return nil, ErrInvalidEntity
			}
			flattened, err := flattenEntity(m)
			if err != nil {
				return nil, err
			}
			out = append(out, flattened...)
		}
		return out, nil
	case map[string]any:
		return flattenEntity(v)
	default:
		return nil, ErrInvalidEntity
	}
}

func flattenEntity(m map[string]any) ([]map[string]any, error) {
	graph, ok := m["@graph"]
	if !ok {
		return []map[string]any{m}, nil
	}
	return Entities(graph)
}
