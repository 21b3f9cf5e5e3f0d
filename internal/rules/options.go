package rules

// Options is a rule's resolved option set: defaults merged with whatever
// the config layer decoded from the user's YAML. Values come straight out
// of gopkg.in/yaml.v3 decoding into map[string]interface{}, so lookups
// tolerate the usual YAML-decoded shapes (int vs float64, []interface{}
// for sequences) rather than assuming Go-native types.
type Options map[string]any

func (o Options) Int(key string, def int) int {
	switch v := o[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}
	return def
}

func (o Options) String(key, def string) string {
	if v, ok := o[key].(string); ok {
		return v
	}
	return def
}

func (o Options) StringSlice(key string, def []string) []string {
	v, ok := o[key]
	if !ok {
		return def
	}
	switch vv := v.(type) {
	case []string:
		return vv
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return def
}

// Merged returns a new Options with def's entries as a base, overridden by
// o's entries. def is never mutated.
func (o Options) Merged(def Options) Options {
	out := make(Options, len(def)+len(o))
	for k, v := range def {
		out[k] = v
	}
	for k, v := range o {
		out[k] = v
	}
	return out
}
