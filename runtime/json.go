package runtime

import "encoding/json"

// EncodeJSON implements json_encode: converts a Value tree to its JSON
// text form via encoding/json, going through an interface{} shape exactly
// the way json_decode's DecodeJSON builds one back, so
// json_decode(json_encode(v)) == v for any value built solely out of
// int/bool/string/null/array/dict (spec.md §8's round-trip property;
// struct and function values are not JSON-representable and encode as
// their ToDisplayString placeholder).
func EncodeJSON(v Value) (Value, error) {
	data, err := toInterface(v)
	if err != nil {
		return Value{}, err
	}
	bytes, err := json.Marshal(data)
	if err != nil {
		return Value{}, err
	}
	return String(string(bytes)), nil
}

// DecodeJSON implements json_decode: parses text and rebuilds a Value
// tree, with JSON numbers always landing as TagInt (spec.md's runtime has
// no float tag; a fractional JSON number truncates toward zero).
func DecodeJSON(text string) (Value, error) {
	var data interface{}
	if err := json.Unmarshal([]byte(text), &data); err != nil {
		return Value{}, err
	}
	return fromInterface(data), nil
}

func toInterface(v Value) (interface{}, error) {
	switch v.Tag {
	case TagInt:
		return v.Int, nil
	case TagBool:
		return v.Bool, nil
	case TagString:
		return v.Str, nil
	case TagNull:
		return nil, nil
	case TagArray:
		elems := v.Arr.Elements()
		out := make([]interface{}, len(elems))
		for i, e := range elems {
			conv, err := toInterface(e)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case TagDict:
		out := make(map[string]interface{}, v.Dict.Len())
		for _, k := range v.Dict.Keys() {
			conv, err := toInterface(v.Dict.Get(k))
			if err != nil {
				return nil, err
			}
			out[k] = conv
		}
		return out, nil
	default:
		return ToDisplayString(v), nil
	}
}

func fromInterface(val interface{}) Value {
	switch v := val.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(v)
	case string:
		return String(v)
	case float64:
		return Int(int64(v))
	case []interface{}:
		arr := NewArray()
		for _, e := range v {
			arr.Push(fromInterface(e))
		}
		return ArrayValue(arr)
	case map[string]interface{}:
		d := NewDict()
		for k, e := range v {
			d.Set(k, fromInterface(e))
		}
		return DictValue(d)
	default:
		return Null()
	}
}
