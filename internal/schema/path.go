package schema

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// NewDocument returns a fresh, fully absent declaration. Callers mutate the
// returned value freely; instances are never shared.
func NewDocument() *Document {
	return &Document{}
}

type pathSeg struct {
	name   string
	index  int
	indexed bool
}

// parsePath splits a dotted path such as
// "position[0].ware.wareWarenbezeichnung" into segments.
func parsePath(path string) ([]pathSeg, error) {
	if path == "" {
		return nil, fmt.Errorf("schema: empty path")
	}
	parts := strings.Split(path, ".")
	segs := make([]pathSeg, 0, len(parts))
	for _, p := range parts {
		seg := pathSeg{name: p, index: -1}
		if i := strings.IndexByte(p, '['); i >= 0 {
			if !strings.HasSuffix(p, "]") {
				return nil, fmt.Errorf("schema: malformed segment %q", p)
			}
			idx, err := strconv.Atoi(p[i+1 : len(p)-1])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("schema: malformed index in segment %q", p)
			}
			seg.name = p[:i]
			seg.index = idx
			seg.indexed = true
		}
		if seg.name == "" {
			return nil, fmt.Errorf("schema: empty segment in path %q", path)
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func jsonTag(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}
	return tag
}

func fieldByTag(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if jsonTag(t.Field(i)) == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// resolve walks the document to the value addressed by segs. With grow set,
// slice segments are extended with zero-value template elements so the
// addressed element exists; existing elements are never replaced.
func (d *Document) resolve(segs []pathSeg, grow bool) (reflect.Value, error) {
	v := reflect.ValueOf(d).Elem()
	for i, seg := range segs {
		if v.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("schema: segment %q addresses non-struct", seg.name)
		}
		f, ok := fieldByTag(v, seg.name)
		if !ok {
			return reflect.Value{}, fmt.Errorf("schema: unknown field %q", seg.name)
		}
		if seg.indexed {
			if f.Kind() != reflect.Slice {
				return reflect.Value{}, fmt.Errorf("schema: field %q is not an array", seg.name)
			}
			if seg.index >= f.Len() {
				if !grow {
					return reflect.Value{}, fmt.Errorf("schema: index %d out of range for %q", seg.index, seg.name)
				}
				for f.Len() <= seg.index {
					f.Set(reflect.Append(f, reflect.Zero(f.Type().Elem())))
				}
			}
			v = f.Index(seg.index)
			continue
		}
		if i == len(segs)-1 {
			return f, nil
		}
		v = f
	}
	return v, nil
}

// Set writes val to the leaf addressed by path, materializing array elements
// on demand. The leaf must be a string leaf.
func (d *Document) Set(path, val string) error {
	segs, err := parsePath(path)
	if err != nil {
		return err
	}
	leaf, err := d.resolve(segs, true)
	if err != nil {
		return err
	}
	if leaf.Kind() != reflect.Ptr || leaf.Type().Elem().Kind() != reflect.String {
		return fmt.Errorf("schema: path %q does not address a leaf", path)
	}
	leaf.Set(reflect.ValueOf(&val))
	return nil
}

// Get reads the leaf at path. The second return is false when the path does
// not resolve or the leaf is absent.
func (d *Document) Get(path string) (string, bool) {
	segs, err := parsePath(path)
	if err != nil {
		return "", false
	}
	leaf, err := d.resolve(segs, false)
	if err != nil {
		return "", false
	}
	if leaf.Kind() != reflect.Ptr || leaf.IsNil() {
		return "", false
	}
	if leaf.Type().Elem().Kind() != reflect.String {
		return "", false
	}
	return leaf.Elem().String(), true
}

// MergeObject merges src into the struct block addressed by path. Source keys
// are matched against field json tags with matchKey; when both sides are
// nested objects the merge recurses, otherwise the source value overwrites
// the target leaf. Keys that match no field are returned so the caller can
// route them elsewhere.
func (d *Document) MergeObject(path string, src map[string]any, matchKey func(key, tag string) bool) ([]string, error) {
	segs, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	target, err := d.resolve(segs, true)
	if err != nil {
		return nil, err
	}
	if target.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: path %q does not address an object", path)
	}
	return mergeStruct(target, src, matchKey), nil
}

func mergeStruct(target reflect.Value, src map[string]any, matchKey func(key, tag string) bool) []string {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var unmatched []string
	t := target.Type()
	for _, key := range keys {
		val := src[key]
		matched := false
		for i := 0; i < t.NumField(); i++ {
			tag := jsonTag(t.Field(i))
			if tag == "" || !matchKey(key, tag) {
				continue
			}
			mergeField(target.Field(i), val, matchKey)
			matched = true
			break
		}
		if !matched {
			unmatched = append(unmatched, key)
		}
	}
	return unmatched
}

func mergeField(f reflect.Value, val any, matchKey func(key, tag string) bool) {
	switch f.Kind() {
	case reflect.Struct:
		if obj, ok := val.(map[string]any); ok {
			mergeStruct(f, obj, matchKey)
			return
		}
		// Scalar into an object block: nothing sensible to overwrite.
	case reflect.Ptr:
		if f.Type().Elem().Kind() == reflect.String {
			s := RenderScalar(val)
			f.Set(reflect.ValueOf(&s))
		}
	case reflect.Slice:
		if list, ok := val.([]any); ok && f.Type().Elem().Kind() == reflect.Struct {
			for i, el := range list {
				obj, ok := el.(map[string]any)
				if !ok {
					continue
				}
				for f.Len() <= i {
					f.Set(reflect.Append(f, reflect.Zero(f.Type().Elem())))
				}
				mergeStruct(f.Index(i), obj, matchKey)
			}
		}
	}
}

// RenderScalar converts a decoded JSON value to its string leaf form.
// Numbers lose any trailing ".0" that json decoding introduces.
func RenderScalar(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

var (
	leafPathsOnce sync.Once
	leafPathsAll  []string
)

// LeafPaths returns every addressable string-leaf path of the document tree,
// with array segments addressed at index 0, in sorted order.
func LeafPaths() []string {
	leafPathsOnce.Do(func() {
		leafPathsAll = collectLeafPaths(reflect.TypeOf(Document{}), "")
		sort.Strings(leafPathsAll)
	})
	return leafPathsAll
}

// LeafPathsUnder returns the leaf paths below the given prefix segment, e.g.
// "kopf" or "position[0]".
func LeafPathsUnder(prefix string) []string {
	var out []string
	for _, p := range LeafPaths() {
		if strings.HasPrefix(p, prefix+".") {
			out = append(out, p)
		}
	}
	return out
}

func collectLeafPaths(t reflect.Type, prefix string) []string {
	var out []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := jsonTag(f)
		if tag == "" {
			continue
		}
		path := tag
		if prefix != "" {
			path = prefix + "." + tag
		}
		switch f.Type.Kind() {
		case reflect.Ptr:
			if f.Type.Elem().Kind() == reflect.String {
				out = append(out, path)
			}
		case reflect.Struct:
			out = append(out, collectLeafPaths(f.Type, path)...)
		case reflect.Slice:
			if f.Type.Elem().Kind() == reflect.Struct {
				out = append(out, collectLeafPaths(f.Type.Elem(), path+"[0]")...)
			}
		}
	}
	return out
}
