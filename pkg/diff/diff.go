// Package diff строит структурный diff между двумя JSON-подобными снимками
// (map[string]any, []any, скаляры) и раскладывает его на added/updated/deleted.
//
// Массивы сравниваются поэлементно, ключом служит индекс ("0", "1", ...),
// объекты - по ключам без учёта порядка.
package diff

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

type Kind int

const (
	Added Kind = iota + 1
	Updated
	Deleted
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Updated:
		return "updated"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Change - одно изменение по пути Path.
// Для Added заполнен только New, для Deleted только Old.
type Change struct {
	Path []string
	Kind Kind
	Old  any
	New  any
}

type Diff struct {
	Changes []Change
}

// Compute сравнивает prev и next. Результат детерминирован: изменения
// отсортированы по пути.
func Compute(prev, next any) Diff {
	var d Diff
	walk(nil, prev, next, &d)

	sort.SliceStable(d.Changes, func(i, j int) bool {
		return lessPath(d.Changes[i].Path, d.Changes[j].Path)
	})
	return d
}

// Snapshot переводит произвольную структуру в JSON-подобное представление,
// пригодное для Compute. Числа остаются json.Number, чтобы не терять точность.
func Snapshot(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (d Diff) IsEmpty() bool {
	return len(d.Changes) == 0
}

// Updated возвращает новое значение по точному пути, если оно было
// добавлено или изменено.
func (d Diff) Updated(path ...string) (any, bool) {
	for _, c := range d.Changes {
		if c.Kind == Deleted {
			continue
		}
		if equalPath(c.Path, path) {
			return c.New, true
		}
	}
	return nil, false
}

// Fields собирает дерево новых значений под prefix, объединяя added и updated:
// поле, которого раньше не было, и изменённое поле применяются одинаково.
func (d Diff) Fields(prefix ...string) map[string]any {
	root := make(map[string]any)

	for _, c := range d.Changes {
		if c.Kind == Deleted || !hasPrefix(c.Path, prefix) {
			continue
		}

		rest := c.Path[len(prefix):]
		if len(rest) == 0 {
			// изменился весь узел целиком, например null -> объект
			if obj, ok := c.New.(map[string]any); ok {
				for k, v := range obj {
					root[k] = v
				}
			}
			continue
		}
		setPath(root, rest, c.New)
	}
	return root
}

// Patch группирует Fields(prefix) по следующему сегменту пути.
// Для prefix "products" это id позиции -> поле -> новое значение.
func (d Diff) Patch(prefix ...string) map[string]map[string]any {
	groups := make(map[string]map[string]any)
	for key, value := range d.Fields(prefix...) {
		fields, ok := value.(map[string]any)
		if !ok {
			continue
		}
		groups[key] = fields
	}
	return groups
}

// Detailed - вложенное представление {"added":..., "updated":..., "deleted":...},
// которое пишется в журнал заказа. Если заменён весь снимок (скаляр на
// скаляр, объект на массив), секция содержит само новое значение.
func (d Diff) Detailed() map[string]any {
	out := map[string]any{
		Added.String():   map[string]any{},
		Updated.String(): map[string]any{},
		Deleted.String(): map[string]any{},
	}

	for _, c := range d.Changes {
		value := c.New
		if c.Kind == Deleted {
			value = nil
		}

		if len(c.Path) == 0 {
			out[c.Kind.String()] = value
			continue
		}

		tree, ok := out[c.Kind.String()].(map[string]any)
		if !ok {
			continue
		}
		setPath(tree, c.Path, value)
	}
	return out
}

func (d Diff) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Detailed())
}

func walk(path []string, prev, next any, d *Diff) {
	prevObj, prevOk := asObject(prev)
	nextObj, nextOk := asObject(next)

	if prevOk && nextOk && sameContainer(prev, next) {
		for key, prevValue := range prevObj {
			nextValue, exists := nextObj[key]
			if !exists {
				d.Changes = append(d.Changes, Change{Path: child(path, key), Kind: Deleted, Old: prevValue})
				continue
			}
			walk(child(path, key), prevValue, nextValue, d)
		}

		for key, nextValue := range nextObj {
			if _, exists := prevObj[key]; !exists {
				d.Changes = append(d.Changes, Change{Path: child(path, key), Kind: Added, New: nextValue})
			}
		}
		return
	}

	if !reflect.DeepEqual(prev, next) {
		d.Changes = append(d.Changes, Change{Path: path, Kind: Updated, Old: prev, New: next})
	}
}

func asObject(v any) (map[string]any, bool) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, true
	case []any:
		obj := make(map[string]any, len(typed))
		for i, item := range typed {
			obj[strconv.Itoa(i)] = item
		}
		return obj, true
	default:
		return nil, false
	}
}

func sameContainer(a, b any) bool {
	_, aMap := a.(map[string]any)
	_, bMap := b.(map[string]any)
	return aMap == bMap
}

func child(path []string, key string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, key)
}

func setPath(root map[string]any, path []string, value any) {
	if len(path) == 0 {
		return
	}

	node := root
	for _, key := range path[:len(path)-1] {
		next, ok := node[key].(map[string]any)
		if !ok {
			next = make(map[string]any)
			node[key] = next
		}
		node = next
	}
	node[path[len(path)-1]] = value
}

func hasPrefix(path, prefix []string) bool {
	if len(path) < len(prefix) {
		return false
	}
	return equalPath(path[:len(prefix)], prefix)
}

func equalPath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func lessPath(a, b []string) bool {
	return strings.Join(a, "\x00") < strings.Join(b, "\x00")
}
