package syllabus

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/syllabus-backend/internal/domain"
)

// DetectChanges returns the field-level differences between two documents.
// Paths use the document's serialized field names joined by dots, with list
// positions as numeric segments. Lists are compared position by position.
func DetectChanges(before, after domain.CourseDocument) ([]domain.FieldChange, error) {
	a, err := toTree(before)
	if err != nil {
		return nil, fmt.Errorf("detect changes: %w", err)
	}
	b, err := toTree(after)
	if err != nil {
		return nil, fmt.Errorf("detect changes: %w", err)
	}

	changes := []domain.FieldChange{}
	walk("", a, b, &changes)
	return changes, nil
}

func toTree(doc domain.CourseDocument) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func walk(path string, a, b any, out *[]domain.FieldChange) {
	switch av := a.(type) {
	case map[string]any:
		if bv, ok := b.(map[string]any); ok {
			walkMaps(path, av, bv, out)
			return
		}
	case []any:
		if bv, ok := b.([]any); ok {
			walkLists(path, av, bv, out)
			return
		}
	}
	if isEmpty(a) && isEmpty(b) {
		return
	}
	if !reflect.DeepEqual(a, b) {
		*out = append(*out, domain.FieldChange{Path: path, OldValue: a, NewValue: b, Type: domain.ChangeTypeUpdate})
	}
}

func walkMaps(path string, a, b map[string]any, out *[]domain.FieldChange) {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	for _, k := range keys {
		av, inA := a[k]
		bv, inB := b[k]
		p := join(path, k)
		switch {
		case !inA:
			*out = append(*out, domain.FieldChange{Path: p, NewValue: bv, Type: domain.ChangeTypeAdd})
		case !inB:
			*out = append(*out, domain.FieldChange{Path: p, OldValue: av, Type: domain.ChangeTypeDelete})
		default:
			walk(p, av, bv, out)
		}
	}
}

func walkLists(path string, a, b []any, out *[]domain.FieldChange) {
	for i := 0; i < max(len(a), len(b)); i++ {
		p := join(path, strconv.Itoa(i))
		switch {
		case i >= len(a):
			*out = append(*out, domain.FieldChange{Path: p, NewValue: b[i], Type: domain.ChangeTypeAdd})
		case i >= len(b):
			*out = append(*out, domain.FieldChange{Path: p, OldValue: a[i], Type: domain.ChangeTypeDelete})
		default:
			walk(p, a[i], b[i], out)
		}
	}
}

// isEmpty treats null and empty lists as the same value.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case []any:
		return len(t) == 0
	}
	return false
}

func join(path, seg string) string {
	if path == "" {
		return seg
	}
	return path + "." + seg
}

// UnifiedDiff renders a unified diff of the YAML form of two documents.
func UnifiedDiff(before, after domain.CourseDocument, fromLabel, toLabel string) (string, error) {
	a, err := yaml.Marshal(before)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", fromLabel, err)
	}
	b, err := yaml.Marshal(after)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", toLabel, err)
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: fromLabel,
		ToFile:   toLabel,
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("unified diff: %w", err)
	}
	return diff, nil
}

func summarizeChanges(changes []domain.FieldChange) string {
	var add, upd, del int
	for _, c := range changes {
		switch c.Type {
		case domain.ChangeTypeAdd:
			add++
		case domain.ChangeTypeUpdate:
			upd++
		case domain.ChangeTypeDelete:
			del++
		}
	}
	return fmt.Sprintf("%d added, %d updated, %d removed", add, upd, del)
}
