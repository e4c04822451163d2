package content

import (
	"fmt"
	"strings"
	"time"
)

// Frontmatter field accessors. YAML gives back loosely typed values (a tag
// list may be a sequence or a space separated string; a date may already be
// a time.Time), so interpretation is centralized here.

func fieldString(fields map[string]any, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func fieldBool(fields map[string]any, key string) bool {
	v, ok := fields[key]
	if !ok {
		return false
	}
	switch vv := v.(type) {
	case bool:
		return vv
	case string:
		return strings.EqualFold(strings.TrimSpace(vv), "true")
	default:
		return false
	}
}

// fieldStringList accepts a YAML sequence or a single space separated
// string, both of which the renderer treats as lists.
func fieldStringList(fields map[string]any, key string) []string {
	v, ok := fields[key]
	if !ok || v == nil {
		return nil
	}
	switch vv := v.(type) {
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			s := strings.TrimSpace(fmt.Sprint(item))
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return vv
	case string:
		return strings.Fields(vv)
	default:
		s := strings.TrimSpace(fmt.Sprint(vv))
		if s == "" {
			return nil
		}
		return []string{s}
	}
}

// frontmatterDateLayouts lists accepted date formats, most specific first.
var frontmatterDateLayouts = []string{
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
}

func fieldTime(fields map[string]any, key string) (time.Time, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return time.Time{}, false
	}
	switch vv := v.(type) {
	case time.Time:
		return vv, true
	case string:
		s := strings.TrimSpace(vv)
		for _, layout := range frontmatterDateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
