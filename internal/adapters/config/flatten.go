package config

import (
	"sort"

	"go.ccview.dev/ccview/internal/core/domain"
)

// Flatten converts a decoded top-level configuration object into
// dot-delimited entries. Top-level sections that are objects contribute one
// entry per child key ("mcpServers.server1"); every other top-level value
// becomes a single entry under its own key. Deeper structure stays inside
// the entry value, so values may be nested objects or arrays.
//
// Keys are emitted in sorted order so the same file content always yields
// the same entry list, which the resolver's content-keyed cache depends on.
func Flatten(obj map[string]any) []domain.ConfigEntry {
	topKeys := make([]string, 0, len(obj))
	for k := range obj {
		topKeys = append(topKeys, k)
	}
	sort.Strings(topKeys)

	entries := make([]domain.ConfigEntry, 0, len(obj))
	for _, top := range topKeys {
		section, isObject := obj[top].(map[string]any)
		if !isObject {
			entries = append(entries, domain.ConfigEntry{Key: top, Value: obj[top]})
			continue
		}

		childKeys := make([]string, 0, len(section))
		for k := range section {
			childKeys = append(childKeys, k)
		}
		sort.Strings(childKeys)

		if len(childKeys) == 0 {
			// An empty section is still a legitimate value.
			entries = append(entries, domain.ConfigEntry{Key: top, Value: section})
			continue
		}

		for _, child := range childKeys {
			entries = append(entries, domain.ConfigEntry{
				Key:   top + "." + child,
				Value: section[child],
			})
		}
	}
	return entries
}
