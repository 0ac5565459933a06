// Package domain contains the core types and algorithms for configuration
// inheritance resolution.
package domain

// Value is a decoded JSON value: nil, bool, string, float64, []any, or
// map[string]any. Entries are produced by the parsing layer, which decodes
// with encoding/json, so no other dynamic types occur in practice.
type Value = any

// ScopeType identifies the configuration tier an entry originates from.
type ScopeType string

const (
	// ScopeUser is the user-wide configuration tier.
	ScopeUser ScopeType = "user"
	// ScopeProject is the project-local configuration tier.
	ScopeProject ScopeType = "project"
	// ScopeLocal is the project-local, not-checked-in configuration tier.
	ScopeLocal ScopeType = "local"
)

// Default scope priorities. Higher priority wins when the same key appears
// in multiple scopes. The ordering is a policy the loader applies when it
// tags entries; the resolution core only honors list order.
const (
	PriorityUser    = 1
	PriorityProject = 2
	PriorityLocal   = 3
)

// SourceInfo records where a configuration entry was defined.
type SourceInfo struct {
	Type     ScopeType `json:"type"`
	Path     string    `json:"path"`
	Priority int       `json:"priority"`
}

// ConfigEntry is a single flattened configuration item. Key is a
// dot-delimited path into the original nested object (e.g.
// "mcpServers.server1"). Uniqueness of Key within one scope's entry list is
// assumed, not re-validated here.
type ConfigEntry struct {
	Key    string      `json:"key"`
	Value  Value       `json:"value"`
	Source *SourceInfo `json:"source,omitempty"`
}

// ClassifiedEntry is one key's classification result. OriginalValue is set
// only for overridden entries, where it carries the superseded user-scope
// value.
type ClassifiedEntry struct {
	Key           string `json:"key"`
	Value         Value  `json:"value"`
	OriginalValue Value  `json:"originalValue,omitempty"`
}

// Classification partitions the union of both input key sets into three
// disjoint buckets. Every key present in either input appears in exactly
// one bucket.
type Classification struct {
	Inherited       []ClassifiedEntry `json:"inherited"`
	Overridden      []ClassifiedEntry `json:"overridden"`
	ProjectSpecific []ClassifiedEntry `json:"projectSpecific"`
}

// InheritanceChain is the ordered, source-tagged entry list together with
// the flattened key-to-value resolution obtained by folding it left to
// right. Entries must be pre-sorted by ascending priority by the caller;
// list order is the only priority signal the fold honors.
type InheritanceChain struct {
	Entries  []ConfigEntry    `json:"entries"`
	Resolved map[string]Value `json:"resolved"`
}

// ResolvedView pairs a classification with the chain it was derived from.
// It is the unit the export layer renders.
type ResolvedView struct {
	Classification Classification    `json:"classification"`
	Chain          *InheritanceChain `json:"chain"`
}
