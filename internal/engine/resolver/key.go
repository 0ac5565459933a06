package resolver

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.ccview.dev/ccview/internal/core/domain"
)

// Type tags keep structurally different values from colliding: without
// them the string "1" and the number 1 could serialize identically.
const (
	tagNull   = 'z'
	tagBool   = 'b'
	tagString = 's'
	tagNumber = 'f'
	tagArray  = '['
	tagEnd    = ']'
	tagObject = '{'
	tagSource = '@'
)

// ContentKey computes a stable 64-bit hash of the logical content of an
// entry list. Two lists with element-wise equal content map to the same
// key regardless of object identity; object keys are serialized in sorted
// order while array elements stay order-sensitive.
func ContentKey(entries []domain.ConfigEntry) uint64 {
	d := xxhash.New()
	for _, e := range entries {
		_, _ = d.WriteString(e.Key)
		_, _ = d.Write([]byte{0})
		writeValue(d, e.Value)
		writeSource(d, e.Source)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

func writeValue(d *xxhash.Digest, v domain.Value) {
	switch val := v.(type) {
	case nil:
		_, _ = d.Write([]byte{tagNull})
	case bool:
		b := byte(0)
		if val {
			b = 1
		}
		_, _ = d.Write([]byte{tagBool, b})
	case string:
		_, _ = d.Write([]byte{tagString})
		_ = binary.Write(d, binary.LittleEndian, uint64(len(val)))
		_, _ = d.WriteString(val)
	case float64:
		_, _ = d.Write([]byte{tagNumber})
		_ = binary.Write(d, binary.LittleEndian, math.Float64bits(val))
	case []any:
		_, _ = d.Write([]byte{tagArray})
		for _, elem := range val {
			writeValue(d, elem)
		}
		_, _ = d.Write([]byte{tagEnd})
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		_, _ = d.Write([]byte{tagObject})
		for _, k := range keys {
			_ = binary.Write(d, binary.LittleEndian, uint64(len(k)))
			_, _ = d.WriteString(k)
			writeValue(d, val[k])
		}
		_, _ = d.Write([]byte{tagEnd})
	default:
		// Non-JSON value smuggled in by a caller. Hash its printed form so
		// the cache stays correct, if pessimistic about hits.
		_, _ = fmt.Fprintf(d, "?%v", val)
	}
}

// writeSource folds the source tag into the key: two lists with equal
// key/value content but different scope annotations produce different
// chains, so they must not share a cache slot.
func writeSource(d *xxhash.Digest, s *domain.SourceInfo) {
	if s == nil {
		return
	}
	_, _ = d.Write([]byte{tagSource})
	_, _ = d.WriteString(string(s.Type))
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(s.Path)
	_ = binary.Write(d, binary.LittleEndian, int64(s.Priority))
}
