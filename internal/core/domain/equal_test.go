package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.ccview.dev/ccview/internal/core/domain"
)

func TestDeepEqual(t *testing.T) {
	tests := []struct {
		name string
		a    domain.Value
		b    domain.Value
		want bool
	}{
		{name: "nil equals nil", a: nil, b: nil, want: true},
		{name: "nil vs empty string", a: nil, b: "", want: false},
		{name: "nil vs false", a: nil, b: false, want: false},
		{name: "nil vs zero", a: nil, b: float64(0), want: false},
		{name: "equal strings", a: "python", b: "python", want: true},
		{name: "different strings", a: "python", b: "node", want: false},
		{name: "equal numbers", a: float64(42), b: float64(42), want: true},
		{name: "number vs string representation", a: float64(1), b: "1", want: false},
		{name: "equal bools", a: true, b: true, want: true},
		{name: "bool vs number", a: true, b: float64(1), want: false},
		{
			name: "equal arrays in order",
			a:    []any{float64(1), float64(2)},
			b:    []any{float64(1), float64(2)},
			want: true,
		},
		{
			name: "arrays are order-sensitive",
			a:    []any{float64(1), float64(2)},
			b:    []any{float64(2), float64(1)},
			want: false,
		},
		{
			name: "arrays of different length",
			a:    []any{float64(1)},
			b:    []any{float64(1), float64(2)},
			want: false,
		},
		{name: "empty arrays", a: []any{}, b: []any{}, want: true},
		{name: "empty array vs empty object", a: []any{}, b: map[string]any{}, want: false},
		{
			name: "equal objects regardless of construction order",
			a:    map[string]any{"host": "localhost", "port": float64(8080)},
			b:    map[string]any{"port": float64(8080), "host": "localhost"},
			want: true,
		},
		{
			name: "objects with different key sets",
			a:    map[string]any{"host": "localhost"},
			b:    map[string]any{"host": "localhost", "port": float64(8080)},
			want: false,
		},
		{
			name: "object key present with nil vs absent",
			a:    map[string]any{"host": nil},
			b:    map[string]any{},
			want: false,
		},
		{
			name: "nested structures",
			a: map[string]any{
				"command": "python",
				"args":    []any{"-m", "server"},
				"env":     map[string]any{"DEBUG": "1"},
			},
			b: map[string]any{
				"command": "python",
				"args":    []any{"-m", "server"},
				"env":     map[string]any{"DEBUG": "1"},
			},
			want: true,
		},
		{
			name: "nested difference deep in the tree",
			a:    map[string]any{"env": map[string]any{"DEBUG": "1"}},
			b:    map[string]any{"env": map[string]any{"DEBUG": "0"}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DeepEqual(tt.a, tt.b))
			// Equality is symmetric.
			assert.Equal(t, tt.want, domain.DeepEqual(tt.b, tt.a))
		})
	}
}

func TestDeepEqual_Reflexive(t *testing.T) {
	values := []domain.Value{
		nil,
		"",
		"value",
		float64(3.14),
		true,
		[]any{float64(1), "two", nil},
		map[string]any{
			"nested": map[string]any{"list": []any{map[string]any{"deep": true}}},
		},
	}

	for _, v := range values {
		assert.True(t, domain.DeepEqual(v, v))
	}
}
