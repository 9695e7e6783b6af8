// Package mask_test contains tests for the mask package.
package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/rise-and-shine/statekit/mask"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password" mask:"true"`
}

type login struct {
	Kind  string      `json:"kind"`
	Creds credentials `json:"creds"`
	Note  string      `json:"-"`
}

// pairs flattens an ordered map into key-value tuples for comparison.
func pairs(t *testing.T, v any) [][2]any {
	t.Helper()
	om, ok := v.(*orderedmap.OrderedMap[string, any])
	require.True(t, ok, "expected an ordered map, got %T", v)

	var out [][2]any
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, [2]any{pair.Key, pair.Value})
	}
	return out
}

func TestValue_PassesScalarsThrough(t *testing.T) {
	assert.Nil(t, mask.Value(nil))
	assert.Equal(t, "Hello", mask.Value("Hello"))
	assert.Equal(t, 42, mask.Value(42))
	assert.Equal(t, []string{"a"}, mask.Value([]string{"a"}))
}

func TestValue_MasksTaggedFields(t *testing.T) {
	got := mask.Value(credentials{Username: "alice", Password: "hunter2"})

	assert.Equal(t, [][2]any{
		{"username", "alice"},
		{"password", "***masked***"},
	}, pairs(t, got))
}

func TestValue_ZeroValuesNotMasked(t *testing.T) {
	got := mask.Value(credentials{Username: "alice"})

	assert.Equal(t, [][2]any{
		{"username", "alice"},
		{"password", ""},
	}, pairs(t, got))
}

func TestValue_FlattensNestedStructs(t *testing.T) {
	got := mask.Value(login{
		Kind:  "password",
		Creds: credentials{Username: "alice", Password: "hunter2"},
		Note:  "excluded via json dash",
	})

	assert.Equal(t, [][2]any{
		{"kind", "password"},
		{"creds.username", "alice"},
		{"creds.password", "***masked***"},
	}, pairs(t, got))
}

func TestValue_PointerHandling(t *testing.T) {
	var nilLogin *login
	assert.Nil(t, mask.Value(nilLogin))

	got := mask.Value(&credentials{Username: "alice", Password: "hunter2"})
	assert.Equal(t, [][2]any{
		{"username", "alice"},
		{"password", "***masked***"},
	}, pairs(t, got))
}

func TestValue_FieldNamePriority(t *testing.T) {
	type tagged struct {
		A string `json:"a_json" yaml:"a_yaml"`
		B string `yaml:"b_yaml"`
		C string
	}

	got := mask.Value(tagged{A: "1", B: "2", C: "3"})
	assert.Equal(t, [][2]any{
		{"a_json", "1"},
		{"b_yaml", "2"},
		{"C", "3"},
	}, pairs(t, got))
}

func TestValue_MaskedNilAndSliceFields(t *testing.T) {
	type record struct {
		Token  *string  `json:"token" mask:"true"`
		Scopes []string `json:"scopes" mask:"true"`
	}

	got := mask.Value(record{})
	assert.Equal(t, [][2]any{
		{"token", nil},
		{"scopes", nil},
	}, pairs(t, got))

	token := "secret"
	got = mask.Value(record{Token: &token, Scopes: []string{"read"}})
	assert.Equal(t, [][2]any{
		{"token", "***masked***"},
		{"scopes", "***masked***"},
	}, pairs(t, got))
}
