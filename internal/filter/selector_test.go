package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelector_Matches(t *testing.T) {
	tests := []struct {
		name string
		sel  Selector
		tags []string
		want bool
	}{
		{"all matches untagged", All(), nil, true},
		{"all matches tagged", All(), []string{"x"}, true},
		{"tag set hit", Tags("a", "b"), []string{"c", "b"}, true},
		{"tag set miss", Tags("a", "b"), []string{"c"}, false},
		{"tag set with no item tags", Tags("a"), nil, false},
		{"zero value", Selector{}, []string{"a"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sel.Matches(tt.tags))
		})
	}
}

func TestSelector_IsAll(t *testing.T) {
	assert.True(t, All().IsAll())
	assert.False(t, Tags().IsAll())
	assert.False(t, Tags("a").IsAll())
	assert.False(t, Selector{}.IsAll())
}

func TestSelector_ValuesAndString(t *testing.T) {
	sel := Tags("optics", "nasa", "aerospace", "nasa")

	assert.Equal(t, []string{"aerospace", "nasa", "optics"}, sel.Values())
	assert.Equal(t, "aerospace, nasa, optics", sel.String())

	assert.Nil(t, All().Values())
	assert.Equal(t, "all", All().String())
}
