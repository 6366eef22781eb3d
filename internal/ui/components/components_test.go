package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/quizdeck/internal/bank"
)

func testOptions() []bank.Option {
	return []bank.Option{
		{Label: 'A', Text: "foo"},
		{Label: 'B', Text: "bar"},
		{Label: 'C', Text: "baz"},
	}
}

func TestOptionList_Marker(t *testing.T) {
	hidden := NewOptionList(testOptions())
	assert.Equal(t, " ", hidden.Marker('A'))

	o := OptionList{Options: testOptions(), Revealed: true, Correct: 'B', Selection: 'A'}
	assert.Equal(t, "✗", o.Marker('A'))
	assert.Equal(t, "✓", o.Marker('B'))
	assert.Equal(t, " ", o.Marker('C'))

	o.Selection = 'B'
	assert.Equal(t, "✓", o.Marker('B'))
	assert.Equal(t, " ", o.Marker('A'))
}

func TestOptionList_View(t *testing.T) {
	view := NewOptionList(testOptions()).View()
	for _, want := range []string{"A.  foo", "B.  bar", "C.  baz"} {
		assert.Contains(t, view, want)
	}
	assert.Equal(t, 3, strings.Count(view, "\n")+1)
}

func TestProgressBar_Percent(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 4, 0},
		{1, 4, 0.25},
		{4, 4, 1},
		{5, 4, 1},
		{1, 0, 0},
		{-1, 4, 0},
	}
	for _, tt := range tests {
		got := NewProgressBar("", tt.done, tt.total, 20).Percent()
		assert.InDelta(t, tt.want, got, 1e-9, "%d/%d", tt.done, tt.total)
	}
}

func TestProgressBar_View(t *testing.T) {
	view := NewProgressBar("Round 2", 3, 10, 40).View()
	assert.Contains(t, view, "Round 2")
	assert.Contains(t, view, "3/10")
}
