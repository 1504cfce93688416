package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// render - компактное представление: номер страницы или 0 для многоточия
func render(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		if it.Ellipsis {
			out[i] = 0
			continue
		}
		out[i] = it.Page
	}
	return out
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name    string
		current int
		last    int
		want    []int
	}{
		{"middle of ten", 5, 10, []int{1, 0, 3, 4, 5, 6, 7, 0, 10}},
		{"single page", 1, 1, []int{1}},
		{"first of ten", 1, 10, []int{1, 2, 3, 0, 10}},
		{"last of ten", 10, 10, []int{1, 0, 8, 9, 10}},
		{"no gap before window", 3, 10, []int{1, 2, 3, 4, 5, 0, 10}},
		{"window starts at second page", 4, 10, []int{1, 2, 3, 4, 5, 6, 0, 10}},
		{"window touches last", 8, 10, []int{1, 0, 6, 7, 8, 9, 10}},
		{"small total", 2, 3, []int{1, 2, 3}},
		{"current out of range is clamped", 42, 5, []int{1, 0, 3, 4, 5}},
		{"zero last page", 1, 0, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(Window(tt.current, tt.last)))
		})
	}
}

func TestWindow_MarksCurrent(t *testing.T) {
	items := Window(5, 10)

	var current []int
	for _, it := range items {
		if it.Current {
			current = append(current, it.Page)
		}
	}
	assert.Equal(t, []int{5}, current)
}

func TestNew_Navigation(t *testing.T) {
	t.Run("single page disables everything", func(t *testing.T) {
		p := New(1, 1)
		assert.Equal(t, []int{1}, render(p.Items))
		assert.True(t, p.Nav.Disabled)
		assert.False(t, p.Nav.HasPrev)
		assert.False(t, p.Nav.HasNext)
	})

	t.Run("first page", func(t *testing.T) {
		p := New(1, 4)
		assert.False(t, p.Nav.HasPrev)
		assert.True(t, p.Nav.HasNext)
		assert.Equal(t, 2, p.Nav.Next)
		assert.Equal(t, 4, p.Nav.Last)
	})

	t.Run("last page", func(t *testing.T) {
		p := New(4, 4)
		assert.True(t, p.Nav.HasPrev)
		assert.False(t, p.Nav.HasNext)
		assert.Equal(t, 3, p.Nav.Prev)
		assert.Equal(t, 1, p.Nav.First)
	})
}

func TestLastPageAndOffset(t *testing.T) {
	assert.Equal(t, 1, LastPage(0, 20))
	assert.Equal(t, 1, LastPage(20, 20))
	assert.Equal(t, 2, LastPage(21, 20))
	assert.Equal(t, 1, LastPage(5, 0))

	assert.Equal(t, 0, Offset(1, 20))
	assert.Equal(t, 40, Offset(3, 20))
	assert.Equal(t, 0, Offset(-1, 20))
}
