package paging_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/paging-service/pkg/paging"
)

func TestNew(t *testing.T) {
	cases := []struct {
		name      string
		number    int
		size      int
		want      paging.Page
		wantField string
	}{
		{"first page", 1, 20, paging.Page{Number: 1, Size: 20}, ""},
		{"deep page", 57, 255, paging.Page{Number: 57, Size: 255}, ""},
		{"unbounded", 1, 0, paging.Unbounded, ""},
		{"zero number", 0, 20, paging.Empty, "number"},
		{"negative number", -3, 20, paging.Empty, "number"},
		{"negative size", 1, -1, paging.Empty, "size"},
		{"size above max", 1, 256, paging.Empty, "size"},
		{"size zero past first page", 2, 0, paging.Empty, "size"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := paging.New(tc.number, tc.size)
			assert.Equal(t, tc.want, got)
			if tc.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, paging.ErrOutOfRange)
			assert.ErrorIs(t, err, paging.ErrInvalidArgument)
			field, ok := paging.FieldOf(err)
			assert.True(t, ok)
			assert.Equal(t, tc.wantField, field)
		})
	}
}

func TestPage_Derived(t *testing.T) {
	p := paging.Page{Number: 4, Size: 10}
	assert.Equal(t, 3, p.Index())
	assert.True(t, p.IsValid())
	assert.False(t, p.IsUnbounded())
	assert.False(t, p.IsEmpty())

	assert.True(t, paging.Unbounded.IsUnbounded())
	assert.True(t, paging.Unbounded.IsValid())
	assert.False(t, paging.Empty.IsValid())
	assert.True(t, paging.Empty.IsEmpty())
	assert.False(t, paging.Page{Number: 2, Size: 0}.IsUnbounded())
}

func TestPage_CopyWithReplacement(t *testing.T) {
	p := paging.OnPage(3)
	assert.Equal(t, paging.Page{Number: 3, Size: paging.DefaultSize}, p)
	assert.Equal(t, paging.Page{Number: 3, Size: 50}, p.ItemsPerPage(50))
	assert.Equal(t, paging.Page{Number: 7, Size: paging.DefaultSize}, p.OnPage(7))
	assert.Equal(t, paging.Page{Number: 1, Size: 15}, paging.ItemsPerPage(15))

	// the receiver is never modified
	assert.Equal(t, paging.Page{Number: 3, Size: paging.DefaultSize}, p)

	assert.Equal(t, paging.Unbounded, paging.Unbounded.OnPage(9))
	assert.Equal(t, paging.Page{Number: 1, Size: 10}, paging.Unbounded.ItemsPerPage(10))
}

func TestPage_SizeZeroCollapsesToUnbounded(t *testing.T) {
	assert.Equal(t, paging.Unbounded, paging.Empty.OnPage(3))
	assert.Equal(t, paging.Unbounded, paging.Page{Number: 3, Size: 10}.ItemsPerPage(0))
	assert.Equal(t, paging.Unbounded, paging.ItemsPerPage(0))
	assert.Equal(t, paging.Empty.TurnToPage(3), paging.Empty.OnPage(3))
}

func TestPage_TurnToPage(t *testing.T) {
	p := paging.Page{Number: 2, Size: 25}
	assert.Equal(t, paging.Page{Number: 5, Size: 25}, p.TurnToPage(5))
	assert.Equal(t, p.TurnToPage(5), p.TurnToPage(5).TurnToPage(5))
	assert.Equal(t, paging.Unbounded, paging.Unbounded.TurnToPage(3))
	assert.Equal(t, paging.Unbounded, paging.Empty.TurnToPage(3))
}

func TestCompare(t *testing.T) {
	pages := []paging.Page{
		{Number: 3, Size: 10},
		{Number: 1, Size: 50},
		{Number: 2, Size: 100},
		{Number: 1, Size: 20},
	}
	slices.SortFunc(pages, paging.Compare)
	assert.Equal(t, []paging.Page{
		{Number: 1, Size: 20},
		{Number: 1, Size: 50},
		{Number: 2, Size: 100},
		{Number: 3, Size: 10},
	}, pages)
	assert.Zero(t, paging.Compare(paging.OnPage(2), paging.OnPage(2)))
}

func TestPage_String(t *testing.T) {
	assert.Equal(t, "page 4 (size 10)", paging.Page{Number: 4, Size: 10}.String())
	assert.Equal(t, "page 1 (unbounded)", paging.Unbounded.String())
	assert.Equal(t, "page none", paging.Empty.String())
}

func TestNewState(t *testing.T) {
	s, err := paging.NewState(paging.OnPage(2), 45)
	require.NoError(t, err)
	assert.True(t, s.HasValue())
	assert.Equal(t, paging.OnPage(2), s.CurrentPage)
	assert.Equal(t, 45, s.TotalItems)

	_, err = paging.NewState(paging.Empty, 10)
	assert.ErrorIs(t, err, paging.ErrInvalidArgument)
	assert.False(t, errors.Is(err, paging.ErrOutOfRange))

	_, err = paging.NewState(paging.OnPage(1), -1)
	assert.ErrorIs(t, err, paging.ErrOutOfRange)

	_, err = paging.NewState(paging.Page{Number: 1, Size: 300}, 10)
	assert.ErrorIs(t, err, paging.ErrOutOfRange)
	field, _ := paging.FieldOf(err)
	assert.Equal(t, "size", field)

	_, err = paging.NewState(paging.Page{Number: 4, Size: 0}, 5)
	assert.ErrorIs(t, err, paging.ErrInvalidArgument)
	field, _ = paging.FieldOf(err)
	assert.Equal(t, "size", field)

	assert.False(t, paging.EmptyState.HasValue())
	assert.Equal(t, paging.Page{Number: 9, Size: paging.DefaultSize}, s.TurnToPage(9))
}
