package paging_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/paging-service/pkg/paging"
)

func TestState_MarshalMinimalShape(t *testing.T) {
	s := paging.State{CurrentPage: paging.Page{Number: 3, Size: 20}, TotalItems: 119}
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"currentPage":{"number":3,"size":20},"totalItems":119}`, string(b))
}

func TestState_Unmarshal(t *testing.T) {
	cases := []struct {
		name      string
		payload   string
		want      paging.State
		wantValue bool
		wantErr   bool
	}{
		{"valid", `{"currentPage":{"number":3,"size":20},"totalItems":119}`, paging.State{CurrentPage: paging.Page{Number: 3, Size: 20}, TotalItems: 119}, true, false},
		{"unbounded", `{"currentPage":{"number":1,"size":0},"totalItems":7}`, paging.State{CurrentPage: paging.Unbounded, TotalItems: 7}, true, false},
		{"negative number decodes", `{"currentPage":{"number":-2,"size":20},"totalItems":5}`, paging.State{CurrentPage: paging.Page{Number: -2, Size: 20}, TotalItems: 5}, false, false},
		{"negative total decodes", `{"currentPage":{"number":1,"size":20},"totalItems":-5}`, paging.State{CurrentPage: paging.Page{Number: 1, Size: 20}, TotalItems: -5}, false, false},
		{"missing number", `{"currentPage":{"size":20},"totalItems":5}`, paging.State{}, false, true},
		{"missing size", `{"currentPage":{"number":1},"totalItems":5}`, paging.State{}, false, true},
		{"missing total", `{"currentPage":{"number":1,"size":20}}`, paging.State{}, false, true},
		{"missing page", `{"totalItems":5}`, paging.State{}, false, true},
		{"null page", `{"currentPage":null,"totalItems":5}`, paging.State{}, false, true},
		{"negative size", `{"currentPage":{"number":1,"size":-1},"totalItems":5}`, paging.State{}, false, true},
		{"size zero past first page", `{"currentPage":{"number":2,"size":0},"totalItems":5}`, paging.State{}, false, true},
		{"size above a byte", `{"currentPage":{"number":1,"size":256},"totalItems":5}`, paging.State{}, false, true},
		{"not a number", `{"currentPage":{"number":"one","size":20},"totalItems":5}`, paging.State{}, false, true},
		{"not an object", `[1,2,3]`, paging.State{}, false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got paging.State
			err := json.Unmarshal([]byte(tc.payload), &got)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, paging.ErrDeserialization)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantValue, got.HasValue())
		})
	}
}

func TestPage_UnmarshalReportsField(t *testing.T) {
	var p paging.Page
	err := json.Unmarshal([]byte(`{"number":2}`), &p)
	require.Error(t, err)
	field, ok := paging.FieldOf(err)
	require.True(t, ok)
	assert.Equal(t, "size", field)
}

func TestInfo_RoundTrip(t *testing.T) {
	states := []paging.State{
		{CurrentPage: paging.Page{Number: 3, Size: 20}, TotalItems: 119},
		{CurrentPage: paging.Page{Number: 250, Size: 10}, TotalItems: 1138},
		{CurrentPage: paging.Page{Number: 1, Size: 1}, TotalItems: 1},
		{CurrentPage: paging.Page{Number: 4, Size: 20}, TotalItems: 0},
		{CurrentPage: paging.Unbounded, TotalItems: 42},
	}
	for _, s := range states {
		t.Run(s.CurrentPage.String(), func(t *testing.T) {
			direct, err := s.Info()
			require.NoError(t, err)

			minimal, err := json.Marshal(direct.State())
			require.NoError(t, err)

			var restored paging.Info
			require.NoError(t, json.Unmarshal(minimal, &restored))

			assert.Equal(t, direct.CurrentPage(), restored.CurrentPage())
			assert.Equal(t, direct.TotalPages(), restored.TotalPages())
			assert.Equal(t, direct.ItemCount(), restored.ItemCount())
			assert.Equal(t, direct.FirstItemNumber(), restored.FirstItemNumber())
			assert.Equal(t, direct.LastItemNumber(), restored.LastItemNumber())
			assert.Equal(t, direct.IsFirstPage(), restored.IsFirstPage())
			assert.Equal(t, direct.IsLastPage(), restored.IsLastPage())
			assert.Equal(t, direct.FirstPage(), restored.FirstPage())
			assert.Equal(t, direct.PreviousPage(), restored.PreviousPage())
			assert.Equal(t, direct.NextPage(), restored.NextPage())
			assert.Equal(t, direct.LastPage(), restored.LastPage())
		})
	}
}

func TestNewState_RoundTrips(t *testing.T) {
	for _, page := range []paging.Page{{Number: 1, Size: 255}, paging.Unbounded, {Number: 9, Size: 1}} {
		s, err := paging.NewState(page, 10)
		require.NoError(t, err)
		b, err := json.Marshal(s)
		require.NoError(t, err)
		var back paging.State
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, s, back)
		_, err = back.Info()
		assert.NoError(t, err)
	}
}

func TestInfo_MarshalIncludesDerivedFields(t *testing.T) {
	info, err := paging.Compute(paging.Page{Number: 2, Size: 20}, 45, false)
	require.NoError(t, err)
	b, err := json.Marshal(info)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"currentPage": {"number": 2, "size": 20},
		"totalItems": 45,
		"totalPages": 3,
		"itemCount": 20,
		"firstItemNumber": 21,
		"lastItemNumber": 40,
		"isFirstPage": false,
		"isLastPage": false,
		"firstPage": {"number": 1, "size": 20},
		"previousPage": {"number": 1, "size": 20},
		"nextPage": {"number": 3, "size": 20},
		"lastPage": {"number": 3, "size": 20}
	}`, string(b))
}

func TestInfo_UnmarshalIgnoresDerivedFields(t *testing.T) {
	payload := `{
		"currentPage": {"number": 2, "size": 20},
		"totalItems": 45,
		"totalPages": 999,
		"firstItemNumber": -7,
		"pages": [{"page": 1, "first": 1, "last": 1}]
	}`
	var info paging.Info
	require.NoError(t, json.Unmarshal([]byte(payload), &info))
	assert.Equal(t, 3, info.TotalPages())
	assert.Equal(t, 21, info.FirstItemNumber())
	assert.Len(t, info.Pages(), 3)
}

func TestInfo_UnmarshalWithoutValue(t *testing.T) {
	var info paging.Info
	require.NoError(t, json.Unmarshal([]byte(`{"currentPage":{"number":-1,"size":20},"totalItems":3}`), &info))
	assert.False(t, info.HasValue())
	assert.Equal(t, -1, info.CurrentPage().Number)

	err := json.Unmarshal([]byte(`{"currentPage":{"number":1,"size":20}}`), &info)
	assert.ErrorIs(t, err, paging.ErrDeserialization)

	err = json.Unmarshal([]byte(`{"currentPage":{"number":3,"size":0},"totalItems":3}`), &info)
	assert.ErrorIs(t, err, paging.ErrDeserialization)
}
