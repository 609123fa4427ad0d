package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	e := NewEntry("  Buy milk \t")
	assert.Equal(t, Entry{Description: "Buy milk"}, e)
}

func TestFilterFits(t *testing.T) {
	active := Entry{Description: "a"}
	done := Entry{Description: "b", Completed: true}

	tests := []struct {
		filter     Filter
		wantActive bool
		wantDone   bool
	}{
		{All, true, true},
		{Active, true, false},
		{Completed, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			assert.Equal(t, tt.wantActive, tt.filter.Fits(active))
			assert.Equal(t, tt.wantDone, tt.filter.Fits(done))
		})
	}
}

func TestFilterFitsIgnoresEditing(t *testing.T) {
	e := Entry{Description: "x", Editing: true}
	assert.True(t, Active.Fits(e))
	assert.False(t, Completed.Fits(e))
}

func TestFilterHref(t *testing.T) {
	assert.Equal(t, "#/", All.Href())
	assert.Equal(t, "#/active", Active.Href())
	assert.Equal(t, "#/completed", Completed.Href())
}

func TestFiltersOrder(t *testing.T) {
	assert.Equal(t, []Filter{All, Active, Completed}, Filters())
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
	}{
		{"all", All},
		{"Active", Active},
		{" COMPLETED ", Completed},
		{"#/", All},
		{"#/active", Active},
		{"#/completed", Completed},
		{"", All},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilter(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFilter("done")
	assert.Error(t, err)
}
