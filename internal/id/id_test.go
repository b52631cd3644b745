package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScenarioID(t *testing.T) {
	a := NewScenarioID()
	b := NewScenarioID()
	assert.NotEqual(t, a, b)

	_, err := uuid.Parse(a)
	require.NoError(t, err)
}

func TestNextItemID(t *testing.T) {
	tests := []struct {
		ids  []int
		want int
	}{
		{nil, 1},
		{[]int{1}, 2},
		{[]int{3, 1, 2}, 4},
		{[]int{7, 2}, 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextItemID(tt.ids), "NextItemID(%v)", tt.ids)
	}
}

func TestShortScenarioID(t *testing.T) {
	assert.Equal(t, "1b4e28ba", ShortScenarioID("1b4e28ba-2fa1-11d2-883f-0016d3cca427"))
	assert.Equal(t, "1712345678901", ShortScenarioID("1712345678901"))
}

func TestParseScenarioID(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"1B4E28BA-2FA1-11D2-883F-0016D3CCA427", "1b4e28ba-2fa1-11d2-883f-0016d3cca427", false},
		{"1712345678901", "1712345678901", false},
		{" 42 ", "42", false},
		{"", "", true},
		{"not-an-id", "", true},
	}
	for _, tt := range tests {
		got, err := ParseScenarioID(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseScenarioID(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseScenarioID(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}
