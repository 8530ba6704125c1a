package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sugar Cosmetics", "sugar-cosmetics"},
		{"Boat", "boat"},
		{"  Mamaearth  ", "mamaearth"},
		{"A&B Traders (India)", "a-b-traders-india"},
		{"--weird--input--", "weird-input"},
		{"北京", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}
