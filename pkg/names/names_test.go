// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

package names_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ragnarob/yiffer.xyz-contributions/pkg/names"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "WildNights", "wildnights"},
		{"spaces_stripped", "Wild Nights", "wildnights"},
		{"punctuation_stripped", "Café-Dog!", "cafedog"},
		{"accents_removed", "Señorita Über", "senoritauber"},
		{"digits_kept", "Comic 2", "comic2"},
		{"empty", "", ""},
		{"only_punctuation", "?!#", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names.Normalize(tt.input))
		})
	}
}

func TestSimilar(t *testing.T) {
	assert.True(t, names.Similar("Café Dog!", "cafe-dog"))
	assert.True(t, names.Similar("Wild Nights", "wildnights"))
	assert.False(t, names.Similar("Wild Nights", "Mild Nights"))
}
