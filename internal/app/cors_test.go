package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	patterns := []string{
		"https://sesi-whingan.com",
		"*.codeverse.africa",
		"localhost:5173",
	}

	cases := []struct {
		origin  string
		allowed bool
	}{
		{"https://sesi-whingan.com", true},
		{"https://SESI-WHINGAN.COM", true},
		{"https://dashboard.codeverse.africa", true},
		{"https://staging.dashboard.codeverse.africa", true},
		{"http://localhost:5173", true},
		{"https://sesi-whingan.com.evil.example", false},
		{"https://codeverse.africa.evil.example", false},
		{"http://localhost:3000", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, originAllowed(patterns, tc.origin), "origin %q", tc.origin)
	}
}
