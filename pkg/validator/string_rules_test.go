package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hostcities/notify/pkg/validator"
)

func TestLenBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		min   int
		max   int
		want  bool
	}{
		{name: "empty below min", value: "", min: 1, max: 120, want: false},
		{name: "exactly min", value: "A", min: 1, max: 120, want: true},
		{name: "exactly max", value: strings.Repeat("a", 120), min: 1, max: 120, want: true},
		{name: "one over max", value: strings.Repeat("a", 121), min: 1, max: 120, want: false},
		{name: "counts characters not bytes", value: strings.Repeat("ü", 80), min: 2, max: 80, want: true},
		{name: "one under min", value: "U", min: 2, max: 80, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rule := validator.LenBetween("field", tt.value, tt.min, tt.max)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, "field", rule.Error.Field)
		})
	}
}

func TestIsString(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsString("name", true).Check())

	rule := validator.IsString("name", false)
	assert.False(t, rule.Check())
	assert.Equal(t, "validation.string", rule.Error.Key)
}
