package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	testCases := map[string]string{
		"john.doe@gmail.com": "j***@gmail.com",
		"기숙사@dorm.ac.kr":     "기***@dorm.ac.kr",
		"@dorm.ac.kr":        "***@dorm.ac.kr",
		"no-at-sign":         "***@***",
		"a@b@c":              "***@***",
		"":                   "",
	}

	for input, want := range testCases {
		assert.Equal(t, want, MaskEmail(input), input)
	}
}
