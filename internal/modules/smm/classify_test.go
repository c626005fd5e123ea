package smm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory_SanitizesModelOutput(t *testing.T) {
	cases := []struct {
		raw  string
		want Category
	}{
		{"INTERESTED", CategoryInterested},
		{"interested.", CategoryInterested},
		{"  Not_Interested \n", CategoryNotInterested},
		{"NOT_INTERESTED!", CategoryNotInterested},
		{"Category: ANGRY", CategoryUnrecognized},
		{"QUESTION", CategoryQuestion},
		{"auto_reply", CategoryAutoReply},
		{"maybe later", CategoryUnrecognized},
		{"", CategoryUnrecognized},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseCategory(tc.raw), "raw=%q", tc.raw)
	}
}

func TestCategoryEmoji(t *testing.T) {
	assert.Equal(t, "✅", CategoryInterested.Emoji())
	assert.Equal(t, "💢", CategoryAngry.Emoji())
	assert.Equal(t, "📧", CategoryUnrecognized.Emoji())
}
