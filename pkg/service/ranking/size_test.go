package ranking_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hushh-labs/concierge/pkg/service/ranking"
)

func TestSplitSizes(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "9", []string{"9"}},
		{"and separator", "8 and 9", []string{"8", "9"}},
		{"or separator", "M or L", []string{"m", "l"}},
		{"comma separator", "8, 9", []string{"8", "9"}},
		{"slash separator", "8/9", []string{"8", "9"}},
		{"pipe separator", "8|9", []string{"8", "9"}},
		{"only separators", " , ", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ranking.SplitSizes(tc.input)
			gt.Array(t, got).Length(len(tc.want))
			for i := range tc.want {
				gt.Value(t, got[i]).Equal(tc.want[i])
			}
		})
	}
}

func TestMatchSize(t *testing.T) {
	cases := []struct {
		name      string
		product   string
		requested string
		want      bool
	}{
		{"no size requested", "9", "", true},
		{"exact match", "9", "9", true},
		{"case insensitive", "m", "M", true},
		{"mismatch", "9", "10", false},
		{"multi size hit", "9", "8 and 9", true},
		{"multi size miss", "7", "8 and 9", false},
		{"token equality not substring", "9", "19", false},
		{"all separators degrade to match", "9", " , ", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, ranking.MatchSize(tc.product, tc.requested)).Equal(tc.want)
		})
	}
}
