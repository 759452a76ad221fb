package utils

import "testing"

func TestIsValidWord(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"cobalt", true},
		{"Cobalt", true},
		{"", false},
		{"1234", false},
		{"word2vec", false},
		{"user-name", false},
		{"hello world", false},
	}

	for _, tc := range testCases {
		if got := IsValidWord(tc.input); got != tc.want {
			t.Errorf("IsValidWord(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCreateRankList(t *testing.T) {
	ranks := CreateRankList(3)
	if len(ranks) != 3 || ranks[0] != 1 || ranks[2] != 3 {
		t.Errorf("CreateRankList(3) = %v, want [1 2 3]", ranks)
	}
	if got := CreateRankList(0); len(got) != 0 {
		t.Errorf("CreateRankList(0) = %v, want empty", got)
	}
}
