package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "plain content",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "bitstream content",
			content: "run:english:1111000101111011010001011101011011011110011111101000101111101101",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestDecodeRun_Key(t *testing.T) {
	tests := []struct {
		name string
		run  DecodeRun
		want string
	}{
		{
			name: "basic run",
			run: DecodeRun{
				Bitstream: "111111",
				Wordlist:  "english",
			},
			want: "run:english:111111",
		},
		{
			name: "empty run",
			run:  DecodeRun{},
			want: "run::",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.run.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWordlistID_MatchesKeyDerivation(t *testing.T) {
	if WordlistID("english") != IDFromContent("wordlist:english") {
		t.Errorf("WordlistID() does not match content derivation")
	}
	if WordlistID("english") == WordlistID("common") {
		t.Errorf("WordlistID() produced same ID for different names")
	}
}
