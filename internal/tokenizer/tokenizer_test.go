package tokenizer

import (
	"reflect"
	"testing"
)

func TestWordEncoder_Encode(t *testing.T) {
	enc := WordEncoder{}
	ids := enc.Encode("one two three")
	if len(ids) != 3 {
		t.Errorf("expected 3 ids, got %d", len(ids))
	}
	again := enc.Encode("one two three")
	if !reflect.DeepEqual(ids, again) {
		t.Error("encoding is not deterministic")
	}
}

func TestWordEncoder_EncodeEmpty(t *testing.T) {
	enc := WordEncoder{}
	if ids := enc.Encode(""); len(ids) != 0 {
		t.Errorf("empty text should produce no tokens, got %v", ids)
	}
	if ids := enc.Encode("  \n\t  "); len(ids) != 0 {
		t.Errorf("blank text should produce no tokens, got %v", ids)
	}
}

func TestWordEncoder_CountPerWord(t *testing.T) {
	enc := WordEncoder{}
	tests := []struct {
		text string
		want int
	}{
		{"hello", 1},
		{"hello world", 2},
		{"a  b   c", 3},
		{"", 0},
	}
	for _, tt := range tests {
		if got := Count(enc, tt.text); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestHashString(t *testing.T) {
	if HashString("token") != HashString("token") {
		t.Error("hash is not deterministic")
	}
	if HashString("token") == HashString("nekot") {
		t.Error("distinct words should hash differently")
	}
	for _, s := range []string{"a", "zzzzzzzzzzzzzzzz", "日本語", ""} {
		if HashString(s) < 0 {
			t.Errorf("HashString(%q) is negative", s)
		}
	}
}

func TestForModel_Unknown(t *testing.T) {
	if _, err := ForModel("not-a-real-model"); err == nil {
		t.Fatal("expected error for unknown model")
	}
}
