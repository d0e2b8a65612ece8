package embedder

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// testVocab is a tiny WordPiece vocabulary. Line number = token ID.
var testVocab = []string{
	"[PAD]",    // 0
	"[UNK]",    // 1
	"[CLS]",    // 2
	"[SEP]",    // 3
	"classify", // 4
	"image",    // 5
	"##s",      // 6
	"product",  // 7
	"!",        // 8
	"cafe",     // 9
}

func writeTestVocab(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.txt")
	var data []byte
	for _, tok := range testVocab {
		data = append(data, tok...)
		data = append(data, '\n')
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write vocab: %v", err)
	}
	return path
}

func newTestTokenizer(t *testing.T) *tokenizer {
	t.Helper()
	tok, err := newTokenizer(writeTestVocab(t))
	if err != nil {
		t.Fatalf("newTokenizer: %v", err)
	}
	return tok
}

func TestLoadVocabSpecials(t *testing.T) {
	v, err := loadVocab(writeTestVocab(t))
	if err != nil {
		t.Fatalf("loadVocab: %v", err)
	}
	if v.size() != len(testVocab) {
		t.Errorf("size = %d, want %d", v.size(), len(testVocab))
	}
	if v.padID != 0 || v.unkID != 1 || v.clsID != 2 || v.sepID != 3 {
		t.Errorf("special IDs = %d/%d/%d/%d", v.padID, v.unkID, v.clsID, v.sepID)
	}
}

func TestLoadVocabMissingSpecial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(path, []byte("hello\nworld\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadVocab(path); err == nil {
		t.Fatal("expected error for vocab without special tokens")
	}
}

func TestTokenize(t *testing.T) {
	tok := newTestTokenizer(t)

	tests := []struct {
		name string
		text string
		ids  []int64 // non-padding portion
	}{
		{"wordpiece split", "classify images", []int64{2, 4, 5, 6, 3}},
		{"empty string", "", []int64{2, 3}},
		{"case folded", "CLASSIFY Product", []int64{2, 4, 7, 3}},
		{"punctuation standalone", "images!", []int64{2, 5, 6, 8, 3}},
		{"unknown word", "zebra", []int64{2, 1, 3}},
		{"accents stripped", "café", []int64{2, 9, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ids, mask := tok.tokenize(tc.text)
			got := ids[:len(tc.ids)]
			if !reflect.DeepEqual(got, tc.ids) {
				t.Errorf("ids = %v, want %v", got, tc.ids)
			}
			for i := 0; i < len(tc.ids); i++ {
				if mask[i] != 1 {
					t.Errorf("mask[%d] = %d, want 1", i, mask[i])
				}
			}
			for i := len(tc.ids); i < maxSeqLen; i++ {
				if ids[i] != 0 || mask[i] != 0 {
					t.Errorf("padding at %d: id=%d mask=%d", i, ids[i], mask[i])
				}
			}
		})
	}
}

func TestTokenizeBatchPadsToLongest(t *testing.T) {
	tok := newTestTokenizer(t)

	batch := tok.tokenizeBatch([]string{"classify product images", "classify"})
	if batch.batchSize != 2 {
		t.Fatalf("batchSize = %d", batch.batchSize)
	}
	// Longest: [CLS] classify product image ##s [SEP] = 6 tokens.
	if batch.seqLen != 6 {
		t.Fatalf("seqLen = %d, want 6", batch.seqLen)
	}
	// Second sequence: [CLS] classify [SEP] + 3 padding positions.
	second := batch.attentionMask[6:12]
	want := []int64{1, 1, 1, 0, 0, 0}
	if !reflect.DeepEqual(second, want) {
		t.Errorf("second mask = %v, want %v", second, want)
	}
	for _, tt := range batch.tokenTypeIDs {
		if tt != 0 {
			t.Fatal("tokenTypeIDs must be all zeros")
		}
	}
}
