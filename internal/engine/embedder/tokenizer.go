package embedder

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxSeqLen caps tokenized sequence length. Task descriptions run 1-500
// characters, so 64 tokens covers them with room for subword splits.
const maxSeqLen = 64

// tokenized holds one or more tokenized texts packed for ONNX inference.
// All slices are flat: [batchSize * seqLen].
type tokenized struct {
	inputIDs      []int64
	attentionMask []int64
	tokenTypeIDs  []int64
	batchSize     int64
	seqLen        int64
}

// tokenizer performs BERT-style WordPiece tokenization.
type tokenizer struct {
	vocab *vocab
}

func newTokenizer(vocabPath string) (*tokenizer, error) {
	v, err := loadVocab(vocabPath)
	if err != nil {
		return nil, err
	}
	return &tokenizer{vocab: v}, nil
}

// tokenize converts one text into padded ID/mask slices of length maxSeqLen,
// framed by [CLS] and [SEP].
func (t *tokenizer) tokenize(text string) (inputIDs, attentionMask []int64) {
	tokens := t.wordpiece(basicTokens(text))
	if len(tokens) > maxSeqLen-2 {
		tokens = tokens[:maxSeqLen-2]
	}

	ids := make([]int64, maxSeqLen)
	mask := make([]int64, maxSeqLen)

	ids[0] = t.vocab.clsID
	mask[0] = 1
	for i, tok := range tokens {
		ids[i+1] = t.vocab.lookup(tok)
		mask[i+1] = 1
	}
	ids[len(tokens)+1] = t.vocab.sepID
	mask[len(tokens)+1] = 1
	// Remaining positions stay zero: padID=0, mask=0.

	return ids, mask
}

// tokenizeBatch tokenizes multiple texts and packs them into flat slices
// padded to the longest sequence in the batch (capped at maxSeqLen).
func (t *tokenizer) tokenizeBatch(texts []string) tokenized {
	n := len(texts)
	if n == 0 {
		return tokenized{}
	}

	ids := make([][]int64, n)
	masks := make([][]int64, n)
	seqLen := int64(0)
	for i, text := range texts {
		ids[i], masks[i] = t.tokenize(text)
		real := int64(0)
		for _, m := range masks[i] {
			real += m
		}
		if real > seqLen {
			seqLen = real
		}
	}

	batchSize := int64(n)
	total := batchSize * seqLen
	out := tokenized{
		inputIDs:      make([]int64, total),
		attentionMask: make([]int64, total),
		tokenTypeIDs:  make([]int64, total), // single-segment input, all zeros
		batchSize:     batchSize,
		seqLen:        seqLen,
	}
	for i := 0; i < n; i++ {
		off := int64(i) * seqLen
		copy(out.inputIDs[off:off+seqLen], ids[i][:seqLen])
		copy(out.attentionMask[off:off+seqLen], masks[i][:seqLen])
	}
	return out
}

// basicTokens applies BERT's basic tokenization: lowercase, strip accents,
// split on whitespace, and break punctuation into standalone tokens.
func basicTokens(text string) []string {
	text = strings.ToLower(text)
	text = stripAccents(text)

	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range text {
		switch {
		case r == 0 || r == 0xFFFD || unicode.IsControl(r):
			// drop
		case unicode.IsSpace(r):
			flush()
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// stripAccents removes combining diacritical marks after NFD normalization.
func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// wordpiece decomposes basic tokens into WordPiece subwords via greedy
// longest-match-first. Tokens that cannot be decomposed become [UNK].
func (t *tokenizer) wordpiece(tokens []string) []string {
	var result []string
	for _, token := range tokens {
		runes := []rune(token)
		if len(runes) == 0 {
			continue
		}
		if len(runes) > 100 {
			result = append(result, unkToken)
			continue
		}

		var subs []string
		start := 0
		ok := true
		for start < len(runes) {
			end := len(runes)
			matched := ""
			for end > start {
				sub := string(runes[start:end])
				if start > 0 {
					sub = "##" + sub
				}
				if t.vocab.contains(sub) {
					matched = sub
					break
				}
				end--
			}
			if matched == "" {
				ok = false
				break
			}
			subs = append(subs, matched)
			start = end
		}

		if ok {
			result = append(result, subs...)
		} else {
			result = append(result, unkToken)
		}
	}
	return result
}
