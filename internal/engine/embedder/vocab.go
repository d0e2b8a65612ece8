package embedder

import (
	"bufio"
	"fmt"
	"os"
)

const (
	padToken = "[PAD]"
	unkToken = "[UNK]"
	clsToken = "[CLS]"
	sepToken = "[SEP]"
)

// vocab holds a WordPiece vocabulary loaded from a vocab.txt file, where
// the 0-indexed line number is the token ID.
type vocab struct {
	tokenToID map[string]int64
	count     int

	padID int64
	unkID int64
	clsID int64
	sepID int64
}

func loadVocab(path string) (*vocab, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: %w", err)
	}
	defer f.Close()

	tokenToID := make(map[string]int64, 32000)
	count := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		tokenToID[scanner.Text()] = int64(count)
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("vocab: read error: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("vocab: file is empty: %s", path)
	}

	v := &vocab{tokenToID: tokenToID, count: count}
	for _, s := range []struct {
		name string
		dest *int64
	}{
		{padToken, &v.padID},
		{unkToken, &v.unkID},
		{clsToken, &v.clsID},
		{sepToken, &v.sepID},
	} {
		id, ok := tokenToID[s.name]
		if !ok {
			return nil, fmt.Errorf("vocab: missing special token %s", s.name)
		}
		*s.dest = id
	}

	return v, nil
}

// lookup returns the token's ID, or the [UNK] ID if absent.
func (v *vocab) lookup(token string) int64 {
	if id, ok := v.tokenToID[token]; ok {
		return id
	}
	return v.unkID
}

func (v *vocab) contains(token string) bool {
	_, ok := v.tokenToID[token]
	return ok
}

func (v *vocab) size() int {
	return v.count
}
