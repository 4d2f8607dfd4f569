package tokenizer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/find/internal/backend/cpu"
)

// wordTokenizer assigns ids to whitespace-separated words from a fixed vocabulary.
type wordTokenizer struct {
	vocab []string
}

func (w *wordTokenizer) Encode(text string) ([]int32, error) {
	var ids []int32
	for _, word := range strings.Fields(text) {
		id := -1
		for i, v := range w.vocab {
			if v == word {
				id = i
				break
			}
		}
		if id < 0 {
			return nil, errors.New("unknown word " + word)
		}
		ids = append(ids, int32(id))
	}
	return ids, nil
}

func (w *wordTokenizer) Decode(tokens []int32) (string, error) {
	words := make([]string, len(tokens))
	for i, id := range tokens {
		words[i] = w.vocab[id]
	}
	return strings.Join(words, " "), nil
}

func (w *wordTokenizer) Name() string { return "words" }

func TestLastTokenPositions(t *testing.T) {
	tok := &wordTokenizer{vocab: []string{"the", "cat", "sat", "on", "mat", "dog"}}

	got, err := LastTokenPositions(tok, cpu.New(), "the cat sat on the mat", "the dog mat")
	require.NoError(t, err)

	assert.Equal(t, []TokenPosition{
		{Token: 0, Text: "the", Position: 4},
		{Token: 5, Text: "dog", Position: -1},
		{Token: 4, Text: "mat", Position: 5},
	}, got)
}

func TestLastTokenPositionsEmpty(t *testing.T) {
	tok := &wordTokenizer{vocab: []string{"a", "b"}}

	got, err := LastTokenPositions(tok, cpu.New(), "", "a b")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, p := range got {
		assert.Equal(t, int32(-1), p.Position)
	}

	got, err = LastTokenPositions(tok, cpu.New(), "a b", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLastTokenPositionsEncodeError(t *testing.T) {
	tok := &wordTokenizer{vocab: []string{"a"}}

	_, err := LastTokenPositions(tok, cpu.New(), "a zzz", "a")
	assert.Error(t, err)
}
