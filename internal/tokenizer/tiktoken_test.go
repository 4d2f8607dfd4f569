package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/find/internal/backend/cpu"
)

// loadTikToken skips the test when the BPE ranks cannot be fetched.
func loadTikToken(t *testing.T) *TikToken {
	t.Helper()
	tok, err := NewTikToken(DefaultEncoding)
	if err != nil {
		t.Skipf("tiktoken encoding unavailable: %v", err)
	}
	return tok
}

func TestTikToken_InvalidEncoding(t *testing.T) {
	tok, err := NewTikToken("invalid_encoding_xyz")
	assert.Error(t, err)
	assert.Nil(t, tok)
}

func TestTikToken_Roundtrip(t *testing.T) {
	tok := loadTikToken(t)
	assert.Equal(t, DefaultEncoding, tok.Name())

	for _, text := range []string{"Hello, world!", "Hello\nWorld\n", "", "The quick brown fox jumps over the lazy dog."} {
		tokens, err := tok.Encode(text)
		require.NoError(t, err)

		decoded, err := tok.Decode(tokens)
		require.NoError(t, err)
		assert.Equal(t, text, decoded)
	}
}

func TestTikToken_LastTokenPositions(t *testing.T) {
	tok := loadTikToken(t)

	text := "red green red blue"
	got, err := LastTokenPositions(tok, cpu.New(), text, " red")
	require.NoError(t, err)
	require.Len(t, got, 1)

	ids, err := tok.Encode(text)
	require.NoError(t, err)

	want := int32(-1)
	for i, id := range ids {
		if id == got[0].Token {
			want = int32(i)
		}
	}
	assert.Equal(t, want, got[0].Position)
	assert.NotEqual(t, int32(-1), got[0].Position)
}
