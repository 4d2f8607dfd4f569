package tokenizer

import (
	"fmt"

	"github.com/born-ml/find/internal/operators"
	"github.com/born-ml/find/internal/tensor"
)

// TokenPosition is one needle token and the position of its last occurrence in
// the encoded text, or -1 when the text never contains it.
type TokenPosition struct {
	Token    int32
	Text     string
	Position int32
}

// LastTokenPositions encodes text and needles with tok and reports, for every
// needle token, where it last occurs in the encoded text.
func LastTokenPositions(tok Tokenizer, backend tensor.Backend, text, needles string) ([]TokenPosition, error) {
	haystack, err := tok.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("encode text: %w", err)
	}
	ids, err := tok.Encode(needles)
	if err != nil {
		return nil, fmt.Errorf("encode needles: %w", err)
	}

	index, err := int32Raw(haystack, backend.Device())
	if err != nil {
		return nil, err
	}
	needleRaw, err := int32Raw(ids, backend.Device())
	if err != nil {
		return nil, err
	}

	result, err := operators.NewFind(operators.DefaultMissingValue).Run(backend, index, needleRaw)
	if err != nil {
		return nil, err
	}

	positions := result.AsInt32()
	out := make([]TokenPosition, len(ids))
	for i, id := range ids {
		piece, err := tok.Decode([]int32{id})
		if err != nil {
			return nil, fmt.Errorf("decode token %d: %w", id, err)
		}
		out[i] = TokenPosition{Token: id, Text: piece, Position: positions[i]}
	}
	return out, nil
}

func int32Raw(data []int32, device tensor.Device) (*tensor.RawTensor, error) {
	raw, err := tensor.NewRaw(tensor.Shape{len(data)}, tensor.Int32, device)
	if err != nil {
		return nil, fmt.Errorf("token tensor: %w", err)
	}
	copy(raw.AsInt32(), data)
	return raw, nil
}
