// Package tokenizer turns text into int32 token ids and locates tokens in
// encoded text with the Find operator.
//
// Example usage:
//
//	tok, err := tokenizer.NewTikToken("cl100k_base")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	positions, err := tokenizer.LastTokenPositions(tok, cpu.New(), "a b a", "a")
//	if err != nil {
//	    log.Fatal(err)
//	}
package tokenizer
