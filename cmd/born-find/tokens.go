package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/find/internal/backend/cpu"
	"github.com/born-ml/find/internal/tokenizer"
)

func newTokensCmd() *cobra.Command {
	var encoding, text, needles string

	cmd := &cobra.Command{
		Use:     "tokens",
		Short:   "Print where each token of --needles last occurs in the encoded --text",
		Example: `  born-find tokens --text "the cat sat on the mat" --needles " the dog"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, err := tokenizer.NewTikToken(encoding)
			if err != nil {
				return err
			}

			positions, err := tokenizer.LastTokenPositions(tok, cpu.New(), text, needles)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, p := range positions {
				if _, err := fmt.Fprintf(w, "%d\t%q\t%d\n", p.Token, p.Text, p.Position); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", tokenizer.DefaultEncoding, "tiktoken encoding")
	cmd.Flags().StringVar(&text, "text", "", "text to search")
	cmd.Flags().StringVar(&needles, "needles", "", "text whose tokens are looked up")

	return cmd
}
