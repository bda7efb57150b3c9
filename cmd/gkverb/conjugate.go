package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	gkverb "github.com/jsMRSoL/greek-verb-writer"
	"github.com/jsMRSoL/greek-verb-writer/logger"
)

var conjugateCmd = &cobra.Command{
	Use:   "conjugate",
	Short: "Conjugate a single stem and print the forms",
	Example: `  gkverb conjugate --stem pres:παυ --tvm pai,ppi
  gkverb conjugate --stem pres:παυ --all
  gkverb conjugate --stem aor:παυσ --all --to-csv`,
	RunE: runConjugate,
}

func init() {
	conjugateCmd.Flags().StringP("stem", "s", "", `tense and stem, e.g. "pres:παυ"`)
	conjugateCmd.Flags().StringSliceP("tvm", "t", nil, `tense, voice and mood codes, e.g. "pai,ppi"`)
	conjugateCmd.Flags().BoolP("all", "a", false, "conjugate the tense family's default parts")
	conjugateCmd.Flags().BoolP("to-csv", "c", false, "also write the forms to the output file")
	conjugateCmd.Flags().StringP("outfile", "o", "", "csv output path (implies --to-csv)")
	conjugateCmd.Flags().String("lexicon", "", "sqlite lexicon to store the forms in")
	_ = conjugateCmd.MarkFlagRequired("stem")
	conjugateCmd.MarkFlagsOneRequired("tvm", "all")
	_ = viper.BindPFlag("outfile", conjugateCmd.Flags().Lookup("outfile"))
	_ = viper.BindPFlag("lexicon", conjugateCmd.Flags().Lookup("lexicon"))
}

func runConjugate(cmd *cobra.Command, args []string) error {
	stem, _ := cmd.Flags().GetString("stem")
	tvm, _ := cmd.Flags().GetStringSlice("tvm")
	toCSV, _ := cmd.Flags().GetBool("to-csv")

	var codes []gkverb.Code
	for _, c := range tvm {
		codes = append(codes, gkverb.Code(c))
	}

	vb := gkverb.NewVerb(stem)
	requested := vb.ConjugateAll(codes)

	for _, code := range requested {
		forms, ok := vb.Forms(code)
		if !ok {
			logger.Logger.Debugw("skipping unsupported code", "code", code)
			continue
		}
		fmt.Println(forms.Join())
	}

	outfile := viper.GetString("outfile")
	if outfile == "" {
		outfile = "./test-output.csv"
	} else {
		toCSV = true
	}
	if toCSV {
		if err := gkverb.WriteFormsFile(outfile, vb, requested); err != nil {
			return err
		}
		logger.Logger.Infow("forms written", "outfile", outfile)
	}

	if lexPath := viper.GetString("lexicon"); lexPath != "" {
		if err := saveToLexicon(lexPath, vb, requested); err != nil {
			return err
		}
	}
	return nil
}

func saveToLexicon(path string, vb *gkverb.Verb, codes []gkverb.Code) error {
	lex, err := gkverb.OpenLexicon(path)
	if err != nil {
		return err
	}
	defer lex.Close()
	if err := lex.SaveVerb(vb, codes); err != nil {
		return err
	}
	logger.Logger.Infow("forms stored", "lexicon", path, "stem", vb.Stem.Text)
	return nil
}
