package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	gkverb "github.com/jsMRSoL/greek-verb-writer"
	"github.com/jsMRSoL/greek-verb-writer/logger"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Conjugate every stem in a csv file",
	Long: `batch reads one verb per input record: field 1 is the tagged stem,
any further fields are tense-voice-mood codes. A record with only a stem
uses the tense family's default codes. One output record is written per
computed code, holding that code's six forms.`,
	Example: `  gkverb batch --infile stems.csv --outfile forms.csv`,
	RunE:    runBatch,
}

func init() {
	batchCmd.Flags().StringP("infile", "i", "", "csv file of stems to conjugate")
	batchCmd.Flags().StringP("outfile", "o", "", "csv file to write forms to")
	batchCmd.Flags().String("lexicon", "", "sqlite lexicon to store the forms in")
	_ = batchCmd.MarkFlagRequired("infile")
	_ = batchCmd.MarkFlagRequired("outfile")
}

func runBatch(cmd *cobra.Command, args []string) error {
	infile, _ := cmd.Flags().GetString("infile")
	outfile, _ := cmd.Flags().GetString("outfile")
	lexPath, _ := cmd.Flags().GetString("lexicon")
	if lexPath == "" {
		lexPath = viper.GetString("lexicon")
	}

	entries, err := gkverb.ReadBatchFile(infile)
	if err != nil {
		return err
	}

	var lex *gkverb.Lexicon
	if lexPath != "" {
		lex, err = gkverb.OpenLexicon(lexPath)
		if err != nil {
			return err
		}
		defer lex.Close()
	}

	out, err := os.Create(outfile)
	if err != nil {
		return errors.Wrapf(err, "creating output %s", outfile)
	}
	defer out.Close()
	fw := gkverb.NewFormsWriter(out)

	for _, entry := range entries {
		vb := gkverb.NewVerb(entry.Stem)
		requested := vb.ConjugateAll(entry.Codes)
		if err := fw.WriteVerb(vb, requested); err != nil {
			return err
		}
		if lex != nil {
			if err := lex.SaveVerb(vb, requested); err != nil {
				return err
			}
		}
	}
	if err := fw.Flush(); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, "closing output %s", outfile)
	}

	logger.Logger.Infow("batch complete", "verbs", len(entries), "outfile", outfile)
	return nil
}
