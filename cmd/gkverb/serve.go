package main

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	gkverb "github.com/jsMRSoL/greek-verb-writer"
	"github.com/jsMRSoL/greek-verb-writer/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the conjugation JSON API",
	Example: `  gkverb serve --addr :8080
  gkverb serve --addr :8080 --lexicon forms.db`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("lexicon", "", "sqlite lexicon to serve lookups from")
	_ = viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := viper.GetString("addr")
	lexPath, _ := cmd.Flags().GetString("lexicon")
	if lexPath == "" {
		lexPath = viper.GetString("lexicon")
	}

	var lex *gkverb.Lexicon
	if lexPath != "" {
		var err error
		lex, err = gkverb.OpenLexicon(lexPath)
		if err != nil {
			return err
		}
		defer lex.Close()
		logger.Logger.Infow("lexicon opened", "path", lexPath)
	}

	handler := cors.Default().Handler(gkverb.NewHandler(lex))
	logger.Logger.Infow("listening", "addr", addr)
	return http.ListenAndServe(addr, handler)
}
