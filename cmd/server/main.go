// Command server exposes the Greek verb conjugator as a JSON REST API.
//
// Endpoints:
//
//	GET /api/conjugate?stem=pres:παυ&tvm=pai,ppi   (or &all=true)
//	GET /api/codes
//	GET /api/lookup?form=παυεις                    (requires -lexicon)
package main

import (
	"flag"
	"net/http"

	"github.com/rs/cors"

	gkverb "github.com/jsMRSoL/greek-verb-writer"
	"github.com/jsMRSoL/greek-verb-writer/logger"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	lexPath := flag.String("lexicon", "", "sqlite lexicon to serve lookups from")
	jsonLogs := flag.Bool("json-logs", false, "emit logs as JSON")
	flag.Parse()

	if err := logger.Initialize(*jsonLogs, "info"); err != nil {
		panic(err)
	}
	defer logger.Sync()

	var lex *gkverb.Lexicon
	if *lexPath != "" {
		var err error
		lex, err = gkverb.OpenLexicon(*lexPath)
		if err != nil {
			logger.Logger.Fatalw("failed to open lexicon", "path", *lexPath, "error", err)
		}
		defer lex.Close()
		logger.Logger.Infow("lexicon opened", "path", *lexPath)
	}

	handler := cors.Default().Handler(gkverb.NewHandler(lex))

	logger.Logger.Infow("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		logger.Logger.Fatalw("server error", "error", err)
	}
}
