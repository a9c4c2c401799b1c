package httpserver

import (
	_ "embed"
	"html/template"
	"net/http"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type indexData struct {
	MinRatings    int
	AltMinRatings int
	TopN          int
}

// handleIndex serves the dashboard page. The page fetches the /api
// endpoints and renders the four widgets client-side; all chart styling
// lives in the template, not in Go.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := indexData{
		MinRatings:    s.cfg.TopMoviesMinRatings,
		AltMinRatings: s.cfg.TopMoviesAltMinRatings,
		TopN:          s.cfg.TopMoviesTopN,
	}
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Printf("render index: %v", err)
	}
}
