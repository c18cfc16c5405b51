package server

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

// HomeHandler serves the static landing page with the connect button.
func HomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	}
}
