package controller

import (
	"net/http"
	"net/http/pprof"
)

//nolint: gochecknoglobals
var namedProfiles = []string{"goroutine", "heap", "allocs", "threadcreate", "block", "mutex"}

// PprofMux serves the runtime profiles relative to its mount point. Mount it
// behind http.StripPrefix.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)
	for _, name := range namedProfiles {
		mux.Handle("/"+name, pprof.Handler(name))
	}

	return mux
}
