package adapters

import (
	"io"
	"net/http"

	presentationProtocols "github.com/trackify/trackify-backend/internal/presentation/protocols"
)

type Controller interface {
	Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse
}

// AdaptRoute bridges a controller into a plain http.HandlerFunc.
func AdaptRoute(controller Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(presentationProtocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		for key, values := range response.Header {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "application/json")
		}

		w.WriteHeader(response.StatusCode)

		if response.Body != nil {
			defer response.Body.Close()
			io.Copy(w, response.Body)
		}
	}
}
