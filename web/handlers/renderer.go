package handlers

import (
	"html/template"
	"net/http"
)

type Renderer interface {
	Templates() *template.Template
	Handlers() map[string]func(w http.ResponseWriter, r *http.Request)
	// Data is what the index template is executed with for clientID.
	Data(clientID string) map[string]interface{}
	// Err reports why there is nothing to render, the index then shows the error template instead.
	Err() error
}
