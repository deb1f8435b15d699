// Package web holds the embedded HTML templates.
package web

import (
	"embed"
	"encoding/json"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"json": toJSON,
		"inc":  func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html")
}

// toJSON embeds a value as a JavaScript literal
func toJSON(v interface{}) (template.JS, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(data), nil
}
