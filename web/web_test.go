package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	require.NotNil(t, tmpl.Lookup("index.html"))

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "index.html", map[string]interface{}{
		"Danger": []string{"Please upload a CSV file."},
	}))
	assert.Contains(t, buf.String(), "alert-danger")
	assert.Contains(t, buf.String(), "Please upload a CSV file.")
}

func TestToJSON(t *testing.T) {
	js, err := toJSON(map[string][]int{"x": {1, 2}})
	require.NoError(t, err)
	assert.Equal(t, `{"x":[1,2]}`, string(js))
}
