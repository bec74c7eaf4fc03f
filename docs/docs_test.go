package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocumentIsRegistered(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var swaggerDoc struct {
		Info  map[string]any            `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &swaggerDoc))

	assert.Equal(t, "Virtual Try-On API", swaggerDoc.Info["title"])
	assert.Contains(t, swaggerDoc.Paths, "/api/products/{id}")
	assert.Contains(t, swaggerDoc.Paths["/api/favorites"], "post")
	assert.Contains(t, swaggerDoc.Paths["/api/favorites/{productId}"], "delete")
}
