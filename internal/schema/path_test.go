package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	doc := NewDocument()

	require.NoError(t, doc.Set("kopf.lrn", "DE12345"))

	v, ok := doc.Get("kopf.lrn")
	require.True(t, ok)
	assert.Equal(t, "DE12345", v)
}

func TestGet_AbsentLeaf(t *testing.T) {
	doc := NewDocument()

	_, ok := doc.Get("kopf.lrn")
	assert.False(t, ok)
}

func TestSet_UnknownPath(t *testing.T) {
	doc := NewDocument()

	assert.Error(t, doc.Set("kopf.nichtvorhanden", "x"))
	assert.Error(t, doc.Set("", "x"))
	assert.Error(t, doc.Set("kopf", "x"))
}

func TestSet_GrowsSlice(t *testing.T) {
	doc := NewDocument()

	require.NoError(t, doc.Set("position[2].ware.wareWarenbezeichnung", "Teile"))

	require.Len(t, doc.Position, 3)
	v, ok := doc.Get("position[2].ware.wareWarenbezeichnung")
	require.True(t, ok)
	assert.Equal(t, "Teile", v)

	// The filler elements are zero-value templates.
	_, ok = doc.Get("position[0].ware.wareWarenbezeichnung")
	assert.False(t, ok)
}

func TestSet_GrowNeverClobbersExistingElements(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, doc.Set("position[0].ware.wareWarenbezeichnung", "Erste"))

	require.NoError(t, doc.Set("position[1].ware.wareWarenbezeichnung", "Zweite"))

	v, ok := doc.Get("position[0].ware.wareWarenbezeichnung")
	require.True(t, ok)
	assert.Equal(t, "Erste", v)
}

func TestGet_DoesNotGrow(t *testing.T) {
	doc := NewDocument()

	_, ok := doc.Get("position[0].ware.wareWarenbezeichnung")
	assert.False(t, ok)
	assert.Empty(t, doc.Position)
}

func TestSet_NestedArrayPath(t *testing.T) {
	doc := NewDocument()

	require.NoError(t, doc.Set("sendung.transportausrustung[0].verschluss[0].verschlusskennzeichen", "SEAL-1"))

	v, ok := doc.Get("sendung.transportausrustung[0].verschluss[0].verschlusskennzeichen")
	require.True(t, ok)
	assert.Equal(t, "SEAL-1", v)
}

func TestEmptyDocumentMarshalsWithNullLeaves(t *testing.T) {
	data, err := json.Marshal(NewDocument())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	kopf, ok := m["kopf"].(map[string]any)
	require.True(t, ok)
	val, present := kopf["lrn"]
	assert.True(t, present, "absent leaves must serialize as explicit null")
	assert.Nil(t, val)
}

func TestMergeObject(t *testing.T) {
	doc := NewDocument()
	matchExact := func(key, tag string) bool { return key == tag }

	unmatched, err := doc.MergeObject("anmelder", map[string]any{
		"name": "ACME GmbH",
		"adresse": map[string]any{
			"ort": "Berlin",
		},
		"fremd": "x",
	}, matchExact)
	require.NoError(t, err)

	v, ok := doc.Get("anmelder.name")
	require.True(t, ok)
	assert.Equal(t, "ACME GmbH", v)

	v, ok = doc.Get("anmelder.adresse.ort")
	require.True(t, ok)
	assert.Equal(t, "Berlin", v)

	assert.Equal(t, []string{"fremd"}, unmatched)
}

func TestMergeObject_ScalarIntoBlockIsIgnored(t *testing.T) {
	doc := NewDocument()
	matchExact := func(key, tag string) bool { return key == tag }

	_, err := doc.MergeObject("anmelder", map[string]any{
		"adresse": "nur ein String",
	}, matchExact)
	require.NoError(t, err)

	_, ok := doc.Get("anmelder.adresse.ort")
	assert.False(t, ok)
}

func TestRenderScalar(t *testing.T) {
	assert.Equal(t, "abc", RenderScalar("abc"))
	assert.Equal(t, "42", RenderScalar(float64(42)))
	assert.Equal(t, "42.5", RenderScalar(42.5))
	assert.Equal(t, "true", RenderScalar(true))
	assert.Equal(t, "", RenderScalar(nil))
}

func TestLeafPaths(t *testing.T) {
	paths := LeafPaths()
	require.NotEmpty(t, paths)

	assert.True(t, sortedStrings(paths))
	set := make(map[string]bool, len(paths))
	for _, p := range paths {
		assert.False(t, set[p], "duplicate path %s", p)
		set[p] = true
	}

	assert.True(t, set["kopf.lrn"])
	assert.True(t, set["position[0].ware.wareWarenbezeichnung"])
	assert.True(t, set["sendung.transportausrustung[0].verschluss[0].verschlusskennzeichen"])

	// Every emitted path is addressable.
	doc := NewDocument()
	for _, p := range paths {
		require.NoError(t, doc.Set(p, "x"), "path %s", p)
	}
}

func TestLeafPathsUnder(t *testing.T) {
	under := LeafPathsUnder("kopf")
	require.NotEmpty(t, under)
	for _, p := range under {
		assert.True(t, strings.HasPrefix(p, "kopf."), "path %s", p)
	}

	assert.Empty(t, LeafPathsUnder("gibtesnicht"))
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
