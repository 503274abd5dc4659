package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_NoSharedState(t *testing.T) {
	doc := DefaultContent()
	clone := doc.Clone()

	clone.Courses[0].Title = "changed"
	clone.FAQData[0].Question = "changed"

	assert.Equal(t, "Python-разработчик", doc.Courses[0].Title)
	assert.Equal(t, "Можно ли учиться с нуля?", doc.FAQData[0].Question)
}

func TestMergeOntoDefaults_BackfillsMissingFields(t *testing.T) {
	raw := []byte(`{"pageTitle": "Imported title"}`)

	doc, err := MergeOntoDefaults(raw)
	require.NoError(t, err)

	assert.Equal(t, "Imported title", doc.PageTitle)
	// Everything the payload omits comes from the default document
	assert.Equal(t, "https://example.com/", doc.MetaData.CanonicalUrl)
	assert.Len(t, doc.Courses, 1)
	assert.NotEmpty(t, doc.FooterEmail)
}

func TestMergeOntoDefaults_InvalidJSON(t *testing.T) {
	_, err := MergeOntoDefaults([]byte("{not json"))
	assert.Error(t, err)
}

func TestMergeDocument_ArraysOverwriteWholesale(t *testing.T) {
	doc := DefaultContent()
	raw := []byte(`{"courses": [{"id": 7, "title": "Only one", "school": "S", "url": "#", "price": 100}]}`)

	merged, err := MergeDocument(doc, raw)
	require.NoError(t, err)

	require.Len(t, merged.Courses, 1)
	assert.Equal(t, 7, merged.Courses[0].ID)
	assert.Equal(t, "Only one", merged.Courses[0].Title)
	// Keys absent from the payload keep their current values
	assert.Equal(t, doc.PageTitle, merged.PageTitle)
	assert.Equal(t, doc.FAQData, merged.FAQData)
}

func TestMergeDocument_NestedObjectsMergePerKey(t *testing.T) {
	doc := DefaultContent()
	raw := []byte(`{"metaData": {"title": "New meta title"}}`)

	merged, err := MergeDocument(doc, raw)
	require.NoError(t, err)

	assert.Equal(t, "New meta title", merged.MetaData.Title)
	assert.Equal(t, doc.MetaData.CanonicalUrl, merged.MetaData.CanonicalUrl)
	assert.Equal(t, doc.MetaData.Keywords, merged.MetaData.Keywords)
}

func TestMergePage_PreservesIdentity(t *testing.T) {
	page := SitePage{ID: "page-1", Slug: "original", Title: "Original"}
	raw := []byte(`{"id": "hijacked", "slug": "hijacked", "title": "Imported"}`)

	merged, err := MergePage(page, raw)
	require.NoError(t, err)

	assert.Equal(t, "page-1", merged.ID)
	assert.Equal(t, "original", merged.Slug)
	assert.Equal(t, "Imported", merged.Title)
}

func TestExportImportRoundTrip(t *testing.T) {
	doc := DefaultContent()
	doc.PageTitle = "Round trip"
	doc.Courses = append(doc.Courses, Course{ID: 2, Title: "Второй курс", School: "Школа", Url: "https://example.org/course", Price: 45000})
	doc.UpdatedAt = "2025-03-02"

	raw, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)

	restored, err := MergeOntoDefaults(raw)
	require.NoError(t, err)

	assert.Equal(t, doc, restored)
}
