package search

import (
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/mapping"
)

// buildIndexMapping creates the Bleve index mapping for candidate
// documents.
//
// The mapping is designed with these priorities:
//  1. Fast full-text search on names with English stemming
//  2. Free-text matching on the notes summary
//  3. Exact keyword matching for status and tag filters
//  4. Numeric range queries for age
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultAnalyzer = en.AnalyzerName

	docMapping := bleve.NewDocumentMapping()

	// --- Text fields (full-text searchable) ---

	// Name field - primary search target
	nameFieldMapping := bleve.NewTextFieldMapping()
	nameFieldMapping.Analyzer = en.AnalyzerName
	nameFieldMapping.Store = true
	nameFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("name", nameFieldMapping)

	// City and job - searchable with simple analyzer (no stemming,
	// "Munich" should not stem)
	cityFieldMapping := bleve.NewTextFieldMapping()
	cityFieldMapping.Analyzer = simple.Name
	cityFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("city", cityFieldMapping)

	jobFieldMapping := bleve.NewTextFieldMapping()
	jobFieldMapping.Analyzer = simple.Name
	jobFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("job", jobFieldMapping)

	// Notes summary - free text
	notesFieldMapping := bleve.NewTextFieldMapping()
	notesFieldMapping.Analyzer = en.AnalyzerName
	notesFieldMapping.Store = true
	notesFieldMapping.IncludeTermVectors = true // For highlighting
	docMapping.AddFieldMappingsAt("notes_summary", notesFieldMapping)

	// --- Keyword fields (exact match, facetable) ---

	// ID - stored but not analyzed
	idFieldMapping := bleve.NewTextFieldMapping()
	idFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("id", idFieldMapping)

	// Status - for filtering by pipeline stage
	statusFieldMapping := bleve.NewTextFieldMapping()
	statusFieldMapping.Analyzer = keyword.Name
	statusFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("status", statusFieldMapping)

	// Gender - exact match
	genderFieldMapping := bleve.NewTextFieldMapping()
	genderFieldMapping.Analyzer = keyword.Name
	docMapping.AddFieldMappingsAt("gender", genderFieldMapping)

	// Tag labels - keyword analyzer keeps compound labels intact
	// (e.g., "Family-oriented")
	tagsFieldMapping := bleve.NewTextFieldMapping()
	tagsFieldMapping.Analyzer = keyword.Name
	tagsFieldMapping.Store = true
	tagsFieldMapping.IncludeTermVectors = true // For faceting
	docMapping.AddFieldMappingsAt("tags", tagsFieldMapping)

	// --- Numeric fields (range queries, sorting) ---

	ageFieldMapping := bleve.NewNumericFieldMapping()
	ageFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("age", ageFieldMapping)

	createdAtFieldMapping := bleve.NewNumericFieldMapping()
	createdAtFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("created_at", createdAtFieldMapping)

	updatedAtFieldMapping := bleve.NewNumericFieldMapping()
	updatedAtFieldMapping.Store = true
	docMapping.AddFieldMappingsAt("updated_at", updatedAtFieldMapping)

	indexMapping.AddDocumentMapping("_default", docMapping)

	return indexMapping
}
