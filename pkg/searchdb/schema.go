package searchdb

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/lang/en"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Logical index names. These are stable identifiers embedded in adapter
// calls and external tooling; renaming one is a migration, not a refactor.
const (
	IndexResources   = "resources"
	IndexUsers       = "users"
	IndexCommunities = "communities"
)

// TextAnalyzerName is the custom analyzer applied to all free-text fields:
// unicode tokenizer, lowercase, English stopword removal, snowball stemming.
const TextAnalyzerName = "collab_en"

// Keyword sub-field names for text fields that also need exact-match
// filtering, faceting or sorting.
const (
	FieldUserSubjectsKeyword    = "subjects.keyword"
	FieldUserGradeLevelsKeyword = "gradeLevels.keyword"
	FieldUserDistrictKeyword    = "schoolLocation.district.keyword"
)

// IndexNames returns every registered logical index.
func IndexNames() []string {
	return []string{IndexResources, IndexUsers, IndexCommunities}
}

// BuildIndexMapping returns the mapping for the named index.
func BuildIndexMapping(name string) (mapping.IndexMapping, error) {
	switch name {
	case IndexResources:
		return buildResourceMapping()
	case IndexUsers:
		return buildUserMapping()
	case IndexCommunities:
		return buildCommunityMapping()
	default:
		return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, name)
	}
}

func newBaseMapping() (*mapping.IndexMappingImpl, error) {
	m := bleve.NewIndexMapping()
	err := m.AddCustomAnalyzer(TextAnalyzerName, map[string]interface{}{
		"type":      custom.Name,
		"tokenizer": unicode.Name,
		"token_filters": []string{
			lowercase.Name,
			en.StopName,
			en.SnowballStemmerName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("register analyzer: %w", err)
	}
	m.DefaultAnalyzer = TextAnalyzerName
	return m, nil
}

func buildResourceMapping() (mapping.IndexMapping, error) {
	m, err := newBaseMapping()
	if err != nil {
		return nil, err
	}

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("title", textField())
	doc.AddFieldMappingsAt("description", textField())
	doc.AddFieldMappingsAt("tags", textField())
	doc.AddFieldMappingsAt("searchText", textField())
	doc.AddFieldMappingsAt("type", keywordField())
	doc.AddFieldMappingsAt("format", keywordField())
	doc.AddFieldMappingsAt("subjects", keywordField())
	doc.AddFieldMappingsAt("gradeLevels", keywordField())
	doc.AddFieldMappingsAt("verificationStatus", keywordField())
	doc.AddFieldMappingsAt("isGovernmentContent", boolField())
	doc.AddFieldMappingsAt("size", numericField())
	doc.AddFieldMappingsAt("downloadCount", numericField())
	doc.AddFieldMappingsAt("rating", numericField())
	doc.AddFieldMappingsAt("popularity", numericField())
	doc.AddFieldMappingsAt("createdAt", dateField())
	doc.AddFieldMappingsAt("updatedAt", dateField())

	author := bleve.NewDocumentMapping()
	author.AddFieldMappingsAt("id", keywordField())
	author.AddFieldMappingsAt("fullName", textField())
	author.AddFieldMappingsAt("verificationStatus", keywordField())
	doc.AddSubDocumentMapping("author", author)

	m.AddDocumentMapping("resource", doc)
	m.DefaultType = "resource"
	return m, nil
}

func buildUserMapping() (mapping.IndexMapping, error) {
	m, err := newBaseMapping()
	if err != nil {
		return nil, err
	}

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("email", keywordField())
	doc.AddFieldMappingsAt("fullName", textField())
	doc.AddFieldMappingsAt("bio", textField())
	doc.AddFieldMappingsAt("specializations", textField())
	// subjects and gradeLevels are text-matched by user search but also
	// filtered/faceted exactly, so each carries a keyword sub-field.
	doc.AddFieldMappingsAt("subjects", textField(), keywordSubField("subjects.keyword"))
	doc.AddFieldMappingsAt("gradeLevels", textField(), keywordSubField("gradeLevels.keyword"))
	doc.AddFieldMappingsAt("verificationStatus", keywordField())
	doc.AddFieldMappingsAt("yearsExperience", numericField())
	doc.AddFieldMappingsAt("connectionCount", numericField())
	doc.AddFieldMappingsAt("resourceCount", numericField())
	doc.AddFieldMappingsAt("activityScore", numericField())
	doc.AddFieldMappingsAt("lastActive", dateField())
	doc.AddFieldMappingsAt("createdAt", dateField())

	location := bleve.NewDocumentMapping()
	location.AddFieldMappingsAt("district", textField(), keywordSubField("district.keyword"))
	location.AddFieldMappingsAt("region", keywordField())
	doc.AddSubDocumentMapping("schoolLocation", location)

	m.AddDocumentMapping("user", doc)
	m.DefaultType = "user"
	return m, nil
}

func buildCommunityMapping() (mapping.IndexMapping, error) {
	m, err := newBaseMapping()
	if err != nil {
		return nil, err
	}

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("name", textField())
	doc.AddFieldMappingsAt("description", textField())
	doc.AddFieldMappingsAt("tags", textField())
	doc.AddFieldMappingsAt("type", keywordField())
	doc.AddFieldMappingsAt("activityLevel", keywordField())
	doc.AddFieldMappingsAt("isPrivate", boolField())
	doc.AddFieldMappingsAt("memberCount", numericField())
	doc.AddFieldMappingsAt("createdAt", dateField())

	m.AddDocumentMapping("community", doc)
	m.DefaultType = "community"
	return m, nil
}

func textField() *mapping.FieldMapping {
	f := bleve.NewTextFieldMapping()
	f.Store = true
	f.Index = true
	f.Analyzer = TextAnalyzerName
	return f
}

func keywordField() *mapping.FieldMapping {
	f := bleve.NewTextFieldMapping()
	f.Store = true
	f.Index = true
	f.Analyzer = keyword.Name
	return f
}

// keywordSubField indexes the same source value a second time under the
// given name with the keyword analyzer, for exact-match use.
func keywordSubField(name string) *mapping.FieldMapping {
	f := bleve.NewTextFieldMapping()
	f.Name = name
	f.Store = false
	f.Index = true
	f.Analyzer = keyword.Name
	return f
}

func numericField() *mapping.FieldMapping {
	f := bleve.NewNumericFieldMapping()
	f.Store = true
	f.Index = true
	return f
}

func dateField() *mapping.FieldMapping {
	f := bleve.NewDateTimeFieldMapping()
	f.Store = true
	f.Index = true
	return f
}

func boolField() *mapping.FieldMapping {
	f := bleve.NewBooleanFieldMapping()
	f.Store = true
	f.Index = true
	return f
}
