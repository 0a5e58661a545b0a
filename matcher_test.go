package xbrl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcherTagNameHit(t *testing.T) {
	m := newMatcherTables()
	hits := m.gather("CompaniesHouseRegisteredNumber", "", "")
	require.Len(t, hits, 1)
	assert.Equal(t, ColCompaniesHouseRegisteredNumber, hits[0].column)
	assert.Equal(t, ruleTagName, hits[0].kind)
}

func TestMatcherNameAttrHit(t *testing.T) {
	m := newMatcherTables()
	hits := m.gather("SomeGenericElement", "UKCompaniesHouseRegisteredNumber", "")
	require.Len(t, hits, 1)
	assert.Equal(t, ColCompaniesHouseRegisteredNumber, hits[0].column)
	assert.Equal(t, ruleNameAttr, hits[0].kind)
}

func TestMatcherCustomCreditorsWithinOneYear(t *testing.T) {
	m := newMatcherTables()
	hits := m.gather("Creditors", "Creditors", "d-WithinOneYear-2022")
	var sawCustom bool
	for _, h := range hits {
		if h.kind == ruleCustom && h.column == ColCreditorsDueWithinOneYear {
			sawCustom = true
		}
	}
	assert.True(t, sawCustom)
}

func TestMatcherEntityCurrentLegalNameExpandsToThreeCandidates(t *testing.T) {
	decls := columnDeclarations[ColEntityCurrentLegalName]
	require.Len(t, decls, 3)
	assert.Equal(t, "EntityCurrentLegalOrRegisteredName", decls[0].attrKey)
	assert.Equal(t, "EntityCurrentLegalName", decls[1].tagName)
	assert.True(t, decls[2].isCustom)
	assert.True(t, decls[2].custom.harvestSpan)
}

func TestMatcherTagOrAttrSharesPriority(t *testing.T) {
	m := newMatcherTables()
	tagHit, ok := m.tagName["FixedAssets"]
	require.True(t, ok)
	attrHit, ok := m.nameAttr["FixedAssets"]
	require.True(t, ok)
	assert.Equal(t, tagHit.priority, attrHit.priority)
	assert.Equal(t, ColTangibleFixedAssets, tagHit.column)
	assert.Equal(t, ColTangibleFixedAssets, attrHit.column)
}

func TestMatcherNoHitsForUnrelatedElement(t *testing.T) {
	m := newMatcherTables()
	hits := m.gather("div", "", "")
	assert.Empty(t, hits)
}
