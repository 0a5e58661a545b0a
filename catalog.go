package xbrl

import "strings"

// Column identifies one of the 30 General ∪ Periodic output columns that
// participate in candidate matching. The 5 Core, 2 period-bounds, and the
// ordering of all 37 output columns live in row.go, which is where the
// full catalog is exposed to callers.
type Column int

const (
	ColBalanceSheetDate Column = iota
	ColCompaniesHouseRegisteredNumber
	ColEntityCurrentLegalName
	ColCompanyDormant
	ColAverageNumberEmployeesDuringPeriod

	ColTangibleFixedAssets
	ColDebtors
	ColCashBankInHand
	ColCurrentAssets
	ColCreditorsDueWithinOneYear
	ColCreditorsDueAfterOneYear
	ColNetCurrentAssetsLiabilities
	ColTotalAssetsLessCurrentLiabilities
	ColNetAssetsLiabilitiesIncludingPensionAssetLiability
	ColCalledUpShareCapital
	ColProfitLossAccountReserve
	ColShareholderFunds
	ColTurnoverGrossOperatingRevenue
	ColOtherOperatingIncome
	ColCostSales
	ColGrossProfitLoss
	ColAdministrativeExpenses
	ColRawMaterialsConsumables
	ColStaffCosts
	ColDepreciationOtherAmountsWrittenOffTangibleIntangibleFixedAssets
	ColOtherOperatingChargesFormat2
	ColOperatingProfitLoss
	ColProfitLossOnOrdinaryActivitiesBeforeTax
	ColTaxOnProfitOrLossOnOrdinaryActivities
	ColProfitLossForPeriod

	numMatchedColumns
)

const generalColumnCount = 5 // ColBalanceSheetDate .. ColAverageNumberEmployeesDuringPeriod

// IsGeneral reports whether c is one of the 5 General columns (as opposed
// to one of the 25 Periodic columns).
func (c Column) IsGeneral() bool { return c < generalColumnCount }

// sentinelMaxPriority is higher than any declared candidate priority,
// so a slot holding it has never been filled.
const sentinelMaxPriority = 10

// parserFunc is the common signature every Value Parser is adapted to so
// the matcher tables can hold heterogeneous parsers uniformly. attrs maps
// attribute local names to values for the element under consideration.
type parserFunc func(text string, attrs map[string]string) (any, bool)

func asParser[T any](f func(string, map[string]string) (T, bool)) parserFunc {
	return func(text string, attrs map[string]string) (any, bool) {
		v, ok := f(text, attrs)
		if !ok {
			return nil, false
		}
		return v, true
	}
}

var (
	stringParser           = asParser(parseString)
	decimalParser          = asParser(parseDecimal)
	decimalWithColonParser = asParser(parseDecimalWithColon)
	dateParser             = asParser(parseDate)
	boolParser             = asParser(parseBool)
	reversedBoolParser     = asParser(parseReversedBool)
)

// ruleKind is the tagged variant over the three match rule shapes: tag
// name, name attribute, and an arbitrary predicate.
type ruleKind int

const (
	ruleTagName ruleKind = iota
	ruleNameAttr
	ruleCustom
)

// customPredicate is a named predicate rather than a closure capturing
// per-element state: it only looks at the three cheap, already-computed
// strings every element produces during the traversal.
type customPredicate func(localName, nameSuffix, contextRef string) bool

// candidate is one (column, priority, rule, parser) tuple.
// harvestSpanDescendant marks the one candidate (entity legal name) whose
// match rule harvests a descendant element's text instead of the matched
// element's own direct text.
type candidate struct {
	column                Column
	priority              int
	kind                  ruleKind
	key                   string // tag local name, or name-attribute suffix
	predicate             customPredicate
	parser                parserFunc
	harvestSpanDescendant bool
}

// declaration is one entry in a column's candidate list, in priority
// order (priority == index in the column's own list). A declaration may
// expand to more than one candidate: a tag-name-or-name-attribute rule
// becomes one TagName candidate and one NameAttr candidate sharing a
// single priority, since the matcher tables dispatch tag names and
// name-attribute suffixes through two separate maps.
type declaration struct {
	column  Column
	parser  parserFunc
	tagName string // non-empty: also match on local tag name
	attrKey string // non-empty: also match on name-attribute suffix
	custom  struct {
		predicate customPredicate
		harvestSpan bool
	}
	isCustom bool
}

func tagOrAttr(column Column, parser parserFunc, name string) declaration {
	return declaration{column: column, parser: parser, tagName: name, attrKey: name}
}

func tagOnly(column Column, parser parserFunc, name string) declaration {
	return declaration{column: column, parser: parser, tagName: name}
}

func attrOnly(column Column, parser parserFunc, name string) declaration {
	return declaration{column: column, parser: parser, attrKey: name}
}

func custom(column Column, parser parserFunc, pred customPredicate) declaration {
	d := declaration{column: column, parser: parser, isCustom: true}
	d.custom.predicate = pred
	return d
}

func customSpan(column Column, parser parserFunc, pred customPredicate) declaration {
	d := custom(column, parser, pred)
	d.custom.harvestSpan = true
	return d
}

// Custom predicates for the contextRef-sensitive and name-attr-sensitive
// candidates in the catalog below.
func predCreditorsWithinOneYear(_, nameSuffix, contextRef string) bool {
	return nameSuffix == "Creditors" && strings.Contains(contextRef, "WithinOneYear")
}

func predCreditorsAfterOneYear(_, nameSuffix, contextRef string) bool {
	return nameSuffix == "Creditors" && strings.Contains(contextRef, "AfterOneYear")
}

func predCalledUpShareCapital(_, nameSuffix, contextRef string) bool {
	return nameSuffix == "Equity" && strings.Contains(contextRef, "ShareCapital")
}

func predProfitLossAccountReserve(_, nameSuffix, contextRef string) bool {
	return nameSuffix == "Equity" && strings.Contains(contextRef, "RetainedEarningsAccumulatedLosses")
}

func predShareholderFunds(_, nameSuffix, contextRef string) bool {
	return nameSuffix == "Equity" && !strings.Contains(contextRef, "segment")
}

func predEntityCurrentLegalNameSpan(_, nameSuffix, _ string) bool {
	return nameSuffix == "EntityCurrentLegalOrRegisteredName"
}

// columnDeclarations is the candidate catalog for every General and
// Periodic column: which tag names, name-attribute suffixes, and custom
// predicates can fill each one, and with which parser. Declaration order
// within each column's slice is priority order (0, 1, 2, ...).
var columnDeclarations = map[Column][]declaration{
	ColBalanceSheetDate: {
		attrOnly(ColBalanceSheetDate, dateParser, "BalanceSheetDate"),
		tagOnly(ColBalanceSheetDate, dateParser, "BalanceSheetDate"),
	},
	ColCompaniesHouseRegisteredNumber: {
		attrOnly(ColCompaniesHouseRegisteredNumber, stringParser, "UKCompaniesHouseRegisteredNumber"),
		tagOnly(ColCompaniesHouseRegisteredNumber, stringParser, "CompaniesHouseRegisteredNumber"),
	},
	ColEntityCurrentLegalName: {
		attrOnly(ColEntityCurrentLegalName, stringParser, "EntityCurrentLegalOrRegisteredName"),
		tagOnly(ColEntityCurrentLegalName, stringParser, "EntityCurrentLegalName"),
		customSpan(ColEntityCurrentLegalName, stringParser, predEntityCurrentLegalNameSpan),
	},
	ColCompanyDormant: {
		attrOnly(ColCompanyDormant, boolParser, "EntityDormantTruefalse"),
		attrOnly(ColCompanyDormant, boolParser, "EntityDormant"),
		tagOnly(ColCompanyDormant, boolParser, "CompanyDormant"),
		tagOnly(ColCompanyDormant, reversedBoolParser, "CompanyNotDormant"),
	},
	ColAverageNumberEmployeesDuringPeriod: {
		attrOnly(ColAverageNumberEmployeesDuringPeriod, decimalWithColonParser, "AverageNumberEmployeesDuringPeriod"),
		attrOnly(ColAverageNumberEmployeesDuringPeriod, decimalWithColonParser, "EmployeesTotal"),
		tagOnly(ColAverageNumberEmployeesDuringPeriod, decimalWithColonParser, "AverageNumberEmployeesDuringPeriod"),
		tagOnly(ColAverageNumberEmployeesDuringPeriod, decimalWithColonParser, "EmployeesTotal"),
	},

	ColTangibleFixedAssets: {
		tagOrAttr(ColTangibleFixedAssets, decimalParser, "FixedAssets"),
		tagOrAttr(ColTangibleFixedAssets, decimalParser, "TangibleFixedAssets"),
		attrOnly(ColTangibleFixedAssets, decimalParser, "PropertyPlantEquipment"),
	},
	ColDebtors: {
		tagOrAttr(ColDebtors, decimalParser, "Debtors"),
	},
	ColCashBankInHand: {
		tagOrAttr(ColCashBankInHand, decimalParser, "CashBankInHand"),
		attrOnly(ColCashBankInHand, decimalParser, "CashBankOnHand"),
	},
	ColCurrentAssets: {
		tagOrAttr(ColCurrentAssets, decimalParser, "CurrentAssets"),
	},
	ColCreditorsDueWithinOneYear: {
		attrOnly(ColCreditorsDueWithinOneYear, decimalParser, "CreditorsDueWithinOneYear"),
		custom(ColCreditorsDueWithinOneYear, decimalParser, predCreditorsWithinOneYear),
	},
	ColCreditorsDueAfterOneYear: {
		attrOnly(ColCreditorsDueAfterOneYear, decimalParser, "CreditorsDueAfterOneYear"),
		custom(ColCreditorsDueAfterOneYear, decimalParser, predCreditorsAfterOneYear),
	},
	ColNetCurrentAssetsLiabilities: {
		tagOrAttr(ColNetCurrentAssetsLiabilities, decimalParser, "NetCurrentAssetsLiabilities"),
	},
	ColTotalAssetsLessCurrentLiabilities: {
		tagOrAttr(ColTotalAssetsLessCurrentLiabilities, decimalParser, "TotalAssetsLessCurrentLiabilities"),
	},
	ColNetAssetsLiabilitiesIncludingPensionAssetLiability: {
		tagOrAttr(ColNetAssetsLiabilitiesIncludingPensionAssetLiability, decimalParser, "NetAssetsLiabilitiesIncludingPensionAssetLiability"),
		tagOrAttr(ColNetAssetsLiabilitiesIncludingPensionAssetLiability, decimalParser, "NetAssetsLiabilities"),
	},
	ColCalledUpShareCapital: {
		tagOrAttr(ColCalledUpShareCapital, decimalParser, "CalledUpShareCapital"),
		custom(ColCalledUpShareCapital, decimalParser, predCalledUpShareCapital),
	},
	ColProfitLossAccountReserve: {
		tagOrAttr(ColProfitLossAccountReserve, decimalParser, "ProfitLossAccountReserve"),
		custom(ColProfitLossAccountReserve, decimalParser, predProfitLossAccountReserve),
	},
	ColShareholderFunds: {
		tagOrAttr(ColShareholderFunds, decimalParser, "ShareholderFunds"),
		custom(ColShareholderFunds, decimalParser, predShareholderFunds),
	},
	ColTurnoverGrossOperatingRevenue: {
		tagOrAttr(ColTurnoverGrossOperatingRevenue, decimalParser, "TurnoverGrossOperatingRevenue"),
		tagOrAttr(ColTurnoverGrossOperatingRevenue, decimalParser, "TurnoverRevenue"),
	},
	ColOtherOperatingIncome: {
		tagOrAttr(ColOtherOperatingIncome, decimalParser, "OtherOperatingIncome"),
		tagOrAttr(ColOtherOperatingIncome, decimalParser, "OtherOperatingIncomeFormat2"),
	},
	ColCostSales: {
		tagOrAttr(ColCostSales, decimalParser, "CostSales"),
	},
	ColGrossProfitLoss: {
		tagOrAttr(ColGrossProfitLoss, decimalParser, "GrossProfitLoss"),
	},
	ColAdministrativeExpenses: {
		tagOrAttr(ColAdministrativeExpenses, decimalParser, "AdministrativeExpenses"),
	},
	ColRawMaterialsConsumables: {
		tagOrAttr(ColRawMaterialsConsumables, decimalParser, "RawMaterialsConsumables"),
		tagOrAttr(ColRawMaterialsConsumables, decimalParser, "RawMaterialsConsumablesUsed"),
	},
	ColStaffCosts: {
		tagOrAttr(ColStaffCosts, decimalParser, "StaffCosts"),
		tagOrAttr(ColStaffCosts, decimalParser, "StaffCostsEmployeeBenefitsExpense"),
	},
	ColDepreciationOtherAmountsWrittenOffTangibleIntangibleFixedAssets: {
		tagOrAttr(ColDepreciationOtherAmountsWrittenOffTangibleIntangibleFixedAssets, decimalParser, "DepreciationOtherAmountsWrittenOffTangibleIntangibleFixedAssets"),
		tagOrAttr(ColDepreciationOtherAmountsWrittenOffTangibleIntangibleFixedAssets, decimalParser, "DepreciationAmortisationImpairmentExpense"),
	},
	ColOtherOperatingChargesFormat2: {
		tagOrAttr(ColOtherOperatingChargesFormat2, decimalParser, "OtherOperatingChargesFormat2"),
		tagOrAttr(ColOtherOperatingChargesFormat2, decimalParser, "OtherOperatingExpensesFormat2"),
	},
	ColOperatingProfitLoss: {
		tagOrAttr(ColOperatingProfitLoss, decimalParser, "OperatingProfitLoss"),
	},
	ColProfitLossOnOrdinaryActivitiesBeforeTax: {
		tagOrAttr(ColProfitLossOnOrdinaryActivitiesBeforeTax, decimalParser, "ProfitLossOnOrdinaryActivitiesBeforeTax"),
	},
	ColTaxOnProfitOrLossOnOrdinaryActivities: {
		tagOrAttr(ColTaxOnProfitOrLossOnOrdinaryActivities, decimalParser, "TaxOnProfitOrLossOnOrdinaryActivities"),
		tagOrAttr(ColTaxOnProfitOrLossOnOrdinaryActivities, decimalParser, "TaxTaxCreditOnProfitOrLossOnOrdinaryActivities"),
	},
	ColProfitLossForPeriod: {
		tagOrAttr(ColProfitLossForPeriod, decimalParser, "ProfitLoss"),
		tagOrAttr(ColProfitLossForPeriod, decimalParser, "ProfitLossForPeriod"),
	},
}

// columnOrder fixes the iteration order used to build the flat candidate
// list and, by extension, which column's TagName/NameAttr entry wins a
// table slot when two columns happen to declare the same tag or suffix:
// the first one encountered is retained.
var columnOrder = []Column{
	ColBalanceSheetDate,
	ColCompaniesHouseRegisteredNumber,
	ColEntityCurrentLegalName,
	ColCompanyDormant,
	ColAverageNumberEmployeesDuringPeriod,

	ColTangibleFixedAssets,
	ColDebtors,
	ColCashBankInHand,
	ColCurrentAssets,
	ColCreditorsDueWithinOneYear,
	ColCreditorsDueAfterOneYear,
	ColNetCurrentAssetsLiabilities,
	ColTotalAssetsLessCurrentLiabilities,
	ColNetAssetsLiabilitiesIncludingPensionAssetLiability,
	ColCalledUpShareCapital,
	ColProfitLossAccountReserve,
	ColShareholderFunds,
	ColTurnoverGrossOperatingRevenue,
	ColOtherOperatingIncome,
	ColCostSales,
	ColGrossProfitLoss,
	ColAdministrativeExpenses,
	ColRawMaterialsConsumables,
	ColStaffCosts,
	ColDepreciationOtherAmountsWrittenOffTangibleIntangibleFixedAssets,
	ColOtherOperatingChargesFormat2,
	ColOperatingProfitLoss,
	ColProfitLossOnOrdinaryActivitiesBeforeTax,
	ColTaxOnProfitOrLossOnOrdinaryActivities,
	ColProfitLossForPeriod,
}

// buildCandidates expands columnDeclarations into the flat candidate list
// consulted when constructing the matcher tables.
func buildCandidates() []candidate {
	var out []candidate
	for _, col := range columnOrder {
		for priority, decl := range columnDeclarations[col] {
			if decl.isCustom {
				out = append(out, candidate{
					column:                col,
					priority:              priority,
					kind:                  ruleCustom,
					predicate:             decl.custom.predicate,
					parser:                decl.parser,
					harvestSpanDescendant: decl.custom.harvestSpan,
				})
				continue
			}
			if decl.tagName != "" {
				out = append(out, candidate{
					column:   col,
					priority: priority,
					kind:     ruleTagName,
					key:      decl.tagName,
					parser:   decl.parser,
				})
			}
			if decl.attrKey != "" {
				out = append(out, candidate{
					column:   col,
					priority: priority,
					kind:     ruleNameAttr,
					key:      decl.attrKey,
					parser:   decl.parser,
				})
			}
		}
	}
	return out
}
