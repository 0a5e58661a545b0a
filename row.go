package xbrl

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// filenamePattern matches "<run-code>_<company-id>_<YYYYMMDD>.(html|xml)",
// the fixed naming grammar of every bulk accounts data filename.
var filenamePattern = regexp.MustCompile(`^(Prod\d+_\d+)_([^_]+)_(\d{8})\.(html|xml)$`)

// taxonomyWhitelist is the fixed set of recognized UK GAAP/FRC taxonomy
// namespace URIs, in the order they're tested when assembling the
// `taxonomy` column.
var taxonomyWhitelist = []string{
	"http://www.xbrl.org/uk/fr/gaap/pt/2004-12-01",
	"http://www.xbrl.org/uk/gaap/core/2009-09-01",
	"http://xbrl.frc.org.uk/fr/2014-09-01/core",
}

// Row is one output tuple: the full 37-column catalog, in fixed column
// order. A nil field means the corresponding value was
// never matched, or the filing has no periodic facts at all.
type Row struct {
	RunCode   string `csv:"run_code"`
	CompanyID string `csv:"company_id"`
	Date      string `csv:"date"`
	FileType  string `csv:"file_type"`
	Taxonomy  string `csv:"taxonomy"`

	BalanceSheetDate                    *string `csv:"balance_sheet_date"`
	CompaniesHouseRegisteredNumber      *string `csv:"companies_house_registered_number"`
	EntityCurrentLegalName              *string `csv:"entity_current_legal_name"`
	CompanyDormant                      *bool   `csv:"company_dormant"`
	AverageNumberEmployeesDuringPeriod  *string `csv:"average_number_employees_during_period"`

	PeriodStart *string `csv:"period_start"`
	PeriodEnd   *string `csv:"period_end"`

	TangibleFixedAssets                                                *string `csv:"tangible_fixed_assets"`
	Debtors                                                            *string `csv:"debtors"`
	CashBankInHand                                                     *string `csv:"cash_bank_in_hand"`
	CurrentAssets                                                      *string `csv:"current_assets"`
	CreditorsDueWithinOneYear                                          *string `csv:"creditors_due_within_one_year"`
	CreditorsDueAfterOneYear                                           *string `csv:"creditors_due_after_one_year"`
	NetCurrentAssetsLiabilities                                        *string `csv:"net_current_assets_liabilities"`
	TotalAssetsLessCurrentLiabilities                                  *string `csv:"total_assets_less_current_liabilities"`
	NetAssetsLiabilitiesIncludingPensionAssetLiability                 *string `csv:"net_assets_liabilities_including_pension_asset_liability"`
	CalledUpShareCapital                                               *string `csv:"called_up_share_capital"`
	ProfitLossAccountReserve                                           *string `csv:"profit_loss_account_reserve"`
	ShareholderFunds                                                   *string `csv:"shareholder_funds"`
	TurnoverGrossOperatingRevenue                                      *string `csv:"turnover_gross_operating_revenue"`
	OtherOperatingIncome                                               *string `csv:"other_operating_income"`
	CostSales                                                          *string `csv:"cost_sales"`
	GrossProfitLoss                                                    *string `csv:"gross_profit_loss"`
	AdministrativeExpenses                                             *string `csv:"administrative_expenses"`
	RawMaterialsConsumables                                            *string `csv:"raw_materials_consumables"`
	StaffCosts                                                         *string `csv:"staff_costs"`
	DepreciationOtherAmountsWrittenOffTangibleIntangibleFixedAssets    *string `csv:"depreciation_other_amounts_written_off_tangible_intangible_fixed_assets"`
	OtherOperatingChargesFormat2                                       *string `csv:"other_operating_charges_format2"`
	OperatingProfitLoss                                                *string `csv:"operating_profit_loss"`
	ProfitLossOnOrdinaryActivitiesBeforeTax                            *string `csv:"profit_loss_on_ordinary_activities_before_tax"`
	TaxOnProfitOrLossOnOrdinaryActivities                              *string `csv:"tax_on_profit_or_loss_on_ordinary_activities"`
	ProfitLossForPeriod                                                *string `csv:"profit_loss_for_period"`
}

// periodicColumnOrder lists the 25 Periodic columns in catalog/output
// order, matching the Column constants declared after the 5 General ones
// in catalog.go.
var periodicColumnOrder = []Column{
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

// generalColumnOrder lists the 5 General columns in catalog/output order.
var generalColumnOrder = []Column{
	ColBalanceSheetDate,
	ColCompaniesHouseRegisteredNumber,
	ColEntityCurrentLegalName,
	ColCompanyDormant,
	ColAverageNumberEmployeesDuringPeriod,
}

// coreAttributes holds the 5 filename/namespace-derived attributes
// shared by every row of a filing.
type coreAttributes struct {
	RunCode   string
	CompanyID string
	Date      string
	FileType  string
	Taxonomy  string
}

// parseFilename splits a filename into its run code, company id, date,
// and file type, per filenamePattern.
func parseFilename(filename string) (coreAttributes, error) {
	base := filename
	if idx := strings.LastIndexAny(filename, `/\`); idx >= 0 {
		base = filename[idx+1:]
	}
	m := filenamePattern.FindStringSubmatch(base)
	if m == nil {
		return coreAttributes{}, &UnrecognizedFilenameError{Filename: filename}
	}
	date, ok := parseYYYYMMDD(m[3])
	if !ok {
		return coreAttributes{}, &UnrecognizedFilenameError{Filename: filename}
	}
	return coreAttributes{
		RunCode:   m[1],
		CompanyID: m[2],
		Date:      date.Format("2006-01-02"),
		FileType:  m[4],
	}, nil
}

// computeTaxonomy intersects the document's declared namespace URIs
// with the fixed whitelist, joined by ";" in whitelist order so the
// result is deterministic regardless of declaration order in the source
// document.
func computeTaxonomy(declaredNamespaces map[string]struct{}) string {
	var matches []string
	for _, uri := range taxonomyWhitelist {
		if _, ok := declaredNamespaces[uri]; ok {
			matches = append(matches, uri)
		}
	}
	return strings.Join(matches, ";")
}

// periodKey is the (period_start, period_end) string pair a periodic
// bucket is keyed by, pre date-parsing.
type periodKey struct {
	start string
	end   string
}

// slot is a priority-keyed "best value" cell.
type slot struct {
	priority int
	value    any
	filled   bool
}

func newSlot() slot { return slot{priority: sentinelMaxPriority} }

// assembleRows combines the core attributes with the general bucket and
// the sorted periodic buckets into output Rows.
func assembleRows(core coreAttributes, general [generalColumnCount]slot, periodic map[periodKey][]slot) []Row {
	type periodRow struct {
		key   periodKey
		slots []slot
	}
	var periods []periodRow
	for k, s := range periodic {
		periods = append(periods, periodRow{key: k, slots: s})
	}
	sort.Slice(periods, func(i, j int) bool {
		if periods[i].key.start != periods[j].key.start {
			return periods[i].key.start > periods[j].key.start
		}
		return periods[i].key.end > periods[j].key.end
	})

	makeBase := func() Row {
		r := Row{
			RunCode:   core.RunCode,
			CompanyID: core.CompanyID,
			Date:      core.Date,
			FileType:  core.FileType,
			Taxonomy:  core.Taxonomy,
		}
		setGeneralFields(&r, general)
		return r
	}

	if len(periods) == 0 {
		return []Row{makeBase()}
	}

	rows := make([]Row, 0, len(periods))
	for _, p := range periods {
		r := makeBase()
		start, end := p.key.start, p.key.end
		r.PeriodStart = &start
		r.PeriodEnd = &end
		setPeriodicFields(&r, p.slots)
		rows = append(rows, r)
	}
	return rows
}

func setGeneralFields(r *Row, general [generalColumnCount]slot) {
	r.BalanceSheetDate = slotToDateString(general[ColBalanceSheetDate])
	r.CompaniesHouseRegisteredNumber = slotToString(general[ColCompaniesHouseRegisteredNumber])
	r.EntityCurrentLegalName = slotToString(general[ColEntityCurrentLegalName])
	r.CompanyDormant = slotToBool(general[ColCompanyDormant])
	r.AverageNumberEmployeesDuringPeriod = slotToDecimalString(general[ColAverageNumberEmployeesDuringPeriod])
}

func setPeriodicFields(r *Row, slots []slot) {
	get := func(col Column) *string { return slotToDecimalString(slots[periodicSlotIndex(col)]) }
	r.TangibleFixedAssets = get(ColTangibleFixedAssets)
	r.Debtors = get(ColDebtors)
	r.CashBankInHand = get(ColCashBankInHand)
	r.CurrentAssets = get(ColCurrentAssets)
	r.CreditorsDueWithinOneYear = get(ColCreditorsDueWithinOneYear)
	r.CreditorsDueAfterOneYear = get(ColCreditorsDueAfterOneYear)
	r.NetCurrentAssetsLiabilities = get(ColNetCurrentAssetsLiabilities)
	r.TotalAssetsLessCurrentLiabilities = get(ColTotalAssetsLessCurrentLiabilities)
	r.NetAssetsLiabilitiesIncludingPensionAssetLiability = get(ColNetAssetsLiabilitiesIncludingPensionAssetLiability)
	r.CalledUpShareCapital = get(ColCalledUpShareCapital)
	r.ProfitLossAccountReserve = get(ColProfitLossAccountReserve)
	r.ShareholderFunds = get(ColShareholderFunds)
	r.TurnoverGrossOperatingRevenue = get(ColTurnoverGrossOperatingRevenue)
	r.OtherOperatingIncome = get(ColOtherOperatingIncome)
	r.CostSales = get(ColCostSales)
	r.GrossProfitLoss = get(ColGrossProfitLoss)
	r.AdministrativeExpenses = get(ColAdministrativeExpenses)
	r.RawMaterialsConsumables = get(ColRawMaterialsConsumables)
	r.StaffCosts = get(ColStaffCosts)
	r.DepreciationOtherAmountsWrittenOffTangibleIntangibleFixedAssets = get(ColDepreciationOtherAmountsWrittenOffTangibleIntangibleFixedAssets)
	r.OtherOperatingChargesFormat2 = get(ColOtherOperatingChargesFormat2)
	r.OperatingProfitLoss = get(ColOperatingProfitLoss)
	r.ProfitLossOnOrdinaryActivitiesBeforeTax = get(ColProfitLossOnOrdinaryActivitiesBeforeTax)
	r.TaxOnProfitOrLossOnOrdinaryActivities = get(ColTaxOnProfitOrLossOnOrdinaryActivities)
	r.ProfitLossForPeriod = get(ColProfitLossForPeriod)
}

// periodicSlotIndex maps a Periodic Column to its index within a
// per-period []slot, i.e. its position in periodicColumnOrder.
func periodicSlotIndex(col Column) int {
	return int(col) - generalColumnCount
}

func slotToString(s slot) *string {
	if !s.filled {
		return nil
	}
	v, ok := s.value.(string)
	if !ok {
		return nil
	}
	return &v
}

func slotToBool(s slot) *bool {
	if !s.filled {
		return nil
	}
	v, ok := s.value.(bool)
	if !ok {
		return nil
	}
	return &v
}

func slotToDecimalString(s slot) *string {
	if !s.filled {
		return nil
	}
	str, ok := formatSlotValue(s.value)
	if !ok {
		return nil
	}
	return &str
}

func slotToDateString(s slot) *string {
	if !s.filled {
		return nil
	}
	t, ok := s.value.(time.Time)
	if !ok {
		return nil
	}
	str := t.Format("2006-01-02")
	return &str
}

// formatSlotValue renders a filled slot's decimal.Decimal value as its
// canonical string form, for the periodic/decimal-with-colon columns.
func formatSlotValue(v any) (string, bool) {
	d, ok := v.(decimal.Decimal)
	if !ok {
		return "", false
	}
	return d.String(), true
}
