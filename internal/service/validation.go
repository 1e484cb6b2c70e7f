package service

import (
	"strings"

	"carf-backend/internal/model"
	"carf-backend/pkg/apperr"
	"carf-backend/pkg/format"
)

// requiredAlways are the fields every submission must carry regardless of
// customer classification.
var requiredAlways = []fieldRule{
	{"custtype", func(r *model.CustomerFormRecord) string { return r.CustType }},
	{"requestfor", func(r *model.CustomerFormRecord) string { return r.RequestFor }},
	{"type", func(r *model.CustomerFormRecord) string { return r.Type }},
	{"billaddress", func(r *model.CustomerFormRecord) string { return r.BillAddress }},
	{"deladdress", func(r *model.CustomerFormRecord) string { return r.DelAddress }},
	{"contactperson", func(r *model.CustomerFormRecord) string { return r.ContactPerson }},
	{"contactnumber", func(r *model.CustomerFormRecord) string { return r.ContactNumber }},
	{"terms", func(r *model.CustomerFormRecord) string { return r.Terms }},
	{"makerid", func(r *model.CustomerFormRecord) string { return r.MakerID }},
}

var requiredCorporation = []fieldRule{
	{"soldtoparty", func(r *model.CustomerFormRecord) string { return r.SoldToParty }},
	{"tin", func(r *model.CustomerFormRecord) string { return r.TIN }},
}

var requiredPersonal = []fieldRule{
	{"firstname", func(r *model.CustomerFormRecord) string { return r.FirstName }},
	{"middlename", func(r *model.CustomerFormRecord) string { return r.MiddleName }},
	{"lastname", func(r *model.CustomerFormRecord) string { return r.LastName }},
}

// requiredVolumes is skipped for HIGH RISK ACCOUNTS; those are activated
// before any sales history exists.
var requiredVolumes = []fieldRule{
	{"targetvolumeday", func(r *model.CustomerFormRecord) string { return r.TargetVolumeDay }},
	{"targetvolumemonth", func(r *model.CustomerFormRecord) string { return r.TargetVolumeMonth }},
}

type fieldRule struct {
	name  string
	value func(r *model.CustomerFormRecord) string
}

// ValidateForSubmit checks a form against the required-field matrix for its
// classification. All violations are reported in one pass so the maker fixes
// the form once, not field by field.
func ValidateForSubmit(rec *model.CustomerFormRecord) error {
	var missing []string

	check := func(rules []fieldRule) {
		for _, rule := range rules {
			if strings.TrimSpace(rule.value(rec)) == "" {
				missing = append(missing, rule.name)
			}
		}
	}

	// numeric flags an amount that is present but does not parse to a
	// positive number. ParseNumber strips display separators first, so
	// "1,500" passes.
	numeric := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		if !format.ParseNumber(value).IsPositive() {
			missing = append(missing, name)
		}
	}

	check(requiredAlways)

	switch rec.Type {
	case model.TypeCorporation:
		check(requiredCorporation)
	case model.TypePersonal:
		check(requiredPersonal)
	}

	if rec.CustType != model.CustTypeHighRisk {
		check(requiredVolumes)
		numeric("targetvolumeday", rec.TargetVolumeDay)
		numeric("targetvolumemonth", rec.TargetVolumeMonth)
	}
	numeric("creditlimit", rec.CreditLimit)

	if len(rec.SaleType) == 0 {
		missing = append(missing, "saletype")
	}

	if len(missing) > 0 {
		return apperr.Validation(missing...)
	}
	return nil
}
