package models

// ObliquityEntryModel is an obliquity-of-the-ecliptic value as exposed by
// the API. Values are in arcseconds; no unit conversion is performed.
type ObliquityEntryModel struct {
	Label       string  `json:"label"`
	ValueArcsec float64 `json:"valueArcsec"`
	IsDefault   bool    `json:"isDefault"`
}

// NewObliquityEntry creates an ObliquityEntryModel. isDefault reports
// whether the value is the one the DEFAULT entry resolves to.
func NewObliquityEntry(label string, valueArcsec float64, isDefault bool) ObliquityEntryModel {
	return ObliquityEntryModel{
		Label:       label,
		ValueArcsec: valueArcsec,
		IsDefault:   isDefault,
	}
}
