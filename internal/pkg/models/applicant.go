package models

// ApplicantRecord is the fixed-schema input to the scoring pipeline. Field
// names match the feature names the encoder was fitted on.
type ApplicantRecord struct {
	Seniority int     `json:"seniority"`
	Home      string  `json:"home"`
	Time      int     `json:"time"`
	Age       int     `json:"age"`
	Marital   string  `json:"marital"`
	Records   string  `json:"records"`
	Job       string  `json:"job"`
	Expenses  int     `json:"expenses"`
	Income    float64 `json:"income"`
	Assets    float64 `json:"assets"`
	Debt      float64 `json:"debt"`
	Amount    int     `json:"amount"`
	Price     int     `json:"price"`
}

// Features returns the record keyed by encoder feature name. Categorical
// fields stay strings, numeric fields become float64 values.
func (r ApplicantRecord) Features() map[string]any {
	return map[string]any{
		"seniority": float64(r.Seniority),
		"home":      r.Home,
		"time":      float64(r.Time),
		"age":       float64(r.Age),
		"marital":   r.Marital,
		"records":   r.Records,
		"job":       r.Job,
		"expenses":  float64(r.Expenses),
		"income":    r.Income,
		"assets":    r.Assets,
		"debt":      r.Debt,
		"amount":    float64(r.Amount),
		"price":     float64(r.Price),
	}
}

// DefaultApplicantRecord returns the documented form defaults.
func DefaultApplicantRecord() ApplicantRecord {
	return ApplicantRecord{
		Seniority: 5,
		Home:      "owner",
		Time:      36,
		Age:       36,
		Marital:   "married",
		Records:   "no",
		Job:       "freelance",
		Expenses:  60,
		Income:    100.0,
		Assets:    4000.0,
		Debt:      0.0,
		Amount:    1100,
		Price:     1400,
	}
}
