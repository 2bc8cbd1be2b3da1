package models

// ScoreRequest is the JSON API payload. Categorical fields are validated
// against the documented option sets and integer fields mirror the form
// widget minimums. The monetary fields carry no binding constraints: their
// non-negative domain is enforced by the sanitizer, which silently clamps.
type ScoreRequest struct {
	Seniority int     `json:"seniority" binding:"gte=0"`
	Home      string  `json:"home" binding:"required,oneof=owner parents"`
	Time      int     `json:"time" binding:"gte=0"`
	Age       int     `json:"age" binding:"gte=0"`
	Marital   string  `json:"marital" binding:"required,oneof=single married"`
	Records   string  `json:"records" binding:"required,oneof=no yes"`
	Job       string  `json:"job" binding:"required,oneof=fixed freelance partime"`
	Expenses  int     `json:"expenses" binding:"gte=0"`
	Income    float64 `json:"income"`
	Assets    float64 `json:"assets"`
	Debt      float64 `json:"debt"`
	Amount    int     `json:"amount" binding:"gte=0"`
	Price     int     `json:"price" binding:"gte=0"`
}

// ToRecord maps the request onto the scoring pipeline's input model.
func (r ScoreRequest) ToRecord() ApplicantRecord {
	return ApplicantRecord{
		Seniority: r.Seniority,
		Home:      r.Home,
		Time:      r.Time,
		Age:       r.Age,
		Marital:   r.Marital,
		Records:   r.Records,
		Job:       r.Job,
		Expenses:  r.Expenses,
		Income:    r.Income,
		Assets:    r.Assets,
		Debt:      r.Debt,
		Amount:    r.Amount,
		Price:     r.Price,
	}
}
