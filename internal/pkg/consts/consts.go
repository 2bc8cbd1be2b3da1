package consts

const (
	ServiceName = "CreditScoringService"
	Channel     = "Dodrio"

	// ModelFooter describes the scoring pipeline on the form surface.
	ModelFooter = "Model: XGBoost (binary:logistic) • Input: DictVectorizer • Output: PD"
)

// Option sets for the categorical applicant fields, in form display order.
var (
	HomeOptions    = []string{"owner", "parents"}
	MaritalOptions = []string{"single", "married"}
	RecordsOptions = []string{"no", "yes"}
	JobOptions     = []string{"fixed", "freelance", "partime"}
)
