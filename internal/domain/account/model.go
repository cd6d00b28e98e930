package account

// Risk is the heat level of an opportunity.
type Risk string

const (
	RiskCool Risk = "cool"
	RiskWarm Risk = "warm"
	RiskHot  Risk = "hot"
)

// LastTouch records the most recent interaction with an account.
type LastTouch struct {
	Date string `json:"date" yaml:"date"`
	Type string `json:"type" yaml:"type"`
}

// Opportunity is a prospective sale owned by exactly one account.
// Optional fields are pointers; defaults are applied by the pipeline projection.
type Opportunity struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Stage        string   `json:"stage,omitempty" yaml:"stage"`
	Value        *float64 `json:"value,omitempty" yaml:"value"`
	Risk         Risk     `json:"risk,omitempty" yaml:"risk"`
	ClosingDays  *int     `json:"closing_days,omitempty" yaml:"closingDays"`
	LastActivity string   `json:"last_activity,omitempty" yaml:"lastActivity"`
}

// Account is a customer organization and the opportunities it owns.
type Account struct {
	ID            string        `json:"id" yaml:"id"`
	Name          string        `json:"name" yaml:"name"`
	Industry      string        `json:"industry,omitempty" yaml:"industry"`
	Agent         string        `json:"agent,omitempty" yaml:"am"`
	Score         int           `json:"score" yaml:"score"`
	ARCount       *int          `json:"ar_count,omitempty" yaml:"arCount"`
	LastTouch     *LastTouch    `json:"last_touch,omitempty" yaml:"lastTouch"`
	StaleDays     *int          `json:"stale_days,omitempty" yaml:"staleDays"`
	Opportunities []Opportunity `json:"opportunities" yaml:"opportunities"`
}

// Dataset is the read-only account collection loaded once per process.
type Dataset struct {
	Accounts []Account `json:"accounts" yaml:"accounts"`
}

// Summary is a lightweight account listing entry.
type Summary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Industry         string `json:"industry,omitempty"`
	Agent            string `json:"agent,omitempty"`
	Score            int    `json:"score"`
	OpportunityCount int    `json:"opportunity_count"`
}
