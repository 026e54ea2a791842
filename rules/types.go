package rules

// RuleType classifies where an answer's authority comes from.
type RuleType string

const (
	// RuleTypeClub marks answers grounded in club-local rules.
	RuleTypeClub RuleType = "club"
	// RuleTypeOfficial marks answers grounded in the official rules of golf.
	RuleTypeOfficial RuleType = "official"
	// RuleTypeHybrid marks answers combining club-local and official rules.
	// Any classification outside the closed set is treated as hybrid.
	RuleTypeHybrid RuleType = "hybrid"
)

// Confidence grades how certain the service is about an answer.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	// ConfidenceLow covers anything outside the closed set.
	ConfidenceLow Confidence = "low"
)

// Answer is the parsed structured result for one question. It is
// immutable once created and replaced wholesale by the next answer.
type Answer struct {
	Success      bool       `json:"success"`
	Answer       string     `json:"answer"`
	Question     string     `json:"question"`
	ClubID       string     `json:"club_id"`
	RuleType     RuleType   `json:"rule_type"`
	RuleNumbers  []string   `json:"rule_numbers"`
	Confidence   Confidence `json:"confidence"`
	ResponseTime float64    `json:"response_time"`
	Error        string     `json:"error,omitempty"`
}

// QuickQuestion is one entry of the shortcut list fetched at startup.
type QuickQuestion struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
}

type quickQuestionsResponse struct {
	Success   bool            `json:"success"`
	Questions []QuickQuestion `json:"questions"`
	Error     string          `json:"error,omitempty"`
}

type askRequest struct {
	Question string `json:"question"`
	ClubID   string `json:"club_id"`
	FastMode bool   `json:"fast_mode"`
}
