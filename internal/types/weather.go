package types

// Condition is the provider's description of the current sky/precipitation
// state. Code is the provider's own condition code, Icon a URL to its icon.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}
