package types

type Visibility struct {
	Kilometers float64 `json:"kilometers"`
	Miles      float64 `json:"miles"`
}
