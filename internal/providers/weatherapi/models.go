package weatherapi

// CurrentAPIResponse is the body of /v1/current.json. Fields are pointers
// so that a missing key can be told apart from a zero value; every field is
// required.
type CurrentAPIResponse struct {
	Location *LocationAPIResponse `json:"location" validate:"required"`
	Current  *CurrentConditions   `json:"current" validate:"required"`
}

type LocationAPIResponse struct {
	Name           *string  `json:"name" validate:"required"`
	Region         *string  `json:"region" validate:"required"`
	Country        *string  `json:"country" validate:"required"`
	Lat            *float64 `json:"lat" validate:"required"`
	Lon            *float64 `json:"lon" validate:"required"`
	TzId           *string  `json:"tz_id" validate:"required"`
	LocaltimeEpoch *int64   `json:"localtime_epoch" validate:"required"`
	Localtime      *string  `json:"localtime" validate:"required"`
}

type CurrentConditions struct {
	LastUpdatedEpoch *int64     `json:"last_updated_epoch" validate:"required"`
	LastUpdated      *string    `json:"last_updated" validate:"required"`
	TempC            *float64   `json:"temp_c" validate:"required"`
	TempF            *float64   `json:"temp_f" validate:"required"`
	IsDay            *int       `json:"is_day" validate:"required"`
	Condition        *Condition `json:"condition" validate:"required"`
	WindMph          *float64   `json:"wind_mph" validate:"required"`
	WindKph          *float64   `json:"wind_kph" validate:"required"`
	WindDegree       *int       `json:"wind_degree" validate:"required"`
	WindDir          *string    `json:"wind_dir" validate:"required"`
	PressureMb       *float64   `json:"pressure_mb" validate:"required"`
	PressureIn       *float64   `json:"pressure_in" validate:"required"`
	PrecipMm         *float64   `json:"precip_mm" validate:"required"`
	PrecipIn         *float64   `json:"precip_in" validate:"required"`
	Humidity         *int       `json:"humidity" validate:"required"`
	Cloud            *int       `json:"cloud" validate:"required"`
	FeelslikeC       *float64   `json:"feelslike_c" validate:"required"`
	FeelslikeF       *float64   `json:"feelslike_f" validate:"required"`
	VisKm            *float64   `json:"vis_km" validate:"required"`
	VisMiles         *float64   `json:"vis_miles" validate:"required"`
	Uv               *float64   `json:"uv" validate:"required"`
	GustMph          *float64   `json:"gust_mph" validate:"required"`
	GustKph          *float64   `json:"gust_kph" validate:"required"`
}

type Condition struct {
	Text *string `json:"text" validate:"required"`
	Icon *string `json:"icon" validate:"required"`
	Code *int    `json:"code" validate:"required"`
}

// ErrorAPIResponse is the envelope weatherapi.com returns instead of data,
// e.g. {"error":{"code":1006,"message":"No matching location found."}}.
type ErrorAPIResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
