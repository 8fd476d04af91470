package weatherapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/types"
)

// API Docs: https://www.weatherapi.com/docs/
// Sample request: https://api.weatherapi.com/v1/current.json?key=<key>&q=12.34,56.78
const (
	DefaultBaseURL = "https://api.weatherapi.com/v1"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	validate   *validator.Validate
	logger     *slog.Logger
}

func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     apiKey,
		validate:   newValidator(),
		logger:     logger.With("component", "weatherapi-client"),
	}
}

// newValidator reports struct fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// currentURL builds {baseURL}/current.json?key=..&q=lat,lon. The query is
// assembled by hand because url.Values would escape the comma.
func (c *Client) currentURL(coords types.Coords) (*url.URL, error) {
	raw := fmt.Sprintf("%s/current.json?key=%s&q=%s",
		strings.TrimRight(c.baseURL, "/"),
		url.QueryEscape(c.apiKey),
		coords.String(),
	)

	u, err := url.Parse(raw)
	if err != nil {
		return nil, &Error{Kind: ErrInvalidURL, Err: fmt.Errorf("base url %q: %w", c.baseURL, withoutURL(err))}
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &Error{Kind: ErrInvalidURL, Err: fmt.Errorf("base url %q has no scheme or host", c.baseURL)}
	}
	return u, nil
}

// GetCurrent fetches current conditions for the coordinate. The status code
// is not inspected: a non-200 body either decodes or fails as a decode error.
func (c *Client) GetCurrent(coords types.Coords) (*CurrentAPIResponse, error) {
	u, err := c.currentURL(coords)
	if err != nil {
		c.logger.Error("failed to build request url", "error", err)
		return nil, err
	}

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return nil, &Error{Kind: ErrNetwork, Err: fmt.Errorf("GET %s/current.json: %w", strings.TrimRight(c.baseURL, "/"), withoutURL(err))}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrNetwork, Err: withoutURL(err)}
	}
	if len(body) == 0 {
		return nil, &Error{Kind: ErrNoData}
	}

	apiResp, err := c.decode(body)
	if err != nil {
		c.logger.Error("failed to decode current weather",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"status", resp.StatusCode,
			"error", err,
			"response_body", string(body),
		)
		return nil, err
	}

	return apiResp, nil
}

func (c *Client) decode(body []byte) (*CurrentAPIResponse, error) {
	var apiResp CurrentAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, &Error{Kind: ErrDecode, Err: withAPIError(body, err)}
	}

	if err := c.validate.Struct(&apiResp); err != nil {
		return nil, &Error{Kind: ErrDecode, Err: withAPIError(body, describeValidation(err))}
	}

	return &apiResp, nil
}

// withoutURL reduces a transport error to its cause. url.Error quotes the
// request URL, which carries the API key.
func withoutURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}

// withAPIError appends the weatherapi.com error envelope, if the body is one.
func withAPIError(body []byte, err error) error {
	var envelope ErrorAPIResponse
	if json.Unmarshal(body, &envelope) != nil || envelope.Error == nil {
		return err
	}
	return fmt.Errorf("%w (api error %d: %s)", err, envelope.Error.Code, envelope.Error.Message)
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Drop the root struct name: "CurrentAPIResponse.current.temp_c" -> "current.temp_c"
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		missing = append(missing, field)
	}
	return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
}
