package weatherapi

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shreyaprsd/Internship-WeatherApp/internal/types"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleBody(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/current.json")
	if err != nil {
		t.Fatalf("failed to read sample: %v", err)
	}
	return string(b)
}

// removeField drops the first line containing key from the sample body.
func removeField(t *testing.T, body, key string) string {
	t.Helper()
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if strings.Contains(line, `"`+key+`"`) {
			return strings.Join(append(lines[:i:i], lines[i+1:]...), "\n")
		}
	}
	t.Fatalf("field %q not in sample", key)
	return ""
}

func serve(t *testing.T, body string, status int) (*httptest.Server, *atomic.Value) {
	t.Helper()
	var lastQuery atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastQuery.Store(r.URL.Path + "?" + r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, &lastQuery
}

func TestClient_GetCurrent_RequestURL(t *testing.T) {
	srv, lastQuery := serve(t, sampleBody(t), http.StatusOK)
	client := NewClient(srv.URL, "test-key", testLogger())

	if _, err := client.GetCurrent(types.NewCoords(12.34, 56.78)); err != nil {
		t.Fatalf("GetCurrent() unexpected error = %v", err)
	}

	want := "/current.json?key=test-key&q=12.34,56.78"
	if got := lastQuery.Load(); got != want {
		t.Errorf("request = %v, want %v", got, want)
	}
}

func TestClient_CurrentURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		coords  types.Coords
		want    string
		wantErr bool
	}{
		{
			name:    "shortest decimal form",
			baseURL: "https://api.weatherapi.com/v1",
			coords:  types.NewCoords(12.34, 56.78),
			want:    "https://api.weatherapi.com/v1/current.json?key=k&q=12.34,56.78",
		},
		{
			name:    "negative and integral values",
			baseURL: "https://api.weatherapi.com/v1/",
			coords:  types.NewCoords(-33, 151.2093),
			want:    "https://api.weatherapi.com/v1/current.json?key=k&q=-33,151.2093",
		},
		{
			name:    "no scheme",
			baseURL: "api.weatherapi.com/v1",
			coords:  types.NewCoords(1, 2),
			wantErr: true,
		},
		{
			name:    "unparseable",
			baseURL: "http://[::1",
			coords:  types.NewCoords(1, 2),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.baseURL, "k", testLogger())
			u, err := client.currentURL(tt.coords)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidURL) {
					t.Errorf("currentURL() error = %v, want %v", err, ErrInvalidURL)
				}
				return
			}
			if err != nil {
				t.Fatalf("currentURL() unexpected error = %v", err)
			}
			if got := u.String(); got != tt.want {
				t.Errorf("currentURL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClient_GetCurrent_DecodesSample(t *testing.T) {
	srv, _ := serve(t, sampleBody(t), http.StatusOK)
	client := NewClient(srv.URL, "test-key", testLogger())

	resp, err := client.GetCurrent(types.NewCoords(12.34, 56.78))
	if err != nil {
		t.Fatalf("GetCurrent() unexpected error = %v", err)
	}

	if got := *resp.Current.TempC; got != 21.5 {
		t.Errorf("temp_c = %v, want 21.5", got)
	}
	if got := *resp.Current.Condition.Text; got != "Clear" {
		t.Errorf("condition.text = %q, want Clear", got)
	}
	if got := *resp.Location.TzId; got != "Asia/Kolkata" {
		t.Errorf("tz_id = %q, want Asia/Kolkata", got)
	}
	if got := *resp.Current.PrecipMm; got != 0 {
		t.Errorf("precip_mm = %v, want 0", got)
	}
}

// Present-but-empty strings and zero numbers satisfy "required"; only
// missing keys fail.
func TestClient_GetCurrent_AcceptsEmptyValues(t *testing.T) {
	sample := sampleBody(t)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "empty icon",
			body: strings.Replace(sample, `"icon": "//cdn.weatherapi.com/weather/64x64/day/113.png"`, `"icon": ""`, 1),
		},
		{
			name: "night",
			body: strings.Replace(sample, `"is_day": 1`, `"is_day": 0`, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.body == sample {
				t.Fatal("replacement did not apply to sample")
			}
			srv, _ := serve(t, tt.body, http.StatusOK)
			client := NewClient(srv.URL, "test-key", testLogger())

			resp, err := client.GetCurrent(types.NewCoords(12.34, 56.78))
			if err != nil {
				t.Fatalf("GetCurrent() unexpected error = %v", err)
			}
			if got := *resp.Current.TempC; got != 21.5 {
				t.Errorf("temp_c = %v, want 21.5", got)
			}
			if got := *resp.Current.Condition.Text; got != "Clear" {
				t.Errorf("condition.text = %q, want Clear", got)
			}
		})
	}
}

func TestClient_GetCurrent_Failures(t *testing.T) {
	sample := sampleBody(t)

	tests := []struct {
		name        string
		body        string
		status      int
		wantKind    error
		wantInCause string
	}{
		{
			name:     "empty body",
			body:     "",
			status:   http.StatusOK,
			wantKind: ErrNoData,
		},
		{
			name:        "not json",
			body:        "<html>Bad Gateway</html>",
			status:      http.StatusBadGateway,
			wantKind:    ErrDecode,
			wantInCause: "invalid character",
		},
		{
			name:        "missing nested field",
			body:        removeField(t, sample, "temp_c"),
			status:      http.StatusOK,
			wantKind:    ErrDecode,
			wantInCause: "current.temp_c",
		},
		{
			name:        "missing condition text",
			body:        removeField(t, sample, "text"),
			status:      http.StatusOK,
			wantKind:    ErrDecode,
			wantInCause: "current.condition.text",
		},
		{
			name:        "wrong type",
			body:        strings.Replace(sample, `"humidity": 64`, `"humidity": "high"`, 1),
			status:      http.StatusOK,
			wantKind:    ErrDecode,
			wantInCause: "humidity",
		},
		{
			name:        "api error envelope",
			body:        `{"error":{"code":2006,"message":"API key is invalid."}}`,
			status:      http.StatusUnauthorized,
			wantKind:    ErrDecode,
			wantInCause: "api error 2006: API key is invalid.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := serve(t, tt.body, tt.status)
			client := NewClient(srv.URL, "test-key", testLogger())

			resp, err := client.GetCurrent(types.NewCoords(12.34, 56.78))
			if resp != nil {
				t.Errorf("GetCurrent() response = %+v, want nil", resp)
			}
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("GetCurrent() error = %v, want %v", err, tt.wantKind)
			}

			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("GetCurrent() error %T is not *Error", err)
			}
			if !strings.Contains(apiErr.Cause(), tt.wantInCause) {
				t.Errorf("Cause() = %q, want it to contain %q", apiErr.Cause(), tt.wantInCause)
			}
		})
	}
}

func TestClient_GetCurrent_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	client := NewClient(baseURL, "secret-key", testLogger())
	_, err := client.GetCurrent(types.NewCoords(12.34, 56.78))

	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("GetCurrent() error = %v, want %v", err, ErrNetwork)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("GetCurrent() error %T is not *Error", err)
	}
	if strings.Contains(apiErr.Cause(), "secret-key") {
		t.Errorf("Cause() = %q leaks the API key", apiErr.Cause())
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Errorf("Error() = %q leaks the API key", err.Error())
	}
	if !strings.Contains(err.Error(), baseURL+"/current.json") {
		t.Errorf("Error() = %q, want it to name the endpoint", err.Error())
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"kind only", &Error{Kind: ErrNoData}, "no data received"},
		{"with cause", &Error{Kind: ErrDecode, Err: errors.New("unexpected EOF")}, "decoding error: unexpected EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
