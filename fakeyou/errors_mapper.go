package fakeyou

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const maxErrorBody = 4 << 10

// failures maps HTTP status codes to the kind reported for them. Codes not
// listed are reported as [KindRequest].
type failures map[int]Kind

var (
	loginFailures = failures{
		http.StatusUnauthorized:    KindInvalidCredentials,
		http.StatusTooManyRequests: KindTooManyRequests,
	}
	ttsInferenceFailures = failures{
		http.StatusBadRequest:      KindRequest,
		http.StatusTooManyRequests: KindTooManyRequests,
	}
	ttsPollFailures = failures{
		http.StatusNotFound: KindTtsResultNotFound,
	}
	w2lJobFailures = failures{
		http.StatusNotFound: KindNotFound,
	}
	accountFailures = failures{
		http.StatusTooManyRequests: KindTooManyRequests,
	}
	resultFailures = failures{
		http.StatusUnauthorized:    KindUnAuthorized,
		http.StatusTooManyRequests: KindTooManyRequests,
	}
	userFailures = failures{
		http.StatusUnauthorized:    KindUnAuthorized,
		http.StatusNotFound:        KindUserNotFound,
		http.StatusTooManyRequests: KindTooManyRequests,
	}
)

// responseCheck validates resp for endpoint and reports a failure as *Error.
type responseCheck func(endpoint string, resp *resty.Response, f failures) error

// requireOK accepts HTTP 200 only.
func requireOK(endpoint string, resp *resty.Response, f failures) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}
	return newStatusError(endpoint, resp, f)
}

// mapHTTPError is the shared response check of the result endpoints: any
// 2xx status is a success.
func mapHTTPError(endpoint string, resp *resty.Response, f failures) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	return newStatusError(endpoint, resp, f)
}

func newStatusError(endpoint string, resp *resty.Response, f failures) *Error {
	kind, ok := f[resp.StatusCode()]
	if !ok {
		kind = KindRequest
	}

	body := responseText(resp)
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return &Error{Kind: kind, Endpoint: endpoint, StatusCode: resp.StatusCode(), Body: body}
}

func responseText(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return body
}
