//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"cosme-store/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorBody mirrors httperr.Response with the detail kept raw so callers can
// decode it into the shape they expect.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), targetStruct), "decode response JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status and that the body is the
// {"error":{"message"}} envelope; msg, when set, must appear in the message.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msg string) {
	t.Helper()
	body := decodeError(t, w, expectedStatus)
	if msg != "" {
		assert.Contains(t, body.Error.Message, msg)
	}
}

// AssertVoucherRefusal checks a 422 voucher refusal and returns its detail.
func AssertVoucherRefusal(t *testing.T, w *httptest.ResponseRecorder, reason string) httperr.VoucherDetail {
	t.Helper()
	body := decodeError(t, w, 422)

	var detail httperr.VoucherDetail
	require.NotEmpty(t, body.Detail, "voucher refusal without detail: %s", w.Body.String())
	require.NoError(t, json.Unmarshal(body.Detail, &detail))
	assert.Equal(t, reason, detail.Reason)
	return detail
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) errorBody {
	t.Helper()
	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error JSON: %s", w.Body.String())
	assert.NotEmpty(t, body.Error.Message, "error envelope without message")
	return body
}
