package errors

import (
	"encoding/json"
	goerrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "trace-7f3a"
}

func (s *ResponseTestSuite) TestDefaultMessage() {
	response := NewErrorResponse(SearchNotReady, s.traceID)

	s.Equal("SEARCH_001", response.Error.Code)
	s.Equal(GetErrorMessage(SearchNotReady), response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Nil(response.Error.Details)
	s.Equal(http.StatusServiceUnavailable, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestOptions() {
	response := NewErrorResponse(SearchInvalidFilter, s.traceID,
		WithMessage("min_amount is not a number"),
		WithDetails("min_amount: lots"),
	)

	s.Equal("min_amount is not a number", response.Error.Message)
	s.Equal([]string{"min_amount: lots"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestValidationErrorSortsFields() {
	response := NewValidationError(map[string]string{
		"top_k": "must be at least 1",
		"query": "is required",
	}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{"query: is required", "top_k: must be at least 1"}, response.Error.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestValidationErrorEmpty() {
	response := NewValidationError(nil, s.traceID)

	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemErrorHidesCause() {
	cause := goerrors.New("pq: connection refused")

	response, err := WrapSystemError(cause, s.traceID)

	s.Same(cause, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "connection refused")
}

func (s *ResponseTestSuite) TestJSONShape() {
	raw, err := json.Marshal(NewErrorResponse(AuthMissingToken, s.traceID))
	s.Require().NoError(err)

	var body map[string]map[string]any
	s.Require().NoError(json.Unmarshal(raw, &body))

	inner := body["error"]
	s.Equal("AUTH_001", inner["code"])
	s.Equal(s.traceID, inner["trace_id"])
	s.NotContains(inner, "details")
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}
