package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"newsboard/pkg/apperr"
	"newsboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	cases := map[error]int{
		apperr.Unauthenticated("x"):      http.StatusUnauthorized,
		apperr.Forbidden("x"):            http.StatusForbidden,
		apperr.NotFound("x"):             http.StatusNotFound,
		apperr.Validation("a", "b"):      http.StatusBadRequest,
		apperr.AlreadyLiked("x"):         http.StatusBadRequest,
		apperr.NotLiked("x"):             http.StatusBadRequest,
		apperr.Conflict("x"):             http.StatusConflict,
		errors.New("connection refused"): http.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, Status(err), err.Error())
	}
}

func run(t *testing.T, log *logger.Logger, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/x", func(c *gin.Context) { Error(c, log, err) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/x", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestError_SingleMessage(t *testing.T) {
	w := run(t, nil, apperr.Forbidden("You do not have permission to perform this action."))

	assert.Equal(t, http.StatusForbidden, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "You do not have permission to perform this action.", body["error"])
}

func TestError_ManyMessages(t *testing.T) {
	w := run(t, nil, apperr.Validation("title may not be blank.", "url may not be blank."))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"title may not be blank.", "url may not be blank."}, body["error"])
}

func TestError_UnexpectedIsBareAndLogged(t *testing.T) {
	var errOut bytes.Buffer
	log := logger.NewWithWriters(&bytes.Buffer{}, &errOut)

	w := run(t, log, errors.New("driver: bad connection"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Contains(t, errOut.String(), "driver: bad connection")
}
