package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
	"github.com/treysweeney3/hunt-kitchen-sub000/internal/auth"
	"github.com/treysweeney3/hunt-kitchen-sub000/storage/db"
)

// NewTestContext creates a new Echo context for testing. A non-nil body is sent as JSON.
func NewTestContext(method, path string, body any) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()

	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	return c, rec
}

// NewFormContext creates an Echo context carrying a url-encoded form post
func NewFormContext(path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// SetTestUser sets a user in the Echo context for authenticated tests
func SetTestUser(c echo.Context, user *db.User) {
	c.Set(auth.DBUserKey, user)
	c.Set(auth.IsAuthenticatedKey, true)
}

// CreateTestUser creates a test user in the database
func CreateTestUser(queries *db.Queries) (*db.User, error) {
	return CreateTestUserWithEmail(queries, "test@example.com")
}

// CreateTestUserWithEmail creates a test user with a specific email
func CreateTestUserWithEmail(queries *db.Queries, email string) (*db.User, error) {
	user, err := queries.CreateUser(context.Background(), db.CreateUserParams{
		ID:        ulid.Make().String(),
		Email:     email,
		FirstName: sql.NullString{String: "Test", Valid: true},
		LastName:  sql.NullString{String: "Hunter", Valid: true},
		FullName:  "Test Hunter",
	})
	return &user, err
}

// AssertJSONResponse decodes the response body as a JSON object
func AssertJSONResponse(rec *httptest.ResponseRecorder) (map[string]any, error) {
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body, nil
}
