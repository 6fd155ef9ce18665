package respond_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ErlanBelekov/recipes-api/internal/domain"
	"github.com/ErlanBelekov/recipes-api/internal/transport/http/respond"
	"github.com/ErlanBelekov/recipes-api/internal/validate"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestClassify(t *testing.T) {
	verrs := validate.Errors{{Field: "nome", Message: "must not be empty"}}
	cases := []struct {
		name       string
		err        error
		wantKind   respond.Kind
		wantStatus int
		wantMsg    string
	}{
		{"domain not found", domain.ErrRecipeNotFound, respond.KindDomain, http.StatusNotFound, "recipe not found"},
		{"domain conflict", domain.ErrLoginTaken, respond.KindDomain, http.StatusConflict, "login already in use"},
		{"wrapped domain", fmt.Errorf("get recipe: %w", domain.ErrInvalidID), respond.KindDomain, http.StatusBadRequest, "invalid id"},
		{"validation", verrs, respond.KindValidation, http.StatusBadRequest, "validation error"},
		{"storage", &domain.StorageError{Op: "insert recipe", Err: errors.New("syntax error at or near SELECT")},
			respond.KindStorage, http.StatusInternalServerError, "database error"},
		{"wrapped storage", fmt.Errorf("create: %w", &domain.StorageError{Op: "x", Err: errors.New("boom")}),
			respond.KindStorage, http.StatusInternalServerError, "database error"},
		{"unknown", errors.New("login already in use"), respond.KindUnknown, http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := respond.Classify(tc.err)
			if p.Kind != tc.wantKind {
				t.Errorf("kind = %v, want %v", p.Kind, tc.wantKind)
			}
			if p.Status != tc.wantStatus {
				t.Errorf("status = %d, want %d", p.Status, tc.wantStatus)
			}
			if p.Body.Status != "error" {
				t.Errorf("body.status = %q, want error", p.Body.Status)
			}
			if p.Body.Message != tc.wantMsg {
				t.Errorf("body.message = %q, want %q", p.Body.Message, tc.wantMsg)
			}
		})
	}
}

func TestError_WritesEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	respond.Error(c, validate.Errors{{Field: "nome", Message: "is required"}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !c.IsAborted() {
		t.Error("context not aborted")
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	errs, ok := body["errors"].([]any)
	if !ok || len(errs) != 1 {
		t.Fatalf("errors = %v, want one entry", body["errors"])
	}
	first := errs[0].(map[string]any)
	if first["field"] != "nome" || first["message"] != "is required" {
		t.Errorf("errors[0] = %v", first)
	}
}

func TestError_StorageHidesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(c, &domain.StorageError{Op: "select", Err: errors.New("relation \"receitas\" does not exist")})

	want := `{"status":"error","message":"database error"}`
	if got := w.Body.String(); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}
