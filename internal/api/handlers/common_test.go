package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/printcraft-dev/printcraft/internal/models"
)

func bindInsertDesign(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/designs", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var insert models.InsertDesign
	return c.ShouldBindJSON(&insert)
}

func TestBindingIssues_FieldLevelDetail(t *testing.T) {
	err := bindInsertDesign(t, `{"title":"x","type":"billboard","ideaDescription":"y","designData":{}}`)
	if err == nil {
		t.Fatal("expected a binding error for invalid enum")
	}

	issues := bindingIssues(err)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %v", len(issues), issues)
	}
	if issues[0].Field != "type" {
		t.Errorf("field = %q, want %q (JSON name, not Go name)", issues[0].Field, "type")
	}
	if issues[0].Rule != "oneof" {
		t.Errorf("rule = %q, want oneof", issues[0].Rule)
	}
	if issues[0].Message == "" {
		t.Error("expected a human-readable message")
	}
}

func TestBindingIssues_MissingRequired(t *testing.T) {
	err := bindInsertDesign(t, `{}`)
	if err == nil {
		t.Fatal("expected a binding error for empty body")
	}

	issues := bindingIssues(err)
	fields := map[string]string{}
	for _, issue := range issues {
		fields[issue.Field] = issue.Rule
	}
	for _, want := range []string{"title", "type", "ideaDescription", "designData"} {
		if fields[want] != "required" {
			t.Errorf("expected required issue for %q, got %v", want, fields)
		}
	}
}

func TestBindingIssues_TypeMismatch(t *testing.T) {
	err := bindInsertDesign(t, `{"title":123}`)
	if err == nil {
		t.Fatal("expected a binding error for type mismatch")
	}

	issues := bindingIssues(err)
	if len(issues) == 0 {
		t.Fatal("expected at least one issue")
	}
	if issues[0].Message == "" {
		t.Error("expected a message describing the mismatch")
	}
}

func TestBindingIssues_MalformedJSON(t *testing.T) {
	err := bindInsertDesign(t, `{not json`)
	if err == nil {
		t.Fatal("expected a binding error for malformed JSON")
	}

	issues := bindingIssues(err)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Field != "" {
		t.Errorf("malformed JSON has no field, got %q", issues[0].Field)
	}
}
