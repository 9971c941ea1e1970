package resumes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/haseeb-240/AiResume/internal/bootstrap"
	"github.com/haseeb-240/AiResume/internal/resumes"
	"github.com/haseeb-240/AiResume/internal/shared/auth"
	"github.com/haseeb-240/AiResume/internal/shared/config"
	"github.com/haseeb-240/AiResume/internal/shared/server/middleware"
	"github.com/haseeb-240/AiResume/resume/content"
	"github.com/haseeb-240/AiResume/resume/render"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(config.Config{Env: "dev"})
	if err != nil {
		t.Fatalf("bootstrap.Build: %v", err)
	}
	return app.Router
}

func addAuthHeader(t *testing.T, req *http.Request, userID string) {
	t.Helper()
	token, err := auth.SignJWT(auth.Claims{Sub: userID})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

func validBody() string {
	payload := map[string]any{
		"title":    "My Resume",
		"template": "modern",
		"content": map[string]any{
			"personalDetails": map[string]any{
				"fullName": "Ada Lovelace",
				"email":    "ada@example.com",
				"phone":    "+44 555 0100",
				"location": "London",
				"summary":  "Engineer.",
			},
			"skills": []string{"Go"},
		},
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

func createResume(t *testing.T, router *gin.Engine, userID string) map[string]any {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", strings.NewReader(validBody()))
	req.Header.Set("Content-Type", "application/json")
	addAuthHeader(t, req, userID)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return body
}

func TestCreateAndGetResume(t *testing.T) {
	router := newTestRouter(t)
	created := createResume(t, router, "user-a")

	id, _ := created["id"].(string)
	if id == "" {
		t.Fatalf("expected id in response: %v", created)
	}
	if _, hasOwner := created["ownerId"]; hasOwner {
		t.Fatalf("owner must not be exposed: %v", created)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+id, nil)
	addAuthHeader(t, req, "user-a")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("get expected 200, got %d", resp.Code)
	}
	var got map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["title"] != "My Resume" {
		t.Fatalf("unexpected title: %v", got["title"])
	}
}

func TestCreateInvalidContentReturnsFieldPaths(t *testing.T) {
	router := newTestRouter(t)

	body := strings.Replace(validBody(), "ada@example.com", "not-an-email", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addAuthHeader(t, req, "user-a")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var envelope struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Code != "validation_error" {
		t.Fatalf("unexpected code %q", envelope.Error.Code)
	}
	if _, ok := envelope.Error.Details["personalDetails.email"]; !ok {
		t.Fatalf("expected dotted field path in details: %v", envelope.Error.Details)
	}
}

func TestGetForeignResumeIs404(t *testing.T) {
	router := newTestRouter(t)
	created := createResume(t, router, "user-a")
	id := created["id"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+id, nil)
	addAuthHeader(t, req, "user-b")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign owner, got %d", resp.Code)
	}
}

func TestUpdateTitle(t *testing.T) {
	router := newTestRouter(t)
	created := createResume(t, router, "user-a")
	id := created["id"].(string)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/resumes/"+id, strings.NewReader(`{"title":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	addAuthHeader(t, req, "user-a")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["title"] != "Renamed" {
		t.Fatalf("title not updated: %v", got["title"])
	}
}

func TestDeleteThenGet(t *testing.T) {
	router := newTestRouter(t)
	created := createResume(t, router, "user-a")
	id := created["id"].(string)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/resumes/"+id, nil)
	addAuthHeader(t, req, "user-a")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+id, nil)
	addAuthHeader(t, req, "user-a")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", resp.Code)
	}
}

func TestListIsScopedToCaller(t *testing.T) {
	router := newTestRouter(t)
	createResume(t, router, "user-a")
	createResume(t, router, "user-b")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes", nil)
	addAuthHeader(t, req, "user-a")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected exactly the caller's resume, got %d", len(list))
	}
}

func TestPreviewReturnsHTML(t *testing.T) {
	router := newTestRouter(t)
	created := createResume(t, router, "user-a")
	id := created["id"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+id+"/preview", nil)
	addAuthHeader(t, req, "user-a")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %q", ct)
	}
	if !strings.Contains(resp.Body.String(), "Ada Lovelace") {
		t.Fatalf("preview missing resume content")
	}
}

type stubExporter struct {
	pages int
}

func (s *stubExporter) Export(ctx context.Context, doc render.Document, template string) ([]byte, error) {
	s.pages = len(doc.Pages)
	return []byte("%PDF-1.7 stub"), nil
}

func TestDownloadUsesPaginatedDocument(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := resumes.NewService(resumes.NewMemoryRepo())
	c := content.ResumeContent{
		PersonalDetails: content.PersonalDetails{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "+44 555 0100",
			Location: "London",
			Summary:  "Engineer.",
		},
	}
	rec, err := svc.Create(context.Background(), "user-a", "My Resume", "modern", c)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	exporter := &stubExporter{}
	handler := resumes.NewHandler(svc, exporter, nil)

	router := gin.New()
	router.Use(func(gc *gin.Context) {
		middleware.SetUserID(gc, "user-a")
		gc.Next()
	})
	handler.RegisterRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/"+rec.ID+"/download", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected pdf content type, got %q", ct)
	}
	if cd := resp.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("expected attachment disposition, got %q", cd)
	}
	if !bytes.Equal(resp.Body.Bytes(), []byte("%PDF-1.7 stub")) {
		t.Fatalf("expected exporter output to be served")
	}
	if exporter.pages == 0 {
		t.Fatalf("exporter must receive a paginated document")
	}
}
