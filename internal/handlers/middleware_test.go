package handlers

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medirec/hospital-service/internal/audit"
	"github.com/medirec/hospital-service/internal/auth"
	"github.com/medirec/hospital-service/internal/models"
)

func TestAuditMiddlewareRecordsStagedEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "operations.log")
	recorder, err := audit.NewRecorder(path, testLogger())
	if err != nil {
		t.Fatalf("NewRecorder: %v", err)
	}
	defer recorder.Close()

	router := gin.New()
	router.Use(AuditMiddleware(recorder))

	base := NewBaseHandler(testLogger())
	router.GET("/staged", func(c *gin.Context) {
		base.Audit(c, OpGet, "ADMIN", map[string]interface{}{"id": 1})
		c.Status(http.StatusOK)
	})
	router.GET("/silent", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for _, target := range []string{"/staged", "/silent"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s status = %d", target, w.Code)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var entries []audit.Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry audit.Entry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("bad log line: %v", err)
		}
		entries = append(entries, entry)
	}

	// Only the handler that staged an entry produces a log line.
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Operation != OpGet || entries[0].UserType != "ADMIN" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}

func TestSessionMiddlewareAttachesIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Generate(&models.Account{ID: 4, Username: "root", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	router := gin.New()
	router.Use(SessionMiddleware(tokens))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetUint("user_id"),
			"username": c.GetString("username"),
			"role":     actorType(c),
		})
	})

	tests := []struct {
		name     string
		decorate func(*http.Request)
		wantRole string
		wantUser string
	}{
		{
			name: "cookie",
			decorate: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
			},
			wantRole: "ADMIN",
			wantUser: "root",
		},
		{
			name: "bearer header",
			decorate: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+token)
			},
			wantRole: "ADMIN",
			wantUser: "root",
		},
		{
			name:     "no token",
			decorate: func(r *http.Request) {},
			wantRole: "UNKNOWN",
			wantUser: "",
		},
		{
			name: "garbage token",
			decorate: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
			},
			wantRole: "UNKNOWN",
			wantUser: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			tt.decorate(req)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			var body map[string]interface{}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("bad body: %v", err)
			}
			if body["role"] != tt.wantRole {
				t.Errorf("role = %v, want %s", body["role"], tt.wantRole)
			}
			if body["username"] != tt.wantUser {
				t.Errorf("username = %v, want %q", body["username"], tt.wantUser)
			}
		})
	}
}
