package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaanyilmaz/placehub/internal/app/controllers"
	"github.com/kaanyilmaz/placehub/internal/app/models/dto"
	"github.com/kaanyilmaz/placehub/internal/app/repositories"
	"github.com/kaanyilmaz/placehub/internal/app/services"
	"github.com/kaanyilmaz/placehub/internal/middleware"
	"github.com/kaanyilmaz/placehub/internal/pkg/auth"
	"github.com/kaanyilmaz/placehub/internal/store"
)

// envelope mirrors the standard response wrapper with the payload kept raw
type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *dto.ErrorDetail `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.OpenSQLite(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err, "Failed to open test store")
	t.Cleanup(func() { st.Close() })

	repos := repositories.NewRepositories(st)
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "placehub.test",
	})

	authService := services.NewAuthService(repos.UserRepository, jwtService)
	companyService := services.NewCompanyService(repos.CompanyRepository, repos.RoundRepository)
	studentService := services.NewStudentService(repos.StudentRepository)
	roundService := services.NewRoundService(repos.RoundRepository)
	editorService := services.NewRoundEditorService(repos.CompanyRepository, repos.RoundRepository)
	registrationService := services.NewRegistrationService(repos.RegistrationRepository, repos.CompanyRepository, repos.UserRepository)
	statsService := services.NewStatsService(repos.CompanyRepository, repos.StudentRepository, repos.RoundRepository, repos.RegistrationRepository)
	exportService := services.NewExportService(repos.RegistrationRepository, repos.StudentRepository)

	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(authService),
		controllers.NewCompanyController(companyService),
		controllers.NewStudentController(studentService, exportService),
		controllers.NewRoundController(roundService, editorService),
		controllers.NewRegistrationController(registrationService, exportService, statsService),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, role string) string {
	t.Helper()

	w := doRequest(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    role + "@placehub.test",
		"password": "whatever",
		"role":     role,
	})
	require.Equal(t, http.StatusOK, w.Code, "login must always succeed: %s", w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestHealthIsPublic(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/companies", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/companies", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStudentCannotManageCompanies(t *testing.T) {
	router := newTestRouter(t)
	studentToken := login(t, router, "student")

	w := doRequest(router, http.MethodPost, "/api/v1/companies", studentToken, gin.H{"name": "Globex"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/stats", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "x@y.z",
		"password": "pw",
		"role":     "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlacementWorkflow(t *testing.T) {
	router := newTestRouter(t)
	adminToken := login(t, router, "admin")

	// Admin records a company drive
	w := doRequest(router, http.MethodPost, "/api/v1/companies", adminToken, gin.H{
		"name":        "Globex",
		"date":        "01 Dec 2025",
		"ctc":         "14",
		"role":        "Backend Engineer",
		"eligibility": "7.5",
		"jobType":     "Full-time",
		"skills":      "Go, SQL",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var company struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &company))
	require.NotEmpty(t, company.ID)

	// Admin drafts one round through the editor
	w = doRequest(router, http.MethodPost, "/api/v1/rounds/editor", adminToken, gin.H{"companyId": company.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/v1/rounds/editor/begin", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(router, http.MethodPut, "/api/v1/rounds/editor/section", adminToken, gin.H{
		"roundName":  "Aptitude",
		"mode":       "Online",
		"difficulty": "Medium",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(router, http.MethodPut, "/api/v1/rounds/editor/questions/0", adminToken, gin.H{
		"question": "2+2?",
		"answer":   "4",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/v1/rounds/editor/next", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(router, http.MethodPost, "/api/v1/rounds/editor/finish", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The drafted round shows up under the company
	w = doRequest(router, http.MethodGet, "/api/v1/companies/"+company.ID+"/rounds", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var catalog struct {
		Rounds []struct {
			RoundName string `json:"roundName"`
		} `json:"rounds"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &catalog))
	require.Len(t, catalog.Rounds, 1)
	assert.Equal(t, "Aptitude", catalog.Rounds[0].RoundName)

	// A student registers for the drive
	studentToken := login(t, router, "student")
	w = doRequest(router, http.MethodPost, "/api/v1/registrations", studentToken, gin.H{
		"companyId":      company.ID,
		"department":     "Computer Science",
		"percentage10th": "92",
		"percentage12th": "88",
		"ugCgpa":         "8.5",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Admins cannot register
	w = doRequest(router, http.MethodPost, "/api/v1/registrations", adminToken, gin.H{"companyId": company.ID})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Stats reflect everything recorded so far
	w = doRequest(router, http.MethodGet, "/api/v1/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var stats dto.StatsResponse
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 1, stats.Companies)
	assert.Equal(t, 1, stats.Rounds)
	assert.Equal(t, 1, stats.Registrations)

	// Export renders a PDF download
	w = doRequest(router, http.MethodGet, "/api/v1/registrations/export", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "registered-students.pdf")

	// Wiping registrations requires explicit confirmation
	w = doRequest(router, http.MethodDelete, "/api/v1/registrations", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/registrations?confirm=true", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 0, stats.Registrations)

	// Exporting after the wipe is refused
	w = doRequest(router, http.MethodGet, "/api/v1/registrations/export", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
