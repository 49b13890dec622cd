package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Cofrinho/internal/domain/goal"
	"Cofrinho/internal/domain/goal/goaltest"
	"Cofrinho/internal/logger"
	"Cofrinho/internal/middleware"
	"Cofrinho/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testingclock "k8s.io/utils/clock/testing"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.SetOutput(io.Discard)
}

type testServer struct {
	router *gin.Engine
	repo   *goaltest.MemoryRepository
	clock  *testingclock.FakePassiveClock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	repo := goaltest.NewMemoryRepository()
	clk := testingclock.NewFakePassiveClock(time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC))
	handler := NewHandler(goal.NewService(repo, clk, nil))

	router := gin.New()
	api := router.Group("/api")
	api.Use(func(c *gin.Context) {
		if id := c.GetHeader("X-Test-User"); id != "" {
			c.Set(middleware.UserIDKey, id)
		}
		c.Next()
	})
	handler.RegisterGoalRoutes(api)

	return &testServer{router: router, repo: repo, clock: clk}
}

type apiResponse struct {
	Code int
	Body map[string]interface{}
}

func (s *testServer) do(t *testing.T, method, path string, user ulid.ULID, body string) apiResponse {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != (ulid.ULID{}) {
		req.Header.Set("X-Test-User", user.String())
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	resp := apiResponse{Code: w.Code}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp.Body), w.Body.String())
	return resp
}

func goalField(t *testing.T, resp apiResponse, key string) interface{} {
	t.Helper()
	g, ok := resp.Body["goal"].(map[string]interface{})
	require.True(t, ok, "resposta sem goal: %v", resp.Body)
	return g[key]
}

func fieldErrors(t *testing.T, resp apiResponse) []string {
	t.Helper()
	details, ok := resp.Body["details"].(map[string]interface{})
	require.True(t, ok, "resposta sem details: %v", resp.Body)
	raw, ok := details["fields"].([]interface{})
	require.True(t, ok)
	var fields []string
	for _, f := range raw {
		fields = append(fields, f.(map[string]interface{})["field"].(string))
	}
	return fields
}

func TestGoalLifecycleScenario(t *testing.T) {
	s := newTestServer(t)
	user := pkg.GenerateULIDObject()

	resp := s.do(t, http.MethodPost, "/api/goals", user, `{"name":"Viagem","targetAmount":100}`)
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "active", goalField(t, resp, "status"))
	assert.Equal(t, 0.0, goalField(t, resp, "savedAmount"))
	goalID := goalField(t, resp, "id").(string)

	resp = s.do(t, http.MethodPost, "/api/goals/"+goalID+"/contributions", user, `{"amount":"60.50"}`)
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, 60.5, goalField(t, resp, "savedAmount"))
	assert.Equal(t, "active", goalField(t, resp, "status"))

	resp = s.do(t, http.MethodPost, "/api/goals/"+goalID+"/contributions", user, `{"amount":39.5,"contributionDate":"2024-06-01"}`)
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, 100.0, goalField(t, resp, "savedAmount"))
	assert.Equal(t, "achieved", goalField(t, resp, "status"))

	resp = s.do(t, http.MethodGet, "/api/goals/"+goalID+"/contributions", user, "")
	require.Equal(t, http.StatusOK, resp.Code)
	contributions := resp.Body["contributions"].([]interface{})
	require.Len(t, contributions, 2)
	assert.Equal(t, 39.5, contributions[0].(map[string]interface{})["amount"], "ordenado pela data da contribuicao")

	resp = s.do(t, http.MethodGet, "/api/goals", user, "")
	require.Equal(t, http.StatusOK, resp.Code)
	goals := resp.Body["goals"].([]interface{})
	require.Len(t, goals, 1)
	assert.Equal(t, "achieved", goals[0].(map[string]interface{})["status"])

	resp = s.do(t, http.MethodDelete, "/api/goals/"+goalID, user, "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Meta removida com sucesso", resp.Body["message"])

	resp = s.do(t, http.MethodGet, "/api/goals/"+goalID, user, "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "GOAL_NOT_FOUND", resp.Body["error"])
}

func TestCreateGoalWithPastEndDateIsExpired(t *testing.T) {
	s := newTestServer(t)
	user := pkg.GenerateULIDObject()

	resp := s.do(t, http.MethodPost, "/api/goals", user, `{"name":"Antiga","targetAmount":"500","endDate":"2020-01-01"}`)
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, "expired", goalField(t, resp, "status"))
	assert.Equal(t, "2020-01-01", goalField(t, resp, "endDate"))
}

func TestUpdateGoal(t *testing.T) {
	s := newTestServer(t)
	user := pkg.GenerateULIDObject()

	resp := s.do(t, http.MethodPost, "/api/goals", user, `{"name":"Carro","targetAmount":1000,"description":"usado"}`)
	require.Equal(t, http.StatusCreated, resp.Code)
	goalID := goalField(t, resp, "id").(string)

	resp = s.do(t, http.MethodPut, "/api/goals/"+goalID, user, `{"name":"Carro novo","targetAmount":"2500.456"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Carro novo", goalField(t, resp, "name"))
	assert.Equal(t, 2500.46, goalField(t, resp, "targetAmount"))
	assert.Equal(t, "usado", goalField(t, resp, "description"), "campo ausente nao muda")

	resp = s.do(t, http.MethodPatch, "/api/goals/"+goalID, user, `{"status":"achieved"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "active", goalField(t, resp, "status"), "status explicito divergente e recalculado")

	resp = s.do(t, http.MethodPut, "/api/goals/"+goalID, user, `{"endDate":"2024-06-15"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "active", goalField(t, resp, "status"), "prazo igual a hoje nao expira")

	s.clock.SetTime(s.clock.Now().Add(24 * time.Hour))
	resp = s.do(t, http.MethodGet, "/api/goals/"+goalID, user, "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "expired", goalField(t, resp, "status"))
}

func TestGoalsAreScopedByOwner(t *testing.T) {
	s := newTestServer(t)
	owner := pkg.GenerateULIDObject()
	intruder := pkg.GenerateULIDObject()

	resp := s.do(t, http.MethodPost, "/api/goals", owner, `{"name":"Reserva","targetAmount":300}`)
	require.Equal(t, http.StatusCreated, resp.Code)
	goalID := goalField(t, resp, "id").(string)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"get", http.MethodGet, "/api/goals/" + goalID, ""},
		{"update", http.MethodPut, "/api/goals/" + goalID, `{"name":"meu"}`},
		{"delete", http.MethodDelete, "/api/goals/" + goalID, ""},
		{"contribute", http.MethodPost, "/api/goals/" + goalID + "/contributions", `{"amount":10}`},
		{"contributions", http.MethodGet, "/api/goals/" + goalID + "/contributions", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := s.do(t, tt.method, tt.path, intruder, tt.body)
			assert.Equal(t, http.StatusNotFound, resp.Code)
			assert.Equal(t, "GOAL_NOT_FOUND", resp.Body["error"])
		})
	}

	resp = s.do(t, http.MethodGet, "/api/goals", intruder, "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, resp.Body["goals"])

	stored, err := ulid.Parse(goalID)
	require.NoError(t, err)
	g := s.repo.Stored(stored)
	require.NotNil(t, g)
	assert.Equal(t, "Reserva", g.Name)
	assert.True(t, g.SavedAmount.IsZero())
}

func TestGoalValidationErrors(t *testing.T) {
	s := newTestServer(t)
	user := pkg.GenerateULIDObject()

	resp := s.do(t, http.MethodPost, "/api/goals", user, `{"name":"Base","targetAmount":100}`)
	require.Equal(t, http.StatusCreated, resp.Code)
	goalID := goalField(t, resp, "id").(string)

	tests := []struct {
		name      string
		method    string
		path      string
		body      string
		wantField string
	}{
		{"nome ausente", http.MethodPost, "/api/goals", `{"targetAmount":100}`, "name"},
		{"alvo ausente", http.MethodPost, "/api/goals", `{"name":"x"}`, "targetAmount"},
		{"alvo negativo", http.MethodPost, "/api/goals", `{"name":"x","targetAmount":-1}`, "targetAmount"},
		{"data invalida", http.MethodPost, "/api/goals", `{"name":"x","targetAmount":1,"endDate":"31/12/2025"}`, "endDate"},
		{"nome em branco", http.MethodPost, "/api/goals", `{"name":"   ","targetAmount":1}`, "name"},
		{"status desconhecido", http.MethodPut, "/api/goals/" + goalID, `{"status":"paused"}`, "status"},
		{"nome vazio no update", http.MethodPut, "/api/goals/" + goalID, `{"name":""}`, "name"},
		{"contribuicao zero", http.MethodPost, "/api/goals/" + goalID + "/contributions", `{"amount":0}`, "amount"},
		{"contribuicao negativa", http.MethodPost, "/api/goals/" + goalID + "/contributions", `{"amount":"-5"}`, "amount"},
		{"contribuicao sem valor", http.MethodPost, "/api/goals/" + goalID + "/contributions", `{}`, "amount"},
		{"id malformado", http.MethodGet, "/api/goals/nao-e-ulid", "", "id"},
		{"alvo acima de decimal(15,2)", http.MethodPost, "/api/goals", `{"name":"x","targetAmount":1e16}`, "targetAmount"},
		{"alvo infinito", http.MethodPost, "/api/goals", `{"name":"x","targetAmount":1e400}`, "targetAmount"},
		{"alvo acima no update", http.MethodPut, "/api/goals/" + goalID, `{"targetAmount":"10000000000000"}`, "targetAmount"},
		{"contribuicao acima do limite", http.MethodPost, "/api/goals/" + goalID + "/contributions", `{"amount":"1e400"}`, "amount"},
		{"data invalida no update", http.MethodPut, "/api/goals/" + goalID, `{"endDate":"2025-13-01"}`, "endDate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := s.do(t, tt.method, tt.path, user, tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, resp.Code, resp.Body)
			assert.Equal(t, "VALIDATION_ERROR", resp.Body["error"])
			assert.Contains(t, fieldErrors(t, resp), tt.wantField)
		})
	}

	resp = s.do(t, http.MethodPost, "/api/goals", user, `{"name":`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Body["error"])

	stored, err := ulid.Parse(goalID)
	require.NoError(t, err)
	assert.True(t, s.repo.Stored(stored).SavedAmount.IsZero(), "contribuicao invalida nao altera o saldo")
}

func TestUnknownGoalReturnsNotFound(t *testing.T) {
	s := newTestServer(t)
	user := pkg.GenerateULIDObject()
	missing := pkg.GenerateULIDObject().String()

	resp := s.do(t, http.MethodPut, "/api/goals/"+missing, user, `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = s.do(t, http.MethodPost, "/api/goals/"+missing+"/contributions", user, `{"amount":1}`)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestMissingUserIsUnauthorized(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/goals", ulid.ULID{}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "UNAUTHORIZED", resp.Body["error"])
}

func TestUpdateGoalClearsEndDate(t *testing.T) {
	s := newTestServer(t)
	user := pkg.GenerateULIDObject()

	resp := s.do(t, http.MethodPost, "/api/goals", user, `{"name":"Curso","targetAmount":900,"endDate":"2020-01-01"}`)
	require.Equal(t, http.StatusCreated, resp.Code)
	require.Equal(t, "expired", goalField(t, resp, "status"))
	goalID := goalField(t, resp, "id").(string)

	resp = s.do(t, http.MethodPut, "/api/goals/"+goalID, user, `{"endDate":null}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "2020-01-01", goalField(t, resp, "endDate"), "null mantem o prazo")

	resp = s.do(t, http.MethodPut, "/api/goals/"+goalID, user, `{"endDate":""}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Nil(t, goalField(t, resp, "endDate"))
	assert.Equal(t, "active", goalField(t, resp, "status"))
}

func TestLargestAllowedAmountIsAccepted(t *testing.T) {
	s := newTestServer(t)
	user := pkg.GenerateULIDObject()

	resp := s.do(t, http.MethodPost, "/api/goals", user, `{"name":"Teto","targetAmount":"9999999999999.99"}`)
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, 9999999999999.99, goalField(t, resp, "targetAmount"))
}
