package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"

	"basegraph.app/surveys/internal/http/handler"
	"basegraph.app/surveys/internal/http/middleware"
	"basegraph.app/surveys/internal/http/router"
)

type testAPI struct {
	engine     *gin.Engine
	templates  *mockTemplateService
	runs       *mockRunService
	instances  *mockInstanceService
	changeLogs *mockChangeLogService
}

func newTestAPI() *testAPI {
	gin.SetMode(gin.TestMode)
	api := &testAPI{
		engine:     gin.New(),
		templates:  &mockTemplateService{},
		runs:       &mockRunService{},
		instances:  &mockInstanceService{},
		changeLogs: &mockChangeLogService{},
	}

	v1 := api.engine.Group("/api/v1")
	v1.Use(middleware.RequireActor())
	{
		runHandler := handler.NewRunHandler(api.runs, api.instances)
		router.TemplateRouter(v1.Group("/templates"), handler.NewTemplateHandler(api.templates), runHandler)
		router.RunRouter(v1.Group("/runs"), runHandler)

		instanceHandler := handler.NewInstanceHandler(api.instances)
		router.InstanceRouter(v1.Group("/instances"), instanceHandler)
		v1.GET("/people/:personID/instances", instanceHandler.ListForPerson)
		v1.GET("/change-log/:kind/:id", handler.NewChangeLogHandler(api.changeLogs).History)
	}
	return api
}

func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	return a.doAs("alice", method, path, body)
}

func (a *testAPI) doAs(actor, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		Expect(json.NewEncoder(&buf).Encode(b)).To(Succeed())
	}

	req := httptest.NewRequest(method, "/api/v1"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		req.Header.Set(middleware.ActorHeader, actor)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func decode(w *httptest.ResponseRecorder) map[string]any {
	var resp map[string]any
	Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
	return resp
}

func expectError(w *httptest.ResponseRecorder, status int, code string) map[string]any {
	Expect(w.Code).To(Equal(status), w.Body.String())
	resp := decode(w)
	Expect(resp["code"]).To(Equal(code))
	return resp
}
