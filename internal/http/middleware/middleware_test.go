package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/surveys/internal/http/middleware"
)

var _ = Describe("middleware", func() {
	var (
		router *gin.Engine
		logs   *bytes.Buffer
		prev   *slog.Logger
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()

		logs = &bytes.Buffer{}
		prev = slog.Default()
		slog.SetDefault(slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	})

	AfterEach(func() {
		slog.SetDefault(prev)
	})

	serve := func(req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("RequireActor", func() {
		BeforeEach(func() {
			router.Use(middleware.RequireActor())
			router.GET("/whoami", func(c *gin.Context) {
				c.String(http.StatusOK, middleware.GetActor(c.Request.Context()))
			})
		})

		It("exposes the actor to handlers", func() {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.Header.Set(middleware.ActorHeader, "  alice ")

			w := serve(req)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(Equal("alice"))
		})

		It("rejects requests without an actor", func() {
			w := serve(httptest.NewRequest(http.MethodGet, "/whoami", nil))
			Expect(w.Code).To(Equal(http.StatusUnauthorized))

			var resp map[string]string
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["code"]).To(Equal("unauthenticated"))
		})
	})

	Describe("Recovery", func() {
		It("turns panics into a 500 JSON body", func() {
			router.Use(middleware.Recovery())
			router.GET("/boom", func(*gin.Context) {
				panic("boom")
			})

			w := serve(httptest.NewRequest(http.MethodGet, "/boom", nil))
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).To(ContainSubstring(`"code":"internal"`))
			Expect(logs.String()).To(ContainSubstring("panic recovered"))
		})
	})

	Describe("Logger", func() {
		BeforeEach(func() {
			router.Use(middleware.Logger())
			router.GET("/runs/:id", func(c *gin.Context) {
				c.Status(http.StatusNotFound)
			})
		})

		It("logs client errors at warn with the route", func() {
			serve(httptest.NewRequest(http.MethodGet, "/runs/7?x=1", nil))

			var record map[string]any
			Expect(json.Unmarshal(logs.Bytes(), &record)).To(Succeed())
			Expect(record["level"]).To(Equal("WARN"))
			Expect(record["route"]).To(Equal("/runs/:id"))
			Expect(record["path"]).To(Equal("/runs/7?x=1"))
			Expect(record["status"]).To(BeEquivalentTo(404))
		})
	})
})
