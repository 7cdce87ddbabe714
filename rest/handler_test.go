package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Gthulhu/kanagawa/domain"
	"github.com/Gthulhu/kanagawa/rest"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	Svc      *domain.MockService
	Registry *prometheus.Registry
	Handler  *rest.Handler
	Engine   *echo.Echo
}

func (suite *HandlerTestSuite) SetupTest() {
	suite.Svc = domain.NewMockService(suite.T())
	suite.Registry = prometheus.NewRegistry()
	handler, err := rest.NewHandler(rest.Params{Svc: suite.Svc, Registry: suite.Registry})
	suite.Require().NoError(err)
	suite.Handler = handler

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	suite.Engine = e
	suite.Handler.SetupRoutes(e)
}

func (suite *HandlerTestSuite) serve(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	suite.Engine.ServeHTTP(rec, req)
	return rec
}

func (suite *HandlerTestSuite) JSONDecode(r *httptest.ResponseRecorder, dst any) {
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	suite.Require().NoError(err, "Failed to decode JSON response")
}

func (suite *HandlerTestSuite) TestHealthCheck() {
	rec := suite.serve("/health")

	suite.Equal(http.StatusOK, rec.Code, "Expected status OK")
	var resp map[string]any
	suite.JSONDecode(rec, &resp)
	suite.Equal("healthy", resp["status"].(string), "Expected status to be healthy")
}

func (suite *HandlerTestSuite) TestVersion() {
	rec := suite.serve("/version")

	suite.Equal(http.StatusOK, rec.Code)
	var resp map[string]string
	suite.JSONDecode(rec, &resp)
	suite.Equal(rest.Version, resp["version"])
}

func (suite *HandlerTestSuite) TestStatusBeforeFirstTick() {
	suite.Svc.EXPECT().LastTick().Return(domain.TickResult{}, false).Once()

	rec := suite.serve("/api/v1/status")

	suite.Equal(http.StatusOK, rec.Code)
	var resp rest.SuccessResponse[rest.StatusResponse]
	suite.JSONDecode(rec, &resp)
	suite.True(resp.Success)
	suite.Require().NotNil(resp.Data)
	suite.False(resp.Data.Ticked)
	suite.Empty(resp.Data.Domains)
}

func (suite *HandlerTestSuite) TestStatusAfterTick() {
	tick := domain.TickResult{
		At:          time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Utilization: 55,
		Profile:     domain.HighLoad,
		Applied:     true,
		Report: domain.ApplyReport{
			Profile: domain.HighLoad,
			Domains: []domain.DomainResult{
				{Domain: domain.ScalingDomain{ID: "policy0"}, MinFreq: 800, MaxFreq: 1000},
				{Domain: domain.ScalingDomain{ID: "policy1"}, Skipped: true, SkipReason: "frequency table unavailable"},
			},
		},
	}
	suite.Svc.EXPECT().LastTick().Return(tick, true).Once()

	rec := suite.serve("/api/v1/status")

	suite.Equal(http.StatusOK, rec.Code)
	var resp rest.SuccessResponse[rest.StatusResponse]
	suite.JSONDecode(rec, &resp)
	suite.Require().NotNil(resp.Data)
	suite.True(resp.Data.Ticked)
	suite.Equal("2026-01-02T03:04:05Z", resp.Data.At)
	suite.Equal("high", resp.Data.Profile)
	suite.InDelta(55.0, resp.Data.Utilization, 1e-9)
	suite.Require().Len(resp.Data.Domains, 2)
	suite.Equal(uint64(1000), resp.Data.Domains[0].MaxFreq)
	suite.True(resp.Data.Domains[1].Skipped)
}

func (suite *HandlerTestSuite) TestListDomains() {
	suite.Svc.EXPECT().DomainStates(mock.Anything).Return([]domain.DomainState{
		{
			Domain:      domain.ScalingDomain{ID: "policy0", Path: "/sys/devices/system/cpu/cpufreq/policy0"},
			Table:       domain.FrequencyTable{100, 200, 300, 400},
			AbsoluteMin: 100,
			AbsoluteMax: 400,
			HighLoadMin: 400,
			LowLoadMax:  300,
			ScalingMin:  100,
			ScalingMax:  300,
			Governor:    "userspace",
		},
	}, nil).Once()

	rec := suite.serve("/api/v1/domains")

	suite.Equal(http.StatusOK, rec.Code)
	var resp rest.SuccessResponse[rest.DomainsResponse]
	suite.JSONDecode(rec, &resp)
	suite.Require().NotNil(resp.Data)
	suite.Require().Len(resp.Data.Domains, 1)
	d := resp.Data.Domains[0]
	suite.Equal("policy0", d.Domain)
	suite.Equal([]uint64{100, 200, 300, 400}, d.Frequencies)
	suite.Equal(uint64(400), d.HighLoadMax)
	suite.Equal(uint64(400), d.HighLoadMin)
	suite.Equal(uint64(100), d.LowLoadMin)
	suite.Equal(uint64(300), d.LowLoadMax)
}

func (suite *HandlerTestSuite) TestListDomainsNotFound() {
	suite.Svc.EXPECT().DomainStates(mock.Anything).Return(nil, domain.ErrNoDomains).Once()

	rec := suite.serve("/api/v1/domains")

	suite.Equal(http.StatusNotFound, rec.Code)
	var resp rest.ErrorResponse
	suite.JSONDecode(rec, &resp)
	suite.False(resp.Success)
}

func (suite *HandlerTestSuite) TestListDomainsFailure() {
	suite.Svc.EXPECT().DomainStates(mock.Anything).Return(nil, errors.New("permission denied")).Once()

	rec := suite.serve("/api/v1/domains")

	suite.Equal(http.StatusInternalServerError, rec.Code)
}

func (suite *HandlerTestSuite) TestMetrics() {
	gauge := prometheus.NewGauge(prometheus.GaugeOpts{Name: "kanagawa_test_gauge", Help: "test"})
	gauge.Set(3)
	suite.Require().NoError(suite.Registry.Register(gauge))

	rec := suite.serve("/metrics")

	suite.Equal(http.StatusOK, rec.Code)
	suite.True(strings.Contains(rec.Body.String(), "kanagawa_test_gauge 3"))
}

func (suite *HandlerTestSuite) TestListDomainsFilter() {
	states := []domain.DomainState{
		{Domain: domain.ScalingDomain{ID: "policy0"}, Table: domain.FrequencyTable{100, 200}},
		{Domain: domain.ScalingDomain{ID: "policy4"}, Table: domain.FrequencyTable{300, 400}},
	}
	suite.Svc.EXPECT().DomainStates(mock.Anything).Return(states, nil).Twice()

	rec := suite.serve("/api/v1/domains?domain=policy4")
	suite.Equal(http.StatusOK, rec.Code)
	var resp rest.SuccessResponse[rest.DomainsResponse]
	suite.JSONDecode(rec, &resp)
	suite.Require().NotNil(resp.Data)
	suite.Require().Len(resp.Data.Domains, 1)
	suite.Equal("policy4", resp.Data.Domains[0].Domain)

	rec = suite.serve("/api/v1/domains?domain=policy9")
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *HandlerTestSuite) TestRequestLoggerFields() {
	suite.Svc.EXPECT().DomainStates(mock.Anything).Return([]domain.DomainState{
		{Domain: domain.ScalingDomain{ID: "policy0"}},
	}, nil).Once()

	var buf bytes.Buffer
	log := zerolog.New(&buf)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/domains?domain=policy2", nil)
	req = req.WithContext(log.WithContext(context.Background()))
	req.Header.Set(echo.HeaderXRequestID, "req-1")
	rec := httptest.NewRecorder()

	suite.Engine.ServeHTTP(rec, req)

	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal("req-1", rec.Header().Get(echo.HeaderXRequestID))
	var completed map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		suite.Require().NoError(json.Unmarshal([]byte(line), &entry))
		suite.Equal("req-1", entry["req_id"])
		suite.Equal("policy2", entry["domain"])
		if entry["message"] == "request completed" {
			completed = entry
		}
	}
	suite.Require().NotNil(completed)
	suite.Equal("/api/v1/domains", completed["route"])
	suite.Equal("warn", completed["level"])
	suite.EqualValues(http.StatusNotFound, completed["status_code"])
}

func (suite *HandlerTestSuite) TestRequestLoggerGeneratesRequestID() {
	suite.Svc.EXPECT().LastTick().Return(domain.TickResult{}, false).Once()

	rec := suite.serve("/api/v1/status")

	suite.Equal(http.StatusOK, rec.Code)
	suite.NotEmpty(rec.Header().Get(echo.HeaderXRequestID))
}

func (suite *HandlerTestSuite) TestRequestLoggerRecoversPanic() {
	suite.Engine.Group("/api", rest.RequestLogger()).GET("/v1/panic", func(echo.Context) error {
		panic("boom")
	})

	var rec *httptest.ResponseRecorder
	suite.NotPanics(func() {
		rec = suite.serve("/api/v1/panic")
	})
	suite.Equal(http.StatusInternalServerError, rec.Code)
}
