// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mairuba/finanzas-backend/config"
	"github.com/mairuba/finanzas-backend/internal/infra/dependency"
	"github.com/mairuba/finanzas-backend/internal/integration/persistence"
	"github.com/mairuba/finanzas-backend/internal/integration/persistence/model"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Named values captured from responses, substituted into later requests
	vars map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions. Each scenario gets a
// fresh in-memory store, so scenarios never see each other's data.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := &TestContext{
			vars: make(map[string]string),
		}

		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return ctx, fmt.Errorf("failed to open in-memory database: %w", err)
		}
		if err := db.AutoMigrate(&model.SlotModel{}); err != nil {
			return ctx, fmt.Errorf("failed to migrate: %w", err)
		}
		store := persistence.NewSQLiteStore(db)

		cfg := config.Load()
		injector, err := dependency.NewInjector(ctx, cfg, store, func() bool { return true })
		if err != nil {
			return ctx, fmt.Errorf("failed to wire dependencies: %w", err)
		}

		tc.server = httptest.NewServer(injector.Router.Setup("test"))
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I look up the category named "([^"]*)"$`, iLookUpTheCategoryNamed)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, iRememberTheResponseFieldAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

// iLookUpTheCategoryNamed fetches the category list and captures the ID of
// the named category as {categoryId}.
func iLookUpTheCategoryNamed(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	if err := tc.doRequest(http.MethodGet, "/api/v1/categories", nil); err != nil {
		return err
	}

	var response struct {
		Categories []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"categories"`
	}
	if err := json.Unmarshal(tc.responseBody, &response); err != nil {
		return fmt.Errorf("failed to decode category list: %w", err)
	}

	for _, c := range response.Categories {
		if c.Name == name {
			tc.vars["categoryId"] = c.ID
			return nil
		}
	}
	return fmt.Errorf("category %q not found", name)
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.doRequest(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.doRequest(method, endpoint, []byte(tc.substitute(body.Content)))
}

func iRememberTheResponseFieldAs(ctx context.Context, field, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.responseField(field)
	if err != nil {
		return err
	}
	tc.vars[name] = fmt.Sprint(value)
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain %q (body: %s)", expected, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.responseField(field)
	if err != nil {
		return err
	}
	if got := fmt.Sprint(value); got != tc.substitute(expected) {
		return fmt.Errorf("expected field %q to be %q, got %q", field, expected, got)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.responseField(field)
	return err
}

// doRequest sends one HTTP request against the scenario server and records
// the response. Placeholders in the endpoint are substituted first.
func (tc *TestContext) doRequest(method, endpoint string, body []byte) error {
	url := tc.server.URL + tc.substitute(endpoint)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	tc.response = resp
	tc.responseBody = responseBody
	return nil
}

// substitute replaces {name} placeholders with captured values.
func (tc *TestContext) substitute(s string) string {
	for name, value := range tc.vars {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

// responseField resolves a dot-separated path into the decoded JSON response.
func (tc *TestContext) responseField(path string) (interface{}, error) {
	if tc.responseBody == nil {
		return nil, fmt.Errorf("no response recorded")
	}

	var decoded interface{}
	if err := json.Unmarshal(tc.responseBody, &decoded); err != nil {
		return nil, fmt.Errorf("response is not JSON: %w", err)
	}

	current := decoded
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response (body: %s)", path, tc.responseBody)
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("field %q not found in response (body: %s)", path, tc.responseBody)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("field %q not found in response (body: %s)", path, tc.responseBody)
		}
	}
	return current, nil
}
