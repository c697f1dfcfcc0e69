package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"recipe-chat/internal/core/ai/assistant"
	"recipe-chat/internal/core/ai/provider"
	"recipe-chat/internal/core/catalog"
	"recipe-chat/internal/core/chat"
	"recipe-chat/internal/core/mealdb"
	"recipe-chat/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fixedRand 固定的隨機來源
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(int) int     { return r.n }

// scriptedProvider 依提示詞種類回傳固定內容
type scriptedProvider struct {
	analysis string
	text     string
	recipe   string
	fail     bool
	calls    atomic.Int32
}

func (p *scriptedProvider) Generate(_ context.Context, req *provider.Request) (*provider.Response, error) {
	p.calls.Add(1)
	if p.fail {
		return nil, errors.New("model unavailable")
	}
	prompt := req.Messages[0].Content
	switch {
	case strings.HasPrefix(prompt, "Analyze"):
		return &provider.Response{Content: p.analysis}, nil
	case strings.HasPrefix(prompt, "Translate the following recipe"):
		return &provider.Response{Content: p.recipe}, nil
	default:
		return &provider.Response{Content: p.text}, nil
	}
}

func (p *scriptedProvider) GetModel() string { return "test-model" }
func (p *scriptedProvider) Close() error     { return nil }

func testConfig(apiKey string) *config.Config {
	return &config.Config{
		App:         config.AppConfig{Version: "test", Debug: true},
		LLM:         config.LLMConfig{APIKey: apiKey, BaseURL: "http://unused", Model: "test-model"},
		CORS:        config.CORSConfig{AllowOrigins: []string{"*"}},
		MaxBodySize: 1 << 10,
	}
}

// newTestRouter 以 httptest 模擬 TheMealDB，p 為 nil 時語言助理未設定
func newTestRouter(t *testing.T, upstream http.HandlerFunc, p provider.Provider, rng chat.Rand) *gin.Engine {
	t.Helper()

	mealSrv := httptest.NewServer(upstream)
	t.Cleanup(mealSrv.Close)

	apiKey := ""
	if p != nil {
		apiKey = "test-key"
	}
	cfg := testConfig(apiKey)

	dishes := catalog.Default()
	svc := chat.NewService(
		dishes,
		mealdb.NewClient(mealSrv.URL),
		assistant.New(cfg, p, assistant.WithKnownDishes(dishes.Names())),
		rng,
	)

	router, err := SetupRouter(cfg, svc)
	if err != nil {
		t.Fatalf("SetupRouter: %v", err)
	}
	return router
}

func failingUpstream() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func unexpectedUpstream(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream call %s", r.URL.String())
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return body
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		provider provider.Provider
		want     bool
	}{
		{"without api key", nil, false},
		{"with api key", &scriptedProvider{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, unexpectedUpstream(t), tt.provider, nil)

			w := doJSON(router, http.MethodGet, "/api/health", "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			body := decode(t, w)
			if body["status"] != "healthy" {
				t.Errorf("unexpected status %v", body["status"])
			}
			if body["ai_configured"] != tt.want {
				t.Errorf("ai_configured = %v, want %v", body["ai_configured"], tt.want)
			}
		})
	}
}

func TestChat_BadInput(t *testing.T) {
	router := newTestRouter(t, unexpectedUpstream(t), nil, nil)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"empty message", `{"message":"","type":"search"}`, "NO_MESSAGE"},
		{"missing message", `{"type":"area"}`, "NO_MESSAGE"},
		{"malformed json", `{"message":`, "INVALID_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/chat", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if body := decode(t, w); body["code"] != tt.code {
				t.Errorf("code = %v, want %s", body["code"], tt.code)
			}
		})
	}
}

func TestChat_CatalogMatch(t *testing.T) {
	router := newTestRouter(t, unexpectedUpstream(t), nil, nil)

	w := doJSON(router, http.MethodPost, "/api/chat", `{"message":"butter chicken","type":"search","language":"en"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["reply"] != "I found a delicious recipe for Butter Chicken!" {
		t.Errorf("unexpected reply %v", body["reply"])
	}
	r, ok := body["recipe"].(map[string]any)
	if !ok || r["strMeal"] != "Butter Chicken" {
		t.Fatalf("unexpected recipe %v", body["recipe"])
	}
	if body["detectedLanguage"] != "en" {
		t.Errorf("unexpected detectedLanguage %v", body["detectedLanguage"])
	}
}

func TestChat_RandomUpstream(t *testing.T) {
	upstream := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/random.php" {
			t.Errorf("unexpected upstream call %s", r.URL.String())
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole"}]}`))
	}
	router := newTestRouter(t, upstream, nil, fixedRand{f: 0.9})

	w := doJSON(router, http.MethodPost, "/api/chat", `{"message":"","type":"random"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["reply"] != "Here is a random discovery: Teriyaki Chicken Casserole" {
		t.Errorf("unexpected reply %v", body["reply"])
	}
	if body["recipe"] == nil {
		t.Fatal("expected a recipe")
	}
}

func TestChat_AreaUpstreamFailure(t *testing.T) {
	router := newTestRouter(t, failingUpstream(), nil, nil)

	w := doJSON(router, http.MethodPost, "/api/chat", `{"message":"Italian","type":"area"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("upstream failure must not surface, got %d", w.Code)
	}
	body := decode(t, w)
	if body["reply"] != "Sorry, I couldn't find any recipes for Italian." {
		t.Errorf("unexpected reply %v", body["reply"])
	}
	if body["recipe"] != nil {
		t.Errorf("expected null recipe, got %v", body["recipe"])
	}
}

func TestChat_SearchFallsBackToCatalog(t *testing.T) {
	router := newTestRouter(t, failingUpstream(), nil, fixedRand{n: 0})

	w := doJSON(router, http.MethodPost, "/api/chat", `{"message":"sushi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["reply"] != "I couldn't find 'sushi'. How about trying Butter Chicken instead?" {
		t.Errorf("unexpected reply %v", body["reply"])
	}
	if body["recipe"] == nil {
		t.Fatal("expected the fallback recipe")
	}
}

func TestChat_TranslatesReplyForDetectedLanguage(t *testing.T) {
	p := &scriptedProvider{
		analysis: `{"language":"es","translatedQuery":"butter chicken","isGreeting":false}`,
		text:     `"¡Encontré una receta deliciosa de Butter Chicken!"`,
	}
	router := newTestRouter(t, unexpectedUpstream(t), p, nil)

	w := doJSON(router, http.MethodPost, "/api/chat", `{"message":"pollo con mantequilla","language":"en"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["reply"] != "¡Encontré una receta deliciosa de Butter Chicken!" {
		t.Errorf("unexpected reply %v", body["reply"])
	}
	if body["detectedLanguage"] != "es" {
		t.Errorf("unexpected detectedLanguage %v", body["detectedLanguage"])
	}
	r, ok := body["recipe"].(map[string]any)
	if !ok || r["strMeal"] != "Butter Chicken" {
		t.Errorf("unexpected recipe %v", body["recipe"])
	}
}

func TestChat_AssistantFailureDegrades(t *testing.T) {
	p := &scriptedProvider{fail: true}
	router := newTestRouter(t, unexpectedUpstream(t), p, nil)

	w := doJSON(router, http.MethodPost, "/api/chat", `{"message":"paneer tikka","language":"fr"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode(t, w)
	if body["reply"] != "I found a delicious recipe for Paneer Tikka!" {
		t.Errorf("unexpected reply %v", body["reply"])
	}
	if body["detectedLanguage"] != "fr" {
		t.Errorf("unexpected detectedLanguage %v", body["detectedLanguage"])
	}
	if p.calls.Load() == 0 {
		t.Error("expected the model to be consulted")
	}
}

func TestTranslateRecipe(t *testing.T) {
	const input = `{"recipe":{"idMeal":"1","strMeal":"Butter Chicken","strInstructions":"Cook.","strMealThumb":"x.jpg"},"language":"es"}`

	t.Run("missing recipe", func(t *testing.T) {
		router := newTestRouter(t, unexpectedUpstream(t), nil, nil)
		w := doJSON(router, http.MethodPost, "/api/translate_recipe", `{"language":"es"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decode(t, w); body["code"] != "NO_RECIPE" {
			t.Errorf("unexpected code %v", body["code"])
		}
	})

	t.Run("unconfigured returns input", func(t *testing.T) {
		router := newTestRouter(t, unexpectedUpstream(t), nil, nil)
		w := doJSON(router, http.MethodPost, "/api/translate_recipe", input)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decode(t, w)
		if body["strMeal"] != "Butter Chicken" || body["strInstructions"] != "Cook." || body["idMeal"] != "1" {
			t.Errorf("recipe changed: %v", body)
		}
	})

	t.Run("unconfigured keeps numbers exact", func(t *testing.T) {
		const recipeJSON = `{"qty":1.10,"rating":9007199254740993,"strMeal":"Pizza"}`
		router := newTestRouter(t, unexpectedUpstream(t), nil, nil)
		w := doJSON(router, http.MethodPost, "/api/translate_recipe", `{"recipe":`+recipeJSON+`,"language":"es"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := strings.TrimSpace(w.Body.String()); got != recipeJSON {
			t.Errorf("recipe changed:\n got %s\nwant %s", got, recipeJSON)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		router := newTestRouter(t, unexpectedUpstream(t), nil, nil)
		w := doJSON(router, http.MethodPost, "/api/translate_recipe", `{"recipe":{"strMeal":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decode(t, w); body["code"] != "INVALID_REQUEST" {
			t.Errorf("unexpected code %v", body["code"])
		}
	})

	t.Run("configured translates text fields only", func(t *testing.T) {
		p := &scriptedProvider{recipe: "```json\n{\"strMeal\":\"Pollo a la mantequilla\",\"strInstructions\":\"Cocinar.\",\"strMealThumb\":\"evil.jpg\"}\n```"}
		router := newTestRouter(t, unexpectedUpstream(t), p, nil)
		w := doJSON(router, http.MethodPost, "/api/translate_recipe", input)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decode(t, w)
		if body["strMeal"] != "Pollo a la mantequilla" || body["strInstructions"] != "Cocinar." {
			t.Errorf("expected translated fields, got %v", body)
		}
		if body["strMealThumb"] != "x.jpg" || body["idMeal"] != "1" {
			t.Errorf("untranslatable fields changed: %v", body)
		}
	})
}

func TestBodySizeLimit(t *testing.T) {
	router := newTestRouter(t, unexpectedUpstream(t), nil, nil)

	payload := `{"message":"` + strings.Repeat("a", 2<<10) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", w.Code)
	}
}

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	router := newTestRouter(t, unexpectedUpstream(t), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request id header")
	}
}

func TestSetupRouter_RequiresDependencies(t *testing.T) {
	if _, err := SetupRouter(nil, nil); err == nil {
		t.Fatal("expected error without config and service")
	}
}
