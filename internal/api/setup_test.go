package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mimi0225/yourcalendar/internal/services"
	"github.com/mimi0225/yourcalendar/internal/storage"
	"github.com/mimi0225/yourcalendar/internal/store"
)

// newTestApp builds a fiber app over in-memory storage with
// deterministic ids and empty collections.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	memory := storage.NewMemoryStore()
	for _, namespace := range []string{storage.NamespaceEvents, storage.NamespaceChores, storage.NamespaceBudgetCategories} {
		if err := memory.Save(namespace, []byte("[]")); err != nil {
			t.Fatalf("prepare namespace %s: %v", namespace, err)
		}
	}

	counter := 0
	var ids store.IDSource = func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}

	organizer := services.NewOrganizer(memory, ids)
	handler := NewHandler(organizer, time.UTC, nil)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
