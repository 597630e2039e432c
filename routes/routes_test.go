package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
)

// Every entity exposes the full CRUD surface; read-by-id must not be missing
// for any of them.
func TestRouteTableCRUDSymmetry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter()

	registered := make(map[string]bool)
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /api/clients/:id",
		"GET /api/employees/:id",
		"GET /api/services/:id",
		"GET /api/appointments/:id",
		"GET /api/products/:id",
		"GET /api/cashboxes/:id",
		"GET /api/payments/:id",
		"GET /api/blogs/:id",
		"GET /api/employees/:id/balance",
		"POST /api/employees/:id/payments",
		"POST /api/appointments/:id/collect",
		"POST /api/appointments/:id/uncollect",
	}
	for _, want := range expected {
		if !registered[want] {
			t.Errorf("route %s is not registered", want)
		}
	}
}
