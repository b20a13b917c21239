package middleware

import (
	"checkrrhh-backend/internal/model"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func newApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers = append(handlers, func(c *fiber.Ctx) error {
		companyID, _ := c.Locals("company_id").(*uint)
		cid := uint(0)
		if companyID != nil {
			cid = *companyID
		}
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id"), "role": c.Locals("role"), "company_id": cid})
	})
	app.Get("/", handlers...)
	return app
}

func status(t *testing.T, app *fiber.App, header, value string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp.StatusCode
}

func TestAuth(t *testing.T) {
	app := newApp(Auth("secret"))
	valid := sign(t, "secret", jwt.MapClaims{"user_id": 7, "role": "company-admin", "company_id": 3, "exp": time.Now().Add(time.Hour).Unix()})
	expired := sign(t, "secret", jwt.MapClaims{"user_id": 7, "role": "employee", "exp": time.Now().Add(-time.Hour).Unix()})
	foreign := sign(t, "other", jwt.MapClaims{"user_id": 7, "role": "employee"})
	noUser := sign(t, "secret", jwt.MapClaims{"role": "employee"})

	cases := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "Bearer " + valid, fiber.StatusOK},
		{"missing", "", fiber.StatusUnauthorized},
		{"expired", "Bearer " + expired, fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, fiber.StatusUnauthorized},
		{"no user id", "Bearer " + noUser, fiber.StatusUnauthorized},
		{"garbage", "Bearer abc", fiber.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			header := "Authorization"
			if tc.value == "" {
				header = ""
			}
			if got := status(t, app, header, tc.value); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestRole(t *testing.T) {
	app := newApp(Auth("secret"), Role(model.RoleCompanyAdmin, model.RoleSuperAdmin))
	admin := sign(t, "secret", jwt.MapClaims{"user_id": 1, "role": "super-admin"})
	emp := sign(t, "secret", jwt.MapClaims{"user_id": 2, "role": "employee", "company_id": 1})

	if got := status(t, app, "Authorization", "Bearer "+admin); got != fiber.StatusOK {
		t.Fatalf("super-admin: expected 200, got %d", got)
	}
	if got := status(t, app, "Authorization", "Bearer "+emp); got != fiber.StatusForbidden {
		t.Fatalf("employee: expected 403, got %d", got)
	}
}

func TestKioskKey(t *testing.T) {
	open := newApp(KioskKey(""))
	if got := status(t, open, "", ""); got != fiber.StatusOK {
		t.Fatalf("open kiosk: expected 200, got %d", got)
	}

	guarded := newApp(KioskKey("k1"))
	if got := status(t, guarded, "X-Kiosk-Key", "k1"); got != fiber.StatusOK {
		t.Fatalf("right key: expected 200, got %d", got)
	}
	if got := status(t, guarded, "X-Kiosk-Key", "k2"); got != fiber.StatusUnauthorized {
		t.Fatalf("wrong key: expected 401, got %d", got)
	}
	if got := status(t, guarded, "", ""); got != fiber.StatusUnauthorized {
		t.Fatalf("missing key: expected 401, got %d", got)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	app := newApp(RequestID)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if got := resp.Header.Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected request id echoed, got %q", got)
	}

	resp, _ = app.Test(httptest.NewRequest("GET", "/", nil))
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected a generated request id")
	}
}
