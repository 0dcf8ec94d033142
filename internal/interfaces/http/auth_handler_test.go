package http_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/netbill-api/internal/application/activity"
	"github.com/jhoicas/netbill-api/internal/application/auth"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
	apphttp "github.com/jhoicas/netbill-api/internal/interfaces/http"
	"github.com/jhoicas/netbill-api/pkg/logger"
)

type regUserRepo struct {
	byEmail map[string]*entity.User
}

func (r *regUserRepo) Create(_ context.Context, u *entity.User) error {
	if r.byEmail == nil {
		r.byEmail = make(map[string]*entity.User)
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *regUserRepo) GetByID(_ context.Context, _ string) (*entity.User, error) {
	return nil, nil
}

func (r *regUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *regUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) { return nil, nil }
func (r *regUserRepo) UpdateRole(_ context.Context, _, _ string) error          { return nil }
func (r *regUserRepo) Delete(_ context.Context, _ string) error                 { return nil }

type regActivityRepo struct{}

func (regActivityRepo) Create(_ context.Context, _ *entity.ActivityLog) error { return nil }
func (regActivityRepo) ListAll(_ context.Context, _, _ int) ([]*entity.ActivityLog, error) {
	return nil, nil
}
func (regActivityRepo) ListByUser(_ context.Context, _ string, _, _ int) ([]*entity.ActivityLog, error) {
	return nil, nil
}
func (regActivityRepo) Purge(_ context.Context) error { return nil }

func buildRegisterApp() (*fiber.App, *regUserRepo) {
	userRepo := &regUserRepo{}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	recorder := activity.NewRecorder(regActivityRepo{}, log)
	uc := auth.NewAuthUseCase(userRepo, recorder, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	handler := apphttp.NewAuthHandler(uc)

	app := fiber.New()
	app.Post("/api/auth/register", handler.Register)
	return app, userRepo
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_IgnoraRolDelBody(t *testing.T) {
	app, repo := buildRegisterApp()

	// Un body con "role" no debe poder elevar privilegios en el registro.
	status, body := postJSON(t, app, "/api/auth/register",
		`{"name":"Atacante","email":"atacante@ejemplo.com","password":"clave-segura-123","role":"super_admin"}`)

	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, entity.RoleUser, body["role"],
		"el registro público siempre entra como user")
	assert.Equal(t, entity.RoleUser, repo.byEmail["atacante@ejemplo.com"].Role)
}

func TestRegister_PasswordCortoDevuelve400(t *testing.T) {
	app, _ := buildRegisterApp()

	status, body := postJSON(t, app, "/api/auth/register",
		`{"email":"ana@ejemplo.com","password":"corta"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestRegister_EmailDuplicadoDevuelve409(t *testing.T) {
	app, _ := buildRegisterApp()

	status, _ := postJSON(t, app, "/api/auth/register",
		`{"email":"ana@ejemplo.com","password":"clave-segura-123"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := postJSON(t, app, "/api/auth/register",
		`{"email":"ana@ejemplo.com","password":"clave-segura-123"}`)
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "DUPLICATE", body["code"])
}
