//go:build e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"pharmalink/tests/common/dbtest"
	"pharmalink/tests/common/helper"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := helper.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		map[string]string{"email": email, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token, "login response carries no token")
	return body.Token
}

// CreateAndLogin seeds an account and returns its id with a fresh bearer
// token.
func CreateAndLogin(t *testing.T, pool *pgxpool.Pool, router *gin.Engine, email, role, name string) (uuid.UUID, string) {
	t.Helper()

	id, err := dbtest.CreateUser(pool, email, role, name)
	require.NoError(t, err)
	return id, LoginUser(t, router, email, dbtest.DefaultPassword)
}
