package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/BasmaLLaa/HCI-Project/internal/config"
	"github.com/BasmaLLaa/HCI-Project/internal/database"
	"github.com/BasmaLLaa/HCI-Project/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_TokenSigningFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	h := NewAuthHandler(service.NewAuthService(db, 4), "secret", 1)
	h.sign = func(string, uint, string, time.Duration) (string, error) {
		return "", errors.New("signing failed")
	}

	r := gin.New()
	r.POST("/api/register", h.Register)

	body, err := json.Marshal(gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "pw",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error": "Server error"}`, w.Body.String())
}
