package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "JWT_SECRET", "TASKS_FILE", "USERS_FILE"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	require.Equal(t, ":3000", cfg.Addr)
	require.Equal(t, "secreto", cfg.JWTSecret)
	require.Equal(t, "usuarios.json", cfg.UsersFile)
	require.Equal(t, "tareas.json", cfg.TasksFile)
	require.Equal(t, time.Hour, cfg.TokenTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "otro-secreto")
	t.Setenv("TASKS_FILE", "/tmp/t.json")
	t.Setenv("USERS_FILE", "/tmp/u.json")

	cfg := Load()

	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "otro-secreto", cfg.JWTSecret)
	require.Equal(t, "/tmp/t.json", cfg.TasksFile)
	require.Equal(t, "/tmp/u.json", cfg.UsersFile)
}
