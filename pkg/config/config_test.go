package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"JWT_SECRET":         "access",
		"JWT_REFRESH_SECRET": "refresh",
	}))
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DBDriverPostgres, cfg.DB.Driver)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 15*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiration)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, "*", cfg.HTTP.AllowedOrigins)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxFileBytes())
	assert.Equal(t, 5, cfg.Upload.MaxFiles)
	assert.Empty(t, cfg.Events.RabbitMQURL)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"JWT_SECRET":             "access",
		"JWT_REFRESH_SECRET":     "refresh",
		"JWT_EXPIRES_IN":         "30m",
		"JWT_REFRESH_EXPIRES_IN": "14d",
		"DB_PORT":                "6543",
		"DB_DRIVER":              "memory",
		"DB_AUTO_MIGRATE":        "true",
		"UPLOAD_DRIVER":          "s3",
		"S3_BUCKET":              "fotos",
	}))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, 14*24*time.Hour, cfg.JWT.RefreshExpiration)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, DBDriverMemory, cfg.DB.Driver)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, UploadDriverS3, cfg.Upload.Driver)
}

func TestFromViper_Errores(t *testing.T) {
	cases := map[string]map[string]any{
		"sin secretos": {},
		"secretos iguales": {
			"JWT_SECRET": "x", "JWT_REFRESH_SECRET": "x",
		},
		"driver desconocido": {
			"JWT_SECRET": "a", "JWT_REFRESH_SECRET": "b", "DB_DRIVER": "mysql",
		},
		"s3 sin bucket": {
			"JWT_SECRET": "a", "JWT_REFRESH_SECRET": "b", "UPLOAD_DRIVER": "s3",
		},
		"duración inválida": {
			"JWT_SECRET": "a", "JWT_REFRESH_SECRET": "b", "JWT_EXPIRES_IN": "quince",
		},
	}
	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fromViper(newViper(values))
			assert.Error(t, err)
		})
	}
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("7d")
	require.NoError(t, err)
	assert.Equal(t, 168*time.Hour, d)

	d, err = ParseDuration("1h30m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	_, err = ParseDuration("xd")
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "ganadero", Password: "p@ss:word", DBName: "ganado_bovino", SSLMode: "disable"}
	assert.Equal(t, "postgres://ganadero:p%40ss%3Aword@db:5432/ganado_bovino?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

func TestDBFromViper_SinSecretos(t *testing.T) {
	db := dbFromViper(newViper(map[string]any{"DB_HOST": "db", "DB_MAX_CONNS": "4"}))
	assert.Equal(t, "db", db.Host)
	assert.Equal(t, 4, db.MaxConns)
	assert.Equal(t, DBDriverPostgres, db.Driver)
}
