package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// clearConfigEnv blanks every variable read by parseConfig for the test.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

var configKeys = []string{
	"APP_HOST",
	"APP_LOG_FILE",
	"APP_LOG_LEVEL",
	"APP_PORT",
	"AUTH_RATE_LIMIT",
	"BCRYPT_COST",
	"BREVO_API_KEY",
	"BREVO_BASE_URL",
	"CLIENT_URL",
	"CORS_ORIGIN",
	"EMAIL_FROM",
	"EMAIL_FROM_NAME",
	"FAST2SMS_API_KEY",
	"FAST2SMS_BASE_URL",
	"GOOGLE_CALLBACK_URL",
	"GOOGLE_CLIENT_ID",
	"GOOGLE_CLIENT_SECRET",
	"JWT_EXP_SECOND",
	"JWT_SECRET_KEY",
	"KAFKA_BROKERS",
	"KAFKA_TOPIC",
	"OTP_EXP_SECOND",
	"OTP_TOMBSTONE_SECOND",
	"POSTGRES_DB",
	"POSTGRES_HOST",
	"POSTGRES_MAX_IDLE_CONNS",
	"POSTGRES_MAX_OPEN_CONNS",
	"POSTGRES_PASSWORD",
	"POSTGRES_PORT",
	"POSTGRES_USER",
	"REDIS_DB",
	"REDIS_HOST",
	"REDIS_MIN_IDLE_CONNS",
	"REDIS_PASSWORD",
	"REDIS_POOL_SIZE",
	"REDIS_PORT",
	"RESET_EXP_SECOND",
	"SESSION_SECRET",
	"SUPPORT_EMAIL",
	"SWAGGER_HOST",
	"VERIFICATION_EXP_SECOND",
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "Default", args: []string{"cmd"}, want: "config.env"},
		{name: "Custom", args: []string{"cmd", "-c", "myconfig.env"}, want: "myconfig.env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			oldArgs := os.Args
			defer func() { os.Args = oldArgs }()

			os.Args = tt.args
			assert.Equal(t, tt.want, parseFlags())
		})
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Build version: v1.0.0")
	assert.Contains(t, output, "Build commit: abcd1234")
	assert.Contains(t, output, "Build date: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:3000", cfg.ClientURL)
	assert.Equal(t, cfg.ClientURL, cfg.CORSOrigin)

	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 10, cfg.RedisPoolSize)

	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "transactions", cfg.KafkaTopic)

	assert.Equal(t, 24*time.Hour, cfg.JWTExp)
	assert.Equal(t, 24*time.Hour, cfg.VerificationExp)
	assert.Equal(t, time.Hour, cfg.ResetExp)
	assert.Equal(t, 10*time.Minute, cfg.OTPExp)
	assert.Equal(t, time.Minute, cfg.OTPTombstone)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 20, cfg.AuthRateLimit)
	assert.Equal(t, cfg.EmailFrom, cfg.SupportEmail)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	clearConfigEnv(t)
	env := map[string]string{
		"APP_HOST":                "127.0.0.1",
		"APP_PORT":                "9090",
		"APP_LOG_LEVEL":           "debug",
		"CLIENT_URL":              "https://app.example.com/",
		"POSTGRES_HOST":           "pg.example.com",
		"POSTGRES_PORT":           "5433",
		"POSTGRES_MAX_OPEN_CONNS": "20",
		"REDIS_HOST":              "redis.example.com",
		"REDIS_DB":                "2",
		"KAFKA_BROKERS":           "k1:9092, k2:9092,",
		"KAFKA_TOPIC":             "ledger",
		"JWT_SECRET_KEY":          "supersecret",
		"JWT_EXP_SECOND":          "300",
		"OTP_EXP_SECOND":          "120",
		"BCRYPT_COST":             "4",
		"EMAIL_FROM":              "noreply@example.com",
		"SUPPORT_EMAIL":           "help@example.com",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://app.example.com", cfg.ClientURL)
	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, 20, cfg.PGMaxOpenConns)
	assert.Equal(t, "redis.example.com", cfg.RedisHost)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "ledger", cfg.KafkaTopic)
	assert.Equal(t, "supersecret", cfg.JWTSecretKey)
	assert.Equal(t, 5*time.Minute, cfg.JWTExp)
	assert.Equal(t, 2*time.Minute, cfg.OTPExp)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, "help@example.com", cfg.SupportEmail)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("POSTGRES_PORT", "not-a-port")

	_, err := parseConfig("nonexistent.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_PORT")
}

func TestParseConfig_FromFile(t *testing.T) {
	clearConfigEnv(t)
	// godotenv never overrides variables that are already present
	os.Unsetenv("APP_PORT")
	os.Unsetenv("AUTH_RATE_LIMIT")
	path := t.TempDir() + "/config.env"
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nAUTH_RATE_LIMIT=5\n"), 0o600))

	cfg, err := parseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.AppPort)
	assert.Equal(t, 5, cfg.AuthRateLimit)
}

func TestNewSessionStore_Secure(t *testing.T) {
	tests := []struct {
		name       string
		clientURL  string
		wantSecure bool
	}{
		{name: "Https", clientURL: "https://app.example.com", wantSecure: true},
		{name: "Http", clientURL: "http://localhost:3000", wantSecure: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			t.Setenv("CLIENT_URL", tt.clientURL)

			cfg, err := parseConfig("nonexistent.env")
			require.NoError(t, err)
			assert.Equal(t, tt.wantSecure, cfg.SessionSecure)

			store := newSessionStore(cfg)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/auth/google", nil)
			rr := httptest.NewRecorder()
			session, _ := store.Get(req, "oauth")
			session.Values["state"] = "abc"
			require.NoError(t, session.Save(req, rr))

			cookies := rr.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, tt.wantSecure, cookies[0].Secure)
			assert.True(t, cookies[0].HttpOnly)
		})
	}
}

func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// Brevo stub
	var mails atomic.Int32
	brevo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mails.Add(1)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"stub"}`))
	}))
	defer brevo.Close()

	clearConfigEnv(t)
	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)
	cfg.AppHost, cfg.AppPort = "127.0.0.1", "8086"
	cfg.LogLevel = "debug"
	cfg.PGHost, cfg.PGPort = pgHost, pgPort.Int()
	cfg.PGUser, cfg.PGPassword, cfg.PGDB = "user", "password", "testdb"
	cfg.RedisHost, cfg.RedisPort = redisHost, redisPort.Int()
	cfg.BrevoBaseURL = brevo.URL
	cfg.BcryptCost = 4

	testCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- run(testCtx, cfg) }()

	url := fmt.Sprintf("http://%s:%s/api/v1/users/register", cfg.AppHost, cfg.AppPort)
	body := `{"name":"Jane","email":"jane@example.com","password":"Str0ng!pass"}`

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Post(url, "application/json", strings.NewReader(body))
		return err == nil
	}, 10*time.Second, 100*time.Millisecond)
	resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, int32(1), mails.Load())

	select {
	case <-time.After(20 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		require.NoError(t, err)
	}
}
