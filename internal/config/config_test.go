package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "booking"
password = "booking"
dbname = "bookings"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/app.log"
level = "info"

[metrics]
enabled = true
service_name = "booking-service"
path = "/metrics"

[scheduling]
horizon_days = 90
timezone = "America/New_York"

[pet_service]
url = "http://pet-service:8080"
timeout = 5

[caregiver_service]
url = "http://caregiver-service:8080"
timeout = 5

[payment_service]
url = "http://payment-service:8080"
timeout = 10
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "host=localhost port=5432 user=booking password=booking dbname=bookings sslmode=disable",
		cfg.Database.DSN())
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 90, cfg.Scheduling.HorizonDays)
	assert.Equal(t, "America/New_York", cfg.Scheduling.Timezone)
	assert.Equal(t, "http://payment-service:8080", cfg.PaymentService.URL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		mut  string
	}{
		{"missing port", "[server]\nhttp_port = 0"},
		{"missing database host", "[server]\nhttp_port = 8080\n[database]\ndbname = \"bookings\""},
		{"missing integration url", "[server]\nhttp_port = 8080\n[database]\nhost = \"localhost\"\ndbname = \"bookings\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.mut))
			assert.Error(t, err)
		})
	}
}
