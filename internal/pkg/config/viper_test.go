package config

import (
	"testing"
	"time"
)

const testYAML = `
app:
  name: randomcollapse
  debug: true
modules:
  passcode:
    otp_length: 6
    otp_ttl_minutes: 5
database:
  pool:
    max_conns: 10
instrument:
  trace_sample_ratio: 0.25
  log_mask_fields: api_key,otp
`

func newTestConfig(t *testing.T) *Viper {
	t.Helper()

	cfg, err := NewViperFromBytes("yaml", []byte(testYAML))
	if err != nil {
		t.Fatalf("NewViperFromBytes: %v", err)
	}
	return cfg
}

func TestViperGetters(t *testing.T) {
	cfg := newTestConfig(t)

	if got := cfg.GetString("app.name"); got != "randomcollapse" {
		t.Errorf("GetString = %q", got)
	}
	if !cfg.GetBool("app.debug") {
		t.Error("GetBool returned false")
	}
	if got := cfg.GetInt("modules.passcode.otp_length"); got != 6 {
		t.Errorf("GetInt = %d", got)
	}
	if got := cfg.GetInt32("database.pool.max_conns"); got != 10 {
		t.Errorf("GetInt32 = %d", got)
	}
	if got := cfg.GetFloat64("instrument.trace_sample_ratio"); got != 0.25 {
		t.Errorf("GetFloat64 = %f", got)
	}
	if got := cfg.GetMinute("modules.passcode.otp_ttl_minutes"); got != 5*time.Minute {
		t.Errorf("GetMinute = %s", got)
	}
}

func TestViperGetArrayFromCommaString(t *testing.T) {
	cfg := newTestConfig(t)

	got := cfg.GetArray("instrument.log_mask_fields")
	if len(got) != 2 || got[0] != "api_key" || got[1] != "otp" {
		t.Fatalf("GetArray = %v", got)
	}
}

func TestViperMissingKeysAreZero(t *testing.T) {
	cfg := newTestConfig(t)

	if got := cfg.GetString("no.such.key"); got != "" {
		t.Errorf("GetString = %q", got)
	}
	if got := cfg.GetSecond("no.such.key"); got != 0 {
		t.Errorf("GetSecond = %s", got)
	}
	if got := cfg.GetArray("no.such.key"); got != nil {
		t.Errorf("GetArray = %v", got)
	}
}
