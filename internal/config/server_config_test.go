package config_test

import (
	"encoding/json"
	"testing"

	"github.com/poolhouse/go-prize-pool/internal/config"
)

func TestPrintServerEnv(t *testing.T) {
	config := config.DefaultServerConfigFromEnv()
	_, err := json.MarshalIndent(config, "", "  ")

	if err != nil {
		t.Fatal(err)
	}
}
