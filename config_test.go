package folio_test

import (
	"testing"

	"github.com/fwojciec/folio"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*folio.Config)
		wantErr string
	}{
		{name: "defaults are valid", modify: func(*folio.Config) {}},
		{name: "sqlite store", modify: func(c *folio.Config) { c.Store = folio.StoreSQLite }},
		{name: "unknown store", modify: func(c *folio.Config) { c.Store = "redis" }, wantErr: "store"},
		{name: "unknown theme", modify: func(c *folio.Config) { c.Theme = "sepia" }, wantErr: "theme"},
		{name: "zero rate", modify: func(c *folio.Config) { c.Speech.Rate = 0 }, wantErr: "speech.rate"},
		{name: "rate too high", modify: func(c *folio.Config) { c.Speech.Rate = 10 }, wantErr: "speech.rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := folio.DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
