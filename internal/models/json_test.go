package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSONGetString(t *testing.T) {
	meta := JSON{"planType": PlanBasic, "attempt": 2}

	assert.Equal(t, PlanBasic, meta.GetString("planType"))
	assert.Empty(t, meta.GetString("attempt"), "non-string values read as empty")
	assert.Empty(t, meta.GetString("missing"))
	assert.Empty(t, JSON(nil).GetString("planType"))
}

func TestJSONScan(t *testing.T) {
	var details JSON
	err := details.Scan([]byte(`{"bank":"BIC","iban":"AO06000600006767"}`))
	assert.NoError(t, err)
	assert.Equal(t, "BIC", details.GetString("bank"))
}
