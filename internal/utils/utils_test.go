package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReference(t *testing.T) {
	ref := GenerateReference("dep")

	parts := strings.Split(ref, "-")
	assert.Len(t, parts, 3)
	assert.Equal(t, "DEP", parts[0])
	assert.Equal(t, time.Now().Format("20060102"), parts[1])
	assert.Len(t, parts[2], 8)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])

	assert.NotEqual(t, ref, GenerateReference("dep"))
}

func TestGenerateUniqueID(t *testing.T) {
	id, err := GenerateUniqueID(16)
	assert.NoError(t, err)
	assert.Len(t, id, 32, "hex encoding doubles the byte count")

	other, err := GenerateUniqueID(16)
	assert.NoError(t, err)
	assert.NotEqual(t, id, other)
}
