package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEllipticalTruncate(t *testing.T) {
	assert.Equal(t, "…", TruncateWithEllipsis("1 2 3", 0))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 1))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 2))
	assert.Equal(t, "1 2…", TruncateWithEllipsis("1 2 3", 3))
	assert.Equal(t, "1 2 3", TruncateWithEllipsis("1 2 3", 5))
}

func TestNormalizeHandle(t *testing.T) {
	assert.Equal(t, "mayor_office", NormalizeHandle("@Mayor_Office"))
	assert.Equal(t, "mayor_office", NormalizeHandle("  mayor_office "))
	assert.Equal(t, "mayor_office", NormalizeHandle("mayor_office"))
}

func TestValidateHandle(t *testing.T) {
	assert.Nil(t, ValidateHandle("mayor_office"))
	assert.Nil(t, ValidateHandle("user123"))
	assert.NotNil(t, ValidateHandle(""))
	assert.NotNil(t, ValidateHandle("not a handle"))
	assert.NotNil(t, ValidateHandle("semi;colon"))
}
