package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Success", Success.String())
	assert.Equal(t, "SearchFailure", SearchFailure.String())
	assert.Equal(t, "Unknown", Status(999).String())
}
