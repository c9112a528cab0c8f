package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskTargetEmail(t *testing.T) {
	assert.Equal(t, "c•••@example.com", maskTarget("email", "client@example.com"))
	assert.Equal(t, "•••", maskTarget("email", "pas-une-adresse"))
	assert.Equal(t, "•••", maskTarget("email", "@example.com"))
}

func TestMaskTargetPhone(t *testing.T) {
	assert.Equal(t, "+225•••••23", maskTarget("phone", "+2250701020323"))
	assert.Equal(t, "•••", maskTarget("phone", "12345"))
}
