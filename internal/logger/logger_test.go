package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, New("production"))
	assert.NotNil(t, New("development"))
	assert.NotNil(t, New(""))
}
