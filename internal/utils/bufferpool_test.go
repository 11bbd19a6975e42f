package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBufferSize(t *testing.T) {
	buf := GetBuffer(4)
	assert.Len(t, buf, 4)
	ReleaseBuffer(buf)
}

func TestGetBufferGrowsBeyondPoolDefault(t *testing.T) {
	buf := GetBuffer(64)
	assert.Len(t, buf, 64)
	ReleaseBuffer(buf)
}

func TestReleaseThenReuse(t *testing.T) {
	buf := GetBuffer(8)
	buf[0] = 0xFF
	ReleaseBuffer(buf)

	again := GetBuffer(8)
	assert.Len(t, again, 8)
}
