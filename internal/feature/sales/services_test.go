package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidChannel(t *testing.T) {
	assert.True(t, ValidChannel(ChannelAmazonIndia))
	assert.True(t, ValidChannel(ChannelFlipkart))
	assert.True(t, ValidChannel(ChannelMeesho))
	assert.False(t, ValidChannel("amazon"))
	assert.False(t, ValidChannel(""))
	assert.False(t, ValidChannel("AMAZON_INDIA"))
}

func TestGMV(t *testing.T) {
	assert.Equal(t, 0.0, GMV(0, 499.0))
	assert.Equal(t, 998.0, GMV(2, 499.0))
	assert.Equal(t, 1497.75, GMV(3, 499.25))
	// Floating point dust rounds away at two decimals.
	assert.Equal(t, 32.67, GMV(3, 10.89))
}
