package scan

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManufacturer(t *testing.T) {
	mac, err := net.ParseMAC("00:00:0c:12:34:56")
	require.NoError(t, err)

	assert.NotEmpty(t, Manufacturer(mac))
	assert.Empty(t, Manufacturer(net.HardwareAddr{0x00}))
}

func TestLookupDeviceIgnoresHostnames(t *testing.T) {
	assert.Equal(t, Device{}, LookupDevice("printer.local"))
}
