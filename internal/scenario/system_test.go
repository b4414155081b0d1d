package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/virtlab/labgen/internal/config"
)

func mustNetwork(t *testing.T, fields map[string]any) *Network {
	t.Helper()
	network, err := NetworkFromValue(config.ValueOf(fields))
	require.NoError(t, err)
	return network
}

func TestSystemFromValue(t *testing.T) {
	t.Parallel()

	system, err := SystemFromValue(config.ValueOf(map[string]any{
		"name":     "Desktop",
		"base_box": "Debian",
		"networks": []any{"LAN", "DMZ"},
	}))
	require.NoError(t, err)
	assert.Equal(t, "Desktop", system.Name)
	assert.Equal(t, "Debian", system.BaseBox)
	assert.Equal(t, []string{"LAN", "DMZ"}, system.NetworkNames)
	assert.Equal(t, Unwired, system.State())
}

func TestSystemFromValue_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		fields  map[string]any
		wantMsg string
	}{
		{
			name:    "missing name",
			fields:  map[string]any{"base_box": "Debian", "networks": []any{}},
			wantMsg: "could not read name of system",
		},
		{
			name:    "missing base_box",
			fields:  map[string]any{"name": "Desktop", "networks": []any{}},
			wantMsg: "could not read base_box of system \"Desktop\"",
		},
		{
			name:    "missing networks",
			fields:  map[string]any{"name": "Desktop", "base_box": "Debian"},
			wantMsg: "could not read networks of system \"Desktop\"",
		},
		{
			name:    "networks not an array",
			fields:  map[string]any{"name": "Desktop", "base_box": "Debian", "networks": "LAN"},
			wantMsg: "as an array",
		},
		{
			name:    "network reference not a string",
			fields:  map[string]any{"name": "Desktop", "base_box": "Debian", "networks": []any{"LAN", 7}},
			wantMsg: "network reference 1 of system \"Desktop\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := SystemFromValue(config.ValueOf(tt.fields))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSystemWire(t *testing.T) {
	t.Parallel()

	lan := mustNetwork(t, map[string]any{"name": "LAN", "type": "Internal", "subnet": "192.168.0.0/24"})
	wan := mustNetwork(t, map[string]any{"name": "WAN", "type": "Public"})

	system := &System{
		Name:         "Desktop",
		BaseBox:      "Debian",
		NetworkNames: []string{"LAN", "WAN"},
	}

	require.NoError(t, system.Wire([]*Network{lan, wan}))
	assert.Equal(t, Wired, system.State())
	require.Len(t, system.Networks, 2)
	assert.Same(t, lan, system.Networks[0])
	assert.Same(t, wan, system.Networks[1])

	require.Len(t, system.Leases["LAN"], 1)
	assert.Equal(t, "192.168.0.1", system.Leases["LAN"][0].String())

	// Public references resolve but lease nothing.
	assert.Empty(t, system.Leases["WAN"])
}

func TestSystemWire_MultipleNICsOnOneNetwork(t *testing.T) {
	t.Parallel()

	lan := mustNetwork(t, map[string]any{"name": "LAN", "type": "Internal", "subnet": "10.0.0.0/24"})

	system := &System{
		Name:         "Router",
		BaseBox:      "Debian",
		NetworkNames: []string{"LAN", "LAN", "LAN"},
	}

	require.NoError(t, system.Wire([]*Network{lan}))
	leases := system.Leases["LAN"]
	require.Len(t, leases, 3)
	assert.Equal(t, "10.0.0.1", leases[0].String())
	assert.Equal(t, "10.0.0.2", leases[1].String())
	assert.Equal(t, "10.0.0.3", leases[2].String())
}

func TestSystemWire_UnresolvedReference(t *testing.T) {
	t.Parallel()

	lan := mustNetwork(t, map[string]any{"name": "TestNet", "type": "Internal", "subnet": "192.168.0.0/24"})

	system := &System{
		Name:         "Test System",
		BaseBox:      "Debian",
		NetworkNames: []string{"OtherNet"},
	}

	err := system.Wire([]*Network{lan})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnresolvedNetwork)
	assert.Contains(t, err.Error(),
		`system "Test System" is configured to use network "OtherNet" but no network with that name could be found`)
	assert.Equal(t, WireFailed, system.State())
}

func TestSystemWire_PoolExhaustion(t *testing.T) {
	t.Parallel()

	p2p := mustNetwork(t, map[string]any{"name": "P2P", "type": "Internal", "subnet": "10.0.0.0/30"})

	system := &System{
		Name:         "Hungry",
		BaseBox:      "Debian",
		NetworkNames: []string{"P2P", "P2P", "P2P"},
	}

	err := system.Wire([]*Network{p2p})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPoolExhausted)
	assert.Contains(t, err.Error(), `system "Hungry"`)
	assert.Equal(t, WireFailed, system.State())
}

func TestSystemWire_RunsOnce(t *testing.T) {
	t.Parallel()

	lan := mustNetwork(t, map[string]any{"name": "LAN", "type": "Internal", "subnet": "10.0.0.0/24"})

	system := &System{Name: "Desktop", BaseBox: "Debian", NetworkNames: []string{"LAN"}}
	require.NoError(t, system.Wire([]*Network{lan}))

	err := system.Wire([]*Network{lan})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already been wired")
}
