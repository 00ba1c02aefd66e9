package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedModules(t *testing.T) {
	for module, docs := range supportedModules {
		t.Run(module, func(t *testing.T) {
			text, err := docs()
			require.NoError(t, err)
			assert.NotEmpty(t, text)
		})
	}
}

func TestSupportedModules_MachineCode(t *testing.T) {
	text, err := supportedModules["cpu.machine_code"]()
	require.NoError(t, err)
	assert.Contains(t, text, "mov")
	assert.Contains(t, text, "Registers:")
}
