package InputParameters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gobie/types"
)

func TestParse(t *testing.T) {
	fileInput := []byte(`
Title: Test Case
NPanels: 8
Shape: circle
Radius: 1.5
FillLevel: low # Can be superlow or low
Sources:
  - [3, 3]
  - [-2.5, -2.5]
`)
	var input SimulationParameters
	require.NoError(t, input.Parse(fileInput))
	assert.Equal(t, "Test Case", input.Title)
	assert.Equal(t, 8, input.NPanels)
	assert.Equal(t, 1.5, input.Radius)
	assert.Equal(t, "low", input.FillLevel)
	assert.Equal(t, [][2]float64{{3, 3}, {-2.5, -2.5}}, input.Sources)
	require.NoError(t, input.Validate())
	input.Print()
}

func TestParseRecord(t *testing.T) {
	{
		var ip SimulationParameters
		require.NoError(t, ip.ParseRecord([]string{"2", "1", "circle", "2", "2", "3+3i", "-2.5-2.5i", "superlow"}))
		def := Default()
		def.Title = ""
		assert.Equal(t, def, &ip)
	}
	{
		var ip SimulationParameters
		require.NoError(t, ip.ParseRecord([]string{"4", "0", "circle", "1", "0", "low"}))
		assert.Len(t, ip.Sources, 0)
		assert.Equal(t, "low", ip.FillLevel)
	}
	fieldOf := func(fields ...string) string {
		var ip SimulationParameters
		err := ip.ParseRecord(fields)
		var ce *types.ConfigurationError
		require.True(t, errors.As(err, &ce), "%v", fields)
		return ce.Field
	}
	assert.Equal(t, "record", fieldOf("2", "1", "circle"))
	assert.Equal(t, "NPanels", fieldOf("two", "1", "circle", "2", "0", "low"))
	assert.Equal(t, "Radius", fieldOf("2", "1", "circle", "r", "0", "low"))
	assert.Equal(t, "NSources", fieldOf("2", "1", "circle", "2", "-1", "low"))
	assert.Equal(t, "record", fieldOf("2", "1", "circle", "2", "2", "1+1i", "low"))
	assert.Equal(t, "Sources[1]", fieldOf("2", "1", "circle", "2", "2", "1+1i", "x", "low"))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Default().Validate())
	cases := map[string]func(ip *SimulationParameters){
		"NPanels":   func(ip *SimulationParameters) { ip.NPanels = 0 },
		"Radius":    func(ip *SimulationParameters) { ip.Radius = -2 },
		"Shape":     func(ip *SimulationParameters) { ip.Shape = "square" },
		"FillLevel": func(ip *SimulationParameters) { ip.FillLevel = "ultra" },
	}
	for field, mod := range cases {
		ip := Default()
		mod(ip)
		err := ip.Validate()
		assert.True(t, errors.Is(err, types.ErrConfiguration))
		var ce *types.ConfigurationError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, field, ce.Field)
	}
}

func TestCopy(t *testing.T) {
	ip := Default()
	ipc := ip.Copy()
	ipc.Sources[0][0] = 100
	assert.Equal(t, 3., ip.Sources[0][0])
}
