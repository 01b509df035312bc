package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeutralMassRoundTrip(t *testing.T) {
	ion, err := IonByName("M+H")
	require.NoError(t, err)

	const mono = 103.9898292
	mz := mono + ion.Offset
	assert.InDelta(t, mono, NeutralMass(mz, ion), 1e-9)
}

func TestIonByName(t *testing.T) {
	for _, name := range []string{"M+H", "M+Na", "M-H", "M+Cl"} {
		ion, err := IonByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, ion.Name)
	}
	_, err := IonByName("M+Xx")
	assert.Error(t, err)
}

func TestIonTablesAreCopies(t *testing.T) {
	ions := PositiveIons()
	require.NotEmpty(t, ions)
	ions[0].Offset = 0
	fresh := PositiveIons()
	assert.NotZero(t, fresh[0].Offset)
}
