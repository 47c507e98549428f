package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToKilograms(t *testing.T) {
	assert.Equal(t, 1500.0, ToKilograms(1.5))
	assert.Equal(t, 0.0, ToKilograms(0))
}

func TestMassConversions(t *testing.T) {
	m := TonnesCO2e(2.5)
	assert.Equal(t, 2500.0, m.Kilograms())
	assert.Equal(t, 2.5, m.Tonnes())

	kg := KilogramsCO2e(750)
	assert.Equal(t, 750.0, kg.Kilograms())
	assert.Equal(t, 0.75, kg.Tonnes())
}

// Scaling then summing must agree with summing then scaling, so a displayed
// aggregate matches the same records converted individually.
func TestScaleSumCommutes(t *testing.T) {
	tonnes := []float64{1.5, 0.333, 12.040001, 0, 7.2}

	var sumThenScale, scaleThenSum float64
	for _, v := range tonnes {
		sumThenScale += v
		scaleThenSum += ToKilograms(v)
	}
	sumThenScale = ToKilograms(sumThenScale)

	assert.InDelta(t, scaleThenSum, sumThenScale, 1e-6)
}
