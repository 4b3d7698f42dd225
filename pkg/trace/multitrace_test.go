package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticColocalization(t *testing.T) {
	coloc := NewStaticColocalization([][]int{{0, 1}, {2}})

	assert.Equal(t, 0, coloc.LifelineColocID(0))
	assert.Equal(t, 0, coloc.LifelineColocID(1))
	assert.Equal(t, 1, coloc.LifelineColocID(2))
	assert.Equal(t, -1, coloc.LifelineColocID(99))
	assert.Equal(t, 2, coloc.ChannelCount())

	ids := coloc.ColocIDsFromLifelines(map[int]struct{}{0: {}, 2: {}})
	assert.Contains(t, ids, 0)
	assert.Contains(t, ids, 1)
	assert.Len(t, ids, 2)
}

func TestMultiTraceTotalLength(t *testing.T) {
	mt := MultiTrace{
		{NewAction(0, Emission, nil), NewAction(0, Emission, nil)},
		{NewAction(1, Reception, nil)},
	}
	assert.Equal(t, 3, mt.TotalLength())
}
