package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceOf(t *testing.T) {
	cases := map[Item]int{
		ItemFood:  10,
		ItemToy:   15,
		ItemTreat: 5,
	}

	for item, want := range cases {
		got, err := PriceOf(item)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := PriceOf("sword")
	assert.ErrorIs(t, err, ErrUnknownItem)

	_, err = PriceOf("")
	assert.ErrorIs(t, err, ErrUnknownItem)
}
