package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMap_ValueAndScan(t *testing.T) {
	in := JSONMap{"order_id": "o-1", "count": float64(2)}

	value, err := in.Value()
	require.NoError(t, err)

	var out JSONMap
	require.NoError(t, out.Scan([]byte(value.(string))))
	assert.Equal(t, in, out)
}

func TestJSONMap_Nil(t *testing.T) {
	var m JSONMap

	value, err := m.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	out := JSONMap{"stale": true}
	require.NoError(t, out.Scan(nil))
	assert.Nil(t, out)
}

func TestJSONMap_ScanRejectsGarbage(t *testing.T) {
	var m JSONMap

	assert.Error(t, m.Scan("not json"))
	assert.Error(t, m.Scan(42))
}
