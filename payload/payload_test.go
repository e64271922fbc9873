package payload

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

func TestWordUnpacking(t *testing.T) {
	assert.Equal(t, []byte{0x44, 0x43, 0x42, 0x41}, Table{0x41424344}.Decode())
}

func TestZeroWordIsData(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 0, 0x44, 0x43, 0x42, 0x41}, Table{0, 0x41424344}.Decode())
}

func TestEmptyTables(t *testing.T) {
	assert.Empty(t, Table{}.Decode())
	assert.Empty(t, Table(nil).Decode())
	assert.Empty(t, Secret.Decode())
}

func TestWriteTo(t *testing.T) {
	var b bytes.Buffer
	written, err := Table{0x41424344, 0x21646121}.WriteTo(&b)
	require.NoError(t, err)
	assert.EqualValues(t, 8, written)
	assert.Equal(t, "DCBA!ad!", b.String())
}
