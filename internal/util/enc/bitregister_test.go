package enc

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_BitRegisterBytesToGroups(t *testing.T) {
	reg := NewBitRegister(3)
	reg.Push(0x41, 8) // 010 000 01

	g, ok := reg.Pop()
	require.True(t, ok)
	require.Equal(t, uint32(2), g)

	g, ok = reg.Pop()
	require.True(t, ok)
	require.Equal(t, uint32(0), g)

	_, ok = reg.Pop()
	require.False(t, ok)
	require.Equal(t, uint(2), reg.Pending())

	g, ok = reg.Flush()
	require.True(t, ok)
	require.Equal(t, uint32(2), g)
	require.Equal(t, uint(0), reg.Pending())

	_, ok = reg.Flush()
	require.False(t, ok)
}

func Test_BitRegisterGroupsToBytes(t *testing.T) {
	reg := NewBitRegister(8)
	for _, v := range []uint32{2, 0, 2} {
		reg.Push(v, 3)
	}
	b, ok := reg.Pop()
	require.True(t, ok)
	require.Equal(t, uint32(0x41), b)
	require.Equal(t, uint(1), reg.Pending())
}

func Test_BitRegisterMasksInput(t *testing.T) {
	reg := NewBitRegister(3)
	reg.Push(0xff, 2)
	reg.Push(0xf0, 1)
	g, ok := reg.Pop()
	require.True(t, ok)
	require.Equal(t, uint32(6), g)
}

func Test_BitRegisterInvalidWidth(t *testing.T) {
	require.Panics(t, func() { NewBitRegister(0) })
	require.Panics(t, func() { NewBitRegister(17) })
}
