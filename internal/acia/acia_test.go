package acia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedSource struct {
	data []byte
	pos  int
}

func (f *fixedSource) Read(p []byte) (int, error) {
	if f.pos >= len(f.data) {
		return 0, nil
	}
	n := copy(p, f.data[f.pos:])
	f.pos += n
	return n, nil
}

type recordingSink struct {
	bytes []byte
}

func (r *recordingSink) WriteByte(b byte) error {
	r.bytes = append(r.bytes, b)
	return nil
}

func TestResetStatus(t *testing.T) {
	a := New(nil, nil)
	assert.Equal(t, byte(statusTDRE), a.Read(Base+RegStatus))
}

func TestWriteStatusResetsDevice(t *testing.T) {
	a := New(&fixedSource{data: []byte{0x42}}, nil)
	a.Tick()
	a.Write(Base+RegStatus, 0x00)
	assert.Equal(t, byte(statusTDRE), a.Read(Base+RegStatus))
	assert.Equal(t, byte(0), a.Read(Base+RegData))
}

func TestReceiveFIFORoundTrip(t *testing.T) {
	a := New(&fixedSource{data: []byte("hi")}, nil)
	a.Tick()
	assert.True(t, a.Read(Base+RegStatus)&statusRDRF != 0)
	assert.Equal(t, byte('h'), a.Read(Base+RegData))
	assert.True(t, a.Read(Base+RegStatus)&statusRDRF != 0)
	assert.Equal(t, byte('i'), a.Read(Base+RegData))
	assert.False(t, a.Read(Base+RegStatus)&statusRDRF != 0)
	assert.Equal(t, byte(0), a.Read(Base+RegData))
}

func TestReceiveFIFOOverflowSetsOVRN(t *testing.T) {
	data := make([]byte, fifoCapacity+10)
	a := New(&fixedSource{data: data}, nil)
	for i := 0; i <= len(data)/64+1; i++ {
		a.Tick()
	}
	assert.True(t, a.Read(Base+RegStatus)&statusOVRN != 0)
}

func TestTransmitControlCharacterPolicy(t *testing.T) {
	sink := &recordingSink{}
	a := New(nil, sink)

	a.Write(Base+RegData, 'A')
	a.Write(Base+RegData, 0x0A)
	a.Write(Base+RegData, 0x0D)
	a.Write(Base+RegData, 0x08)
	a.Write(Base+RegData, 0x07)
	a.Write(Base+RegData, 0x01) // discarded

	assert.Equal(t, []byte{'A', 0x0A, 0x0D, 0x0A, 0x08, 0x07}, sink.bytes)
	assert.True(t, a.Read(Base+RegStatus)&statusTDRE != 0)
}

func TestHasIRQRequiresEnabledAndNonemptyFIFO(t *testing.T) {
	a := New(&fixedSource{data: []byte{0x41}}, nil)
	a.Tick()
	assert.True(t, a.HasIRQ())

	a.Write(Base+RegCommand, 0x80) // disable RX interrupt
	assert.False(t, a.HasIRQ())
}

func TestHandlesAddress(t *testing.T) {
	a := New(nil, nil)
	assert.True(t, a.HandlesAddress(Base))
	assert.True(t, a.HandlesAddress(Base+Size-1))
	assert.False(t, a.HandlesAddress(Base+Size))
}
