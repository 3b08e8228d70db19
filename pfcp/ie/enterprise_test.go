package ie_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/pfcp-core/pfcp/ie"
)

func TestEnterpriseRegistry_LookupMiss(t *testing.T) {
	r := ie.NewEnterpriseRegistry()
	_, ok := r.Lookup(ie.EnterpriseKey{EnterpriseID: 10415, VendorType: 1})
	assert.False(t, ok)
}

func TestEnterpriseRegistry_RegisterAndInterpret(t *testing.T) {
	r := ie.NewEnterpriseRegistry()
	key := ie.EnterpriseKey{EnterpriseID: 10415, VendorType: 1}
	r.Register(key, func(payload []byte) (any, error) {
		return string(payload), nil
	})

	eid := uint16(10415)
	raw := &ie.RawIE{Type: 1 | 0x8000, Enterprise: &eid, Value: []byte("hello")}

	v, ok, err := r.Interpret(raw)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestEnterpriseRegistry_InterpretUnregisteredFallsThrough(t *testing.T) {
	r := ie.NewEnterpriseRegistry()
	eid := uint16(99)
	raw := &ie.RawIE{Type: 5 | 0x8000, Enterprise: &eid, Value: []byte{0x01}}

	v, ok, err := r.Interpret(raw)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestEnterpriseRegistry_InterpretNonEnterpriseIE(t *testing.T) {
	r := ie.NewEnterpriseRegistry()
	raw := &ie.RawIE{Type: 5, Value: []byte{0x01}}

	v, ok, err := r.Interpret(raw)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestEnterpriseRegistry_HandlerErrorPropagates(t *testing.T) {
	r := ie.NewEnterpriseRegistry()
	key := ie.EnterpriseKey{EnterpriseID: 1, VendorType: 2}
	wantErr := errors.New("bad vendor payload")
	r.Register(key, func(payload []byte) (any, error) { return nil, wantErr })

	eid := uint16(1)
	raw := &ie.RawIE{Type: 2 | 0x8000, Enterprise: &eid, Value: []byte{0x00}}

	_, ok, err := r.Interpret(raw)
	assert.True(t, ok)
	assert.ErrorIs(t, err, wantErr)
}

func TestEnterpriseRegistry_RegisterOverwrites(t *testing.T) {
	r := ie.NewEnterpriseRegistry()
	key := ie.EnterpriseKey{EnterpriseID: 1, VendorType: 1}
	r.Register(key, func(payload []byte) (any, error) { return "first", nil })
	r.Register(key, func(payload []byte) (any, error) { return "second", nil })

	eid := uint16(1)
	raw := &ie.RawIE{Type: 1 | 0x8000, Enterprise: &eid, Value: nil}

	v, ok, err := r.Interpret(raw)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", v)
}
