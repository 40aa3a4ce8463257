package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitmap(t *testing.T) {
	bm := &Bitmap{}
	assert.True(t, bm.Invalid())
	assert.False(t, bm.IsSet(3))

	bm.Init(20)
	assert.Equal(t, 3, len(bm.Bits))
	bm.Set(0, true)
	bm.Set(9, true)
	bm.Set(19, true)
	assert.True(t, bm.IsSet(9))
	assert.Equal(t, 3, bm.CountSet(20))
	bm.Set(9, false)
	assert.False(t, bm.IsSet(9))
	assert.Equal(t, 2, bm.CountSet(20))
}

func TestFaultInject(t *testing.T) {
	errFault := errors.New("fault")
	action := func(args []string) error {
		if len(args) != 0 {
			return errors.New(args[0])
		}
		return errFault
	}

	// closed scopes drop registrations
	Register(FAULTS_SCOPE_SORT, "f1", nil, action)
	assert.NoError(t, Run(FAULTS_SCOPE_SORT, "f1"))

	Open(FAULTS_SCOPE_SORT)
	Register(FAULTS_SCOPE_SORT, "f1", nil, action)
	Register(FAULTS_SCOPE_SORT, "f2", []string{"with args"}, action)
	assert.ErrorIs(t, Run(FAULTS_SCOPE_SORT, "f1"), errFault)
	assert.EqualError(t, Run(FAULTS_SCOPE_SORT, "f2"), "with args")
	assert.NoError(t, Run(FAULTS_SCOPE_SORT, "unknown"))
	assert.Nil(t, Check(FAULTS_COUNT, "f1"))

	Close(FAULTS_SCOPE_SORT)
	assert.Nil(t, Check(FAULTS_SCOPE_SORT, "f1"))
	assert.NoError(t, Run(FAULTS_SCOPE_SORT, "f1"))
}

func TestConvertPanicError(t *testing.T) {
	errCause := errors.New("cause")
	err := ConvertPanicError(errCause)
	require.Error(t, err)
	assert.ErrorIs(t, err, errCause)

	err = ConvertPanicError("boom")
	assert.Contains(t, err.Error(), "boom")
}

func TestConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DefaultVectorSize, cfg.Sort.BatchSize)
	assert.Equal(t, 1, cfg.Sort.Parallel)
	assert.Equal(t, "csv", cfg.Input.Format)
	assert.Equal(t, ",", cfg.Input.Delimiter)

	require.NoError(t, SetLogLevel("debug"))
	assert.True(t, DebugEnabled())
	require.NoError(t, SetLogLevel("warn"))
	assert.False(t, DebugEnabled())
	assert.Error(t, SetLogLevel("loud"))
}
