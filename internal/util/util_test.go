package util_test

import (
	"errors"
	"testing"

	"example.poc/lin-input-generator/internal/util"
	"github.com/stretchr/testify/assert"
)

type fakeCloser struct {
	err    error
	closed bool
}

func (c *fakeCloser) Close() error {
	c.closed = true
	return c.err
}

func TestJSONMarshalIgnoreErr(t *testing.T) {
	assert.Equal(t, "null", string(util.JSONMarshalIgnoreErr(nil)))
	assert.Equal(t, `{"a":1}`, string(util.JSONMarshalIgnoreErr(map[string]int{"a": 1})))
	assert.Equal(t, "{}", string(util.JSONMarshalIgnoreErr(make(chan int))))
}

func TestCloseWithErr(t *testing.T) {
	var err error
	c := &fakeCloser{}
	util.CloseWithErr(c, &err)
	assert.True(t, c.closed)
	assert.NoError(t, err)

	writeErr := errors.New("write failed")
	closeErr := errors.New("close failed")
	err = writeErr
	util.CloseWithErr(&fakeCloser{err: closeErr}, &err)
	assert.ErrorIs(t, err, writeErr)
	assert.ErrorIs(t, err, closeErr)

	err = nil
	util.CloseWithErr(&fakeCloser{err: closeErr}, &err)
	assert.ErrorIs(t, err, closeErr)
}
