package safe_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pulse/pkg/utils/safe"
)

type failingCloser struct {
	called bool
}

func (x *failingCloser) Close() error {
	x.called = true
	return errors.New("close failed")
}

func TestClose(t *testing.T) {
	ctx := context.Background()

	t.Run("nil closer", func(t *testing.T) {
		safe.Close(ctx, nil)
	})

	t.Run("failing closer does not panic", func(t *testing.T) {
		c := &failingCloser{}
		safe.Close(ctx, c)
		gt.B(t, c.called).True()
	})
}

func TestWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("nil writer", func(t *testing.T) {
		safe.Write(ctx, nil, []byte("data"))
	})

	t.Run("writes data", func(t *testing.T) {
		var buf bytes.Buffer
		safe.Write(ctx, &buf, []byte("data"))
		gt.Value(t, buf.String()).Equal("data")
	})
}
