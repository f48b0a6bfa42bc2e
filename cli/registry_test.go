package cli_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"i4.energy/across/bldccli/cli"
)

var nopHandler = cli.HandlerFunc(func(context.Context, []byte, *cli.OutputBuffer) cli.Outcome {
	return cli.Done
})

func TestRegistryLookup(t *testing.T) {
	r, err := cli.NewRegistry(
		cli.Descriptor{Name: "on", Help: "on\r\n", Handler: nopHandler},
		cli.Descriptor{Name: "sduty", Help: "sduty\r\n", Params: 1, Handler: nopHandler},
	)
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	d, ok := r.Lookup("sduty")
	require.True(t, ok)
	assert.Equal(t, 1, d.Params)

	_, ok = r.Lookup("SDUTY")
	assert.False(t, ok, "lookup is case-sensitive")

	_, ok = r.Lookup("sdut")
	assert.False(t, ok, "lookup is exact")

	assert.Equal(t, "on", r.At(0).Name, "registration order is kept")
	assert.Len(t, r.Commands(), 2)
}

func TestRegistryRejectsBadDescriptors(t *testing.T) {
	tests := []struct {
		name  string
		descs []cli.Descriptor
		err   error
	}{
		{
			name:  "duplicate name",
			descs: []cli.Descriptor{{Name: "on", Handler: nopHandler}, {Name: "on", Handler: nopHandler}},
			err:   cli.ErrDuplicateCommand,
		},
		{
			name:  "empty name",
			descs: []cli.Descriptor{{Name: "", Handler: nopHandler}},
			err:   cli.ErrInvalidCommand,
		},
		{
			name:  "whitespace in name",
			descs: []cli.Descriptor{{Name: "set duty", Handler: nopHandler}},
			err:   cli.ErrInvalidCommand,
		},
		{
			name:  "missing handler",
			descs: []cli.Descriptor{{Name: "on"}},
			err:   cli.ErrInvalidCommand,
		},
		{
			name:  "negative parameter count",
			descs: []cli.Descriptor{{Name: "on", Params: -1, Handler: nopHandler}},
			err:   cli.ErrInvalidCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cli.NewRegistry(tt.descs...)
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got: %v", tt.err, err)
			}
		})
	}
}

func TestOutputBufferTruncates(t *testing.T) {
	out := cli.NewOutputBuffer(8)

	n, err := out.WriteString("0123456789")
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, "01234567", string(out.Bytes()))

	out.Printf("%d", 42)
	assert.Equal(t, 8, out.Len(), "full buffer stays full")

	out.Reset()
	assert.Equal(t, 0, out.Len())
	assert.Equal(t, 8, out.Cap())

	out.Printf("v=%d", 7)
	assert.Equal(t, "v=7", string(out.Bytes()))
}
