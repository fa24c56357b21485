//go:build !windows

package process_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/winutilz/internal/process"
)

func TestSystemBackend_Unsupported(t *testing.T) {
	t.Parallel()

	m := process.NewManager(nil, process.Deps{})

	assert.True(t, errors.Is(m.KillPID(1), errors.ErrUnsupported))
	assert.True(t, errors.Is(m.Inject(1, []byte{0xC3}, nil), errors.ErrUnsupported))

	_, err := m.RunCommand(context.Background(), "true", process.RunOptions{})
	assert.True(t, errors.Is(err, errors.ErrUnsupported))

	_, err = m.IsElevated()
	assert.True(t, errors.Is(err, errors.ErrUnsupported))

	_, err = m.CurrentProcessWindow()
	assert.ErrorIs(t, err, process.ErrNotFound)
}
