//go:build !windows

package window_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/winutilz/internal/window"
)

func TestSystemBackend_Unsupported(t *testing.T) {
	t.Parallel()

	m := window.NewManager(nil, window.Deps{})

	assert.ErrorIs(t, m.Center(1), window.ErrInvalidWindow)

	_, err := m.Find("", "x")
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
}
