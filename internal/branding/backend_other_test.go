//go:build !windows

package branding_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/winutilz/internal/branding"
)

func TestSystemBackend_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := branding.NewManager(nil, branding.Deps{}).Format(branding.WindowsLong)
	assert.True(t, errors.Is(err, errors.ErrUnsupported))
}
