//go:build !windows

package resource_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Norgate-AV/winutilz/internal/resource"
)

func TestModule_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := resource.Self().Load(resource.Int(1), resource.RCData)
	assert.ErrorIs(t, err, errors.ErrUnsupported)
	assert.False(t, resource.Self().Exists(resource.Int(1), resource.RCData))

	_, err = resource.OpenModule("x.dll")
	assert.ErrorIs(t, err, errors.ErrUnsupported)
}
