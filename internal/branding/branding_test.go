package branding_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/winutilz/internal/branding"
	"github.com/Norgate-AV/winutilz/internal/testutil"
)

type fakeBackend struct {
	err error
}

func (f fakeBackend) FormatString(format string) (string, error) {
	if f.err != nil {
		return "", f.err
	}

	return strings.NewReplacer(
		branding.WindowsLong, "Windows 11 Pro",
		branding.WindowsShort, "Windows 11",
	).Replace(format), nil
}

func TestFormat(t *testing.T) {
	t.Parallel()

	log := testutil.NewMockLogger()
	m := branding.NewManager(log, branding.Deps{Backend: fakeBackend{}})

	got, err := m.Format("Welcome to " + branding.WindowsLong)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Windows 11 Pro", got)
	assert.True(t, log.HasMessage("Formatted branding string"))

	_, err = m.Format("")
	assert.ErrorIs(t, err, branding.ErrEmptyFormat)
}

func TestFormat_Error(t *testing.T) {
	t.Parallel()

	m := branding.NewManager(nil, branding.Deps{Backend: fakeBackend{err: testutil.ErrMock}})

	_, err := m.Format(branding.WindowsShort)
	assert.ErrorIs(t, err, testutil.ErrMock)
}

func TestTokens(t *testing.T) {
	t.Parallel()

	for _, tok := range branding.Tokens() {
		assert.True(t, strings.HasPrefix(tok, "%") && strings.HasSuffix(tok, "%"), tok)
	}
}
