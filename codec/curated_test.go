//go:build Ai || icondata_all

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/icondata"
)

func TestCuratedJSON(t *testing.T) {
	icon := icondata.FromAi(icondata.AiFileImageTwotone)

	b, err := MarshalJSON(icon)
	require.NoError(t, err)
	assert.Equal(t, `{"Ai":"AiFileImageTwotone"}`, string(b))

	got, err := UnmarshalJSON(b)
	require.NoError(t, err)
	assert.Equal(t, icon, got)
}

func TestCuratedMsgpack(t *testing.T) {
	icon := icondata.FromAi(icondata.AiSearchOutlined)

	b, err := MarshalMsgpack(icon)
	require.NoError(t, err)

	got, err := UnmarshalMsgpack(b)
	require.NoError(t, err)
	assert.Equal(t, icon, got)
}

func TestCuratedUnknownVariant(t *testing.T) {
	_, err := UnmarshalJSON([]byte(`{"Ai":"AiNope"}`))
	assert.ErrorIs(t, err, icondata.ErrUnknownVariant)
	assert.True(t, icondata.IsUnknown(err))
}

func TestUndeclaredValueDoesNotEncode(t *testing.T) {
	_, err := MarshalJSON(icondata.AiIcon(60000))
	assert.Error(t, err)
}
