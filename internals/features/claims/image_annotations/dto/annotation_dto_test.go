package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleStringsUnmarshal(t *testing.T) {
	t.Run("bare string becomes single-element array", func(t *testing.T) {
		var f FlexibleStrings
		require.NoError(t, json.Unmarshal([]byte(`"scratch"`), &f))
		assert.Equal(t, FlexibleStrings{"scratch"}, f)
	})

	t.Run("array passes through", func(t *testing.T) {
		var f FlexibleStrings
		require.NoError(t, json.Unmarshal([]byte(`["scratch","dent"]`), &f))
		assert.Equal(t, FlexibleStrings{"scratch", "dent"}, f)
	})

	t.Run("null becomes nil", func(t *testing.T) {
		var f FlexibleStrings
		require.NoError(t, json.Unmarshal([]byte(`null`), &f))
		assert.Nil(t, f)
	})

	t.Run("inside a box payload", func(t *testing.T) {
		var box AnnotationBoxInput
		require.NoError(t, json.Unmarshal([]byte(`{"part_name":"door","damage_name":"dent","x":0.1}`), &box))
		assert.Equal(t, FlexibleStrings{"dent"}, box.DamageName)
	})
}
