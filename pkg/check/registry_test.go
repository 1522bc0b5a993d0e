package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopCheck(*Context) []Finding { return nil }

func TestRegistry(t *testing.T) {
	t.Run("preserves registration order", func(t *testing.T) {
		Clear()
		t.Cleanup(Clear)

		Register(RuleDef{ID: "Z9", Group: "last", Check: noopCheck})
		Register(RuleDef{ID: "A1", Group: "first", Check: noopCheck})
		Register(RuleDef{ID: "M5", Group: "middle", Check: noopCheck})

		var ids []string
		for _, r := range All() {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, []string{"Z9", "A1", "M5"}, ids)
	})

	t.Run("duplicate id panics", func(t *testing.T) {
		Clear()
		t.Cleanup(Clear)

		Register(RuleDef{ID: "X1", Check: noopCheck})
		assert.Panics(t, func() {
			Register(RuleDef{ID: "X1", Check: noopCheck})
		})
	})

	t.Run("get by id", func(t *testing.T) {
		Clear()
		t.Cleanup(Clear)

		Register(RuleDef{ID: "X1", Name: "the-one", Check: noopCheck})
		r, ok := GetByID("X1")
		require.True(t, ok)
		assert.Equal(t, "the-one", r.Name)

		_, ok = GetByID("X2")
		assert.False(t, ok)
	})

	t.Run("groups in first-seen order", func(t *testing.T) {
		Clear()
		t.Cleanup(Clear)

		Register(RuleDef{ID: "A1", Group: "i18n", Check: noopCheck})
		Register(RuleDef{ID: "A2", Group: "i18n", Check: noopCheck})
		Register(RuleDef{ID: "B1", Group: "theme", Check: noopCheck})
		Register(RuleDef{ID: "C1", Group: "build", Check: noopCheck})

		assert.Equal(t, []string{"i18n", "theme", "build"}, Groups())
		assert.Equal(t, 4, Count())
	})

	t.Run("all returns a copy", func(t *testing.T) {
		Clear()
		t.Cleanup(Clear)

		Register(RuleDef{ID: "A1", Name: "original", Check: noopCheck})
		rules := All()
		rules[0].Name = "mutated"

		r, _ := GetByID("A1")
		assert.Equal(t, "original", r.Name)
	})
}
