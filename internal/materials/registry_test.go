package materials

import (
	"testing"

	"github.com/renocalc/renocalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCalculator lets tests observe dispatch without real math.
type stubCalculator struct {
	category string
	quantity string
}

func (s stubCalculator) Category() string { return s.category }

func (s stubCalculator) Compute(model.RoomMetrics, map[string]string) *model.MaterialResult {
	return &model.MaterialResult{Category: s.category, Quantity: s.quantity}
}

func TestRegistryDispatch(t *testing.T) {
	r := NewRegistry()
	r.Register(stubCalculator{category: "glue", quantity: "1 bucket"})

	result, err := r.Calculate("glue", model.RoomMetrics{}, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "1 bucket", result.Quantity)
}

func TestRegistryUnknownCategory(t *testing.T) {
	r := NewRegistry()
	_, err := r.Calculate("unobtainium", model.RoomMetrics{}, nil)
	require.Error(t, err)

	var unknown *UnknownCategoryError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unobtainium", unknown.Category)
}

func TestRegistryReRegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.Register(stubCalculator{category: "glue", quantity: "first"})
	r.Register(stubCalculator{category: "glue", quantity: "second"})

	result, err := r.Calculate("glue", model.RoomMetrics{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "second", result.Quantity, "last registration wins")
	assert.Len(t, r.Categories(), 1)
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register(stubCalculator{category: "glue"})
	r.Unregister("glue")
	assert.False(t, r.Has("glue"))

	// Unregistering twice is a no-op.
	r.Unregister("glue")
}

func TestRegistryCategoriesSorted(t *testing.T) {
	r := NewDefaultRegistry()
	assert.Equal(t,
		[]string{"laminate", "paint", "plaster", "primer", "skirting", "tile", "wallpaper"},
		r.Categories())
}
