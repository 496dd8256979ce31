package cupones

import (
	"testing"

	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/stretchr/testify/assert"
)

func TestBuildViews(t *testing.T) {

	stored := []storedCupon{
		{ID: "c1", Cupon: structs.Cupon{Titulo: "2x1", Activo: true, FechaVencimiento: "2026-03-20"}},
		{ID: "c2", Cupon: structs.Cupon{Titulo: "20% OFF", Activo: true, FechaVencimiento: "2026-03-01"}},
		{ID: "c3", Cupon: structs.Cupon{Titulo: "Happy hour", Activo: true, FechaVencimiento: "2026-03-20"}},
	}

	views := buildViews(stored, today, map[string]bool{"c3": true})

	ids := make([]string, 0, len(views))
	for _, view := range views {
		ids = append(ids, view.ID)
	}
	assert.Equal(t, []string{"c1", "c2", "c3"}, ids)

	assert.True(t, views[0].Disponible)
	assert.False(t, views[1].Disponible, "expired cupon stays listed but unavailable")
	assert.False(t, views[2].Disponible, "cupon already redeemed by the viewer")
}

func TestBuildViewsEmpty(t *testing.T) {
	views := buildViews(nil, today, nil)

	assert.NotNil(t, views)
	assert.Empty(t, views)
}
