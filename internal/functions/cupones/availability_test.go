package cupones

import (
	"testing"

	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

const today = "2026-03-15"

func limit(n int) *int {
	return &n
}

func TestIsAvailable(t *testing.T) {

	base := structs.Cupon{
		EmpresaID:        "b1",
		Activo:           true,
		FechaVencimiento: "2026-03-20",
	}

	tables := []struct {
		name       string
		mutate     func(c *structs.Cupon)
		redeemed   map[string]bool
		want       bool
	}{
		{
			name: "active and unexpired",
			want: true,
		},
		{
			name:   "inactive",
			mutate: func(c *structs.Cupon) { c.Activo = false },
			want:   false,
		},
		{
			name:   "expired yesterday",
			mutate: func(c *structs.Cupon) { c.FechaVencimiento = "2026-03-14" },
			want:   false,
		},
		{
			name:   "expires today",
			mutate: func(c *structs.Cupon) { c.FechaVencimiento = today },
			want:   true,
		},
		{
			name:     "already redeemed by viewer",
			redeemed: map[string]bool{"c1": true},
			want:     false,
		},
		{
			name:     "somebody else redeemed",
			redeemed: map[string]bool{"c2": true},
			want:     true,
		},
		{
			name: "limit exhausted",
			mutate: func(c *structs.Cupon) {
				c.LimiteCanjeos = limit(5)
				c.CanjeosActuales = 5
			},
			want: false,
		},
		{
			name: "one redemption left",
			mutate: func(c *structs.Cupon) {
				c.LimiteCanjeos = limit(5)
				c.CanjeosActuales = 4
			},
			want: true,
		},
		{
			name: "no limit, huge count",
			mutate: func(c *structs.Cupon) {
				c.CanjeosActuales = 100000
			},
			want: true,
		},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			cupon := base
			if table.mutate != nil {
				table.mutate(&cupon)
			}

			got := IsAvailable("c1", cupon, today, table.redeemed)
			assert.Equal(t, table.want, got)
		})
	}
}

func TestIsAvailableProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	genCupon := gopter.CombineGens(
		gen.Bool(),
		gen.OneConstOf("2026-03-10", "2026-03-14", "2026-03-15", "2026-03-16", "2026-12-31"),
		gen.IntRange(0, 10),
		gen.IntRange(0, 10),
		gen.Bool(),
	).Map(func(values []interface{}) structs.Cupon {
		cupon := structs.Cupon{
			Activo:           values[0].(bool),
			FechaVencimiento: values[1].(string),
			CanjeosActuales:  values[2].(int),
		}
		if values[4].(bool) {
			cupon.LimiteCanjeos = limit(values[3].(int))
		}
		return cupon
	})

	properties.Property("inactive coupon is never available", prop.ForAll(
		func(cupon structs.Cupon) bool {
			cupon.Activo = false
			return !IsAvailable("c1", cupon, today, nil)
		},
		genCupon,
	))

	properties.Property("redeemed coupon is never available to that viewer", prop.ForAll(
		func(cupon structs.Cupon) bool {
			return !IsAvailable("c1", cupon, today, map[string]bool{"c1": true})
		},
		genCupon,
	))

	properties.Property("available implies active, unexpired and under limit", prop.ForAll(
		func(cupon structs.Cupon) bool {
			if !IsAvailable("c1", cupon, today, nil) {
				return true
			}
			if !cupon.Activo || cupon.FechaVencimiento < today {
				return false
			}
			return cupon.LimiteCanjeos == nil || cupon.CanjeosActuales < *cupon.LimiteCanjeos
		},
		genCupon,
	))

	properties.TestingRun(t)
}
