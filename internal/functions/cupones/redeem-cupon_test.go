package cupones

import (
	"testing"

	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/stretchr/testify/assert"
)

func TestCheckRedemption(t *testing.T) {

	base := structs.Cupon{
		EmpresaID:        "b1",
		Activo:           true,
		FechaVencimiento: "2026-03-20",
		CodigoCanje:      "DRINK20",
	}

	tables := []struct {
		name            string
		mutate          func(c *structs.Cupon)
		alreadyRedeemed bool
		codigo          string
		wantErr         string
	}{
		{
			name:   "matching code",
			codigo: "DRINK20",
		},
		{
			name:   "no code required",
			mutate: func(c *structs.Cupon) { c.CodigoCanje = "" },
		},
		{
			name:    "wrong code refused",
			codigo:  "WRONG",
			wantErr: "Código incorrecto",
		},
		{
			name:            "second redemption by same viewer refused",
			alreadyRedeemed: true,
			codigo:          "DRINK20",
			wantErr:         "Este cupón ya fue canjeado",
		},
		{
			name:    "inactive",
			mutate:  func(c *structs.Cupon) { c.Activo = false },
			codigo:  "DRINK20",
			wantErr: "Cupón no disponible",
		},
		{
			name:    "expired yesterday",
			mutate:  func(c *structs.Cupon) { c.FechaVencimiento = "2026-03-14" },
			codigo:  "DRINK20",
			wantErr: "Cupón no disponible",
		},
		{
			name: "limit exhausted",
			mutate: func(c *structs.Cupon) {
				c.LimiteCanjeos = limit(2)
				c.CanjeosActuales = 2
			},
			codigo:  "DRINK20",
			wantErr: "Cupón agotado",
		},
		{
			name: "last slot still redeemable",
			mutate: func(c *structs.Cupon) {
				c.LimiteCanjeos = limit(2)
				c.CanjeosActuales = 1
			},
			codigo: "DRINK20",
		},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			cupon := base
			if table.mutate != nil {
				table.mutate(&cupon)
			}

			err := CheckRedemption(cupon, table.alreadyRedeemed, table.codigo, today)

			if table.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, table.wantErr)
			}
		})
	}
}
