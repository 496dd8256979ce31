package cupones

import (
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
)

//IsAvailable Whether the viewer can still redeem the coupon. A coupon is available when it
//is active, not past its expiry date, not already redeemed by the viewer, and its redemption
//limit (if any) is not exhausted. Dates are "2006-01-02" strings so >= compares correctly.
func IsAvailable(cuponID string, cupon structs.Cupon, today string, redeemedIDs map[string]bool) bool {
	if !cupon.Activo {
		return false
	}

	if cupon.FechaVencimiento < today {
		return false
	}

	if redeemedIDs[cuponID] {
		return false
	}

	if cupon.LimiteCanjeos != nil && cupon.CanjeosActuales >= *cupon.LimiteCanjeos {
		return false
	}

	return true
}

//CheckRedemption Decides whether a redemption attempt goes through. Returns nil when the
//coupon can be redeemed, or the refusal shown to the user otherwise. Pure on purpose: the
//transaction in RedeemCupon hands it the reads and only writes when it returns nil, so a
//refused attempt (wrong code included) leaves the coupon untouched.
func CheckRedemption(cupon structs.Cupon, alreadyRedeemed bool, codigo string, today string) error {
	if alreadyRedeemed {
		return &errors.ConflictError{Msg: "Este cupón ya fue canjeado"}
	}

	if !cupon.Activo || cupon.FechaVencimiento < today {
		return &errors.ConflictError{Msg: "Cupón no disponible"}
	}

	if cupon.LimiteCanjeos != nil && cupon.CanjeosActuales >= *cupon.LimiteCanjeos {
		return &errors.ConflictError{Msg: "Cupón agotado"}
	}

	// a mismatched code must leave the coupon completely untouched
	if cupon.CodigoCanje != "" && codigo != cupon.CodigoCanje {
		return &errors.ConflictError{Msg: "Código incorrecto"}
	}

	return nil
}
