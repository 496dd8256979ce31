package functions

import (
	"context"
	"net/http"

	"github.com/drinkgo/drinkgo-backend/internal/functions/checkredemptionthresholds"
	"github.com/drinkgo/drinkgo-backend/internal/functions/cupones"
	"github.com/drinkgo/drinkgo-backend/internal/functions/drinks"
	"github.com/drinkgo/drinkgo-backend/internal/functions/empresas"
	"github.com/drinkgo/drinkgo-backend/internal/functions/favoritos"
	"github.com/drinkgo/drinkgo-backend/internal/functions/getsession"
	"github.com/drinkgo/drinkgo-backend/internal/functions/loginempresa"
	"github.com/drinkgo/drinkgo-backend/internal/functions/loginuser"
	"github.com/drinkgo/drinkgo-backend/internal/functions/notifications"
	"github.com/drinkgo/drinkgo-backend/internal/functions/registerempresa"
	"github.com/drinkgo/drinkgo-backend/internal/functions/registeruser"
	"github.com/drinkgo/drinkgo-backend/internal/pubsub"
)

// RegisterUser Registration handler.
func RegisterUser(w http.ResponseWriter, r *http.Request) {
	registeruser.RegisterUser(w, r)
}

// RegisterUserAftermath Handler of event about registered user.
func RegisterUserAftermath(ctx context.Context, m pubsub.Message) error {
	return registeruser.Aftermath(ctx, m)
}

// LoginUser Login handler.
func LoginUser(w http.ResponseWriter, r *http.Request) {
	loginuser.LoginUser(w, r)
}

// RegisterEmpresa Empresa registration handler.
func RegisterEmpresa(w http.ResponseWriter, r *http.Request) {
	registerempresa.RegisterEmpresa(w, r)
}

// RegisterEmpresaAftermath Handler of event about registered empresa.
func RegisterEmpresaAftermath(ctx context.Context, m pubsub.Message) error {
	return registerempresa.Aftermath(ctx, m)
}

// LoginEmpresa Empresa login handler.
func LoginEmpresa(w http.ResponseWriter, r *http.Request) {
	loginempresa.LoginEmpresa(w, r)
}

// GetSession GetSession handler.
func GetSession(w http.ResponseWriter, r *http.Request) {
	getsession.GetSession(w, r)
}

// CreateCupon CreateCupon handler.
func CreateCupon(w http.ResponseWriter, r *http.Request) {
	cupones.CreateCupon(w, r)
}

// ListCupones ListCupones handler.
func ListCupones(w http.ResponseWriter, r *http.Request) {
	cupones.ListCupones(w, r)
}

// RedeemCupon RedeemCupon handler.
func RedeemCupon(w http.ResponseWriter, r *http.Request) {
	cupones.RedeemCupon(w, r)
}

// RedeemCuponAftermath Handler of event about redeemed coupon.
func RedeemCuponAftermath(ctx context.Context, m pubsub.Message) error {
	return cupones.Aftermath(ctx, m)
}

// CheckRedemptionThresholds CheckRedemptionThresholds handler.
func CheckRedemptionThresholds(w http.ResponseWriter, r *http.Request) {
	checkredemptionthresholds.CheckRedemptionThresholds(w, r)
}

// ListEmpresas ListEmpresas handler.
func ListEmpresas(w http.ResponseWriter, r *http.Request) {
	empresas.ListEmpresas(w, r)
}

// GetEmpresa GetEmpresa handler.
func GetEmpresa(w http.ResponseWriter, r *http.Request) {
	empresas.GetEmpresa(w, r)
}

// UpdateEmpresa UpdateEmpresa handler.
func UpdateEmpresa(w http.ResponseWriter, r *http.Request) {
	empresas.UpdateEmpresa(w, r)
}

// AddFavorite AddFavorite handler.
func AddFavorite(w http.ResponseWriter, r *http.Request) {
	favoritos.AddFavorite(w, r)
}

// ListFavorites ListFavorites handler.
func ListFavorites(w http.ResponseWriter, r *http.Request) {
	favoritos.ListFavorites(w, r)
}

// RemoveFavorite RemoveFavorite handler.
func RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	favoritos.RemoveFavorite(w, r)
}

// ListDrinks ListDrinks handler.
func ListDrinks(w http.ResponseWriter, r *http.Request) {
	drinks.ListDrinks(w, r)
}

// SearchDrinks SearchDrinks handler.
func SearchDrinks(w http.ResponseWriter, r *http.Request) {
	drinks.SearchDrinks(w, r)
}

// GetDrink GetDrink handler.
func GetDrink(w http.ResponseWriter, r *http.Request) {
	drinks.GetDrink(w, r)
}

// AddNotification AddNotification handler.
func AddNotification(w http.ResponseWriter, r *http.Request) {
	notifications.AddNotification(w, r)
}

// ListNotifications ListNotifications handler.
func ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications.ListNotifications(w, r)
}

// MarkNotificationRead MarkNotificationRead handler.
func MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	notifications.MarkNotificationRead(w, r)
}

// MarkAllNotificationsRead MarkAllNotificationsRead handler.
func MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	notifications.MarkAllNotificationsRead(w, r)
}

// DeleteNotification DeleteNotification handler.
func DeleteNotification(w http.ResponseWriter, r *http.Request) {
	notifications.DeleteNotification(w, r)
}

// ClearNotifications ClearNotifications handler.
func ClearNotifications(w http.ResponseWriter, r *http.Request) {
	notifications.ClearNotifications(w, r)
}
