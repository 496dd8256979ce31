package v1

import (
	"github.com/drinkgo/drinkgo-backend/internal/cocktaildb"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
)

/*
This file contains request/response structs for all endpoints. The structs have to be changed in
backward-compatible way and when it's not possible, copied to `v2` and changed there.
*/

//RegisterUserRequest Request for RegisterUser function
type RegisterUserRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

//RegisterUserResponse Response for RegisterUser function
type RegisterUserResponse struct {
	UID         string `json:"uid"`
	CustomToken string `json:"customToken"`
}

//LoginUserRequest Request for LoginUser function
type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

//LoginUserResponse Response for LoginUser function
type LoginUserResponse struct {
	UID          string          `json:"uid"`
	IDToken      string          `json:"idToken"`
	RefreshToken string          `json:"refreshToken"`
	Profile      structs.Usuario `json:"profile"`
}

//RegisterEmpresaRequest Request for RegisterEmpresa function
type RegisterEmpresaRequest struct {
	Nombre      string `json:"nombre" validate:"required"`
	Tipo        string `json:"tipo" validate:"required"`
	Descripcion string `json:"descripcion"`
	Direccion   string `json:"direccion" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
}

//RegisterEmpresaResponse Response for RegisterEmpresa function
type RegisterEmpresaResponse struct {
	UID         string `json:"uid"`
	EmpresaID   string `json:"empresaId"`
	CustomToken string `json:"customToken"`
}

//LoginEmpresaRequest Request for LoginEmpresa function
type LoginEmpresaRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

//LoginEmpresaResponse Response for LoginEmpresa function
type LoginEmpresaResponse struct {
	UID          string          `json:"uid"`
	EmpresaID    string          `json:"empresaId"`
	IDToken      string          `json:"idToken"`
	RefreshToken string          `json:"refreshToken"`
	Empresa      structs.Empresa `json:"empresa"`
}

//GetSessionRequest Request for GetSession function. Both tokens are optional, a missing one
//means that sub-session is signed out.
type GetSessionRequest struct {
	UserIDToken    string `json:"userIdToken"`
	EmpresaIDToken string `json:"empresaIdToken"`
}

//GetSessionResponse Response for GetSession function
type GetSessionResponse struct {
	UserType        string `json:"userType"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	UID             string `json:"uid,omitempty"`
	DisplayName     string `json:"displayName,omitempty"`
	Email           string `json:"email,omitempty"`
}

//CreateCuponRequest Request for CreateCupon function
type CreateCuponRequest struct {
	IDToken          string `json:"idToken" validate:"required"`
	Titulo           string `json:"titulo" validate:"required"`
	Descripcion      string `json:"descripcion"`
	TipoDescuento    string `json:"tipoDescuento" validate:"required,oneof=porcentaje monto promo"`
	ValorDescuento   int    `json:"valorDescuento"`
	FechaInicio      string `json:"fechaInicio"`
	FechaVencimiento string `json:"fechaVencimiento" validate:"required"`
	LimiteCanjeos    *int   `json:"limiteCanjeos"`
	RequiereCodigo   bool   `json:"requiereCodigo"`
}

//CreateCuponResponse Response for CreateCupon function
type CreateCuponResponse struct {
	CuponID     string `json:"cuponId"`
	CodigoCanje string `json:"codigoCanje,omitempty"`
}

//CuponView One coupon with its availability computed for the requesting viewer.
type CuponView struct {
	ID         string        `json:"id"`
	Cupon      structs.Cupon `json:"cupon"`
	Disponible bool          `json:"disponible"`
}

//ListCuponesRequest Request for ListCupones function. IDToken is optional, guests see
//availability without the per-viewer redemption check.
type ListCuponesRequest struct {
	IDToken   string `json:"idToken"`
	EmpresaID string `json:"empresaId"`
}

//ListCuponesResponse Response for ListCupones function
type ListCuponesResponse struct {
	Cupones []CuponView `json:"cupones"`
}

//RedeemCuponRequest Request for RedeemCupon function
type RedeemCuponRequest struct {
	IDToken string `json:"idToken" validate:"required"`
	CuponID string `json:"cuponId" validate:"required"`
	Codigo  string `json:"codigo"`
}

//RedeemCuponResponse Response for RedeemCupon function
type RedeemCuponResponse struct {
	CanjeosActuales int `json:"canjeosActuales"`
}

//ListEmpresasResponse Response for ListEmpresas function
type ListEmpresasResponse struct {
	Empresas []EmpresaView `json:"empresas"`
}

//EmpresaView One empresa with its document ID.
type EmpresaView struct {
	ID      string          `json:"id"`
	Empresa structs.Empresa `json:"empresa"`
}

//GetEmpresaRequest Request for GetEmpresa function
type GetEmpresaRequest struct {
	EmpresaID string `json:"empresaId" validate:"required"`
}

//GetEmpresaResponse Response for GetEmpresa function
type GetEmpresaResponse struct {
	Empresa EmpresaView `json:"empresa"`
}

//UpdateEmpresaRequest Request for UpdateEmpresa function. Only the owner may update.
type UpdateEmpresaRequest struct {
	IDToken     string `json:"idToken" validate:"required"`
	Nombre      string `json:"nombre"`
	Tipo        string `json:"tipo"`
	Descripcion string `json:"descripcion"`
	Direccion   string `json:"direccion"`
	Activo      *bool  `json:"activo"`
}

//AddFavoriteRequest Request for AddFavorite function
type AddFavoriteRequest struct {
	IDToken   string `json:"idToken" validate:"required"`
	IDDrink   string `json:"idDrink" validate:"required"`
	Nombre    string `json:"nombre" validate:"required"`
	Miniatura string `json:"miniatura"`
	Categoria string `json:"categoria"`
}

//ListFavoritesRequest Request for ListFavorites function
type ListFavoritesRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

//ListFavoritesResponse Response for ListFavorites function
type ListFavoritesResponse struct {
	Favoritos []structs.FavoriteDrink `json:"favoritos"`
}

//RemoveFavoriteRequest Request for RemoveFavorite function
type RemoveFavoriteRequest struct {
	IDToken string `json:"idToken" validate:"required"`
	IDDrink string `json:"idDrink" validate:"required"`
}

//ListDrinksRequest Request for ListDrinks function
type ListDrinksRequest struct {
	Categoria string `json:"categoria"`
}

//ListDrinksResponse Response for ListDrinks function
type ListDrinksResponse struct {
	Source string                    `json:"source"`
	Drinks []cocktaildb.DrinkSummary `json:"drinks"`
}

//SearchDrinksRequest Request for SearchDrinks function
type SearchDrinksRequest struct {
	Query string `json:"query" validate:"required"`
}

//SearchDrinksResponse Response for SearchDrinks function
type SearchDrinksResponse struct {
	Source string             `json:"source"`
	Drinks []cocktaildb.Drink `json:"drinks"`
}

//GetDrinkRequest Request for GetDrink function
type GetDrinkRequest struct {
	IDDrink string `json:"idDrink" validate:"required"`
}

//GetDrinkResponse Response for GetDrink function
type GetDrinkResponse struct {
	Source string            `json:"source"`
	Drink  *cocktaildb.Drink `json:"drink"`
}

//AddNotificationRequest Request for AddNotification function. The caller is an empresa (or
//the system), the target is a user.
type AddNotificationRequest struct {
	IDToken   string `json:"idToken" validate:"required"`
	TargetUID string `json:"targetUid" validate:"required"`
	Titulo    string `json:"titulo" validate:"required"`
	Mensaje   string `json:"mensaje" validate:"required"`
	Tipo      string `json:"tipo" validate:"required,oneof=empresa sistema cupon"`
	EmpresaID string `json:"empresaId"`
	CuponID   string `json:"cuponId"`
}

//AddNotificationResponse Response for AddNotification function
type AddNotificationResponse struct {
	NotificationID string `json:"notificationId"`
}

//ListNotificationsRequest Request for ListNotifications function
type ListNotificationsRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

//ListNotificationsResponse Response for ListNotifications function
type ListNotificationsResponse struct {
	Notificaciones []structs.NotificationRecord `json:"notificaciones"`
}

//MarkNotificationReadRequest Request for MarkNotificationRead function
type MarkNotificationReadRequest struct {
	IDToken        string `json:"idToken" validate:"required"`
	NotificationID string `json:"notificationId" validate:"required"`
}

//MarkAllNotificationsReadRequest Request for MarkAllNotificationsRead function
type MarkAllNotificationsReadRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

//DeleteNotificationRequest Request for DeleteNotification function
type DeleteNotificationRequest struct {
	IDToken        string `json:"idToken" validate:"required"`
	NotificationID string `json:"notificationId" validate:"required"`
}

//ClearNotificationsRequest Request for ClearNotifications function
type ClearNotificationsRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}
