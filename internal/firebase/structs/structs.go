package structs

//Usuario DB entity for a registered end-user profile.
type Usuario struct {
	Nombre                string `json:"nombre" firestore:"nombre"`
	Email                 string `json:"email" firestore:"email"`
	FechaRegistro         int64  `json:"fechaRegistro" firestore:"fechaRegistro"`
	PushRegistrationToken string `json:"pushRegistrationToken" firestore:"pushRegistrationToken"`
}

//Empresa DB entity for a business (bar, restaurant) that can issue coupons.
type Empresa struct {
	Nombre                string `json:"nombre" firestore:"nombre"`
	Tipo                  string `json:"tipo" firestore:"tipo"`
	Descripcion           string `json:"descripcion" firestore:"descripcion"`
	Direccion             string `json:"direccion" firestore:"direccion"`
	OwnerID               string `json:"ownerId" firestore:"ownerId"`
	Activo                bool   `json:"activo" firestore:"activo"`
	FechaRegistro         int64  `json:"fechaRegistro" firestore:"fechaRegistro"`
	PushRegistrationToken string `json:"pushRegistrationToken" firestore:"pushRegistrationToken"`
}

//Cupon DB entity for a coupon issued by an empresa. Dates are "2006-01-02" strings,
//comparable lexicographically.
type Cupon struct {
	EmpresaID        string `json:"empresaId" firestore:"empresaId"`
	Titulo           string `json:"titulo" firestore:"titulo"`
	Descripcion      string `json:"descripcion" firestore:"descripcion"`
	TipoDescuento    string `json:"tipoDescuento" firestore:"tipoDescuento"`
	ValorDescuento   int    `json:"valorDescuento" firestore:"valorDescuento"`
	CodigoCanje      string `json:"codigoCanje" firestore:"codigoCanje"`
	FechaInicio      string `json:"fechaInicio" firestore:"fechaInicio"`
	FechaVencimiento string `json:"fechaVencimiento" firestore:"fechaVencimiento"`
	LimiteCanjeos    *int   `json:"limiteCanjeos" firestore:"limiteCanjeos"`
	CanjeosActuales  int    `json:"canjeosActuales" firestore:"canjeosActuales"`
	Activo           bool   `json:"activo" firestore:"activo"`
	CreatedAt        int64  `json:"createdAt" firestore:"createdAt"`
}

//Canjeo DB entity for one redemption of a coupon by one user. Document ID is
//"<cuponId>_<uid>" so a second redemption by the same user collides.
type Canjeo struct {
	CuponID    string `json:"cuponId" firestore:"cuponId"`
	EmpresaID  string `json:"empresaId" firestore:"empresaId"`
	UID        string `json:"uid" firestore:"uid"`
	RedeemedAt int64  `json:"redeemedAt" firestore:"redeemedAt"`
}

//FavoriteDrink DB entity for a favorited recipe, denormalized from the CocktailDB API.
type FavoriteDrink struct {
	IDDrink   string `json:"idDrink" firestore:"idDrink"`
	Nombre    string `json:"nombre" firestore:"nombre"`
	Miniatura string `json:"miniatura" firestore:"miniatura"`
	Categoria string `json:"categoria" firestore:"categoria"`
	AddedAt   int64  `json:"addedAt" firestore:"addedAt"`
}

//NotificationRecord One entry of a user's notification log.
type NotificationRecord struct {
	ID        string `json:"id" firestore:"id"`
	Titulo    string `json:"titulo" firestore:"titulo"`
	Mensaje   string `json:"mensaje" firestore:"mensaje"`
	Timestamp int64  `json:"timestamp" firestore:"timestamp"`
	Leida     bool   `json:"leida" firestore:"leida"`
	Tipo      string `json:"tipo" firestore:"tipo"`
	EmpresaID string `json:"empresaId,omitempty" firestore:"empresaId"`
	CuponID   string `json:"cuponId,omitempty" firestore:"cuponId"`
}

//NotificationLog Per-user notification log document, capped to the newest entries.
type NotificationLog struct {
	Records []NotificationRecord `json:"records" firestore:"records"`
}

//UserCounter Counter of registered users in Realtime DB.
type UserCounter struct {
	UsersCount int `json:"usersCount" firestore:"usersCount"`
}

//EmpresaCounter Counter of registered empresas in Realtime DB.
type EmpresaCounter struct {
	EmpresasCount int `json:"empresasCount" firestore:"empresasCount"`
}

//RedemptionCounter Counter of coupon redemptions in Realtime DB.
type RedemptionCounter struct {
	RedemptionsCount int `json:"redemptionsCount" firestore:"redemptionsCount"`
}
