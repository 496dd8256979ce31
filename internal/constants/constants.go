package constants

//ProjectID Default GCP project.
const ProjectID = "drinkgo-app"

//FirebaseURL Default Realtime DB URL.
const FirebaseURL = "https://drinkgo-app.firebaseio.com"

//CollectionUsuarios Name of the collection.
const CollectionUsuarios = "usuarios"

//CollectionEmpresas Name of the collection.
const CollectionEmpresas = "empresas"

//CollectionCupones Name of the collection.
const CollectionCupones = "cupones"

//CollectionCanjeos Name of the collection.
const CollectionCanjeos = "canjeos"

//CollectionFavoritos Name of the subcollection under usuarios.
const CollectionFavoritos = "favoritos"

//CollectionNotificaciones Name of the collection.
const CollectionNotificaciones = "notificaciones"

//TopicRegisterUser Name of the topic.
const TopicRegisterUser = "user-registered"

//TopicRegisterEmpresa Name of the topic.
const TopicRegisterEmpresa = "empresa-registered"

//TopicRedeemCupon Name of the topic.
const TopicRedeemCupon = "cupon-redeemed"

//DbUserCountersPrefix Prefix of user counters data in Realtime DB.
const DbUserCountersPrefix = "userCounters/"

//DbEmpresaCountersPrefix Prefix of empresa counters data in Realtime DB.
const DbEmpresaCountersPrefix = "empresaCounters/"

//DbRedemptionCountersPrefix Prefix of redemption counters data in Realtime DB.
const DbRedemptionCountersPrefix = "redemptionCounters/"
