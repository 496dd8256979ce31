package main

import (
	"net/http"

	"github.com/sethvargo/go-signalcontext"

	functions "github.com/drinkgo/drinkgo-backend"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	server "github.com/drinkgo/drinkgo-backend/pkg/httpserver"
)

func main() {

	ctx, done := signalcontext.OnInterrupt()
	defer done()

	logger := logging.FromContext(ctx)

	var config server.Config = server.Config{Port: "8081"}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/registerUser", functions.RegisterUser)
	mux.HandleFunc("/v1/loginUser", functions.LoginUser)
	mux.HandleFunc("/v1/registerEmpresa", functions.RegisterEmpresa)
	mux.HandleFunc("/v1/loginEmpresa", functions.LoginEmpresa)
	mux.HandleFunc("/v1/getSession", functions.GetSession)
	mux.HandleFunc("/v1/createCupon", functions.CreateCupon)
	mux.HandleFunc("/v1/listCupones", functions.ListCupones)
	mux.HandleFunc("/v1/redeemCupon", functions.RedeemCupon)
	mux.HandleFunc("/v1/checkRedemptionThresholds", functions.CheckRedemptionThresholds)
	mux.HandleFunc("/v1/listEmpresas", functions.ListEmpresas)
	mux.HandleFunc("/v1/getEmpresa", functions.GetEmpresa)
	mux.HandleFunc("/v1/updateEmpresa", functions.UpdateEmpresa)
	mux.HandleFunc("/v1/addFavorite", functions.AddFavorite)
	mux.HandleFunc("/v1/listFavorites", functions.ListFavorites)
	mux.HandleFunc("/v1/removeFavorite", functions.RemoveFavorite)
	mux.HandleFunc("/v1/listDrinks", functions.ListDrinks)
	mux.HandleFunc("/v1/searchDrinks", functions.SearchDrinks)
	mux.HandleFunc("/v1/getDrink", functions.GetDrink)
	mux.HandleFunc("/v1/addNotification", functions.AddNotification)
	mux.HandleFunc("/v1/listNotifications", functions.ListNotifications)
	mux.HandleFunc("/v1/markNotificationRead", functions.MarkNotificationRead)
	mux.HandleFunc("/v1/markAllNotificationsRead", functions.MarkAllNotificationsRead)
	mux.HandleFunc("/v1/deleteNotification", functions.DeleteNotification)
	mux.HandleFunc("/v1/clearNotifications", functions.ClearNotifications)

	srv, err := server.NewServer(ctx, &config)
	if err != nil {
		logger.Fatalf("server.New: %v", err)
	}
	logger.Infof("listening on :%s", config.Port)

	if err := srv.ServeHTTPHandler(ctx, mux); err != nil {
		logger.Fatal(err)
	}
}
