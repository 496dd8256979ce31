package cupones

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/avast/retry-go"
	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const needsRetry = "needs_retry"

//CreateCupon Creates new coupon for the empresa owned by the authenticated identity.
func CreateCupon(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	authClient := auth.Client{}

	var request v1.CreateCuponRequest

	if !httputils.DecodeJSONOrReportError(w, r, &request) {
		return
	}

	uid, err := authClient.AuthenticateToken(ctx, request.IDToken)
	if err != nil {
		logger.Debugf("Unverifiable token provided: %v", err)
		httputils.SendErrorResponse(w, r, &errors.UnauthenticatedError{Msg: "Invalid token"})
		return
	}

	empresaID, err := empresaOfOwner(ctx, storeClient, uid)
	if err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	if empresaID == "" {
		httputils.SendErrorResponse(w, r, &errors.ConflictError{Msg: "Esta cuenta no está vinculada a ninguna empresa"})
		return
	}

	logger.Debugf("Handling CreateCupon request for empresa %v: %+v", empresaID, request)

	cupon := structs.Cupon{
		EmpresaID:        empresaID,
		Titulo:           request.Titulo,
		Descripcion:      request.Descripcion,
		TipoDescuento:    request.TipoDescuento,
		ValorDescuento:   request.ValorDescuento,
		FechaInicio:      request.FechaInicio,
		FechaVencimiento: request.FechaVencimiento,
		LimiteCanjeos:    request.LimiteCanjeos,
		Activo:           true,
		CreatedAt:        utils.GetTimeNow().Unix(),
	}

	if request.RequiereCodigo {
		cupon.CodigoCanje = utils.GenerateCodigoCanje()
	}

	cuponID, err := createCuponDoc(ctx, storeClient, utils.GenerateCuponID, cupon)
	if err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	logger.Infof("Created cupon %v for empresa %v", cuponID, empresaID)

	httputils.SendResponse(w, r, v1.CreateCuponResponse{CuponID: cuponID, CodigoCanje: cupon.CodigoCanje})
}

func createCuponDoc(ctx context.Context, storeClient store.Storer, generateCuponID func() string, cupon structs.Cupon) (string, error) {
	logger := logging.FromContext(ctx)

	var cuponID string

	err := retry.Do(
		func() error {
			cuponID = generateCuponID()
			var doc = storeClient.Doc(constants.CollectionCupones, cuponID)

			logger.Debugf("Trying cupon ID: %v", cuponID)

			return storeClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
				_, err := tx.Get(doc)

				if err == nil {
					// doc found, need retry
					return &errors.CustomError{Msg: needsRetry}
				}

				if status.Code(err) != codes.NotFound {
					return fmt.Errorf("Error while querying Firestore: %v", err)
				}
				// not found, great!

				return tx.Set(doc, cupon)
			})
		},
		retry.RetryIf(func(err error) bool {
			return err.Error() == needsRetry
		}),
	)

	return cuponID, err
}

func empresaOfOwner(ctx context.Context, client store.Client, uid string) (string, error) {
	it := client.Find(constants.CollectionEmpresas, "ownerId", uid).Documents(ctx)
	defer it.Stop()

	rec, err := it.Next()
	if err == iterator.Done {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("Error while querying Firestore: %v", err)
	}

	return rec.Ref.ID, nil
}
