package empresas

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/drinkgo/drinkgo-backend/internal/auth"
	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	"github.com/drinkgo/drinkgo-backend/internal/utils/errors"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"google.golang.org/api/iterator"
)

//UpdateEmpresa Updates the empresa owned by the authenticated identity. Empty fields keep
//their stored value, deactivation goes through the Activo flag.
func UpdateEmpresa(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}
	authClient := auth.Client{}

	var request v1.UpdateEmpresaRequest

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

	logger.Debugf("Handling UpdateEmpresa request for empresa %v: %+v", empresaID, request)

	if err := applyUpdate(ctx, storeClient, empresaID, request); err != nil {
		logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
		httputils.SendErrorResponse(w, r, err)
		return
	}

	logger.Infof("Updated empresa %v", empresaID)

	httputils.SendEmptyResponse(w, r)
}

func applyUpdate(ctx context.Context, storeClient store.Storer, empresaID string, request v1.UpdateEmpresaRequest) error {
	doc := storeClient.Doc(constants.CollectionEmpresas, empresaID)

	return storeClient.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		rec, err := tx.Get(doc)
		if err != nil {
			return fmt.Errorf("Error while querying Firestore: %v", err)
		}

		var empresa structs.Empresa
		if err := rec.DataTo(&empresa); err != nil {
			return fmt.Errorf("Error while querying Firestore: %v", err)
		}

		if request.Nombre != "" {
			empresa.Nombre = request.Nombre
		}
		if request.Tipo != "" {
			empresa.Tipo = request.Tipo
		}
		if request.Descripcion != "" {
			empresa.Descripcion = request.Descripcion
		}
		if request.Direccion != "" {
			empresa.Direccion = request.Direccion
		}
		if request.Activo != nil {
			empresa.Activo = *request.Activo
		}

		return tx.Set(doc, empresa)
	})
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
