package empresas

import (
	"fmt"
	"net/http"

	"github.com/drinkgo/drinkgo-backend/internal/constants"
	"github.com/drinkgo/drinkgo-backend/internal/firebase/structs"
	"github.com/drinkgo/drinkgo-backend/internal/logging"
	"github.com/drinkgo/drinkgo-backend/internal/store"
	httputils "github.com/drinkgo/drinkgo-backend/internal/utils/http"
	v1 "github.com/drinkgo/drinkgo-backend/pkg/api/v1"
	"google.golang.org/api/iterator"
)

//ListEmpresas Returns all active empresas. Public, no token needed.
func ListEmpresas(w http.ResponseWriter, r *http.Request) {
	var ctx = r.Context()
	logger := logging.FromContext(ctx)

	storeClient := store.Client{}

	logger.Debug("Handling ListEmpresas request")

	it := storeClient.FindAll(constants.CollectionEmpresas, "activo", true).Documents(ctx)
	defer it.Stop()

	empresas := []v1.EmpresaView{}

	for {
		rec, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
			httputils.SendErrorResponse(w, r, fmt.Errorf("Error while querying Firestore: %v", err))
			return
		}

		var empresa structs.Empresa
		if err := rec.DataTo(&empresa); err != nil {
			logger.Warnf("Cannot handle request due to unknown error: %+v", err.Error())
			httputils.SendErrorResponse(w, r, fmt.Errorf("Error while querying Firestore: %v", err))
			return
		}

		empresas = append(empresas, v1.EmpresaView{ID: rec.Ref.ID, Empresa: empresa})
	}

	httputils.SendResponse(w, r, v1.ListEmpresasResponse{Empresas: empresas})
}
