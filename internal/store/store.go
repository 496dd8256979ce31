package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/drinkgo/drinkgo-backend/internal/firebase"
)

// Storer is a storage abstraction layer interface
type Storer interface {
	Doc(string, string) *firestore.DocumentRef
	SubDoc(string, string, string, string) *firestore.DocumentRef
	Set(ctx context.Context, collectionName string, path string, data interface{}) error
	SetSub(ctx context.Context, collectionName string, path string, subcollectionName string, subpath string, data interface{}) error
	Delete(ctx context.Context, collectionName string, path string) error
	DeleteSub(ctx context.Context, collectionName string, path string, subcollectionName string, subpath string) error
	RunTransaction(context.Context, func(context.Context, *firestore.Transaction) error, ...firestore.TransactionOption) error
	Find(collectionName string, field string, value interface{}) firestore.Query
	FindAll(collectionName string, field string, value interface{}) firestore.Query
}

// Client to interact with storage API
type Client struct{}

// Doc returns a DocumentRef that refers to the document in the collection with the given identifier.
func (i Client) Doc(collectionName string, path string) *firestore.DocumentRef {
	client := firebase.FirestoreClient
	return client.Collection(collectionName).Doc(path)
}

// SubDoc returns a DocumentRef inside a subcollection of the given document.
func (i Client) SubDoc(collectionName string, path string, subcollectionName string, subpath string) *firestore.DocumentRef {
	client := firebase.FirestoreClient
	return client.Collection(collectionName).Doc(path).Collection(subcollectionName).Doc(subpath)
}

// SubCollection returns a reference to a subcollection of the given document.
func (i Client) SubCollection(collectionName string, path string, subcollectionName string) *firestore.CollectionRef {
	client := firebase.FirestoreClient
	return client.Collection(collectionName).Doc(path).Collection(subcollectionName)
}

// Set writes data to the document in the collection with the given identifier.
func (i Client) Set(ctx context.Context, collectionName string, path string, data interface{}) error {
	_, err := i.Doc(collectionName, path).Set(ctx, data)
	return err
}

// SetSub writes data to the document in a subcollection of the given document.
func (i Client) SetSub(ctx context.Context, collectionName string, path string, subcollectionName string, subpath string, data interface{}) error {
	_, err := i.SubDoc(collectionName, path, subcollectionName, subpath).Set(ctx, data)
	return err
}

// Delete deletes the document in the collection with the given identifier.
func (i Client) Delete(ctx context.Context, collectionName string, path string) error {
	_, err := i.Doc(collectionName, path).Delete(ctx)
	return err
}

// DeleteSub deletes the document in a subcollection of the given document.
func (i Client) DeleteSub(ctx context.Context, collectionName string, path string, subcollectionName string, subpath string) error {
	_, err := i.SubDoc(collectionName, path, subcollectionName, subpath).Delete(ctx)
	return err
}

// Find Creates query searching for single record with given field value.
func (i Client) Find(collectionName string, field string, value interface{}) firestore.Query {
	client := firebase.FirestoreClient
	return client.Collection(collectionName).Where(field, "==", value).Limit(1)
}

// FindAll Creates query searching for all records with given field value.
func (i Client) FindAll(collectionName string, field string, value interface{}) firestore.Query {
	client := firebase.FirestoreClient
	return client.Collection(collectionName).Where(field, "==", value)
}

// RunTransaction runs f in a transaction.
func (i Client) RunTransaction(ctx context.Context, f func(context.Context, *firestore.Transaction) error, opts ...firestore.TransactionOption) (err error) {
	client := firebase.FirestoreClient
	return client.RunTransaction(ctx, f, opts...)
}

//SetCall One recorded write.
type SetCall struct {
	Collection string
	Path       string
	Data       interface{}
}

// MockClient mocks storage client functionaly for unit tests
type MockClient struct {
	// SetErrs makes Set fail for given collection.
	SetErrs map[string]error
	// TxErr makes RunTransaction fail.
	TxErr   error
	Sets    []SetCall
	Deletes []SetCall
}

// Doc returns a DocumentRef that refers to the document in the collection with the given identifier.
func (i *MockClient) Doc(_ string, path string) *firestore.DocumentRef {

	ret := firestore.DocumentRef{
		Parent: nil,
		Path:   path,
		ID:     path,
	}

	return &ret
}

// SubDoc returns a DocumentRef inside a subcollection of the given document.
func (i *MockClient) SubDoc(_ string, _ string, _ string, subpath string) *firestore.DocumentRef {

	ret := firestore.DocumentRef{
		Parent: nil,
		Path:   subpath,
		ID:     subpath,
	}

	return &ret
}

// Set records the write or fails when configured to.
func (i *MockClient) Set(ctx context.Context, collectionName string, path string, data interface{}) error {
	if err, ok := i.SetErrs[collectionName]; ok {
		return err
	}
	i.Sets = append(i.Sets, SetCall{Collection: collectionName, Path: path, Data: data})
	return nil
}

// SetSub records the write or fails when configured to.
func (i *MockClient) SetSub(ctx context.Context, collectionName string, path string, subcollectionName string, subpath string, data interface{}) error {
	if err, ok := i.SetErrs[subcollectionName]; ok {
		return err
	}
	i.Sets = append(i.Sets, SetCall{Collection: subcollectionName, Path: subpath, Data: data})
	return nil
}

// Delete records the delete.
func (i *MockClient) Delete(ctx context.Context, collectionName string, path string) error {
	i.Deletes = append(i.Deletes, SetCall{Collection: collectionName, Path: path})
	return nil
}

// DeleteSub records the delete.
func (i *MockClient) DeleteSub(ctx context.Context, collectionName string, path string, subcollectionName string, subpath string) error {
	i.Deletes = append(i.Deletes, SetCall{Collection: subcollectionName, Path: subpath})
	return nil
}

// RunTransaction runs f in a transaction.
func (i *MockClient) RunTransaction(ctx context.Context, f func(context.Context, *firestore.Transaction) error, opts ...firestore.TransactionOption) (err error) {
	return i.TxErr
}

// Find Creates query searching for single record with given field value. NOOP.
func (i *MockClient) Find(collectionName string, field string, value interface{}) firestore.Query {
	return firestore.Query{}
}

// FindAll Creates query searching for all records with given field value. NOOP.
func (i *MockClient) FindAll(collectionName string, field string, value interface{}) firestore.Query {
	return firestore.Query{}
}
