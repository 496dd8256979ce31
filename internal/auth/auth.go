package auth

import (
	"context"

	fbauth "firebase.google.com/go/auth"
	"github.com/drinkgo/drinkgo-backend/internal/firebase"
)

//Info Identity details extracted from a verified ID token.
type Info struct {
	UID   string
	Name  string
	Email string
}

// Auther is an auth abstraction layer interface
type Auther interface {
	CustomToken(ctx context.Context, uid string) (string, error)
	AuthenticateToken(ctx context.Context, idToken string) (string, error)
	TokenInfo(ctx context.Context, idToken string) (*Info, error)
	CreateUser(ctx context.Context, email string, password string, displayName string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	GetUserByEmail(ctx context.Context, email string) (string, error)
	UpdateDisplayName(ctx context.Context, uid string, displayName string) error
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

// Client to interact with auth API
type Client struct{}

// CustomToken creates a signed custom authentication token with the specified user ID. The resulting JWT can be used in a Firebase client SDK to trigger an authentication flow.
func (c Client) CustomToken(ctx context.Context, uid string) (string, error) {
	client := firebase.FirebaseAuth
	return client.CustomToken(ctx, uid)
}

//AuthenticateToken Verifies provided token and if valid, extracts UID from it.
func (c Client) AuthenticateToken(ctx context.Context, idToken string) (string, error) {
	client := firebase.FirebaseAuth
	token, err := client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}

	return token.UID, nil
}

//TokenInfo Verifies provided token and extracts identity details from its claims.
func (c Client) TokenInfo(ctx context.Context, idToken string) (*Info, error) {
	client := firebase.FirebaseAuth
	token, err := client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	info := Info{UID: token.UID}
	if name, ok := token.Claims["name"].(string); ok {
		info.Name = name
	}
	if email, ok := token.Claims["email"].(string); ok {
		info.Email = email
	}

	return &info, nil
}

//CreateUser Creates new auth identity with email+password, returns its UID.
func (c Client) CreateUser(ctx context.Context, email string, password string, displayName string) (string, error) {
	client := firebase.FirebaseAuth

	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	user, err := client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

//DeleteUser Deletes auth identity. Used for registration rollback and orphan cleanup.
func (c Client) DeleteUser(ctx context.Context, uid string) error {
	client := firebase.FirebaseAuth
	return client.DeleteUser(ctx, uid)
}

//GetUserByEmail Finds auth identity by email, returns its UID.
func (c Client) GetUserByEmail(ctx context.Context, email string) (string, error) {
	client := firebase.FirebaseAuth
	user, err := client.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

//UpdateDisplayName Updates display name of the auth identity.
func (c Client) UpdateDisplayName(ctx context.Context, uid string, displayName string) error {
	client := firebase.FirebaseAuth
	params := (&fbauth.UserToUpdate{}).DisplayName(displayName)
	_, err := client.UpdateUser(ctx, uid, params)
	return err
}

//RevokeRefreshTokens Invalidates all refresh tokens of given identity, effectively signing it out everywhere.
func (c Client) RevokeRefreshTokens(ctx context.Context, uid string) error {
	client := firebase.FirebaseAuth
	return client.RevokeRefreshTokens(ctx, uid)
}

// MockClient mocks auth client functionaly for unit tests
type MockClient struct {
	UID         string
	Name        string
	Email       string
	CreateErr   error
	TokenErr    error
	DeletedUIDs []string
	Revoked     []string
}

// CustomToken creates a signed custom authentication token with the specified user ID.
func (c *MockClient) CustomToken(ctx context.Context, uid string) (string, error) {
	return "custom-token-" + uid, nil
}

//AuthenticateToken Verifies provided token and if valid, extracts UID from it.
func (c *MockClient) AuthenticateToken(ctx context.Context, idToken string) (string, error) {
	if c.TokenErr != nil {
		return "", c.TokenErr
	}
	return c.UID, nil
}

//TokenInfo Verifies provided token and extracts identity details from its claims.
func (c *MockClient) TokenInfo(ctx context.Context, idToken string) (*Info, error) {
	if c.TokenErr != nil {
		return nil, c.TokenErr
	}
	return &Info{UID: c.UID, Name: c.Name, Email: c.Email}, nil
}

//CreateUser Creates new auth identity.
func (c *MockClient) CreateUser(ctx context.Context, email string, password string, displayName string) (string, error) {
	if c.CreateErr != nil {
		return "", c.CreateErr
	}
	return c.UID, nil
}

//DeleteUser Records deleted UID.
func (c *MockClient) DeleteUser(ctx context.Context, uid string) error {
	c.DeletedUIDs = append(c.DeletedUIDs, uid)
	return nil
}

//GetUserByEmail Finds auth identity by email.
func (c *MockClient) GetUserByEmail(ctx context.Context, email string) (string, error) {
	return c.UID, nil
}

//UpdateDisplayName Does nothing.
func (c *MockClient) UpdateDisplayName(ctx context.Context, uid string, displayName string) error {
	return nil
}

//RevokeRefreshTokens Records revoked UID.
func (c *MockClient) RevokeRefreshTokens(ctx context.Context, uid string) error {
	c.Revoked = append(c.Revoked, uid)
	return nil
}
